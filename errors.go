package dice

import "fmt"

// ErrorKind tags the flat, non-nesting error taxonomy the core returns to its
// callers. The core itself carries only the tag; mapping a Kind to a
// user-facing sentence is left to the caller.
type ErrorKind int

// Error kinds. RandomOrg* kinds are never surfaced by a public API: the
// random.Source recovers them into a local-PRNG fallback before a Dice or
// CompoundRoll ever sees them. They complete the taxonomy only: dice/random
// reports its oracle failures through its own mirror of these three kinds,
// not through this Error type.
const (
	ErrRandomOrgOutOfRange ErrorKind = iota
	ErrRandomOrgInvalidResponse
	ErrRandomOrgUnreachable

	ErrDiceStringInvalidCharacters
	ErrDiceStringTooManyParts
	ErrDiceStringInvalidOp
	ErrDiceStringNumberTooLarge

	ErrDiceAmountTooLarge
	ErrDiceTooManySides

	ErrDiceExprDivisionByZero
	ErrDiceExprInvalidArgument
	ErrDiceExprInvalidSides

	ErrCompoundDiceExprInvalidOpStructure
	ErrCompoundDiceMultipleRollErrors
)

var errorKindNames = [...]string{
	ErrRandomOrgOutOfRange:                "random.org: value out of range",
	ErrRandomOrgInvalidResponse:           "random.org: invalid response",
	ErrRandomOrgUnreachable:               "random.org: unreachable",
	ErrDiceStringInvalidCharacters:        "dice string: invalid characters",
	ErrDiceStringTooManyParts:             "dice string: too many parts",
	ErrDiceStringInvalidOp:                "dice string: invalid operation",
	ErrDiceStringNumberTooLarge:           "dice string: number too large",
	ErrDiceAmountTooLarge:                 "dice: amount too large",
	ErrDiceTooManySides:                   "dice: too many sides",
	ErrDiceExprDivisionByZero:             "dice expression: division by zero",
	ErrDiceExprInvalidArgument:            "dice expression: invalid argument",
	ErrDiceExprInvalidSides:               "dice expression: invalid sides",
	ErrCompoundDiceExprInvalidOpStructure: "compound dice expression: invalid operator structure",
	ErrCompoundDiceMultipleRollErrors:     "compound dice expression: multiple roll errors",
}

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	if int(k) < 0 || int(k) >= len(errorKindNames) {
		return "unknown error"
	}
	return errorKindNames[k]
}

// Error is the single error type the core returns. It carries a Kind and an
// optional Detail describing the specific value or token that triggered it.
type Error struct {
	Kind   ErrorKind
	Detail string
}

// newError builds an *Error, formatting Detail from args the way fmt.Sprint
// would.
func newError(kind ErrorKind, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprint(args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Detail
}

// Is reports whether target is an *Error with the same Kind, so callers can
// use errors.Is(err, &dice.Error{Kind: dice.ErrDiceAmountTooLarge}) style checks.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
