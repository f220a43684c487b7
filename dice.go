/*
Package dice implements a MapTool-style dice-expression parser and evaluator.

A Dice is a single parsed sub-expression such as "4d6k3" or "10d10es8"; a
CompoundRoll is an ordered sequence of Dice joined by arithmetic operators,
such as "2d20+5" or "4d6-3d5+30". Parse a compound expression with Parse,
then request its result with CompoundRoll.Evaluate.

The package does not persist state, coordinate across requests, or render
output for any particular chat protocol: it is a pure parse+evaluate library,
the same shape as the teacher project's dice.Parse/Roll pair.
*/
package dice

import (
	"regexp"
	"strconv"
	"strings"
)

// Hard limits from the notation grammar.
const (
	MaxAmount = 50
	MaxSides  = 1000

	// DefaultSides is what a bare "d" (no explicit side count) means.
	DefaultSides = 20
)

// MaxDepth is the sentinel "no limit" depth used for Explode, Open, and
// ExplodingSuccess when no explicit depth argument was given.
const MaxDepth = 1<<16 - 1

// notationTokenRegex splits a lowercase alphanumeric dice string into
// alternating digit and alphabetic runs, in order. Any other character is
// rejected by validNotationRegex before this ever runs.
var notationTokenRegex = regexp.MustCompile(`[a-z]+|[0-9]+`)

// validNotationRegex enforces the caller contract: a non-empty run of
// lowercase letters and digits only.
var validNotationRegex = regexp.MustCompile(`^[a-z0-9]+$`)

// Dice is a single parsed sub-expression: "NdS<op><args>".
type Dice struct {
	Amount int    `json:"amount"`
	Sides  int    `json:"sides"`
	Kind   DieOp  `json:"kind"`
	Args   []int  `json:"args,omitempty"`
	raw    string // original notation, used for error messages
}

// ParseDice parses a single dice sub-expression such as "4d6k3". The input
// must already be a non-empty run of lowercase alphanumerics with no
// whitespace; Parse (the compound parser) guarantees this for every piece
// it hands to ParseDice.
func ParseDice(s string) (*Dice, error) {
	if s == "" || !validNotationRegex.MatchString(s) {
		return nil, newError(ErrDiceStringInvalidCharacters, quote(s))
	}

	// A bare integer literal is amount x 1-sided: its sum is the literal.
	if n, err := strconv.ParseUint(s, 10, 16); err == nil {
		return &Dice{Amount: int(n), Sides: 1, Kind: Regular, raw: s}, nil
	}

	toks := notationTokenRegex.FindAllString(s, -1)

	type run struct {
		digit bool
		val   string
	}
	runs := make([]run, len(toks))
	for i, t := range toks {
		runs[i] = run{digit: t[0] >= '0' && t[0] <= '9', val: t}
	}

	idx := 0
	amount := 1
	if idx < len(runs) && runs[idx].digit {
		n, err := strconv.ParseUint(runs[idx].val, 10, 16)
		if err != nil {
			return nil, newError(ErrDiceStringNumberTooLarge, quote(runs[idx].val))
		}
		amount = int(n)
		idx++
	}

	specifiesSides := false
	if idx < len(runs) && !runs[idx].digit && runs[idx].val == "d" {
		specifiesSides = true
		idx++
	}

	// Collect the remaining alphabetic tokens, in order, for op lookup.
	var alphaTokens []string
	for i := idx; i < len(runs); i++ {
		if !runs[i].digit {
			alphaTokens = append(alphaTokens, runs[i].val)
		}
	}
	if len(alphaTokens) > 2 {
		return nil, newError(ErrDiceStringTooManyParts, quote(s))
	}
	kind, ok := lookupOp(alphaTokens)
	if !ok {
		return nil, newError(ErrDiceStringInvalidOp, quote(strings.Join(alphaTokens, "")))
	}

	sides := 1
	if specifiesSides {
		sides = DefaultSides
		if idx < len(runs) && runs[idx].digit {
			n, err := strconv.ParseUint(runs[idx].val, 10, 16)
			if err != nil {
				return nil, newError(ErrDiceStringNumberTooLarge, quote(runs[idx].val))
			}
			sides = int(n)
			idx++
		}
	}

	var args []int
	for i := idx; i < len(runs); i++ {
		if runs[i].digit {
			n, err := strconv.ParseUint(runs[i].val, 10, 16)
			if err != nil {
				return nil, newError(ErrDiceStringNumberTooLarge, quote(runs[i].val))
			}
			args = append(args, int(n))
		}
	}

	if amount > MaxAmount {
		return nil, newError(ErrDiceAmountTooLarge, amount)
	}
	if sides > MaxSides {
		return nil, newError(ErrDiceTooManySides, sides)
	}

	args = backfillArgs(kind, args)
	if len(args) != kind.arity() {
		return nil, newError(ErrDiceStringInvalidOp, quote(s))
	}

	return &Dice{Amount: amount, Sides: sides, Kind: kind, Args: args, raw: s}, nil
}

// backfillArgs fills in per-kind default arguments that the notation allows
// a caller to omit: Explode/Open default their depth to MaxDepth, and
// ExplodingSuccess inserts MaxDepth as a leading depth when only a threshold
// was supplied.
func backfillArgs(kind DieOp, args []int) []int {
	switch kind {
	case Explode, Open:
		if len(args) == 0 {
			return []int{MaxDepth}
		}
	case ExplodingSuccess:
		if len(args) == 1 {
			return []int{MaxDepth, args[0]}
		}
	case OpenEndedImplicit:
		// "NdSoe" with no explicit low threshold means the lowest face (1)
		// is the trigger, same as a bare "d" means d20.
		if len(args) == 0 {
			return []int{1}
		}
	}
	return args
}

func quote(s string) string {
	return "\"" + s + "\""
}
