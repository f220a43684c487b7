package dice

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DiceArithmeticOp is the arithmetic connective between two sub-expressions
// in a CompoundRoll.
type DiceArithmeticOp int

// Arithmetic operator kinds.
const (
	Add DiceArithmeticOp = iota
	Subtract
	Multiply
	Divide
)

var arithmeticOpSymbols = [...]byte{
	Add:      '+',
	Subtract: '-',
	Multiply: '*',
	Divide:   '/',
}

// String implements fmt.Stringer.
func (op DiceArithmeticOp) String() string {
	if int(op) < 0 || int(op) >= len(arithmeticOpSymbols) {
		return "?"
	}
	return string(arithmeticOpSymbols[op])
}

// CompoundRoll is a parsed full expression: an ordered list of Dice joined
// by arithmetic operators. Ops holds either len(Dice) entries (the first
// being the sign the normaliser resolved for the leading term) or
// len(Dice)-1 entries, in which case Evaluate treats the first term as
// implicitly added to a zero accumulator.
type CompoundRoll struct {
	Dice []*Dice
	Ops  []DiceArithmeticOp
	raw  string
}

// signRunRegex matches a maximal run of two or more +/- characters, the
// target of the notation's unary-sign-chain collapsing rule.
var signRunRegex = regexp.MustCompile(`[+\-]{2,}`)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// collapseSignRuns repeatedly folds runs of +/- into a single sign: an even
// number of minuses collapses to +, an odd number collapses to -. A single
// regexp pass suffices because replaced runs are maximal and therefore never
// abut another run directly (the fixed point is reached in one pass over
// non-overlapping matches).
func collapseSignRuns(s string) string {
	return signRunRegex.ReplaceAllStringFunc(s, func(run string) string {
		minuses := strings.Count(run, "-")
		if minuses%2 == 0 {
			return "+"
		}
		return "-"
	})
}

// normalize implements spec §4.4's input normalisation, in order: strip
// whitespace and lowercase; collapse unary sign chains; resolve a trailing
// "+" (dropped) or trailing "-" (dropped, negating the whole expression by
// flipping every remaining top-level sign and prepending "-" if the result
// doesn't already start with "+" or "-"); then reject a trailing "*" or "/".
func normalize(s string) (string, error) {
	s = whitespaceRegex.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	s = collapseSignRuns(s)

	if s == "" {
		return "", newError(ErrDiceStringInvalidCharacters, quote(s))
	}

	switch s[len(s)-1] {
	case '+':
		s = s[:len(s)-1]
	case '-':
		s = s[:len(s)-1]
		var b strings.Builder
		b.Grow(len(s))
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '+':
				b.WriteByte('-')
			case '-':
				b.WriteByte('+')
			default:
				b.WriteByte(s[i])
			}
		}
		s = b.String()
		if s == "" || (s[0] != '+' && s[0] != '-') {
			s = "-" + s
		}
	}

	if s == "" {
		return "", newError(ErrDiceStringInvalidCharacters, quote(s))
	}
	switch s[len(s)-1] {
	case '*', '/':
		return "", newError(ErrCompoundDiceExprInvalidOpStructure, quote(s))
	}

	return s, nil
}

// opSplit carries the result of splitting a normalised expression on its
// top-level arithmetic operators: one more piece than operator, unless the
// string began with a sign, in which case the leading empty piece has
// already been discarded and pieces/ops line up 1:1.
func opSplit(s string) (pieces []string, ops []DiceArithmeticOp, err error) {
	var raw []string
	var rawOps []byte

	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '+', '-', '*', '/':
			raw = append(raw, s[start:i])
			rawOps = append(rawOps, s[i])
			start = i + 1
		}
	}
	raw = append(raw, s[start:])

	if len(raw) > 0 && raw[0] == "" && len(rawOps) > 0 && (rawOps[0] == '+' || rawOps[0] == '-') {
		// Leading sign: the piece before the first operator is empty
		// because the operator is itself the sign on dice[0]. Without a
		// leading sign, ops trails pieces 1:1 short; Evaluate prepends an
		// implicit Add in that case.
		raw = raw[1:]
	}

	for _, p := range raw {
		if p == "" {
			return nil, nil, newError(ErrCompoundDiceExprInvalidOpStructure, quote(s))
		}
	}

	ops = make([]DiceArithmeticOp, len(rawOps))
	for i, c := range rawOps {
		switch c {
		case '+':
			ops[i] = Add
		case '-':
			ops[i] = Subtract
		case '*':
			ops[i] = Multiply
		case '/':
			ops[i] = Divide
		}
	}
	return raw, ops, nil
}

// Parse parses a full dice expression such as "2d20+5" or "4d6-3d5+30"
// into a CompoundRoll. Parse errors (structural or per-term) are returned
// immediately; roll-time errors surface later, from Evaluate.
func Parse(text string) (*CompoundRoll, error) {
	s, err := normalize(text)
	if err != nil {
		return nil, err
	}

	pieces, ops, err := opSplit(s)
	if err != nil {
		return nil, err
	}

	dice := make([]*Dice, len(pieces))
	for i, p := range pieces {
		d, err := ParseDice(p)
		if err != nil {
			return nil, err
		}
		dice[i] = d
	}

	return &CompoundRoll{Dice: dice, Ops: ops, raw: text}, nil
}

// RollNumber is a CompoundResult's total: an int unless the expression
// contains a Divide operator anywhere, in which case it's a float64 per
// spec §3.
type RollNumber struct {
	isFloat bool
	i       int
	f       float64
}

// IntRollNumber builds an integer RollNumber.
func IntRollNumber(i int) RollNumber { return RollNumber{i: i} }

// FloatRollNumber builds a floating-point RollNumber.
func FloatRollNumber(f float64) RollNumber { return RollNumber{isFloat: true, f: f} }

// IsFloat reports whether the number is the Float variant.
func (n RollNumber) IsFloat() bool { return n.isFloat }

// Int returns the number as an int, truncating if it's the Float variant.
func (n RollNumber) Int() int {
	if n.isFloat {
		return int(n.f)
	}
	return n.i
}

// Float returns the number as a float64.
func (n RollNumber) Float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

// MarshalJSON implements json.Marshaler, encoding the number as a plain
// JSON number regardless of which variant it holds.
func (n RollNumber) MarshalJSON() ([]byte, error) {
	if n.isFloat {
		return json.Marshal(n.f)
	}
	return json.Marshal(n.i)
}

// CompoundResult is the result of evaluating a CompoundRoll.
type CompoundResult struct {
	Individuals []*DiceResult `json:"individuals"`
	Total       RollNumber    `json:"total"`
}

// effectiveOps returns r.Ops, prepending an implicit Add if the parse left
// one fewer operator than Dice (no leading sign was present).
func (r *CompoundRoll) effectiveOps() []DiceArithmeticOp {
	if len(r.Ops) == len(r.Dice) {
		return r.Ops
	}
	ops := make([]DiceArithmeticOp, len(r.Dice))
	ops[0] = Add
	copy(ops[1:], r.Ops)
	return ops
}

// Evaluate rolls every sub-expression concurrently and folds the plain sum
// of each result's Seq (sumAsFold, so a success roll contributes its sum,
// not its hit count) left to right with no operator precedence, per spec
// §4.5.
func (r *CompoundRoll) Evaluate(ctx context.Context) (*CompoundResult, error) {
	ctx = withRollBudget(ctx)

	results := make([]*DiceResult, len(r.Dice))
	errs := make([]error, len(r.Dice))

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range r.Dice {
		i, d := i, d
		g.Go(func() error {
			res, err := d.Roll(gctx)
			results[i] = res
			errs[i] = err
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	var firstErr error
	for _, err := range errs {
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if failed == 1 {
		return nil, firstErr
	}
	if failed > 1 {
		return nil, newError(ErrCompoundDiceMultipleRollErrors)
	}

	ops := r.effectiveOps()
	aggregates := make([]int, len(results))
	for i, res := range results {
		aggregates[i] = res.sumAsFold()
	}

	useFloat := false
	for _, op := range ops {
		if op == Divide {
			useFloat = true
		}
	}

	for i, op := range ops {
		if op == Divide && aggregates[i] == 0 {
			return nil, newError(ErrDiceExprDivisionByZero)
		}
	}

	var total RollNumber
	if useFloat {
		acc := 0.0
		for i, op := range ops {
			v := float64(aggregates[i])
			switch op {
			case Add:
				acc += v
			case Subtract:
				acc -= v
			case Multiply:
				acc *= v
			case Divide:
				acc /= v
			}
		}
		total = FloatRollNumber(acc)
	} else {
		acc := 0
		for i, op := range ops {
			v := aggregates[i]
			switch op {
			case Add:
				acc += v
			case Subtract:
				acc -= v
			case Multiply:
				acc *= v
			}
		}
		total = IntRollNumber(acc)
	}

	return &CompoundResult{Individuals: results, Total: total}, nil
}
