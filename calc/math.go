package calc

import (
	"fmt"

	eval "github.com/Knetic/govaluate"
	"github.com/pkg/errors"
)

// ErrNilExpression is returned by Evaluate for an empty expression string.
var ErrNilExpression = errors.New("calc: empty expression")

// Result is a plain arithmetic expression that has been evaluated.
type Result struct {
	// Original is the expression as given to Evaluate.
	Original string `json:"original"`

	// Value is the expression's evaluated total.
	Value float64 `json:"value"`
}

// String implements fmt.Stringer.
func (r *Result) String() string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%s = %v", r.Original, r.Value)
}

// GoString implements fmt.GoStringer.
func (r *Result) GoString() string {
	return fmt.Sprintf("%#v", *r)
}

// Evaluate evaluates a plain arithmetic expression, such as "floor(max(3,
// 2*5)/2+3)", using the standard precedence rules govaluate applies and the
// functions registered in Functions. Unlike the dice package's compound
// evaluator, Evaluate has nothing to do with dice notation: it's the CLI's
// separate "calc" surface for ordinary formulas.
func Evaluate(expression string) (*Result, error) {
	if expression == "" {
		return nil, ErrNilExpression
	}

	exp, err := eval.NewEvaluableExpressionWithFunctions(expression, Functions)
	if err != nil {
		return nil, errors.Wrap(err, "calc: parse error")
	}

	out, err := exp.Evaluate(nil)
	if err != nil {
		return nil, errors.Wrap(err, "calc: evaluation error")
	}

	value, ok := out.(float64)
	if !ok {
		return nil, errors.Errorf("calc: result %v is not a number", out)
	}

	return &Result{Original: expression, Value: value}, nil
}
