package dice

import (
	"context"
	"testing"
)

func TestNormalizeStripsWhitespaceAndLowercases(t *testing.T) {
	got, err := normalize(" 2D20 + 5 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2d20+5" {
		t.Fatalf("got %q, want %q", got, "2d20+5")
	}
}

func TestNormalizeCollapsesSignRuns(t *testing.T) {
	cases := map[string]string{
		"1d6++5":   "1d6+5",
		"1d6--5":   "1d6+5",
		"1d6+-5":   "1d6-5",
		"1d6---5":  "1d6-5",
		"1d6----5": "1d6+5",
	}
	for in, want := range cases {
		got, err := normalize(in)
		if err != nil {
			t.Fatalf("normalize(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeTrailingPlusDropped(t *testing.T) {
	got, err := normalize("1d6+5+")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "1d6+5" {
		t.Fatalf("got %q, want %q", got, "1d6+5")
	}
}

func TestNormalizeTrailingMinusInvertsSigns(t *testing.T) {
	got, err := normalize("1d6+5-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "-1d6-5" {
		t.Fatalf("got %q, want %q", got, "-1d6-5")
	}
}

func TestNormalizeTrailingMinusPrependsSignWhenNeeded(t *testing.T) {
	got, err := normalize("1d6-")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "-1d6" {
		t.Fatalf("got %q, want %q", got, "-1d6")
	}
}

func TestNormalizeRejectsTrailingMultiplyOrDivide(t *testing.T) {
	for _, in := range []string{"1d6*", "1d6/"} {
		_, err := normalize(in)
		assertErrorKind(t, err, ErrCompoundDiceExprInvalidOpStructure)
	}
}

func TestOpSplitLeadingSign(t *testing.T) {
	pieces, ops, err := opSplit("-1d6+2d4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pieces) != 2 || len(ops) != 2 {
		t.Fatalf("pieces=%v ops=%v, want 2 and 2", pieces, ops)
	}
	if ops[0] != Subtract || ops[1] != Add {
		t.Fatalf("ops=%v, want [Subtract Add]", ops)
	}
}

func TestOpSplitNoLeadingSign(t *testing.T) {
	pieces, ops, err := opSplit("1d6+2d4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pieces) != 2 || len(ops) != 1 {
		t.Fatalf("pieces=%v ops=%v, want 2 and 1", pieces, ops)
	}
}

func TestOpSplitAdjacentOperatorsError(t *testing.T) {
	// normalize would have already collapsed a literal "++", so construct
	// an adjacency error directly, e.g. an empty piece between "*" and "/".
	_, _, err := opSplit("1d6*/2")
	assertErrorKind(t, err, ErrCompoundDiceExprInvalidOpStructure)
}

func TestParseInvalidTermPropagatesError(t *testing.T) {
	_, err := Parse("100d6+5")
	assertErrorKind(t, err, ErrDiceAmountTooLarge)
}

func TestEvaluateTwoTermAddition(t *testing.T) {
	withFixedSource(t, []int{12, 7}, []int{5})

	roll, err := Parse("2d20+5")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	result, err := roll.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("unexpected evaluate error: %v", err)
	}
	if result.Total.Int() != 24 {
		t.Fatalf("Total = %v, want 24", result.Total)
	}
	if got, want := result.String(), "12, 7 = 19; 5; = 24"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestEvaluateKeepHighest(t *testing.T) {
	withFixedSource(t, []int{6, 4, 5, 1})

	roll, err := Parse("4d6k3")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	result, err := roll.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("unexpected evaluate error: %v", err)
	}
	if got, want := result.String(), "6, 4, 5 = 15"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestEvaluateSuccessThreshold(t *testing.T) {
	withFixedSource(t, []int{3, 5, 6})

	roll, err := Parse("3d6s4")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	result, err := roll.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("unexpected evaluate error: %v", err)
	}
	if got, want := result.String(), "3, 5, 6 >= 4 = 2"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestEvaluateExplode(t *testing.T) {
	withFixedSource(t, []int{6}, []int{6}, []int{3})

	roll, err := Parse("1d6e6")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	result, err := roll.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("unexpected evaluate error: %v", err)
	}
	if got, want := result.String(), "6, 6, 3 = 15"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestEvaluateBareLiteralTerm(t *testing.T) {
	withFixedSource(t, []int{4, 2})

	roll, err := Parse("2d6+5")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	result, err := roll.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("unexpected evaluate error: %v", err)
	}
	if got, want := result.String(), "4, 2 = 6; 5; = 11"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	withFixedSource(t, []int{12}, nil)

	roll, err := Parse("1d20/0d6")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, err = roll.Evaluate(context.Background())
	assertErrorKind(t, err, ErrDiceExprDivisionByZero)
}

func TestEvaluateDivisionProducesFloat(t *testing.T) {
	// Sub-rolls run concurrently, so only one term may draw from the fixed
	// source: the literal 9 needs no draw, and 1d6 draws [2].
	withFixedSource(t, []int{2})

	roll, err := Parse("9/1d6")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	result, err := roll.Evaluate(context.Background())
	if err != nil {
		t.Fatalf("unexpected evaluate error: %v", err)
	}
	if !result.Total.IsFloat() {
		t.Fatal("Total.IsFloat() = false, want true")
	}
	if result.Total.Float() != 4.5 {
		t.Fatalf("Total = %v, want 4.5", result.Total.Float())
	}
}
