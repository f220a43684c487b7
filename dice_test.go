package dice

import (
	"testing"
)

func TestParseDiceBareInteger(t *testing.T) {
	d, err := ParseDice("5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Amount != 5 || d.Sides != 1 || d.Kind != Regular {
		t.Fatalf("got %+v, want Amount=5 Sides=1 Kind=Regular", d)
	}
}

func TestParseDiceDefaultSides(t *testing.T) {
	d, err := ParseDice("d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Amount != 1 || d.Sides != DefaultSides {
		t.Fatalf("got %+v, want Amount=1 Sides=%d", d, DefaultSides)
	}
}

func TestParseDiceAmountAndSides(t *testing.T) {
	d, err := ParseDice("4d6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Amount != 4 || d.Sides != 6 || d.Kind != Regular {
		t.Fatalf("got %+v", d)
	}
}

func TestParseDiceKeepHigh(t *testing.T) {
	d, err := ParseDice("4d6k3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != Keep || len(d.Args) != 1 || d.Args[0] != 3 {
		t.Fatalf("got %+v", d)
	}
}

func TestParseDiceExplodingSuccessBackfillsDepth(t *testing.T) {
	d, err := ParseDice("10d10es8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != ExplodingSuccess || len(d.Args) != 2 || d.Args[0] != MaxDepth || d.Args[1] != 8 {
		t.Fatalf("got %+v", d)
	}
}

func TestParseDiceOpenEndedImplicitDefaultsLowToOne(t *testing.T) {
	d, err := ParseDice("1d20oe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != OpenEndedImplicit || len(d.Args) != 1 || d.Args[0] != 1 {
		t.Fatalf("got %+v", d)
	}
}

func TestParseDiceAddUpperBound(t *testing.T) {
	d, err := ParseDice("4d6a3u10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != AddUpperBound || len(d.Args) != 2 || d.Args[0] != 3 || d.Args[1] != 10 {
		t.Fatalf("got %+v, want AddUpperBound(3, 10)", d)
	}
}

func TestParseDiceAddLowerBound(t *testing.T) {
	d, err := ParseDice("4d6a2l3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != AddLowerBound || len(d.Args) != 2 || d.Args[0] != 2 || d.Args[1] != 3 {
		t.Fatalf("got %+v, want AddLowerBound(2, 3)", d)
	}
}

func TestParseDiceSubtractUpperBound(t *testing.T) {
	d, err := ParseDice("4d6s3u10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != SubtractUpperBound || len(d.Args) != 2 || d.Args[0] != 3 || d.Args[1] != 10 {
		t.Fatalf("got %+v, want SubtractUpperBound(3, 10)", d)
	}
}

func TestParseDiceSubtractLowerBound(t *testing.T) {
	d, err := ParseDice("4d6s2l3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != SubtractLowerBound || len(d.Args) != 2 || d.Args[0] != 2 || d.Args[1] != 3 {
		t.Fatalf("got %+v, want SubtractLowerBound(2, 3)", d)
	}
}

func TestParseDiceOpenEndedExplicit(t *testing.T) {
	d, err := ParseDice("3d6oel5h15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Kind != OpenEnded || len(d.Args) != 2 || d.Args[0] != 5 || d.Args[1] != 15 {
		t.Fatalf("got %+v, want OpenEnded(5, 15)", d)
	}
}

func TestParseDiceAmountTooLarge(t *testing.T) {
	_, err := ParseDice("100d6")
	assertErrorKind(t, err, ErrDiceAmountTooLarge)
}

func TestParseDiceTooManySides(t *testing.T) {
	_, err := ParseDice("1d1001")
	assertErrorKind(t, err, ErrDiceTooManySides)
}

func TestParseDiceInvalidCharacters(t *testing.T) {
	_, err := ParseDice("")
	assertErrorKind(t, err, ErrDiceStringInvalidCharacters)

	_, err = ParseDice("4d6!")
	assertErrorKind(t, err, ErrDiceStringInvalidCharacters)
}

func TestParseDiceTooManyParts(t *testing.T) {
	_, err := ParseDice("4d6k3dh2kl1")
	assertErrorKind(t, err, ErrDiceStringTooManyParts)
}

func TestParseDiceInvalidOp(t *testing.T) {
	_, err := ParseDice("4d6zz")
	assertErrorKind(t, err, ErrDiceStringInvalidOp)
}

func TestParseDiceNumberTooLarge(t *testing.T) {
	_, err := ParseDice("4d99999999999999999999")
	assertErrorKind(t, err, ErrDiceStringNumberTooLarge)
}

func assertErrorKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	de, ok := err.(*Error)
	if !ok {
		t.Fatalf("err = %v (%T), want *Error", err, err)
	}
	if de.Kind != want {
		t.Fatalf("err.Kind = %v, want %v", de.Kind, want)
	}
}
