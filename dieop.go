package dice

import "strings"

// DieOp is the tagged variant of operation a single dice sub-expression can
// carry. The set is closed, so dispatch is a plain switch rather than
// anything resembling virtual dispatch.
type DieOp int

// Operation kinds; opTable below maps notation tokens to them.
const (
	Regular DieOp = iota
	Reroll
	RerollOnceKeep
	RerollOnceChoose
	Success
	Explode
	ExplodingSuccess
	Open
	Drop
	DropHigh
	Keep
	KeepLow
	UpperBound
	LowerBound
	AddUpperBound
	AddLowerBound
	SubtractUpperBound
	SubtractLowerBound
	OpenEnded
	OpenEndedImplicit
)

var dieOpNames = [...]string{
	Regular:             "regular",
	Reroll:              "reroll",
	RerollOnceKeep:       "reroll-once-keep",
	RerollOnceChoose:    "reroll-once-choose",
	Success:             "success",
	Explode:             "explode",
	ExplodingSuccess:    "exploding-success",
	Open:                "open",
	Drop:                "drop",
	DropHigh:            "drop-high",
	Keep:                "keep",
	KeepLow:             "keep-low",
	UpperBound:          "upper-bound",
	LowerBound:          "lower-bound",
	AddUpperBound:       "add-upper-bound",
	AddLowerBound:       "add-lower-bound",
	SubtractUpperBound:  "subtract-upper-bound",
	SubtractLowerBound:  "subtract-lower-bound",
	OpenEnded:           "open-ended",
	OpenEndedImplicit:   "open-ended-implicit",
}

// String implements fmt.Stringer.
func (k DieOp) String() string {
	if int(k) < 0 || int(k) >= len(dieOpNames) {
		return "unknown"
	}
	return dieOpNames[k]
}

// arity is the number of numeric arguments a Dice of this kind must carry
// after default-argument backfill has run.
func (k DieOp) arity() int {
	switch k {
	case Regular:
		return 0
	case ExplodingSuccess, AddUpperBound, AddLowerBound, SubtractUpperBound, SubtractLowerBound, OpenEnded:
		return 2
	default:
		return 1
	}
}

// opTokenSep separates alphabetic tokens within an opTable key so that a
// single fused token ("es") never collides with two separate tokens ("e",
// "s") that happen to concatenate to the same characters.
const opTokenSep = "\x1f"

// opTable maps the ordered tuple of alphabetic tokens remaining after the
// dice marker ("d") has been stripped from a notation string to the DieOp
// they select. It is process-wide, immutable once built, and populated at
// init so lookups never race.
var opTable map[string]DieOp

func init() {
	opTable = map[string]DieOp{
		"":   Regular,
		"r":  Reroll,
		"rk": RerollOnceKeep,
		"rc": RerollOnceChoose,
		"s":  Success,
		"e":  Explode,
		"es": ExplodingSuccess,
		"e" + opTokenSep + "s": ExplodingSuccess,
		"o":  Open,
		"d":  Drop,
		"dh": DropHigh,
		"k":  Keep,
		"kl": KeepLow,
		"u":  UpperBound,
		"l":  LowerBound,
		"a" + opTokenSep + "u":   AddUpperBound,
		"a" + opTokenSep + "l":   AddLowerBound,
		"s" + opTokenSep + "u":   SubtractUpperBound,
		"s" + opTokenSep + "l":   SubtractLowerBound,
		"oel" + opTokenSep + "h": OpenEnded,
		"oe": OpenEndedImplicit,
	}
}

// lookupOp resolves an ordered slice of alphabetic tokens to a DieOp. ok is
// false if the combination is not recognized.
func lookupOp(tokens []string) (DieOp, bool) {
	k, ok := opTable[strings.Join(tokens, opTokenSep)]
	return k, ok
}
