package dice

import (
	"context"
	"sort"

	"github.com/mapdice/dicecore/random"
)

// Source is the package's default randomness source. Tests that need a
// deterministic outcome can swap it for a random.Fixed, mirroring the
// teacher project's package-level Source variable.
var Source random.Source = random.NewDefault()

// Roll rolls d, dispatching on d.Kind. It never mutates d.
func (d *Dice) Roll(ctx context.Context) (*DiceResult, error) {
	if d.Amount == 0 || d.Sides == 0 {
		return &DiceResult{Seq: nil, TrulyRandom: true}, nil
	}

	switch d.Kind {
	case Explode, Open, OpenEnded, OpenEndedImplicit:
		if d.Sides == 1 {
			return nil, newError(ErrDiceExprInvalidSides, d.raw)
		}
	}

	switch d.Kind {
	case Regular:
		return d.rollRegular(ctx, 1)
	case Reroll:
		return d.rollRegular(ctx, d.Args[0])
	case Success:
		return d.rollSuccess(ctx)
	case Drop, DropHigh, Keep, KeepLow:
		return d.rollDropKeep(ctx)
	case RerollOnceKeep, RerollOnceChoose:
		return d.rollRerollOnce(ctx)
	case Explode, ExplodingSuccess:
		return d.rollExplode(ctx)
	case Open:
		return d.rollOpen(ctx)
	case UpperBound, LowerBound, AddUpperBound, AddLowerBound, SubtractUpperBound, SubtractLowerBound:
		return d.rollBounded(ctx)
	case OpenEnded, OpenEndedImplicit:
		return d.rollOpenEnded(ctx)
	default:
		return nil, newError(ErrDiceStringInvalidOp, d.Kind.String())
	}
}

// fetch is the engine's single chokepoint for randomness requests: every
// call charges the per-Evaluate roll budget and goes through the package's
// Source.
func fetch(ctx context.Context, n, lo, hi int) ([]int, bool) {
	if !chargeRoll(ctx) {
		// Budget exceeded: serve lo for every value rather than continuing
		// to hammer the oracle. Pathological only; ordinary expressions never hit this.
		out := make([]int, n)
		for i := range out {
			out[i] = lo
		}
		return out, false
	}
	return Source.Fetch(ctx, n, lo, hi)
}

// rollRegular draws Amount values uniformly from [lo, sides]. sides == 1 is
// the degenerate closed form noted in spec §4.3: every draw is forced to 1,
// so the result collapses to the single deterministic value Amount (this is
// also how a bare integer literal, parsed as Amount x 1-sided, evaluates to
// its own value rather than a run of ones).
func (d *Dice) rollRegular(ctx context.Context, lo int) (*DiceResult, error) {
	if lo > d.Sides {
		return nil, newError(ErrDiceExprInvalidArgument, "reroll threshold exceeds sides")
	}
	if d.Sides == 1 {
		return &DiceResult{Seq: []int{d.Amount}, TrulyRandom: true}, nil
	}
	seq, truly := fetch(ctx, d.Amount, lo, d.Sides)
	return &DiceResult{Seq: seq, TrulyRandom: truly}, nil
}

// rollSuccess draws Amount values from [1, sides] and attaches a success
// threshold. A threshold greater than sides yields a zero-hit result by
// design, rather than an error.
func (d *Dice) rollSuccess(ctx context.Context) (*DiceResult, error) {
	threshold := d.Args[0]
	seq, truly := fetch(ctx, d.Amount, 1, d.Sides)
	return &DiceResult{Seq: seq, TrulyRandom: truly, SuccessThreshold: withThreshold(threshold)}, nil
}

// rollDropKeep rolls Amount dice and applies a Drop/DropHigh/Keep/KeepLow
// reduction. See dropkeep.go for the pivot/tie-break logic.
func (d *Dice) rollDropKeep(ctx context.Context) (*DiceResult, error) {
	k := d.Args[0]
	if k > d.Amount {
		return nil, newError(ErrDiceExprInvalidArgument, "count exceeds amount")
	}
	seq, truly := fetch(ctx, d.Amount, 1, d.Sides)
	kept := applyDropKeep(d.Kind, seq, k)
	return &DiceResult{Seq: kept, TrulyRandom: truly}, nil
}

// sortedIndices returns the indices of vs in ascending order of value,
// breaking ties by original index (a stable sort).
func sortedIndices(vs []int) []int {
	idx := make([]int, len(vs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return vs[idx[i]] < vs[idx[j]]
	})
	return idx
}
