package dice

import "context"

// rollBounded implements the Upper/LowerBound and Add-/Subtract- bounded
// families: draw Amount values in [1, Sides], apply a signed modifier (none,
// +args[0], or -args[0] depending on Kind), then clamp to the configured
// bound. Upper variants additionally clamp the result to >= 0, since their
// results are meant to stay unsigned; see DESIGN.md for the Open Question
// this resolves about what the teacher's truncating arithmetic intended for
// negative intermediate values.
func (d *Dice) rollBounded(ctx context.Context) (*DiceResult, error) {
	var modifier, bound int
	switch d.Kind {
	case UpperBound, LowerBound:
		bound = d.Args[0]
	case AddUpperBound, AddLowerBound:
		modifier = d.Args[0]
		bound = d.Args[1]
	case SubtractUpperBound, SubtractLowerBound:
		modifier = -d.Args[0]
		bound = d.Args[1]
	}

	seq, truly := fetch(ctx, d.Amount, 1, d.Sides)
	out := make([]int, len(seq))
	for i, v := range seq {
		v += modifier
		switch d.Kind {
		case UpperBound, AddUpperBound, SubtractUpperBound:
			if v > bound {
				v = bound
			}
			if v < 0 {
				v = 0
			}
		case LowerBound, AddLowerBound, SubtractLowerBound:
			if v < bound {
				v = bound
			}
		}
		out[i] = v
	}
	return &DiceResult{Seq: out, TrulyRandom: truly}, nil
}
