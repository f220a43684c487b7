package dice

import "context"

// rollOpenEnded implements OpenEnded and OpenEndedImplicit: draw Amount
// values in [1, Sides]; any value at or beyond the high threshold triggers
// a chain of extra singleton draws that add to that die's contribution, and
// any value at or below the low threshold triggers the mirror chain that
// subtracts instead. Both chains stop on the same condition the notation
// describes for the high side ("until a draw is < high") — the low chain's
// stop condition is not "> low", a quirk the spec preserves rather than
// "fixes". A value that triggers neither extreme contributes zero: the
// original draw is only ever a trigger, never itself part of the total.
//
// The accumulator is signed, so a low-side chain may leave a die's
// contribution negative; see DESIGN.md for why this widens rather than
// clamps.
func (d *Dice) rollOpenEnded(ctx context.Context) (*DiceResult, error) {
	low := d.Args[0]
	high := 0
	if d.Kind == OpenEndedImplicit {
		high = d.Sides + 1 - low
	} else {
		high = d.Args[1]
	}
	if low >= high || high > d.Sides {
		return nil, newError(ErrDiceExprInvalidArgument, "open-ended bounds out of range")
	}

	seq, truly := fetch(ctx, d.Amount, 1, d.Sides)
	out := make([]int, len(seq))

	for i, v := range seq {
		switch {
		case v >= high:
			acc := 0
			for {
				w, wTruly := fetch(ctx, 1, 1, d.Sides)
				truly = truly && wTruly
				if w[0] < high {
					break
				}
				acc += w[0]
			}
			out[i] = acc
		case v <= low:
			acc := 0
			for {
				w, wTruly := fetch(ctx, 1, 1, d.Sides)
				truly = truly && wTruly
				if w[0] < high {
					break
				}
				acc -= w[0]
			}
			out[i] = acc
		default:
			out[i] = 0
		}
	}

	return &DiceResult{Seq: out, TrulyRandom: truly}, nil
}
