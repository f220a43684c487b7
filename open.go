package dice

import "context"

// rollOpen implements Open: draw amount values in [1, sides]; for each die
// independently, while its most recent draw equals sides and depth hasn't
// hit its limit, draw one more and add it to that die's running total. The
// per-die result is a single accumulated value, so the output sequence has
// the same length as the input rather than growing like Explode's.
func (d *Dice) rollOpen(ctx context.Context) (*DiceResult, error) {
	depthLimit := d.Args[0]

	seq, truly := fetch(ctx, d.Amount, 1, d.Sides)
	result := make([]int, len(seq))

	for i, v := range seq {
		total := v
		last := v
		for depth := 0; last == d.Sides && depth < depthLimit; depth++ {
			w, wTruly := fetch(ctx, 1, 1, d.Sides)
			truly = truly && wTruly
			total += w[0]
			last = w[0]
		}
		result[i] = total
	}

	return &DiceResult{Seq: result, TrulyRandom: truly}, nil
}
