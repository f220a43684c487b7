package dice

import "context"

// rollExplode implements Explode and ExplodingSuccess: draw amount values in
// [1, sides]; while the previous batch contains any maxed value and depth
// hasn't hit its limit, draw one replacement per maxed die and append it.
// Depth counts batches, not individual dice.
func (d *Dice) rollExplode(ctx context.Context) (*DiceResult, error) {
	depthLimit := d.Args[0]

	var threshold *int
	if d.Kind == ExplodingSuccess {
		t := d.Args[1]
		if t > d.Sides {
			return nil, newError(ErrDiceExprInvalidArgument, "success threshold exceeds sides")
		}
		threshold = &t
	}

	seq, truly := fetch(ctx, d.Amount, 1, d.Sides)
	result := append([]int(nil), seq...)

	batch := seq
	for depth := 0; depth < depthLimit; depth++ {
		maxed := 0
		for _, v := range batch {
			if v == d.Sides {
				maxed++
			}
		}
		if maxed == 0 {
			break
		}
		extra, extraTruly := fetch(ctx, maxed, 1, d.Sides)
		truly = truly && extraTruly
		result = append(result, extra...)
		batch = extra
	}

	return &DiceResult{Seq: result, TrulyRandom: truly, SuccessThreshold: threshold}, nil
}
