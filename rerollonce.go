package dice

import "context"

// rollRerollOnce implements RerollOnceKeep and RerollOnceChoose: draw amount
// values in [1, sides], reroll every value below the threshold exactly once,
// and either keep the reroll (Keep) or the higher of the two (Choose).
func (d *Dice) rollRerollOnce(ctx context.Context) (*DiceResult, error) {
	threshold := d.Args[0]
	if threshold > d.Sides {
		return nil, newError(ErrDiceExprInvalidArgument, "reroll threshold exceeds sides")
	}

	seq, truly := fetch(ctx, d.Amount, 1, d.Sides)

	lowIdx := make([]int, 0, len(seq))
	for i, v := range seq {
		if v < threshold {
			lowIdx = append(lowIdx, i)
		}
	}
	if len(lowIdx) == 0 {
		return &DiceResult{Seq: seq, TrulyRandom: truly}, nil
	}

	replacements, repTruly := fetch(ctx, len(lowIdx), threshold, d.Sides)
	truly = truly && repTruly

	out := append([]int(nil), seq...)
	for i, idx := range lowIdx {
		switch d.Kind {
		case RerollOnceKeep:
			out[idx] = replacements[i]
		case RerollOnceChoose:
			if replacements[i] > out[idx] {
				out[idx] = replacements[i]
			}
		}
	}
	return &DiceResult{Seq: out, TrulyRandom: truly}, nil
}
