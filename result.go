package dice

// DiceResult is the result of rolling one Dice.
type DiceResult struct {
	// Seq holds the ordered per-die final values, after all rerolls,
	// explosions, drops, or keeps have been applied.
	Seq []int `json:"seq"`

	// TrulyRandom is true iff every randomness request made while producing
	// this result was served by the remote oracle rather than the local
	// PRNG fallback.
	TrulyRandom bool `json:"truly_random"`

	// SuccessThreshold is set only for Success and ExplodingSuccess rolls.
	SuccessThreshold *int `json:"success_threshold,omitempty"`
}

// Aggregate is the scalar a DiceResult reduces to: the count of values at or
// above SuccessThreshold when one is set, otherwise the sum of Seq.
func (r *DiceResult) Aggregate() int {
	if r.SuccessThreshold != nil {
		hits := 0
		for _, v := range r.Seq {
			if v >= *r.SuccessThreshold {
				hits++
			}
		}
		return hits
	}
	return sumInts(r.Seq)
}

// sumAsFold is what the compound evaluator folds, regardless of whether a
// success threshold is set: the fold always sums Seq, even for success
// rolls, whose hit count appears only in Aggregate and String.
func (r *DiceResult) sumAsFold() int {
	return sumInts(r.Seq)
}

func sumInts(vs []int) int {
	sum := 0
	for _, v := range vs {
		sum += v
	}
	return sum
}

func withThreshold(t int) *int {
	return &t
}
