package dice

import "sort"

// applyDropKeep reduces a rolled sequence per a Drop/DropHigh/Keep/KeepLow
// kind and count k, preserving the original roll order of whichever
// elements survive.
//
// Ties at the pivot are resolved by a single rule: rank the roll by value,
// ascending for Drop/KeepLow and descending for DropHigh/Keep, breaking ties
// by original position in both (a stable sort), and take the first k ranks.
// Among values equal to the pivot, the earliest rolls are therefore the ones
// dropped (Drop, DropHigh) or kept (Keep, KeepLow) (see DESIGN.md).
func applyDropKeep(kind DieOp, seq []int, k int) []int {
	order := sortedIndices(seq)
	desc := sortedIndices(seq)
	sort.SliceStable(desc, func(i, j int) bool {
		return seq[desc[i]] > seq[desc[j]]
	})

	keep := make([]bool, len(seq))
	for i := range keep {
		keep[i] = true
	}

	switch kind {
	case Drop:
		// Drop the k lowest: remove the first k ranks.
		for _, idx := range order[:k] {
			keep[idx] = false
		}
	case DropHigh:
		// Drop the k highest: remove the first k descending ranks.
		for _, idx := range desc[:k] {
			keep[idx] = false
		}
	case Keep:
		// Keep the k highest: remove everything but the first k descending ranks.
		for _, idx := range desc[k:] {
			keep[idx] = false
		}
	case KeepLow:
		// Keep the k lowest: remove everything but the first k ranks.
		for _, idx := range order[k:] {
			keep[idx] = false
		}
	}

	out := make([]int, 0, len(seq))
	for i, v := range seq {
		if keep[i] {
			out = append(out, v)
		}
	}
	return out
}
