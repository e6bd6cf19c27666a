package sense

// topKIndices returns the indices of the k highest scores, in descending
// score order, at most min(k, len(scores)) of them.
//
// Tie-breaking is deterministic and documented because it affects
// reproducibility: equal scores resolve to the smallest index (first
// occurrence wins, strict > comparison), so a candidate list scored all-equal
// selects indices 0..k-1 in order.
func topKIndices(scores []float64, k int) []int {
	if k > len(scores) {
		k = len(scores)
	}
	if k <= 0 {
		return nil
	}

	chosen := make([]int, 0, k)
	taken := make([]bool, len(scores))
	for round := 0; round < k; round++ {
		best := -1
		for i, s := range scores {
			if taken[i] {
				continue
			}
			if best == -1 || s > scores[best] {
				best = i
			}
		}
		taken[best] = true
		chosen = append(chosen, best)
	}
	return chosen
}
