package report

// PercentLift computes the percentage difference of value over baseline,
// (value-baseline)/baseline*100. A zero baseline reports 0 rather than
// dividing.
func PercentLift(value, baseline float64) float64 {
	if baseline == 0 {
		return 0
	}
	return (value - baseline) / baseline * 100
}

// ArgMax returns the key whose value is largest. Empty key for empty
// input.
func ArgMax(keys []string, vals []float64) string {
	best, bestIdx := "", -1
	for i, v := range vals {
		if bestIdx == -1 || v > vals[bestIdx] {
			bestIdx = i
			best = keys[i]
		}
	}
	return best
}

// TopN returns the indexes of the n largest values, descending. Ties
// keep input order.
func TopN(vals []float64, n int) []int {
	idx := make([]int, len(vals))
	for i := range idx {
		idx[i] = i
	}
	// insertion sort by value descending, stable
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && vals[idx[j]] > vals[idx[j-1]]; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
	if n < len(idx) {
		idx = idx[:n]
	}
	return idx
}
