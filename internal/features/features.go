package features

import (
	"math"
	"sort"
)

// Bins defines fixed-boundary bucketing of a continuous value into an
// ordered label set. Intervals are lower-open, upper-closed: a value v
// falls in bin i when Edges[i] < v <= Edges[i+1]. With IncludeLowest the
// first bin also admits v == Edges[0], which covers zero-width first
// bins such as [0,0].
type Bins struct {
	Edges         []float64 // len(Labels)+1, non-decreasing
	Labels        []string
	IncludeLowest bool
}

// Label returns the bin label containing v, or "" when v is NaN or
// outside every bin.
func (b Bins) Label(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	for i := range b.Labels {
		lo, hi := b.Edges[i], b.Edges[i+1]
		if i == 0 && b.IncludeLowest && v == lo {
			return b.Labels[0]
		}
		if v > lo && v <= hi {
			return b.Labels[i]
		}
	}
	return ""
}

// Cut maps every value to its bin label.
func Cut(vals []float64, b Bins) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = b.Label(v)
	}
	return out
}

// Percentile computes the p-quantile (0 <= p <= 1) of the non-missing
// values using linear interpolation between order statistics (the R-7
// estimator, the default of numpy and spreadsheet quantile functions):
// for n sorted values, h = (n-1)*p and the result interpolates between
// s[floor(h)] and s[floor(h)+1]. Returns NaN when no valid values exist.
func Percentile(vals []float64, p float64) float64 {
	valid := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return math.NaN()
	}
	sort.Float64s(valid)

	h := p * float64(len(valid)-1)
	lo := int(math.Floor(h))
	if lo >= len(valid)-1 {
		return valid[len(valid)-1]
	}
	return valid[lo] + (h-float64(lo))*(valid[lo+1]-valid[lo])
}

// GuardedRatio computes num[i] / (den[i] + 1) element-wise. The +1
// denominator guard means a raw zero denominator never divides.
func GuardedRatio(num, den []float64) []float64 {
	out := make([]float64, len(num))
	for i := range num {
		out[i] = num[i] / (den[i] + 1)
	}
	return out
}

// Rule is one contribution in a rule-table score: fixed points awarded
// when the predicate holds for a row.
type Rule[T any] struct {
	Name   string
	Points int
	When   func(T) bool
}

// Score sums the points of every matching rule. It is a pure function of
// the row value, independent of any iteration mechanism.
func Score[T any](row T, rules []Rule[T]) int {
	total := 0
	for _, r := range rules {
		if r.When(row) {
			total += r.Points
		}
	}
	return total
}

// YesNo maps a boolean directly to its "Yes"/"No" label. Derived label
// columns use this instead of round-tripping through true/false text.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
