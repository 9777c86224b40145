package dataset

import (
	"math"
	"sort"

	"github.com/go-gota/gota/series"
)

// missing string markers, matching what the raw exports use
func isMissingString(v string) bool {
	return v == "" || v == " " || v == "NA" || v == "NaN"
}

// Float returns the column as float64 values. Non-numeric and missing
// entries come back as NaN.
func (d *Dataset) Float(col string) []float64 {
	return d.df.Col(col).Float()
}

// Strings returns the column's values as strings.
func (d *Dataset) Strings(col string) []string {
	return d.df.Col(col).Records()
}

// Ints returns the column as ints; missing or fractional values are an
// error.
func (d *Dataset) Ints(col string) ([]int, error) {
	return d.df.Col(col).Int()
}

// WithColumn appends or replaces a column. The series' length must match
// the row count.
func (d *Dataset) WithColumn(s series.Series) *Dataset {
	if d.err != nil {
		return d
	}
	df := d.df.Mutate(s)
	return &Dataset{df: df, err: df.Err}
}

// WithFloatColumn is a convenience wrapper for appending float values.
func (d *Dataset) WithFloatColumn(name string, vals []float64) *Dataset {
	return d.WithColumn(series.New(vals, series.Float, name))
}

// WithIntColumn is a convenience wrapper for appending int values.
func (d *Dataset) WithIntColumn(name string, vals []int) *Dataset {
	return d.WithColumn(series.New(vals, series.Int, name))
}

// WithStringColumn is a convenience wrapper for appending labels.
func (d *Dataset) WithStringColumn(name string, vals []string) *Dataset {
	return d.WithColumn(series.New(vals, series.String, name))
}

// Median computes the column median over non-missing values. Returns NaN
// for a column with no valid values.
func (d *Dataset) Median(col string) float64 {
	var valid []float64
	for _, v := range d.Float(col) {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return math.NaN()
	}
	sort.Float64s(valid)
	n := len(valid)
	if n%2 == 1 {
		return valid[n/2]
	}
	return (valid[n/2-1] + valid[n/2]) / 2
}

// Mode computes the most frequent non-missing value of a string column.
// Ties break toward the lexically smaller value for determinism.
func (d *Dataset) Mode(col string) string {
	counts := make(map[string]int)
	for _, v := range d.Strings(col) {
		if isMissingString(v) {
			continue
		}
		counts[v]++
	}
	best, bestCount := "", -1
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best
}
