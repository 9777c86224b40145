package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/series"
)

// FilterRange keeps rows whose numeric value in col lies within
// [min, max]. Rows with a missing value are dropped, since NaN satisfies
// neither bound.
func (d *Dataset) FilterRange(col string, min, max float64) *Dataset {
	if d.err != nil {
		return d
	}
	vals := d.Float(col)
	keep := make([]int, 0, len(vals))
	for i, v := range vals {
		if v >= min && v <= max {
			keep = append(keep, i)
		}
	}
	df := d.df.Subset(keep)
	return &Dataset{df: df, err: df.Err}
}

// DropMissing removes rows missing any of the given critical columns.
// Numeric columns treat NaN as missing; string columns treat blank and
// NA markers as missing.
func (d *Dataset) DropMissing(critical []string) *Dataset {
	if d.err != nil {
		return d
	}
	n := d.NRows()
	drop := make([]bool, n)
	for _, col := range critical {
		s := d.df.Col(col)
		switch s.Type() {
		case series.Float, series.Int:
			for i, v := range s.Float() {
				if math.IsNaN(v) {
					drop[i] = true
				}
			}
		default:
			for i, v := range s.Records() {
				if isMissingString(v) {
					drop[i] = true
				}
			}
		}
	}
	keep := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	df := d.df.Subset(keep)
	return &Dataset{df: df, err: df.Err}
}

// FillConstant replaces missing numeric values in col with value.
func (d *Dataset) FillConstant(col string, value float64) *Dataset {
	if d.err != nil {
		return d
	}
	vals := d.Float(col)
	for i, v := range vals {
		if math.IsNaN(v) {
			vals[i] = value
		}
	}
	return d.WithFloatColumn(col, vals)
}

// FillMedian replaces missing numeric values in col with the column
// median of the non-missing values.
func (d *Dataset) FillMedian(col string) *Dataset {
	if d.err != nil {
		return d
	}
	return d.FillConstant(col, d.Median(col))
}

// FillMode replaces missing values of a string column with the column
// mode.
func (d *Dataset) FillMode(col string) *Dataset {
	if d.err != nil {
		return d
	}
	mode := d.Mode(col)
	vals := d.Strings(col)
	for i, v := range vals {
		if isMissingString(v) {
			vals[i] = mode
		}
	}
	return d.WithStringColumn(col, vals)
}

// CoerceNumeric converts a column that may hold free-text numbers into a
// float column. Blank strings and unparseable values become NaN; the
// coercion itself never fails, missing values flow on to the fill step.
func (d *Dataset) CoerceNumeric(col string) *Dataset {
	if d.err != nil {
		return d
	}
	raw := d.Strings(col)
	vals := make([]float64, len(raw))
	for i, r := range raw {
		trimmed := strings.TrimSpace(r)
		if isMissingString(trimmed) {
			vals[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			vals[i] = math.NaN()
			continue
		}
		vals[i] = v
	}
	return d.WithFloatColumn(col, vals)
}

// DropDuplicates removes exact-duplicate rows, keeping the first
// occurrence.
func (d *Dataset) DropDuplicates() *Dataset {
	if d.err != nil {
		return d
	}
	records := d.df.Records() // includes header at index 0
	seen := make(map[string]struct{}, len(records))
	keep := make([]int, 0, len(records)-1)
	for i, row := range records[1:] {
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}
	df := d.df.Subset(keep)
	return &Dataset{df: df, err: df.Err}
}
