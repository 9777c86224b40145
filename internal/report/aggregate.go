package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"insightcli/internal/dataset"
	apperrors "insightcli/internal/errors"
	"insightcli/internal/exporter"
)

// AggKind selects the aggregate computed per group.
type AggKind int

const (
	// Count counts rows in the group.
	Count AggKind = iota
	// Mean averages the source column, skipping missing values.
	Mean
	// Sum totals the source column, skipping missing values.
	Sum
	// NUnique counts distinct values of the source column.
	NUnique
)

// Agg names one aggregate over a source column. Count ignores Col.
type Agg struct {
	Kind AggKind
	Col  string
	Name string
}

// GroupRow holds the aggregates for one group key.
type GroupRow struct {
	Key    string
	Carry  map[string]string
	Values map[string]float64
}

// GroupTable is a group-by summary: one row per distinct key, sorted
// descending by the primary volume metric.
type GroupTable struct {
	GroupCol string
	Aggs     []Agg
	Carry    []string
	Rows     []GroupRow
}

// GroupBy computes aggregates of ds per distinct value of groupCol and
// sorts rows descending by sortBy (one of the aggregate names). carry
// columns record the first value seen per group, for labels that ride
// along with the key (e.g. a product's department).
func GroupBy(ds *dataset.Dataset, groupCol string, aggs []Agg, sortBy string, carry ...string) (*GroupTable, error) {
	if err := ds.HasColumns(append([]string{groupCol}, carry...)); err != nil {
		return nil, err
	}

	keys := ds.Strings(groupCol)

	type accum struct {
		count   int
		sums    map[string]float64
		ns      map[string]int
		uniques map[string]map[string]struct{}
		carry   map[string]string
	}

	// Column views fetched once up front.
	floats := make(map[string][]float64)
	strs := make(map[string][]string)
	for _, a := range aggs {
		switch a.Kind {
		case Mean, Sum:
			if _, ok := floats[a.Col]; !ok {
				if err := ds.HasColumns([]string{a.Col}); err != nil {
					return nil, err
				}
				floats[a.Col] = ds.Float(a.Col)
			}
		case NUnique:
			if _, ok := strs[a.Col]; !ok {
				if err := ds.HasColumns([]string{a.Col}); err != nil {
					return nil, err
				}
				strs[a.Col] = ds.Strings(a.Col)
			}
		}
	}
	carryCols := make(map[string][]string)
	for _, c := range carry {
		carryCols[c] = ds.Strings(c)
	}

	groups := make(map[string]*accum)
	order := make([]string, 0)
	for i, key := range keys {
		g, ok := groups[key]
		if !ok {
			g = &accum{
				sums:    make(map[string]float64),
				ns:      make(map[string]int),
				uniques: make(map[string]map[string]struct{}),
				carry:   make(map[string]string),
			}
			for _, c := range carry {
				g.carry[c] = carryCols[c][i]
			}
			groups[key] = g
			order = append(order, key)
		}
		g.count++
		for _, a := range aggs {
			switch a.Kind {
			case Mean, Sum:
				v := floats[a.Col][i]
				if math.IsNaN(v) {
					continue
				}
				g.sums[a.Name] += v
				g.ns[a.Name]++
			case NUnique:
				set, ok := g.uniques[a.Name]
				if !ok {
					set = make(map[string]struct{})
					g.uniques[a.Name] = set
				}
				set[strs[a.Col][i]] = struct{}{}
			}
		}
	}

	rows := make([]GroupRow, 0, len(order))
	for _, key := range order {
		g := groups[key]
		vals := make(map[string]float64, len(aggs))
		for _, a := range aggs {
			switch a.Kind {
			case Count:
				vals[a.Name] = float64(g.count)
			case Mean:
				if g.ns[a.Name] == 0 {
					vals[a.Name] = math.NaN()
				} else {
					vals[a.Name] = g.sums[a.Name] / float64(g.ns[a.Name])
				}
			case Sum:
				vals[a.Name] = g.sums[a.Name]
			case NUnique:
				vals[a.Name] = float64(len(g.uniques[a.Name]))
			}
		}
		rows = append(rows, GroupRow{Key: key, Carry: g.carry, Values: vals})
	}

	if sortBy != "" {
		found := false
		for _, a := range aggs {
			if a.Name == sortBy {
				found = true
				break
			}
		}
		if !found {
			return nil, apperrors.NewValidationError("sort metric not among aggregates", nil).
				WithContext("sort_by", sortBy)
		}
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Values[sortBy] > rows[j].Values[sortBy]
		})
	}

	return &GroupTable{GroupCol: groupCol, Aggs: aggs, Carry: carry, Rows: rows}, nil
}

// Top returns a copy of the table truncated to its first n rows.
func (t *GroupTable) Top(n int) *GroupTable {
	if n >= len(t.Rows) {
		return t
	}
	out := *t
	out.Rows = t.Rows[:n]
	return &out
}

// Best returns the key of the row maximizing the named aggregate, with
// its value. Empty key when the table has no rows.
func (t *GroupTable) Best(name string) (string, float64) {
	best, bestVal := "", math.Inf(-1)
	for _, r := range t.Rows {
		if v := r.Values[name]; v > bestVal {
			best, bestVal = r.Key, v
		}
	}
	if best == "" {
		return "", math.NaN()
	}
	return best, bestVal
}

// Value looks up one aggregate for one key.
func (t *GroupTable) Value(key, name string) (float64, bool) {
	for _, r := range t.Rows {
		if r.Key == key {
			v, ok := r.Values[name]
			return v, ok
		}
	}
	return 0, false
}

// headers lists the output column names: key, carry columns, aggregates.
func (t *GroupTable) headers() []string {
	out := []string{t.GroupCol}
	out = append(out, t.Carry...)
	for _, a := range t.Aggs {
		out = append(out, a.Name)
	}
	return out
}

// Records renders the table as CSV-ready string rows. Counts print as
// integers, means as 3-decimal rates.
func (t *GroupTable) Records() [][]string {
	records := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := []string{r.Key}
		for _, c := range t.Carry {
			row = append(row, r.Carry[c])
		}
		for _, a := range t.Aggs {
			v := r.Values[a.Name]
			switch a.Kind {
			case Count, NUnique:
				row = append(row, exporter.FormatInt(int(v)))
			case Mean:
				row = append(row, exporter.FormatFloat3(v))
			default:
				row = append(row, exporter.FormatFloat(v))
			}
		}
		records = append(records, row)
	}
	return records
}

// WriteCSV exports the table through the given writer.
func (t *GroupTable) WriteCSV(w *exporter.CSVWriter, path string) error {
	return w.WriteCSV(path, exporter.WriteOptions{
		Headers: t.headers(),
		Records: t.Records(),
	})
}

// Print renders the table as an aligned text block for the console
// narrative.
func (t *GroupTable) Print(out io.Writer) {
	headers := t.headers()
	records := t.Records()

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range records {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := make([]string, len(headers))
	for i, h := range headers {
		line[i] = fmt.Sprintf("%-*s", widths[i], h)
	}
	fmt.Fprintln(out, strings.Join(line, "  "))
	for _, row := range records {
		for i, cell := range row {
			line[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintln(out, strings.Join(line, "  "))
	}
}
