package telco

import (
	"math"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"

	"insightcli/internal/dataset"
	"insightcli/internal/exporter"
)

// FeatureSummaryHeaders are the columns of the per-feature profile
// table.
var FeatureSummaryHeaders = []string{
	"feature", "type", "missing_count", "missing_percent", "unique_values",
	"mean", "std", "min", "max", "most_common",
}

func isMissingMarker(v string) bool {
	return v == "" || v == " " || v == "NA" || v == "NaN"
}

// FeatureSummary profiles every column except the customer identifier:
// missingness, cardinality, and either moments (numeric) or the mode
// (categorical). The table feeds the analysis report, not the pipeline.
func FeatureSummary(ds *dataset.Dataset) [][]string {
	rows := make([][]string, 0, ds.NCols())
	n := ds.NRows()

	for _, name := range ds.Columns() {
		if name == "customerID" {
			continue
		}
		s := ds.Frame().Col(name)

		switch s.Type() {
		case series.Float, series.Int:
			vals := s.Float()
			valid := make([]float64, 0, len(vals))
			uniq := make(map[float64]struct{})
			missing := 0
			min, max := math.Inf(1), math.Inf(-1)
			for _, v := range vals {
				if math.IsNaN(v) {
					missing++
					continue
				}
				valid = append(valid, v)
				uniq[v] = struct{}{}
				if v < min {
					min = v
				}
				if v > max {
					max = v
				}
			}
			rows = append(rows, []string{
				name, "Numerical",
				exporter.FormatInt(missing),
				exporter.FormatFloat(float64(missing) / float64(n) * 100),
				exporter.FormatInt(len(uniq)),
				exporter.FormatFloat(stat.Mean(valid, nil)),
				exporter.FormatFloat(stat.StdDev(valid, nil)),
				exporter.FormatFloat(min),
				exporter.FormatFloat(max),
				"",
			})
		default:
			records := s.Records()
			uniq := make(map[string]struct{})
			missing := 0
			for _, v := range records {
				if isMissingMarker(v) {
					missing++
					continue
				}
				uniq[v] = struct{}{}
			}
			rows = append(rows, []string{
				name, "Categorical",
				exporter.FormatInt(missing),
				exporter.FormatFloat(float64(missing) / float64(n) * 100),
				exporter.FormatInt(len(uniq)),
				"", "", "", "",
				ds.Mode(name),
			})
		}
	}
	return rows
}
