package report

import (
	"fmt"
	"io"
	"time"

	"insightcli/internal/exporter"
)

// Metric is one named value in an executive summary.
type Metric struct {
	Name  string
	Value string
}

// ExecutiveSummary is the flat, one-row summary record each tool writes
// at the end of its run, plus the narrative shown on the console.
type ExecutiveSummary struct {
	Title           string
	RunID           string
	GeneratedAt     time.Time
	Metrics         []Metric
	Highlights      []string
	Recommendations []string
}

// headersAndRow flattens the summary into a single CSV row.
func (s *ExecutiveSummary) headersAndRow() ([]string, []string) {
	headers := []string{"run_id", "generated_at"}
	row := []string{s.RunID, s.GeneratedAt.Format(time.RFC3339)}
	for _, m := range s.Metrics {
		headers = append(headers, m.Name)
		row = append(row, m.Value)
	}
	return headers, row
}

// WriteCSV writes the one-row executive summary record.
func (s *ExecutiveSummary) WriteCSV(w *exporter.CSVWriter, path string) error {
	headers, row := s.headersAndRow()
	return w.WriteCSV(path, exporter.WriteOptions{
		Headers: headers,
		Records: [][]string{row},
	})
}

// WriteXLSX writes the summary as a workbook with a metric-per-row
// sheet, which reads better in a spreadsheet than one wide row.
func (s *ExecutiveSummary) WriteXLSX(w *exporter.XLSXWriter, path string) error {
	records := [][]string{
		{"run_id", s.RunID},
		{"generated_at", s.GeneratedAt.Format(time.RFC3339)},
	}
	for _, m := range s.Metrics {
		records = append(records, []string{m.Name, m.Value})
	}
	return w.WriteWorkbook(path, []exporter.Sheet{{
		Name:    "Executive Summary",
		Headers: []string{"metric", "value"},
		Records: records,
	}})
}

// Print renders the human-readable narrative summary. This console
// output is presentation, not a machine-parseable interface.
func (s *ExecutiveSummary) Print(out io.Writer) {
	fmt.Fprintf(out, "\n📊 %s\n", s.Title)
	fmt.Fprintln(out, "============================================================")
	for _, m := range s.Metrics {
		fmt.Fprintf(out, "   %s: %s\n", m.Name, m.Value)
	}
	if len(s.Highlights) > 0 {
		fmt.Fprintln(out, "\n🏆 TOP INSIGHTS:")
		for _, h := range s.Highlights {
			fmt.Fprintf(out, "   %s\n", h)
		}
	}
	if len(s.Recommendations) > 0 {
		fmt.Fprintln(out, "\n💡 RECOMMENDATIONS:")
		for i, r := range s.Recommendations {
			fmt.Fprintf(out, "   %d. %s\n", i+1, r)
		}
	}
	fmt.Fprintln(out, "\n✅ Analysis complete")
}
