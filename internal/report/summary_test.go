package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightcli/internal/exporter"
)

func demoSummary() *ExecutiveSummary {
	return &ExecutiveSummary{
		Title:       "INSTACART 4P ANALYTICS - EXECUTIVE SUMMARY",
		RunID:       "0f9a7c1e-1111-2222-3333-444455556666",
		GeneratedAt: time.Date(2024, 12, 19, 12, 0, 0, 0, time.UTC),
		Metrics: []Metric{
			{Name: "total_orders", Value: "2000"},
			{Name: "top_department", Value: "produce"},
			{Name: "weekend_lift", Value: "-12.5"},
		},
		Highlights:      []string{"📈 Highest volume department: produce"},
		Recommendations: []string{"Focus promotional spend on top departments"},
	}
}

func TestExecutiveSummary_WriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "executive_summary.csv")
	require.NoError(t, demoSummary().WriteCSV(exporter.NewCSVWriter(nil), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2, "executive summary is a single flat record")
	assert.Equal(t, "run_id,generated_at,total_orders,top_department,weekend_lift", lines[0])
	assert.Contains(t, lines[1], "produce")
	assert.Contains(t, lines[1], "-12.5")
}

func TestExecutiveSummary_WriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "executive_summary.xlsx")
	require.NoError(t, demoSummary().WriteXLSX(exporter.NewXLSXWriter(nil), path))
	assert.FileExists(t, path)
}

func TestExecutiveSummary_Print(t *testing.T) {
	var buf bytes.Buffer
	demoSummary().Print(&buf)
	out := buf.String()

	assert.Contains(t, out, "EXECUTIVE SUMMARY")
	assert.Contains(t, out, "total_orders: 2000")
	assert.Contains(t, out, "TOP INSIGHTS")
	assert.Contains(t, out, "1. Focus promotional spend")
}
