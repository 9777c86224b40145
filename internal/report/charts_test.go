package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4], "file should be a PNG")
}

func TestBarChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viz", "departments.png")
	err := BarChart(path, "Top Departments", []string{"produce", "dairy"}, []float64{412, 391}, "Unique Orders")
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestHistogram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "price_hist.png")
	vals := make([]float64, 200)
	for i := range vals {
		vals[i] = float64(i % 50)
	}
	require.NoError(t, Histogram(path, "Price Distribution", vals, 16, "Price"))
	assertPNG(t, path)
}

func TestScatterAndLine(t *testing.T) {
	dir := t.TempDir()
	xs := []float64{1, 2, 3, 4}
	ys := []float64{2, 4, 1, 8}

	sp := filepath.Join(dir, "scatter.png")
	require.NoError(t, Scatter(sp, "Tenure vs Charges", xs, ys, "tenure", "charges"))
	assertPNG(t, sp)

	lp := filepath.Join(dir, "line.png")
	require.NoError(t, Line(lp, "Orders by Hour", xs, ys, "hour", "orders"))
	assertPNG(t, lp)
}

func TestHeatMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.png")
	err := HeatMap(path, "Tenure x Contract",
		[]string{"New", "Loyal"},
		[]string{"Month-to-month", "One year", "Two year"},
		[][]float64{{10, 5, 1}, {2, 8, 12}})
	require.NoError(t, err)
	assertPNG(t, path)
}

func TestHeatMap_ShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heat.png")
	err := HeatMap(path, "bad", []string{"a"}, []string{"x", "y"}, [][]float64{{1}})
	assert.Error(t, err)
}

func TestPieChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.png")
	err := PieChart(path, "Room Types",
		[]string{"Entire home/apt", "Private room", "Shared room"},
		[]float64{0.5, 0.4, 0.1})
	require.NoError(t, err)
	assertPNG(t, path)
}
