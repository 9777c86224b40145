package report

import (
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	apperrors "insightcli/internal/errors"
	"insightcli/internal/infrastructure"
)

// ensureChartDir creates the parent directory for a chart file.
func ensureChartDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create chart directory", err)
	}
	return nil
}

func savePlot(p *plot.Plot, path string) error {
	if err := ensureChartDir(path); err != nil {
		return err
	}
	st := infrastructure.GetChartStyle()
	if err := p.Save(st.Width, st.Height, path); err != nil {
		return apperrors.NewChartError("failed to save chart", err).
			WithContext("path", path)
	}
	return nil
}

// BarChart renders a categorical bar chart to a PNG file.
func BarChart(path, title string, labels []string, values []float64, yLabel string) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(24))
	if err != nil {
		return apperrors.NewChartError("failed to build bar chart", err)
	}
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = 0.5
	p.X.Tick.Label.XAlign = -0.8

	return savePlot(p, path)
}

// Histogram renders a histogram of values with the given bin count.
func Histogram(path, title string, values []float64, bins int, xLabel string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return apperrors.NewChartError("failed to build histogram", err)
	}
	p.Add(h)

	return savePlot(p, path)
}

// Scatter renders an x/y scatter plot.
func Scatter(path, title string, xs, ys []float64, xLabel, yLabel string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return apperrors.NewChartError("failed to build scatter plot", err)
	}
	s.GlyphStyle.Radius = vg.Points(2)
	p.Add(s)

	return savePlot(p, path)
}

// Line renders a connected line plot, used for hour-of-day profiles.
func Line(path, title string, xs, ys []float64, xLabel, yLabel string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X = xs[i]
		xys[i].Y = ys[i]
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return apperrors.NewChartError("failed to build line plot", err)
	}
	p.Add(l)

	return savePlot(p, path)
}

// heatGrid adapts a dense matrix to plotter.GridXYZ. Rows index Y,
// columns index X.
type heatGrid struct {
	data [][]float64
}

func (g heatGrid) Dims() (c, r int) {
	if len(g.data) == 0 {
		return 0, 0
	}
	return len(g.data[0]), len(g.data)
}
func (g heatGrid) Z(c, r int) float64 { return g.data[r][c] }
func (g heatGrid) X(c int) float64    { return float64(c) }
func (g heatGrid) Y(r int) float64    { return float64(r) }

// HeatMap renders a labelled matrix heat map.
func HeatMap(path, title string, rowLabels, colLabels []string, data [][]float64) error {
	if len(data) != len(rowLabels) {
		return apperrors.NewValidationError("heat map row labels do not match data", nil)
	}
	for _, row := range data {
		if len(row) != len(colLabels) {
			return apperrors.NewValidationError("heat map column labels do not match data", nil)
		}
	}

	p := plot.New()
	p.Title.Text = title

	hm := plotter.NewHeatMap(heatGrid{data: data}, palette.Heat(12, 1))
	p.Add(hm)

	colTicks := make([]plot.Tick, len(colLabels))
	for i, l := range colLabels {
		colTicks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	rowTicks := make([]plot.Tick, len(rowLabels))
	for i, l := range rowLabels {
		rowTicks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	p.X.Tick.Marker = plot.ConstantTicks(colTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(rowTicks)

	return savePlot(p, path)
}

// PieChart renders a share-of-total pie to a PNG file.
func PieChart(path, title string, labels []string, values []float64) error {
	if err := ensureChartDir(path); err != nil {
		return err
	}

	pieValues := make([]chart.Value, len(labels))
	for i := range labels {
		pieValues[i] = chart.Value{Label: labels[i], Value: values[i]}
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  800,
		Height: 600,
		Values: pieValues,
	}

	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create chart file", err).
			WithContext("path", path)
	}
	defer f.Close()

	if err := pie.Render(chart.PNG, f); err != nil {
		return apperrors.NewChartError("failed to render pie chart", err).
			WithContext("path", path)
	}
	return nil
}
