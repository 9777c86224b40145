package airbnb

import (
	"context"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"insightcli/internal/config"
	"insightcli/internal/dataset"
	"insightcli/internal/exporter"
	"insightcli/internal/pipeline"
	"insightcli/internal/report"
)

// Analysis is the Airbnb listing revenue study: load or synthesize the
// listings table, clean it, derive revenue features, and report per
// neighbourhood and room type.
type Analysis struct {
	logger *slog.Logger
	paths  *config.Paths
	csv    *exporter.CSVWriter
	xlsx   *exporter.XLSXWriter
	out    io.Writer
}

// NewAnalysis wires an analysis against the resolved paths. Console
// narrative goes to out.
func NewAnalysis(logger *slog.Logger, paths *config.Paths, out io.Writer) *Analysis {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analysis{
		logger: logger,
		paths:  paths,
		csv:    exporter.NewCSVWriter(logger),
		xlsx:   exporter.NewXLSXWriter(logger),
		out:    out,
	}
}

// Run executes the full pipeline and writes every artifact.
func (a *Analysis) Run(ctx context.Context) error {
	ds, synthetic, err := dataset.LoadOrSynthesize(a.logger, a.paths.RawFile(RawFileName), RequiredColumns, SynthSpec())
	if err != nil {
		return err
	}
	if synthetic {
		a.logger.Warn("running in demo mode on synthetic listings")
	}

	p := pipeline.New("airbnb", a.logger,
		pipeline.Stage{Name: "clean", Run: func(_ context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
			out := Clean(ds)
			return out, out.Err()
		}},
		pipeline.Stage{Name: "engineer", Run: func(_ context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
			out := Engineer(ds)
			return out, out.Err()
		}},
		pipeline.Stage{Name: "report", Run: a.report},
	)
	_, err = p.Run(ctx, ds)
	return err
}

func meanOf(vals []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// report writes the processed dataset, the group summaries, the chart
// set, and the executive summary.
func (a *Analysis) report(_ context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
	if err := ds.WriteCSV(a.paths.ProcessedFile("airbnb_processed.csv")); err != nil {
		return nil, err
	}

	revenueAggs := []report.Agg{
		{Kind: report.Mean, Col: "price", Name: "avg_price"},
		{Kind: report.Count, Name: "listings"},
		{Kind: report.Mean, Col: "revenue_potential", Name: "avg_revenue_potential"},
	}

	byNeighbourhood, err := report.GroupBy(ds, "neighbourhood_group", revenueAggs, "listings")
	if err != nil {
		return nil, err
	}
	byRoomType, err := report.GroupBy(ds, "room_type", revenueAggs, "listings")
	if err != nil {
		return nil, err
	}
	byPriceCategory, err := report.GroupBy(ds, "price_category",
		[]report.Agg{{Kind: report.Count, Name: "listings"}}, "listings")
	if err != nil {
		return nil, err
	}

	if err := byNeighbourhood.WriteCSV(a.csv, a.paths.ProcessedFile("airbnb_neighbourhood_summary.csv")); err != nil {
		return nil, err
	}
	if err := byRoomType.WriteCSV(a.csv, a.paths.ProcessedFile("airbnb_room_type_summary.csv")); err != nil {
		return nil, err
	}

	if err := a.renderCharts(ds, byNeighbourhood, byRoomType, byPriceCategory); err != nil {
		return nil, err
	}

	summary := a.buildSummary(ds, byNeighbourhood, byRoomType)
	if err := summary.WriteCSV(a.csv, a.paths.ProcessedFile("airbnb_executive_summary.csv")); err != nil {
		return nil, err
	}
	if err := summary.WriteXLSX(a.xlsx, a.paths.ProcessedFile("airbnb_executive_summary.xlsx")); err != nil {
		return nil, err
	}

	byNeighbourhood.Print(a.out)
	summary.Print(a.out)
	return ds, nil
}

func tableBars(t *report.GroupTable, metric string) ([]string, []float64) {
	labels := make([]string, len(t.Rows))
	values := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		labels[i] = r.Key
		values[i] = r.Values[metric]
	}
	return labels, values
}

func (a *Analysis) renderCharts(ds *dataset.Dataset, byNeighbourhood, byRoomType, byPriceCategory *report.GroupTable) error {
	labels, values := tableBars(byNeighbourhood, "avg_price")
	if err := report.BarChart(a.paths.ChartFile("price_by_neighbourhood.png"),
		"Average Price by Neighbourhood", labels, values, "Average Price"); err != nil {
		return err
	}

	labels, values = tableBars(byRoomType, "avg_revenue_potential")
	if err := report.BarChart(a.paths.ChartFile("revenue_by_room_type.png"),
		"Revenue Potential by Room Type", labels, values, "Average Revenue Potential"); err != nil {
		return err
	}

	if err := report.Histogram(a.paths.ChartFile("price_distribution.png"),
		"Price Distribution", ds.Float("price"), 30, "Price"); err != nil {
		return err
	}

	if err := report.Scatter(a.paths.ChartFile("reviews_vs_price.png"),
		"Reviews vs Price", ds.Float("number_of_reviews"), ds.Float("price"),
		"Number of Reviews", "Price"); err != nil {
		return err
	}

	labels, values = tableBars(byPriceCategory, "listings")
	return report.PieChart(a.paths.ChartFile("price_category_share.png"),
		"Market Distribution by Price Category", labels, values)
}

func (a *Analysis) buildSummary(ds *dataset.Dataset, byNeighbourhood, byRoomType *report.GroupTable) *report.ExecutiveSummary {
	topNeighbourhood, _ := byNeighbourhood.Best("avg_revenue_potential")
	topRoomType, _ := byRoomType.Best("avg_revenue_potential")

	return &report.ExecutiveSummary{
		Title:       "AIRBNB REVENUE OPTIMIZATION - EXECUTIVE SUMMARY",
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Metrics: []report.Metric{
			{Name: "total_listings", Value: exporter.FormatInt(ds.NRows())},
			{Name: "avg_price", Value: exporter.FormatFloat(meanOf(ds.Float("price")))},
			{Name: "avg_revenue_potential", Value: exporter.FormatFloat(meanOf(ds.Float("revenue_potential")))},
			{Name: "top_neighbourhood", Value: topNeighbourhood},
			{Name: "top_room_type", Value: topRoomType},
		},
		Highlights: []string{
			"📈 Highest revenue potential: " + topNeighbourhood,
			"🏠 Strongest room type: " + topRoomType,
		},
		Recommendations: []string{
			"Price new listings against their neighbourhood average",
			"Review availability strategy for low-occupancy listings",
			"Encourage reviews to move listings out of the No Reviews tier",
		},
	}
}
