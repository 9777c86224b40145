package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var tenureBins = Bins{
	Edges:         []float64{0, 12, 24, 48, math.Inf(1)},
	Labels:        []string{"New (0-12m)", "Growing (13-24m)", "Mature (25-48m)", "Loyal (48m+)"},
	IncludeLowest: true,
}

func TestBins_Label(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"lowest edge include-lowest", 0, "New (0-12m)"},
		{"inside first bin", 6, "New (0-12m)"},
		{"upper edge closed", 12, "New (0-12m)"},
		{"just above edge", 12.5, "Growing (13-24m)"},
		{"documented boundary", 24, "Growing (13-24m)"},
		{"third bin", 36, "Mature (25-48m)"},
		{"open top bin", 120, "Loyal (48m+)"},
		{"NaN unlabelled", math.NaN(), ""},
		{"below range", -3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tenureBins.Label(tt.v))
		})
	}
}

func TestBins_ZeroWidthFirstBin(t *testing.T) {
	reviewBins := Bins{
		Edges:         []float64{0, 0, 10, 50, math.Inf(1)},
		Labels:        []string{"No Reviews", "Few Reviews", "Many Reviews", "Highly Reviewed"},
		IncludeLowest: true,
	}

	assert.Equal(t, "No Reviews", reviewBins.Label(0))
	assert.Equal(t, "Few Reviews", reviewBins.Label(1))
	assert.Equal(t, "Few Reviews", reviewBins.Label(10))
	assert.Equal(t, "Many Reviews", reviewBins.Label(11))
	assert.Equal(t, "Highly Reviewed", reviewBins.Label(51))
}

func TestBins_WithoutIncludeLowest(t *testing.T) {
	b := Bins{
		Edges:  []float64{0, 75, 150, 300, math.Inf(1)},
		Labels: []string{"Budget", "Mid-Range", "Premium", "Luxury"},
	}

	assert.Equal(t, "", b.Label(0), "lower edge excluded without include-lowest")
	assert.Equal(t, "Budget", b.Label(10))
	assert.Equal(t, "Budget", b.Label(75))
	assert.Equal(t, "Mid-Range", b.Label(76))
	assert.Equal(t, "Luxury", b.Label(1000))
}

func TestCut(t *testing.T) {
	got := Cut([]float64{6, 24, 60, math.NaN()}, tenureBins)
	assert.Equal(t, []string{"New (0-12m)", "Growing (13-24m)", "Loyal (48m+)", ""}, got)
}

func TestPercentile(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	// h = 9*0.75 = 6.75, interpolating between 7 and 8.
	assert.InDelta(t, 7.75, Percentile(vals, 0.75), 1e-12)
	assert.InDelta(t, 5.5, Percentile(vals, 0.5), 1e-12)

	withNaN := []float64{math.NaN(), 5, math.NaN(), 15}
	assert.InDelta(t, 10.0, Percentile(withNaN, 0.5), 1e-12)

	single := []float64{42}
	assert.Equal(t, 42.0, Percentile(single, 0.75))
	assert.Equal(t, 10.0, Percentile(vals, 1))
	assert.Equal(t, 1.0, Percentile(vals, 0))

	assert.True(t, math.IsNaN(Percentile([]float64{math.NaN()}, 0.5)))
}

func TestGuardedRatio(t *testing.T) {
	num := []float64{50, 100, 30}
	den := []float64{99, 0, 149}

	got := GuardedRatio(num, den)
	assert.Equal(t, []float64{0.5, 100, 0.2}, got)
	// A raw zero denominator never divides: den of 0 becomes 1.
	assert.False(t, math.IsInf(got[1], 1))
}

type scoreRow struct {
	Contract        string
	Tenure          float64
	MonthlyCharges  float64
	InternetService string
	PaymentMethod   string
}

func testRules(p75 float64) []Rule[scoreRow] {
	return []Rule[scoreRow]{
		{Name: "month-to-month contract", Points: 3, When: func(r scoreRow) bool { return r.Contract == "Month-to-month" }},
		{Name: "one-year contract", Points: 1, When: func(r scoreRow) bool { return r.Contract == "One year" }},
		{Name: "short tenure", Points: 2, When: func(r scoreRow) bool { return r.Tenure <= 12 }},
		{Name: "high charges", Points: 1, When: func(r scoreRow) bool { return r.MonthlyCharges > p75 }},
		{Name: "fiber optic", Points: 1, When: func(r scoreRow) bool { return r.InternetService == "Fiber optic" }},
		{Name: "electronic check", Points: 1, When: func(r scoreRow) bool { return r.PaymentMethod == "Electronic check" }},
	}
}

func TestScore_ExactSum(t *testing.T) {
	rules := testRules(80)

	row := scoreRow{
		Contract:        "Month-to-month",
		Tenure:          6,
		MonthlyCharges:  95,
		InternetService: "Fiber optic",
		PaymentMethod:   "Electronic check",
	}
	assert.Equal(t, 3+2+1+1+1, Score(row, rules))

	low := scoreRow{Contract: "Two year", Tenure: 60, MonthlyCharges: 20}
	assert.Equal(t, 0, Score(low, rules))

	mid := scoreRow{Contract: "One year", Tenure: 10, MonthlyCharges: 20}
	assert.Equal(t, 1+2, Score(mid, rules))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "Yes", YesNo(true))
	assert.Equal(t, "No", YesNo(false))
}
