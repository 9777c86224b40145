package airbnb

import (
	"math"

	"insightcli/internal/dataset"
	"insightcli/internal/features"
	"insightcli/internal/synth"
)

// RawFileName is the expected input file under the raw data directory.
const RawFileName = "airbnb_listings.csv"

const (
	// Realistic nightly price bounds; rows outside are treated as data
	// entry errors and dropped.
	PriceMin = 10
	PriceMax = 1000
)

// RequiredColumns are the columns the analysis reads. Extra columns pass
// through untouched.
var RequiredColumns = []string{
	"id", "name", "host_id", "neighbourhood_group", "neighbourhood",
	"latitude", "longitude", "room_type", "price", "minimum_nights",
	"number_of_reviews", "reviews_per_month",
	"calculated_host_listings_count", "availability_365",
}

// criticalColumns must be present on every row after cleaning.
var criticalColumns = []string{"neighbourhood_group", "room_type", "price"}

var (
	priceBins = features.Bins{
		Edges:  []float64{0, 75, 150, 300, math.Inf(1)},
		Labels: []string{"Budget", "Mid-Range", "Premium", "Luxury"},
	}
	// The zero-width first bin catches listings with exactly zero
	// reviews; IncludeLowest makes 0 land there instead of nowhere.
	reviewBins = features.Bins{
		Edges:         []float64{0, 0, 10, 50, math.Inf(1)},
		Labels:        []string{"No Reviews", "Few Reviews", "Many Reviews", "Highly Reviewed"},
		IncludeLowest: true,
	}
	availabilityBins = features.Bins{
		Edges:         []float64{0, 90, 180, 365},
		Labels:        []string{"Low Available", "Medium Available", "High Available"},
		IncludeLowest: true,
	}
)

// SynthSpec describes the demo dataset used when no raw file exists:
// 1000 NYC-style listings drawn from fixed seeded distributions.
func SynthSpec() synth.Spec {
	return synth.Spec{
		Rows: 1000,
		Seed: 42,
		Columns: []synth.ColumnSpec{
			{Name: "id", Gen: synth.Sequence(1)},
			{Name: "name", Gen: synth.Pattern("Listing %d", 1)},
			{Name: "host_id", Gen: synth.UniformInt(1, 500)},
			{Name: "neighbourhood_group", Gen: synth.Categorical(
				[]string{"Manhattan", "Brooklyn", "Queens", "Bronx", "Staten Island"},
				[]float64{0.3, 0.25, 0.2, 0.15, 0.1})},
			{Name: "neighbourhood", Gen: synth.CategoricalUniform(
				[]string{"East Village", "Williamsburg", "Harlem", "LES", "Chelsea"})},
			{Name: "latitude", Gen: synth.UniformFloat(40.5, 40.9)},
			{Name: "longitude", Gen: synth.UniformFloat(-74.3, -73.7)},
			{Name: "room_type", Gen: synth.Categorical(
				[]string{"Entire home/apt", "Private room", "Shared room"},
				[]float64{0.5, 0.4, 0.1})},
			{Name: "price", Gen: synth.LogNormalInt(4.5, 0.8)},
			{Name: "minimum_nights", Gen: synth.IntChoice(
				[]int{1, 2, 3, 7, 30},
				[]float64{0.3, 0.2, 0.2, 0.2, 0.1})},
			{Name: "number_of_reviews", Gen: synth.Poisson(20)},
			{Name: "reviews_per_month", Gen: synth.UniformFloat(0.1, 5)},
			{Name: "calculated_host_listings_count", Gen: synth.Poisson(3)},
			{Name: "availability_365", Gen: synth.UniformInt(0, 366)},
		},
	}
}

// Clean drops rows with out-of-range prices or missing critical columns
// and fills the optional review and host-listing columns.
func Clean(ds *dataset.Dataset) *dataset.Dataset {
	return ds.
		FilterRange("price", PriceMin, PriceMax).
		DropMissing(criticalColumns).
		FillConstant("number_of_reviews", 0).
		FillConstant("reviews_per_month", 0).
		FillConstant("calculated_host_listings_count", 1)
}

// hostType labels a host by listing count: a single listing, a small
// portfolio, or a super host running more than five.
func hostType(listings float64) string {
	switch {
	case listings == 1:
		return "Single Listing"
	case listings <= 5:
		return "Multiple Listings"
	default:
		return "Super Host"
	}
}

// Engineer appends the derived revenue and category columns.
func Engineer(ds *dataset.Dataset) *dataset.Dataset {
	if ds.Err() != nil {
		return ds
	}

	price := ds.Float("price")
	availability := ds.Float("availability_365")
	reviews := ds.Float("number_of_reviews")
	hostListings := ds.Float("calculated_host_listings_count")

	// Expected yearly revenue if every booked night sells at the
	// listed price.
	revenue := make([]float64, len(price))
	for i := range price {
		revenue[i] = price[i] * (365 - availability[i]) / 365
	}

	hostTypes := make([]string, len(hostListings))
	for i, v := range hostListings {
		hostTypes[i] = hostType(v)
	}

	return ds.
		WithFloatColumn("revenue_potential", revenue).
		WithStringColumn("host_type", hostTypes).
		WithStringColumn("review_activity", features.Cut(reviews, reviewBins)).
		WithStringColumn("availability_category", features.Cut(availability, availabilityBins)).
		WithStringColumn("price_category", features.Cut(price, priceBins))
}
