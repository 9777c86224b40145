package instacart

import (
	"insightcli/internal/dataset"
	apperrors "insightcli/internal/errors"
	"insightcli/internal/features"
	"insightcli/internal/report"
)

// dowNames maps order_dow values onto day names; 0 is Sunday.
var dowNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

var hourBins = features.Bins{
	Edges:         []float64{0, 9, 14, 19, 24},
	Labels:        []string{"Morning", "Midday", "Evening", "Night"},
	IncludeLowest: true,
}

// BuildMaster denormalizes the five tables into one row per ordered
// product: order products enriched with product, department, aisle, and
// order attributes.
func BuildMaster(t *Tables) (*dataset.Dataset, error) {
	df := t.OrderProducts.Frame().
		LeftJoin(t.Products.Frame(), "product_id").
		LeftJoin(t.Departments.Frame(), "department_id").
		LeftJoin(t.Aisles.Frame(), "aisle_id").
		LeftJoin(t.Orders.Frame(), "order_id")
	if df.Err != nil {
		return nil, apperrors.NewValidationError("failed to join basket tables", df.Err)
	}
	return dataset.New(df), nil
}

// Engineer appends the timing and basket features to the master
// dataset.
func Engineer(ds *dataset.Dataset) *dataset.Dataset {
	if ds.Err() != nil {
		return ds
	}

	dow := ds.Float("order_dow")
	names := make([]string, len(dow))
	for i, v := range dow {
		if v >= 0 && v < float64(len(dowNames)) {
			names[i] = dowNames[int(v)]
		}
	}

	// Basket size is the number of product rows sharing the order.
	orderIDs := ds.Strings("order_id")
	counts := make(map[string]int, len(orderIDs))
	for _, id := range orderIDs {
		counts[id]++
	}
	basket := make([]int, len(orderIDs))
	for i, id := range orderIDs {
		basket[i] = counts[id]
	}

	return ds.
		WithStringColumn("order_dow_name", names).
		WithStringColumn("hour_category", features.Cut(ds.Float("order_hour_of_day"), hourBins)).
		WithIntColumn("basket_size", basket).
		FillConstant("days_since_prior_order", 0)
}

// uniqueCount counts distinct values of a column.
func uniqueCount(ds *dataset.Dataset, col string) int {
	seen := make(map[string]struct{})
	for _, v := range ds.Strings(col) {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// WeekendLift computes the weekend-over-weekday percentage lift of
// unique order volume. Sunday and Saturday count as the weekend; a zero
// weekday count reports 0.
func WeekendLift(ds *dataset.Dataset) float64 {
	dow := ds.Float("order_dow")
	orderIDs := ds.Strings("order_id")

	weekend := make(map[string]struct{})
	weekday := make(map[string]struct{})
	for i, v := range dow {
		if v == 0 || v == 6 {
			weekend[orderIDs[i]] = struct{}{}
		} else {
			weekday[orderIDs[i]] = struct{}{}
		}
	}
	return report.PercentLift(float64(len(weekend)), float64(len(weekday)))
}
