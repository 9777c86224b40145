package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightcli/internal/dataset"
	"insightcli/internal/exporter"
)

func ordersFixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	df := dataframe.LoadRecords([][]string{
		{"department", "order_id", "user_id", "reordered"},
		{"produce", "1", "u1", "1"},
		{"produce", "1", "u1", "0"},
		{"produce", "2", "u2", "1"},
		{"dairy", "3", "u1", "1"},
		{"dairy", "3", "u3", "0"},
		{"snacks", "4", "u2", "0"},
	})
	require.NoError(t, df.Err)
	return dataset.New(df)
}

func TestGroupBy_Aggregates(t *testing.T) {
	ds := ordersFixture(t)

	table, err := GroupBy(ds, "department", []Agg{
		{Kind: NUnique, Col: "order_id", Name: "unique_orders"},
		{Kind: NUnique, Col: "user_id", Name: "unique_customers"},
		{Kind: Mean, Col: "reordered", Name: "avg_reorder_rate"},
		{Kind: Count, Name: "total_products_sold"},
	}, "unique_orders")
	require.NoError(t, err)

	require.Len(t, table.Rows, 3)
	// produce: 2 unique orders, 2 customers, reorder mean 2/3, 3 rows
	produce := table.Rows[0]
	assert.Equal(t, "produce", produce.Key)
	assert.Equal(t, 2.0, produce.Values["unique_orders"])
	assert.Equal(t, 2.0, produce.Values["unique_customers"])
	assert.InDelta(t, 2.0/3.0, produce.Values["avg_reorder_rate"], 1e-9)
	assert.Equal(t, 3.0, produce.Values["total_products_sold"])
}

func TestGroupBy_SortsDescending(t *testing.T) {
	ds := ordersFixture(t)

	table, err := GroupBy(ds, "department", []Agg{
		{Kind: Count, Name: "rows"},
	}, "rows")
	require.NoError(t, err)

	keys := make([]string, len(table.Rows))
	for i, r := range table.Rows {
		keys[i] = r.Key
	}
	assert.Equal(t, []string{"produce", "dairy", "snacks"}, keys)
}

func TestGroupBy_Carry(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"product_name", "department", "order_id"},
		{"Organic Banana", "produce", "1"},
		{"Organic Banana", "produce", "2"},
		{"Whole Milk", "dairy", "3"},
	})
	require.NoError(t, df.Err)
	ds := dataset.New(df)

	table, err := GroupBy(ds, "product_name", []Agg{
		{Kind: NUnique, Col: "order_id", Name: "unique_orders"},
	}, "unique_orders", "department")
	require.NoError(t, err)

	assert.Equal(t, "Organic Banana", table.Rows[0].Key)
	assert.Equal(t, "produce", table.Rows[0].Carry["department"])
}

func TestGroupBy_UnknownColumns(t *testing.T) {
	ds := ordersFixture(t)

	_, err := GroupBy(ds, "aisle", nil, "")
	assert.Error(t, err)

	_, err = GroupBy(ds, "department", []Agg{{Kind: Mean, Col: "basket", Name: "x"}}, "")
	assert.Error(t, err)

	_, err = GroupBy(ds, "department", []Agg{{Kind: Count, Name: "rows"}}, "missing_metric")
	assert.Error(t, err)
}

func TestGroupTable_TopAndBest(t *testing.T) {
	ds := ordersFixture(t)
	table, err := GroupBy(ds, "department", []Agg{
		{Kind: Count, Name: "rows"},
		{Kind: Mean, Col: "reordered", Name: "avg_reorder_rate"},
	}, "rows")
	require.NoError(t, err)

	top2 := table.Top(2)
	assert.Len(t, top2.Rows, 2)
	assert.Len(t, table.Top(10).Rows, 3)

	key, v := table.Best("rows")
	assert.Equal(t, "produce", key)
	assert.Equal(t, 3.0, v)

	rate, ok := table.Value("dairy", "avg_reorder_rate")
	require.True(t, ok)
	assert.InDelta(t, 0.5, rate, 1e-9)
}

func TestGroupTable_WriteCSVAndPrint(t *testing.T) {
	ds := ordersFixture(t)
	table, err := GroupBy(ds, "department", []Agg{
		{Kind: NUnique, Col: "order_id", Name: "unique_orders"},
		{Kind: Mean, Col: "reordered", Name: "avg_reorder_rate"},
	}, "unique_orders")
	require.NoError(t, err)

	dir := t.TempDir()
	path := dir + "/dept.csv"
	require.NoError(t, table.WriteCSV(exporter.NewCSVWriter(nil), path))

	var buf bytes.Buffer
	table.Print(&buf)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "department"))
	assert.Contains(t, out, "produce")
	assert.Contains(t, out, "0.667")
}

func TestPercentLift(t *testing.T) {
	assert.InDelta(t, 50.0, PercentLift(300, 200), 1e-9)
	assert.InDelta(t, -25.0, PercentLift(150, 200), 1e-9)
	assert.Equal(t, 0.0, PercentLift(100, 0), "zero baseline reports 0 instead of dividing")
}

func TestArgMax(t *testing.T) {
	assert.Equal(t, "Sunday", ArgMax([]string{"Saturday", "Sunday", "Monday"}, []float64{10, 30, 20}))
	assert.Equal(t, "", ArgMax(nil, nil))
}

func TestTopN(t *testing.T) {
	idx := TopN([]float64{5, 30, 10, 20}, 3)
	assert.Equal(t, []int{1, 3, 2}, idx)

	all := TopN([]float64{1, 2}, 5)
	assert.Equal(t, []int{1, 0}, all)
}
