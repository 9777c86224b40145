package synth

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoSpec(seed uint64) Spec {
	return Spec{
		Rows: 200,
		Seed: seed,
		Columns: []ColumnSpec{
			{Name: "id", Gen: Sequence(1)},
			{Name: "name", Gen: Pattern("Item %d", 1)},
			{Name: "group", Gen: Categorical([]string{"a", "b", "c"}, []float64{0.5, 0.3, 0.2})},
			{Name: "price", Gen: LogNormalInt(4.5, 0.8)},
			{Name: "reviews", Gen: Poisson(20)},
			{Name: "score", Gen: UniformFloat(0.1, 5)},
			{Name: "nights", Gen: IntChoice([]int{1, 2, 3, 7, 30}, []float64{0.3, 0.2, 0.2, 0.2, 0.1})},
			{Name: "gap", Gen: FloatChoice(MissingRange(1, 34))},
		},
	}
}

func TestBuild_Deterministic(t *testing.T) {
	first, err := Build(demoSpec(42))
	require.NoError(t, err)
	second, err := Build(demoSpec(42))
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, first.WriteCSV(&a))
	require.NoError(t, second.WriteCSV(&b))
	assert.Equal(t, a.String(), b.String(), "same seed must yield byte-identical datasets")
}

func TestBuild_SeedChangesOutput(t *testing.T) {
	first, err := Build(demoSpec(42))
	require.NoError(t, err)
	second, err := Build(demoSpec(43))
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, first.WriteCSV(&a))
	require.NoError(t, second.WriteCSV(&b))
	assert.NotEqual(t, a.String(), b.String())
}

func TestBuild_ShapeAndColumns(t *testing.T) {
	df, err := Build(demoSpec(7))
	require.NoError(t, err)

	assert.Equal(t, 200, df.Nrow())
	assert.Equal(t, []string{"id", "name", "group", "price", "reviews", "score", "nights", "gap"}, df.Names())
}

func TestBuild_RejectsEmptySpec(t *testing.T) {
	_, err := Build(Spec{Rows: 0})
	assert.Error(t, err)
}

func TestSequence(t *testing.T) {
	df, err := Build(Spec{
		Rows:    5,
		Seed:    1,
		Columns: []ColumnSpec{{Name: "id", Gen: Sequence(10)}},
	})
	require.NoError(t, err)

	ids, err := df.Col("id").Int()
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12, 13, 14}, ids)
}

func TestCycle_RepeatsInOrder(t *testing.T) {
	df, err := Build(Spec{
		Rows:    7,
		Seed:    1,
		Columns: []ColumnSpec{{Name: "dept", Gen: Cycle([]string{"snacks", "dairy", "produce"})}},
	})
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"snacks", "dairy", "produce", "snacks", "dairy", "produce", "snacks"},
		df.Col("dept").Records())
}

func TestCategorical_OnlyKnownLabels(t *testing.T) {
	df, err := Build(Spec{
		Rows: 500,
		Seed: 99,
		Columns: []ColumnSpec{
			{Name: "room", Gen: Categorical(
				[]string{"Entire home/apt", "Private room", "Shared room"},
				[]float64{0.5, 0.4, 0.1},
			)},
		},
	})
	require.NoError(t, err)

	allowed := map[string]bool{"Entire home/apt": true, "Private room": true, "Shared room": true}
	for _, v := range df.Col("room").Records() {
		assert.True(t, allowed[v], "unexpected label %q", v)
	}
}

func TestUniformInt_Bounds(t *testing.T) {
	df, err := Build(Spec{
		Rows:    1000,
		Seed:    3,
		Columns: []ColumnSpec{{Name: "avail", Gen: UniformInt(0, 366)}},
	})
	require.NoError(t, err)

	vals, err := df.Col("avail").Int()
	require.NoError(t, err)
	for _, v := range vals {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 366)
	}
}

func TestMissingRange(t *testing.T) {
	vals := MissingRange(1, 3)
	require.Len(t, vals, 4)
	assert.True(t, vals[0] != vals[0], "first entry must be NaN")
	assert.Equal(t, []float64{1, 2, 3}, vals[1:])
}
