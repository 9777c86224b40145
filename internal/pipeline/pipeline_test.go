package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightcli/internal/dataset"
)

func smallDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	df := dataframe.New(series.New([]float64{1, 2, 3}, series.Float, "value"))
	require.NoError(t, df.Err)
	return dataset.New(df)
}

func TestPipeline_RunsStagesInOrder(t *testing.T) {
	var order []string
	stage := func(name string) Stage {
		return Stage{Name: name, Run: func(_ context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
			order = append(order, name)
			return ds, nil
		}}
	}

	p := New("demo", nil, stage("clean"), stage("engineer"), stage("report"))
	out, err := p.Run(context.Background(), smallDataset(t))
	require.NoError(t, err)
	assert.Equal(t, 3, out.NRows())
	assert.Equal(t, []string{"clean", "engineer", "report"}, order)
}

func TestPipeline_StopsOnError(t *testing.T) {
	boom := errors.New("missing column")
	var ran []string

	p := New("demo", nil,
		Stage{Name: "clean", Run: func(_ context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
			ran = append(ran, "clean")
			return nil, boom
		}},
		Stage{Name: "engineer", Run: func(_ context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
			ran = append(ran, "engineer")
			return ds, nil
		}},
	)

	_, err := p.Run(context.Background(), smallDataset(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "stage clean")
	assert.Equal(t, []string{"clean"}, ran)
}

func TestPipeline_StopsOnDeferredDatasetError(t *testing.T) {
	p := New("demo", nil,
		Stage{Name: "engineer", Run: func(_ context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
			return ds.WithFloatColumn("price_x2", []float64{1}), nil
		}},
	)

	_, err := p.Run(context.Background(), smallDataset(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage engineer")
}
