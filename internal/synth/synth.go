package synth

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	apperrors "insightcli/internal/errors"
)

// Spec describes a synthetic dataset: a fixed row count, a seed, and one
// generator per column. Columns are drawn in declaration order from a
// single random source, so a given (seed, columns) pair always produces
// the identical dataset.
type Spec struct {
	Rows    int
	Seed    uint64
	Columns []ColumnSpec
}

// ColumnSpec binds a column name to its generator.
type ColumnSpec struct {
	Name string
	Gen  Generator
}

// Generator draws n values for the named column.
type Generator func(name string, n int, rng *Rng) series.Series

// Rng bundles the shared random source for one Build call.
type Rng struct {
	src exprand.Source
	r   *exprand.Rand
}

func newRng(seed uint64) *Rng {
	src := exprand.NewSource(seed)
	return &Rng{src: src, r: exprand.New(src)}
}

// Build materializes the spec into a dataframe.
func Build(spec Spec) (dataframe.DataFrame, error) {
	if spec.Rows <= 0 {
		return dataframe.DataFrame{}, apperrors.NewValidationError("synthetic spec needs a positive row count", nil)
	}
	rng := newRng(spec.Seed)
	cols := make([]series.Series, 0, len(spec.Columns))
	for _, c := range spec.Columns {
		cols = append(cols, c.Gen(c.Name, spec.Rows, rng))
	}
	df := dataframe.New(cols...)
	if df.Err != nil {
		return dataframe.DataFrame{}, apperrors.NewValidationError("failed to assemble synthetic dataframe", df.Err)
	}
	return df, nil
}

// Sequence generates consecutive integers starting at start.
func Sequence(start int) Generator {
	return func(name string, n int, rng *Rng) series.Series {
		vals := make([]int, n)
		for i := range vals {
			vals[i] = start + i
		}
		return series.New(vals, series.Int, name)
	}
}

// Pattern generates formatted strings from a consecutive integer
// sequence, e.g. Pattern("Listing %d", 1) yields "Listing 1", …
func Pattern(format string, start int) Generator {
	return func(name string, n int, rng *Rng) series.Series {
		vals := make([]string, n)
		for i := range vals {
			vals[i] = fmt.Sprintf(format, start+i)
		}
		return series.New(vals, series.String, name)
	}
}

// Cycle repeats a fixed label list in order until n values exist. Used
// for lookup tables whose contents are fixed, not sampled.
func Cycle(values []string) Generator {
	return func(name string, n int, rng *Rng) series.Series {
		vals := make([]string, n)
		for i := range vals {
			vals[i] = values[i%len(values)]
		}
		return series.New(vals, series.String, name)
	}
}

// UniformFloat draws from U(min, max).
func UniformFloat(min, max float64) Generator {
	return func(name string, n int, rng *Rng) series.Series {
		dist := distuv.Uniform{Min: min, Max: max, Src: rng.src}
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = dist.Rand()
		}
		return series.New(vals, series.Float, name)
	}
}

// UniformInt draws integers uniformly from [min, max).
func UniformInt(min, max int) Generator {
	return func(name string, n int, rng *Rng) series.Series {
		vals := make([]int, n)
		for i := range vals {
			vals[i] = min + rng.r.Intn(max-min)
		}
		return series.New(vals, series.Int, name)
	}
}

// LogNormalInt draws from LogNormal(mu, sigma) truncated to int.
func LogNormalInt(mu, sigma float64) Generator {
	return func(name string, n int, rng *Rng) series.Series {
		dist := distuv.LogNormal{Mu: mu, Sigma: sigma, Src: rng.src}
		vals := make([]int, n)
		for i := range vals {
			vals[i] = int(dist.Rand())
		}
		return series.New(vals, series.Int, name)
	}
}

// Poisson draws integer counts from Poisson(lambda).
func Poisson(lambda float64) Generator {
	return func(name string, n int, rng *Rng) series.Series {
		dist := distuv.Poisson{Lambda: lambda, Src: rng.src}
		vals := make([]int, n)
		for i := range vals {
			vals[i] = int(dist.Rand())
		}
		return series.New(vals, series.Int, name)
	}
}

// Categorical draws labels with the given weights. Weights need not sum
// to one; they are normalized by the distribution.
func Categorical(labels []string, weights []float64) Generator {
	return func(name string, n int, rng *Rng) series.Series {
		dist := distuv.NewCategorical(weights, rng.src)
		vals := make([]string, n)
		for i := range vals {
			vals[i] = labels[int(dist.Rand())]
		}
		return series.New(vals, series.String, name)
	}
}

// CategoricalUniform draws labels with equal probability.
func CategoricalUniform(labels []string) Generator {
	weights := make([]float64, len(labels))
	for i := range weights {
		weights[i] = 1
	}
	return Categorical(labels, weights)
}

// IntChoice draws from a fixed set of integers with the given weights.
func IntChoice(values []int, weights []float64) Generator {
	return func(name string, n int, rng *Rng) series.Series {
		dist := distuv.NewCategorical(weights, rng.src)
		vals := make([]int, n)
		for i := range vals {
			vals[i] = values[int(dist.Rand())]
		}
		return series.New(vals, series.Int, name)
	}
}

// FloatChoice draws uniformly from a fixed set of float values. NaN is a
// legal member, which is how optional columns model missingness.
func FloatChoice(values []float64) Generator {
	return func(name string, n int, rng *Rng) series.Series {
		vals := make([]float64, n)
		for i := range vals {
			vals[i] = values[rng.r.Intn(len(values))]
		}
		return series.New(vals, series.Float, name)
	}
}

// MissingRange returns NaN plus the integers lo..hi as float values, the
// usual argument to FloatChoice for "days since" style columns.
func MissingRange(lo, hi int) []float64 {
	vals := make([]float64, 0, hi-lo+2)
	vals = append(vals, math.NaN())
	for v := lo; v <= hi; v++ {
		vals = append(vals, float64(v))
	}
	return vals
}
