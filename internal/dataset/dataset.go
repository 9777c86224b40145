package dataset

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	apperrors "insightcli/internal/errors"
	"insightcli/internal/synth"
)

// Dataset wraps a gota dataframe with the cleaning and access operations
// shared by all case studies. Operations chain and propagate the first
// error, mirroring the dataframe's own Err idiom; callers check Err()
// once at the end of a chain.
type Dataset struct {
	df  dataframe.DataFrame
	err error
}

// New wraps an existing dataframe.
func New(df dataframe.DataFrame) *Dataset {
	return &Dataset{df: df, err: df.Err}
}

// Err returns the first error recorded by a chained operation.
func (d *Dataset) Err() error {
	return d.err
}

// Frame exposes the underlying dataframe.
func (d *Dataset) Frame() dataframe.DataFrame {
	return d.df
}

// NRows returns the number of rows.
func (d *Dataset) NRows() int {
	return d.df.Nrow()
}

// NCols returns the number of columns.
func (d *Dataset) NCols() int {
	return d.df.Ncol()
}

// Columns returns the column names in order.
func (d *Dataset) Columns() []string {
	return d.df.Names()
}

// HasColumns verifies that every required column is present, returning a
// schema error naming the absent ones. This is the only schema
// validation the loaders perform.
func (d *Dataset) HasColumns(required []string) error {
	present := make(map[string]bool, d.df.Ncol())
	for _, name := range d.df.Names() {
		present[name] = true
	}
	var missing []string
	for _, name := range required {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewSchemaError("dataset missing required columns", missing)
	}
	return nil
}

// Load reads a CSV file into a Dataset and validates the required
// columns are present.
func Load(path string, required []string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, apperrors.NewParsingError("failed to parse CSV", df.Err).
			WithContext("path", path)
	}

	ds := New(df)
	if err := ds.HasColumns(required); err != nil {
		return nil, err
	}
	return ds, nil
}

// LoadOrSynthesize reads the CSV at path, falling back to the synthetic
// spec when the file does not exist. The returned bool reports whether
// synthetic data was used. Any failure other than a missing file is
// returned as-is; a malformed existing file is not silently replaced.
func LoadOrSynthesize(logger *slog.Logger, path string, required []string, spec synth.Spec) (*Dataset, bool, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := os.Stat(path); err == nil {
		ds, err := Load(path, required)
		if err != nil {
			return nil, false, err
		}
		logger.Info("loaded dataset",
			slog.String("path", path),
			slog.Int("rows", ds.NRows()),
			slog.Int("columns", ds.NCols()))
		return ds, false, nil
	} else if !os.IsNotExist(err) {
		return nil, false, apperrors.NewStorageError("failed to stat input file", err).
			WithContext("path", path)
	}

	logger.Warn("input file not found, generating synthetic demo dataset",
		slog.String("path", path),
		slog.Int("rows", spec.Rows),
		slog.Uint64("seed", spec.Seed))

	df, err := synth.Build(spec)
	if err != nil {
		return nil, false, err
	}
	ds := New(df)
	logger.Info("synthesized dataset",
		slog.Int("rows", ds.NRows()),
		slog.Int("columns", ds.NCols()))
	return ds, true, nil
}

// WriteCSV writes the dataset to path, creating parent directories.
func (d *Dataset) WriteCSV(path string) error {
	if d.err != nil {
		return d.err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create output file", err).
			WithContext("path", path)
	}
	defer f.Close()

	if err := d.df.WriteCSV(f); err != nil {
		return apperrors.NewStorageError("failed to write CSV", err).
			WithContext("path", path)
	}
	return nil
}
