package config

import (
	"os"
	"path/filepath"

	apperrors "insightcli/internal/errors"
)

// Paths resolves the directory layout for a single pipeline run.
// It is the single source of truth for every file path the tools touch.
type Paths struct {
	RawDir            string
	ProcessedDir      string
	VisualizationsDir string
	LogsDir           string
}

// NewPaths builds Paths from configuration, applying non-empty overrides
// (typically CLI flags) on top of the configured directories.
func NewPaths(cfg PathsConfig, rawOverride, processedOverride, chartsOverride string) *Paths {
	p := &Paths{
		RawDir:            cfg.RawDir,
		ProcessedDir:      cfg.ProcessedDir,
		VisualizationsDir: cfg.VisualizationsDir,
		LogsDir:           cfg.LogsDir,
	}
	if rawOverride != "" {
		p.RawDir = rawOverride
	}
	if processedOverride != "" {
		p.ProcessedDir = processedOverride
	}
	if chartsOverride != "" {
		p.VisualizationsDir = chartsOverride
	}
	return p
}

// EnsureDirectories creates every output directory the run writes to.
// The raw data directory is deliberately not created: its absence is the
// signal that triggers the synthetic-data fallback.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.ProcessedDir, p.VisualizationsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewStorageError("failed to create directory", err).
				WithContext("dir", dir)
		}
	}
	return nil
}

// RawFile returns the path of an input CSV under the raw data directory.
func (p *Paths) RawFile(name string) string {
	return filepath.Join(p.RawDir, name)
}

// ProcessedFile returns the path of an output file under the processed
// data directory.
func (p *Paths) ProcessedFile(name string) string {
	return filepath.Join(p.ProcessedDir, name)
}

// ChartFile returns the path of a rendered chart under the
// visualizations directory.
func (p *Paths) ChartFile(name string) string {
	return filepath.Join(p.VisualizationsDir, name)
}

// LogFile returns the path of a log file under the logs directory.
func (p *Paths) LogFile(name string) string {
	return filepath.Join(p.LogsDir, name)
}
