package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"insightcli/internal/dataset"
)

// Stage is one step of the clean → engineer → aggregate → report flow.
// A stage owns its input dataset and transfers ownership of its output
// by return value; nothing is shared between stages.
type Stage struct {
	Name string
	Run  func(ctx context.Context, ds *dataset.Dataset) (*dataset.Dataset, error)
}

// Pipeline runs a fixed sequence of stages over a dataset. Every case
// study composes the same four-stage shape from project-specific
// configuration instead of re-implementing the flow.
type Pipeline struct {
	name   string
	logger *slog.Logger
	stages []Stage
}

// New creates a pipeline with the given stages.
func New(name string, logger *slog.Logger, stages ...Stage) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{name: name, logger: logger, stages: stages}
}

// Run executes the stages in order, passing each stage's output to the
// next. The first stage error aborts the run.
func (p *Pipeline) Run(ctx context.Context, ds *dataset.Dataset) (*dataset.Dataset, error) {
	runID := uuid.NewString()
	logger := p.logger.With(slog.String("pipeline", p.name), slog.String("run_id", runID))

	logger.InfoContext(ctx, "pipeline starting",
		slog.Int("stages", len(p.stages)),
		slog.Int("rows", ds.NRows()))

	start := time.Now()
	for _, stage := range p.stages {
		stageStart := time.Now()
		out, err := stage.Run(ctx, ds)
		if err != nil {
			logger.ErrorContext(ctx, "stage failed",
				slog.String("stage", stage.Name),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("stage %s: %w", stage.Name, err)
		}
		if err := out.Err(); err != nil {
			logger.ErrorContext(ctx, "stage produced invalid dataset",
				slog.String("stage", stage.Name),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("stage %s: %w", stage.Name, err)
		}
		logger.InfoContext(ctx, "stage complete",
			slog.String("stage", stage.Name),
			slog.Int("rows", out.NRows()),
			slog.Int("columns", out.NCols()),
			slog.Duration("elapsed", time.Since(stageStart)))
		ds = out
	}

	logger.InfoContext(ctx, "pipeline complete",
		slog.Int("rows", ds.NRows()),
		slog.Duration("elapsed", time.Since(start)))
	return ds, nil
}
