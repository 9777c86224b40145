package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"insightcli/internal/config"
	"insightcli/internal/infrastructure"
	"insightcli/internal/instacart"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file (optional)")
	rawDir := flag.String("raw", "", "input directory for raw CSV files (defaults to data/raw)")
	processedDir := flag.String("processed", "", "output directory for processed files (defaults to data/processed)")
	chartsDir := flag.String("charts", "", "output directory for charts (defaults to reports/visualizations)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogger()

	infrastructure.InitializeChartStyle(cfg.Charts)

	paths := config.NewPaths(cfg.Paths, *rawDir, *processedDir, *chartsDir)
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create output directories", "error", err)
		os.Exit(1)
	}

	analysis := instacart.NewAnalysis(logger, paths, os.Stdout)
	if err := analysis.Run(context.Background()); err != nil {
		logger.Error("Instacart analysis failed", "error", err)
		os.Exit(1)
	}
}
