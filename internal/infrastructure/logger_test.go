package infrastructure

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insightcli/internal/config"
)

func TestInitializeLogger_Console(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	logger, err := InitializeLogger(config.LoggingConfig{
		Level:  "info",
		Format: "text",
		Output: "console",
	})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.Same(t, logger, GetLogger())
}

func TestInitializeLogger_File(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	logFile := filepath.Join(t.TempDir(), "logs", "test.log")
	logger, err := InitializeLogger(config.LoggingConfig{
		Level:    "debug",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	})
	require.NoError(t, err)

	logger.Info("hello", slog.String("key", "value"))
	CloseLogger()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"msg":"hello"`))
	assert.True(t, strings.Contains(string(data), `"key":"value"`))
}

func TestInitializeLogger_OnlyOnce(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	first, err := InitializeLogger(config.LoggingConfig{Level: "info", Output: "console"})
	require.NoError(t, err)

	second, err := InitializeLogger(config.LoggingConfig{Level: "error", Output: "console"})
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "level %q", tt.in)
	}
}

func TestChartStyle(t *testing.T) {
	ResetChartStyleForTesting()
	defer ResetChartStyleForTesting()

	// Uninitialized style falls back to defaults.
	def := GetChartStyle()
	assert.NotZero(t, def.Width)
	assert.NotZero(t, def.Height)

	InitializeChartStyle(config.ChartsConfig{WidthInches: 10, HeightInches: 5})
	st := GetChartStyle()
	assert.Equal(t, 2.0, float64(st.Width)/float64(st.Height))

	// Second initialization is a no-op.
	InitializeChartStyle(config.ChartsConfig{WidthInches: 1, HeightInches: 1})
	assert.Equal(t, st, GetChartStyle())
}
