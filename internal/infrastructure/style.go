package infrastructure

import (
	"sync"

	"gonum.org/v1/plot/vg"

	"insightcli/internal/config"
)

// ChartStyle holds the process-wide chart rendering defaults. The
// original analysis scripts configured display and plotting style as a
// module-import side effect; here it is an explicit, idempotent
// initialization call made once at program start.
type ChartStyle struct {
	Width  vg.Length
	Height vg.Length
}

var (
	chartStyle     ChartStyle
	chartStyleOnce sync.Once
)

// InitializeChartStyle records the chart dimensions used by every
// renderer in this process. Subsequent calls are no-ops.
func InitializeChartStyle(cfg config.ChartsConfig) {
	chartStyleOnce.Do(func() {
		chartStyle = ChartStyle{
			Width:  vg.Length(cfg.WidthInches) * vg.Inch,
			Height: vg.Length(cfg.HeightInches) * vg.Inch,
		}
	})
}

// GetChartStyle returns the configured style, falling back to the
// defaults when InitializeChartStyle was never called.
func GetChartStyle() ChartStyle {
	if chartStyle.Width == 0 || chartStyle.Height == 0 {
		return ChartStyle{Width: 8 * vg.Inch, Height: 6 * vg.Inch}
	}
	return chartStyle
}

// ResetChartStyleForTesting clears the style state so tests can
// re-initialize it.
func ResetChartStyleForTesting() {
	chartStyle = ChartStyle{}
	chartStyleOnce = sync.Once{}
}
