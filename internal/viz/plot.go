package viz

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/fuzzpong/internal/analysis"
)

const (
	plotHeight = 12
	plotWidth  = 80
)

// PlotSeries draws one series, resampled to fit the chart width.
func PlotSeries(data []float64, caption string) string {
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

// PlotMany overlays several series of equal length in distinct colors.
func PlotMany(series [][]float64, caption string) string {
	if len(series) == 0 {
		return ""
	}
	colors := []asciigraph.AnsiColor{
		asciigraph.Red, asciigraph.Green, asciigraph.Yellow,
		asciigraph.Blue, asciigraph.Magenta, asciigraph.Cyan,
	}
	if len(series) > len(colors) {
		series = series[:len(colors)]
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors[:len(series)]...),
	)
}

// PlotSurface draws one velocity-versus-dx curve per |dy| row of grid.
func PlotSurface(grid *analysis.Grid) string {
	if grid == nil || len(grid.Values) == 0 {
		return ""
	}
	caption := "velocity vs dx for |dy| ="
	for _, dy := range grid.Dy {
		caption += " " + formatShort(dy)
	}
	return PlotMany(grid.Values, caption)
}
