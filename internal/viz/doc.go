// Package viz renders textual reports: styled summaries and tables with
// lipgloss, line charts with asciigraph, and membership functions on a
// Braille canvas.
package viz
