package viz

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func Title() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(CurrentTheme.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(CurrentTheme.Muted)
}

func Panel() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(CurrentTheme.Muted).
		Padding(0, 2)
}

func MetricLabel() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
}

func MetricValue() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Bold(true)
}

func Subtle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
}

// RenderSummary prints metrics as an aligned, sorted label/value panel.
func RenderSummary(title string, metrics map[string]float64) string {
	keys := make([]string, 0, len(metrics))
	pad := 0
	for k := range metrics {
		keys = append(keys, k)
		pad = max(pad, len(k))
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(Title().Render(title))
	for _, k := range keys {
		sb.WriteString("\n")
		sb.WriteString(MetricLabel().Render(fmt.Sprintf("%-*s", pad, k)))
		sb.WriteString("  ")
		sb.WriteString(MetricValue().Render(formatShort(metrics[k])))
	}
	return Panel().Render(sb.String())
}

// RenderTable draws a bordered table with a highlighted header row.
func RenderTable(headers []string, rows [][]string) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Accent).Padding(0, 1)
	cell := lipgloss.NewStyle().Foreground(CurrentTheme.Text).Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(CurrentTheme.Muted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return t.Render()
}

// ProgressBar renders a bar filled to percent in [0, 1]
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	filled = max(0, min(width, filled))

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := lipgloss.NewStyle().Foreground(CurrentTheme.Bad)
	if percent > 0.8 {
		style = style.Foreground(CurrentTheme.Good)
	} else if percent > 0.4 {
		style = style.Foreground(CurrentTheme.Warn)
	}
	return style.Render(bar)
}

// Sparkline renders values sampled down to width block characters.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := max(1, len(values)/width)

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := max(0, min(len(chars)-1, int(norm*float64(len(chars)-1))))
		result.WriteRune(chars[idx])
	}
	return lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Render(result.String())
}

func formatShort(v float64) string {
	return strconv.FormatFloat(v, 'g', 5, 64)
}
