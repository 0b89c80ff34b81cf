package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/fuzzpong/internal/fuzzy"
)

// RenderMembership draws every term of set on its own strip of height
// rows, sharing one horizontal axis across the universe.
func RenderMembership(set *fuzzy.Set, width, height int) string {
	u := set.Universe()
	labels := set.Labels()

	pad := 0
	for _, l := range labels {
		pad = max(pad, len(l))
	}

	var sb strings.Builder
	for _, label := range labels {
		c := NewCanvas(width, height)
		c.PlotUnit(func(t float64) float64 {
			return set.Degrees(u.Min + t*u.Width()).Get(label)
		})

		rows := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
		for i, row := range rows {
			name := ""
			if i == len(rows)/2 {
				name = label
			}
			fmt.Fprintf(&sb, "%s │%s\n", MetricLabel().Render(fmt.Sprintf("%*s", pad, name)), row)
		}
	}

	axis := fmt.Sprintf("%-*g%*g", width/2, u.Min, width-width/2, u.Max)
	fmt.Fprintf(&sb, "%*s  %s\n", pad, "", Subtle().Render(axis))
	return sb.String()
}
