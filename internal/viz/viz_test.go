package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/fuzzpong/internal/analysis"
	"github.com/san-kum/fuzzpong/internal/control"
	"github.com/san-kum/fuzzpong/internal/pong"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 2)
	c.Set(4, 0)

	if c.Grid[0][0] != rune(brailleBlank+0x1) {
		t.Errorf("unexpected cell %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != rune(brailleBlank+0x80) {
		t.Errorf("unexpected cell %U", c.Grid[0][1])
	}
}

func TestCanvasPlotUnit(t *testing.T) {
	c := NewCanvas(10, 2)
	c.PlotUnit(func(t float64) float64 { return t })

	// a rising line lights the bottom-left and top-right corners
	if c.Grid[1][0]&0x40 == 0 {
		t.Error("expected bottom-left dot")
	}
	if c.Grid[0][9]&0x8 == 0 {
		t.Error("expected top-right dot")
	}
}

func TestRenderMembership(t *testing.T) {
	f, err := control.NewFuzzy(pong.DefaultConfig().Geometry(), control.DefaultTuning())
	if err != nil {
		t.Fatal(err)
	}

	out := RenderMembership(f.HorizontalSet(), 40, 2)
	for _, label := range []string{"far_right", "center", "far_left"} {
		if !strings.Contains(out, label) {
			t.Errorf("missing label %s in\n%s", label, out)
		}
	}
	if !strings.Contains(out, "-400") || !strings.Contains(out, "400") {
		t.Errorf("missing universe bounds in\n%s", out)
	}
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary("match", map[string]float64{"misses_bottom": 3, "jitter_bottom": 0.125})
	if !strings.Contains(out, "match") {
		t.Error("missing title")
	}
	if strings.Index(out, "jitter_bottom") > strings.Index(out, "misses_bottom") {
		t.Error("metrics not sorted")
	}
	if !strings.Contains(out, "0.125") {
		t.Error("missing value")
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable([]string{"player", "misses"}, [][]string{{"fuzzy", "2"}, {"naive", "7"}})
	for _, s := range []string{"player", "misses", "fuzzy", "naive", "7"} {
		if !strings.Contains(out, s) {
			t.Errorf("missing %q in\n%s", s, out)
		}
	}
}

func TestPlots(t *testing.T) {
	if PlotSeries(nil, "x") != "" {
		t.Error("expected empty plot for no data")
	}
	if out := PlotSeries([]float64{1, 3, 2, 5}, "velocity"); !strings.Contains(out, "velocity") {
		t.Errorf("missing caption in\n%s", out)
	}

	grid, err := analysis.Surface(pong.DefaultConfig().Geometry(), control.DefaultTuning(),
		analysis.Linspace(-400, 400, 41), []float64{20, 380})
	if err != nil {
		t.Fatal(err)
	}
	if out := PlotSurface(grid); !strings.Contains(out, "|dy| = 20 380") {
		t.Errorf("unexpected surface caption in\n%s", out)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 4); got != "────" {
		t.Errorf("unexpected empty sparkline %q", got)
	}
	out := Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8)
	if !strings.Contains(out, "▁") || !strings.Contains(out, "█") {
		t.Errorf("unexpected sparkline %q", out)
	}
}

func TestThemes(t *testing.T) {
	defer SetTheme("cyberpunk")

	SetTheme("retro")
	if CurrentTheme.Name != "retro" {
		t.Errorf("expected retro, got %s", CurrentTheme.Name)
	}
	if GetTheme("nope").Name != "cyberpunk" {
		t.Error("expected fallback theme")
	}
	if len(ThemeNames()) != 3 {
		t.Errorf("expected 3 themes, got %v", ThemeNames())
	}
}
