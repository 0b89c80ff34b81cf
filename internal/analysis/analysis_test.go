package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/fuzzpong/internal/control"
	"github.com/san-kum/fuzzpong/internal/pong"
)

func TestSpectrumPadsToPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		bins int
	}{
		{1, 2},
		{2, 2},
		{100, 65},
		{128, 65},
		{129, 129},
	}

	for _, tt := range tests {
		if got := len(Spectrum(make([]float64, tt.n))); got != tt.bins {
			t.Errorf("Spectrum(len %d) has %d bins, want %d", tt.n, got, tt.bins)
		}
	}
}

func TestDominantFrequency(t *testing.T) {
	const fps = 64.0
	samples := make([]float64, 256)
	for i := range samples {
		samples[i] = 3 + 10*math.Sin(2*math.Pi*8*float64(i)/fps)
	}

	freq, power, err := DominantFrequency(samples, fps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(freq-8) > 1e-9 {
		t.Errorf("expected 8 Hz, got %v", freq)
	}
	if power <= 0 {
		t.Errorf("expected positive power, got %v", power)
	}
}

func TestDominantFrequencyErrors(t *testing.T) {
	if _, _, err := DominantFrequency([]float64{1}, 60); err != ErrTooFewSamples {
		t.Errorf("expected ErrTooFewSamples, got %v", err)
	}
	if _, _, err := DominantFrequency([]float64{1, 2, 3}, 0); err == nil {
		t.Error("expected error for zero fps")
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if s.N != 8 || s.Mean != 5 || s.Min != 2 || s.Max != 9 {
		t.Errorf("unexpected summary %+v", s)
	}
	// sample standard deviation
	if math.Abs(s.StdDev-math.Sqrt(32.0/7)) > 1e-12 {
		t.Errorf("expected stddev %v, got %v", math.Sqrt(32.0/7), s.StdDev)
	}

	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("expected zero summary, got %+v", got)
	}
	if got := Summarize([]float64{3}); got.Mean != 3 || got.StdDev != 0 {
		t.Errorf("unexpected single-sample summary %+v", got)
	}
}

func TestSurface(t *testing.T) {
	geom := pong.DefaultConfig().Geometry()
	dxs := Linspace(-400, 400, 9)
	dys := Linspace(0, 400, 5)

	g, err := Surface(geom, control.DefaultTuning(), dxs, dys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Values) != 5 || len(g.Values[0]) != 9 {
		t.Fatalf("unexpected grid shape %dx%d", len(g.Values), len(g.Values[0]))
	}

	for i := range g.Values {
		if math.Abs(g.Values[i][0]-10) > 1e-9 || math.Abs(g.Values[i][8]+10) > 1e-9 {
			t.Errorf("row %d does not saturate at the edges: %v", i, g.Values[i])
		}
		for j := 0; j < 4; j++ {
			if math.Abs(g.Values[i][j]+g.Values[i][8-j]) > 1e-9 {
				t.Errorf("row %d: response at dx=%v and dx=%v is not mirrored", i, dxs[j], dxs[8-j])
			}
		}
	}
}

func TestSurfaceRejectsBadGeometry(t *testing.T) {
	_, err := Surface(control.Geometry{}, control.DefaultTuning(), []float64{0}, []float64{0})
	if err == nil {
		t.Error("expected error for empty geometry")
	}
}

func TestLinspace(t *testing.T) {
	got := Linspace(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("Linspace = %v, want %v", got, want)
		}
	}
	if got := Linspace(3, 9, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("single-point Linspace = %v", got)
	}
}

func TestScatter(t *testing.T) {
	frames := make([]pong.Frame, 3)
	for i, dx := range []float64{-20, 0, 20} {
		frames[i].Paddles[pong.Bottom] = pong.Paddle{Dx: dx, Command: -dx / 2}
	}

	out := Scatter(Portrait(frames, pong.Bottom), 21, 7)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(lines))
	}
	if n := strings.Count(out, "•"); n != 3 {
		t.Errorf("expected 3 points, got %d\n%s", n, out)
	}
	if Scatter(nil, 10, 10) != "" {
		t.Error("expected empty output for no points")
	}
}
