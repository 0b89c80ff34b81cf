package experiment

import (
	"context"
	"strings"
	"testing"

	"github.com/san-kum/fuzzpong/internal/config"
	"github.com/san-kum/fuzzpong/internal/control"
	"github.com/san-kum/fuzzpong/internal/pong"
)

func TestRegistryStrategies(t *testing.T) {
	reg := NewRegistry()
	cfg := config.DefaultConfig()

	for _, name := range []string{"naive", "fuzzy", "human"} {
		s, err := reg.GetStrategy(name, cfg)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("expected %s, got %s", name, s.Name())
		}
	}

	got := strings.Join(reg.ListStrategies(), ",")
	if got != "fuzzy,human,naive" {
		t.Errorf("unexpected strategy list %s", got)
	}
}

func TestRegistryUnknown(t *testing.T) {
	_, err := NewRegistry().GetStrategy("telepathic", config.DefaultConfig())
	if err == nil || !strings.Contains(err.Error(), "telepathic") {
		t.Errorf("expected unknown strategy error, got %v", err)
	}
}

func TestRegistryFuzzyUsesTuning(t *testing.T) {
	cfg := config.GetPreset("twitchy")
	s, err := NewRegistry().GetStrategy("fuzzy", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.(*control.Fuzzy).Tuning().BoostGain; got != 1.3 {
		t.Errorf("expected boost gain 1.3, got %v", got)
	}
}

func TestExperimentRun(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Ticks = 1200

	result, err := Play(context.Background(), NewRegistry(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.TicksTaken != 1200 {
		t.Errorf("expected 1200 ticks, got %d", result.TicksTaken)
	}
	for _, name := range []string{"misses_bottom", "hits_top", "control_effort_bottom", "rally_length", "jitter_bottom"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("missing metric %s", name)
		}
	}
	if float64(result.Events.Misses[1]) != result.Metrics["misses_bottom"] {
		t.Errorf("misses_bottom metric disagrees with events: %v vs %v", result.Metrics["misses_bottom"], result.Events.Misses)
	}
}

func TestExperimentNotSetup(t *testing.T) {
	if _, err := New(config.DefaultConfig()).Run(context.Background()); err == nil {
		t.Error("expected error before setup")
	}
}

func TestExperimentStream(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Ticks = 500

	effort := 0
	e := New(cfg)
	if err := e.Setup(NewRegistry(), DefaultMetrics(cfg.GameConfig())); err != nil {
		t.Fatal(err)
	}

	var ticks []int
	err := e.Stream(context.Background(), func(f pong.Frame, _ pong.Events) bool {
		ticks = append(ticks, f.Tick)
		if f.Paddle(pong.Bottom).Command != 0 {
			effort++
		}
		return len(ticks) < 40
	})
	if err != nil {
		t.Fatalf("stream failed: %v", err)
	}

	if len(ticks) != 40 {
		t.Fatalf("expected the stream to stop after 40 frames, got %d", len(ticks))
	}
	for i, tick := range ticks {
		if tick != i+1 {
			t.Fatalf("frame %d has tick %d", i, tick)
		}
	}
	if effort == 0 {
		t.Error("player never moved while streaming")
	}
}

func TestExperimentStreamNotSetup(t *testing.T) {
	err := New(config.DefaultConfig()).Stream(context.Background(), func(pong.Frame, pong.Events) bool { return true })
	if err == nil {
		t.Error("expected error before setup")
	}
}

func TestExperimentSetupErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Player = "ghost"
	if err := New(cfg).Setup(NewRegistry(), nil); err == nil || !strings.Contains(err.Error(), "player") {
		t.Errorf("expected player error, got %v", err)
	}

	cfg = config.DefaultConfig()
	cfg.Ticks = 0
	if err := New(cfg).Setup(NewRegistry(), nil); err == nil {
		t.Error("expected validation error")
	}
}

func TestHumanFollowsInput(t *testing.T) {
	keys := &control.Keys{}
	keys.Press(control.MoveLeft)

	reg := NewRegistry()
	reg.SetInput(keys)

	cfg := config.DefaultConfig()
	cfg.Player = "human"
	cfg.Ticks = 50

	e := New(cfg)
	if err := e.Setup(reg, nil); err != nil {
		t.Fatal(err)
	}
	result, err := e.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if x := result.Frames[len(result.Frames)-1].Paddles[1].X; x != 0 {
		t.Errorf("expected human paddle at the left wall, got %v", x)
	}
}
