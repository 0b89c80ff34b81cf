package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/fuzzpong/internal/config"
	"github.com/san-kum/fuzzpong/internal/control"
	"github.com/san-kum/fuzzpong/internal/metrics"
	"github.com/san-kum/fuzzpong/internal/pong"
	"github.com/san-kum/fuzzpong/internal/sim"
)

// Factory builds a fresh strategy for one side of a match.
type Factory func(cfg *config.Config) (control.Strategy, error)

type Registry struct {
	strategies map[string]Factory
	input      control.InputSource
}

func NewRegistry() *Registry {
	r := &Registry{
		strategies: make(map[string]Factory),
	}

	r.strategies["naive"] = func(*config.Config) (control.Strategy, error) {
		return control.NewNaive(), nil
	}
	r.strategies["fuzzy"] = func(cfg *config.Config) (control.Strategy, error) {
		return control.NewFuzzy(cfg.GameConfig().Geometry(), cfg.Tuning())
	}
	r.strategies["human"] = func(cfg *config.Config) (control.Strategy, error) {
		return control.NewHuman(cfg.GameConfig().BoardWidth, r.input), nil
	}

	return r
}

// SetInput routes human players to src. Without it humans stand still.
func (r *Registry) SetInput(src control.InputSource) { r.input = src }

func (r *Registry) Register(name string, f Factory) { r.strategies[name] = f }

func (r *Registry) GetStrategy(name string, cfg *config.Config) (control.Strategy, error) {
	fn, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s (known: %v)", name, r.ListStrategies())
	}
	return fn(cfg)
}

func (r *Registry) ListStrategies() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics scores both sides of a match on cfg.
func DefaultMetrics(cfg pong.Config) []sim.Metric {
	ms := []sim.Metric{metrics.NewRallyLength()}
	for _, side := range []pong.Side{pong.Top, pong.Bottom} {
		ms = append(ms,
			metrics.NewMisses(side),
			metrics.NewHits(side),
			metrics.NewPowerHits(side),
			metrics.NewControlEffort(side),
			metrics.NewTrackingError(side),
			metrics.NewJitter(side),
			metrics.NewSaturation(side, cfg.PaddleMaxSpeed),
		)
	}
	return ms
}
