package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/fuzzpong/internal/pong"
)

type Simulator struct {
	game      *pong.Game
	metrics   []Metric
	observers []Observer
}

func New(game *pong.Game) *Simulator {
	return &Simulator{
		game:      game,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) Game() *pong.Game { return s.game }

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Frames:  make([]pong.Frame, 0, cfg.Ticks),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, ctx.Err()
		default:
		}

		f, ev := s.game.Tick()

		if cfg.ValidateFrames && !f.IsValid() {
			result.Errors = append(result.Errors, SimError{Tick: f.Tick, Message: "invalid frame (NaN/Inf)"})
			break
		}

		s.observe(f, ev)
		result.Events.Add(ev)
		result.Frames = append(result.Frames, f)
		result.TicksTaken++
	}

	s.collect(result)
	return result, nil
}

// RunWithCallback streams frames to fn until the tick budget is spent or
// fn returns false. Metrics and observers still see every frame.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, fn func(pong.Frame, pong.Events) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	for i := 0; i < cfg.Ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f, ev := s.game.Tick()
		if cfg.ValidateFrames && !f.IsValid() {
			return SimError{Tick: f.Tick, Message: "invalid frame (NaN/Inf)"}
		}

		s.observe(f, ev)
		if !fn(f, ev) {
			return nil
		}
	}
	return nil
}

func (s *Simulator) observe(f pong.Frame, ev pong.Events) {
	for _, side := range []pong.Side{pong.Top, pong.Bottom} {
		if ev.Misses[side] > 0 {
			slog.Debug("miss",
				"tick", f.Tick,
				"side", side.String(),
				"strategy", s.game.Strategy(side).Name(),
			)
		}
	}

	for _, m := range s.metrics {
		m.Observe(f, ev)
	}
	for _, obs := range s.observers {
		obs.OnTick(f, ev)
	}
}

func (s *Simulator) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func validateConfig(cfg Config) error {
	if cfg.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", cfg.Ticks)
	}
	return nil
}
