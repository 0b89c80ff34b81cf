package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/fuzzpong/internal/config"
	"github.com/san-kum/fuzzpong/internal/pong"
	"github.com/san-kum/fuzzpong/internal/sim"
)

type Experiment struct {
	cfg       *config.Config
	simulator *sim.Simulator
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup builds both strategies and the game. Each call starts a new match.
func (e *Experiment) Setup(reg *Registry, metrics []sim.Metric) error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	opponent, err := reg.GetStrategy(e.cfg.Opponent, e.cfg)
	if err != nil {
		return fmt.Errorf("opponent: %w", err)
	}
	player, err := reg.GetStrategy(e.cfg.Player, e.cfg)
	if err != nil {
		return fmt.Errorf("player: %w", err)
	}

	game, err := pong.NewGame(e.cfg.GameConfig(), opponent, player)
	if err != nil {
		return err
	}

	e.simulator = sim.New(game)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

func (e *Experiment) simConfig() sim.Config {
	return sim.Config{
		Ticks:          e.cfg.Ticks,
		ValidateFrames: true,
	}
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.simulator.Run(ctx, e.simConfig())
}

// Stream plays the match handing each frame to fn as it is produced, without
// keeping frames in memory. It stops early when fn returns false.
func (e *Experiment) Stream(ctx context.Context, fn func(pong.Frame, pong.Events) bool) error {
	if e.simulator == nil {
		return fmt.Errorf("experiment not setup")
	}
	return e.simulator.RunWithCallback(ctx, e.simConfig(), fn)
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// GetSimulator returns the underlying simulator for adding observers
func (e *Experiment) GetSimulator() *sim.Simulator {
	return e.simulator
}

// Play is New, Setup with the default metrics, then Run.
func Play(ctx context.Context, reg *Registry, cfg *config.Config) (*sim.Result, error) {
	e := New(cfg)
	if err := e.Setup(reg, DefaultMetrics(cfg.GameConfig())); err != nil {
		return nil, err
	}
	return e.Run(ctx)
}
