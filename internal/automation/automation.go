package automation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fuzzpong/internal/config"
	"github.com/san-kum/fuzzpong/internal/experiment"
	"github.com/san-kum/fuzzpong/internal/pong"
	"github.com/san-kum/fuzzpong/internal/sim"
)

// Scenario is a scripted sequence of matches
type Scenario struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Matches     []Match `yaml:"matches"`
}

// Match is one entry of a scenario. Empty fields fall back to the preset.
type Match struct {
	Name     string             `yaml:"name"`
	Preset   string             `yaml:"preset"`
	Opponent string             `yaml:"opponent"`
	Player   string             `yaml:"player"`
	Ticks    int                `yaml:"ticks"`
	Tuning   map[string]float64 `yaml:"tuning"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Matches) == 0 {
		return nil, fmt.Errorf("scenario %q has no matches", scenario.Name)
	}

	return &scenario, nil
}

// Config resolves the match into a full, validated config.
func (m Match) Config() (*config.Config, error) {
	preset := m.Preset
	if preset == "" {
		preset = "classic"
	}
	cfg := config.GetPreset(preset)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s", preset)
	}

	if m.Opponent != "" {
		cfg.Opponent = m.Opponent
	}
	if m.Player != "" {
		cfg.Player = m.Player
	}
	if m.Ticks != 0 {
		cfg.Ticks = m.Ticks
	}
	for name, v := range m.Tuning {
		t, err := cfg.Fuzzy.With(name, v)
		if err != nil {
			return nil, err
		}
		cfg.Fuzzy = t
	}
	return cfg, cfg.Validate()
}

type MatchResult struct {
	Name   string
	Config *config.Config
	Result *sim.Result
}

// RunScenario plays every match in order
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry) ([]MatchResult, error) {
	results := make([]MatchResult, 0, len(scenario.Matches))

	for i, m := range scenario.Matches {
		name := m.Name
		if name == "" {
			name = fmt.Sprintf("match-%d", i+1)
		}
		slog.Info("running match", "index", i+1, "of", len(scenario.Matches), "name", name)

		cfg, err := m.Config()
		if err != nil {
			return results, fmt.Errorf("match %d: %w", i+1, err)
		}

		result, err := experiment.Play(ctx, registry, cfg)
		if err != nil {
			return results, fmt.Errorf("match %d run: %w", i+1, err)
		}

		slog.Info("match done",
			"name", name,
			"misses_top", result.Events.Misses[pong.Top],
			"misses_bottom", result.Events.Misses[pong.Bottom],
		)
		results = append(results, MatchResult{Name: name, Config: cfg, Result: result})
	}

	return results, nil
}

// ParameterSweep replays the same match across evenly spaced values of one
// fuzzy tuning parameter
type ParameterSweep struct {
	Base      *config.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
}

// SweepResult holds results from a parameter sweep
type SweepResult struct {
	ParamValue float64
	Events     pong.Events
	Metrics    map[string]float64
}

// RunSweep executes a parameter sweep
func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *experiment.Registry) ([]SweepResult, error) {
	if sweep.NumSteps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.NumSteps)
	}

	results := make([]SweepResult, 0, sweep.NumSteps)
	paramStep := (sweep.ParamMax - sweep.ParamMin) / float64(sweep.NumSteps-1)

	for i := 0; i < sweep.NumSteps; i++ {
		paramVal := sweep.ParamMin + float64(i)*paramStep

		cfg := *sweep.Base
		t, err := cfg.Fuzzy.With(sweep.ParamName, paramVal)
		if err != nil {
			return results, err
		}
		cfg.Fuzzy = t

		result, err := experiment.Play(ctx, registry, &cfg)
		if err != nil {
			return results, err
		}

		results = append(results, SweepResult{
			ParamValue: paramVal,
			Events:     result.Events,
			Metrics:    result.Metrics,
		})

		slog.Info("sweep", "step", i+1, "of", sweep.NumSteps, "param", sweep.ParamName, "value", paramVal)
	}

	return results, nil
}

// ErrInvalidMonteCarlo indicates jitter that could produce an unplayable
// board, or a non-positive trial count.
var ErrInvalidMonteCarlo = errors.New("automation: invalid monte carlo config")

// MonteCarloConfig perturbs ball speed and power factor around a base match.
// Ball speed is drawn from Base speed ± SpeedJitter, so SpeedJitter must stay
// below the base speed. Seed always seeds the generator; equal seeds replay
// equal trials.
type MonteCarloConfig struct {
	Base        *config.Config
	SpeedJitter float64
	PowerJitter float64
	NumTrials   int
	Seed        int64
}

func (c *MonteCarloConfig) validate() error {
	switch {
	case c.Base == nil:
		return fmt.Errorf("%w: no base config", ErrInvalidMonteCarlo)
	case c.NumTrials <= 0:
		return fmt.Errorf("%w: trials = %d", ErrInvalidMonteCarlo, c.NumTrials)
	case !(c.SpeedJitter >= 0 && c.SpeedJitter < c.Base.Game.BallSpeed):
		return fmt.Errorf("%w: speed jitter %g must be in [0, %g)", ErrInvalidMonteCarlo, c.SpeedJitter, c.Base.Game.BallSpeed)
	case !(c.PowerJitter >= 0):
		return fmt.Errorf("%w: power jitter = %g", ErrInvalidMonteCarlo, c.PowerJitter)
	}
	return nil
}

type MonteCarloResult struct {
	TrialID     int
	BallSpeed   float64
	PowerFactor float64
	Hits        int
	Misses      int
}

// RunMonteCarlo plays NumTrials matches on randomly perturbed boards and
// records how the player fared on each
func RunMonteCarlo(ctx context.Context, cfg *MonteCarloConfig, registry *experiment.Registry) ([]MonteCarloResult, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	results := make([]MonteCarloResult, 0, cfg.NumTrials)
	rng := rand.New(rand.NewSource(cfg.Seed))

	for trial := 0; trial < cfg.NumTrials; trial++ {
		match := *cfg.Base
		match.Game.BallSpeed += (rng.Float64() - 0.5) * 2 * cfg.SpeedJitter
		match.Game.PowerFactor += rng.Float64() * cfg.PowerJitter

		result, err := experiment.Play(ctx, registry, &match)
		if err != nil {
			return results, fmt.Errorf("trial %d: %w", trial, err)
		}

		results = append(results, MonteCarloResult{
			TrialID:     trial,
			BallSpeed:   match.Game.BallSpeed,
			PowerFactor: match.Game.PowerFactor,
			Hits:        result.Events.Hits[pong.Bottom],
			Misses:      result.Events.Misses[pong.Bottom],
		})

		if (trial+1)%10 == 0 {
			slog.Info("monte carlo", "done", trial+1, "of", cfg.NumTrials)
		}
	}

	return results, nil
}

// MonteCarloStats totals player hits and misses across trials
func MonteCarloStats(results []MonteCarloResult) (hits int, misses int) {
	for _, r := range results {
		hits += r.Hits
		misses += r.Misses
	}
	return
}
