package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fuzzpong/internal/control"
	"github.com/san-kum/fuzzpong/internal/pong"
)

const (
	DefaultTicks    = 3600
	DefaultFPS      = 60.0
	DefaultPlayer   = "fuzzy"
	DefaultOpponent = "naive"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Config is a whole match: who plays which side, for how long, on what
// board, and how the fuzzy controller is tuned.
type Config struct {
	// Player drives the bottom paddle, Opponent the top one.
	Player   string         `yaml:"player" json:"player"`
	Opponent string         `yaml:"opponent" json:"opponent"`
	Ticks    int            `yaml:"ticks" json:"ticks"`
	FPS      float64        `yaml:"fps" json:"fps"`
	Game     pong.Config    `yaml:"game" json:"game"`
	Fuzzy    control.Tuning `yaml:"fuzzy" json:"fuzzy"`
}

func DefaultConfig() *Config {
	return &Config{
		Player:   DefaultPlayer,
		Opponent: DefaultOpponent,
		Ticks:    DefaultTicks,
		FPS:      DefaultFPS,
		Game:     pong.DefaultConfig(),
		Fuzzy:    control.DefaultTuning(),
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys
// it changes.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over a copy of base, typically a preset. base
// itself is left untouched.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch {
	case c.Player == "" || c.Opponent == "":
		return fmt.Errorf("%w: player and opponent must be set", ErrInvalidConfig)
	case c.Ticks <= 0:
		return fmt.Errorf("%w: ticks must be positive, got %d", ErrInvalidConfig, c.Ticks)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %g", ErrInvalidConfig, c.FPS)
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Fuzzy.Validate()
}

func (c *Config) GameConfig() pong.Config { return c.Game }
func (c *Config) Tuning() control.Tuning  { return c.Fuzzy }

// Seconds is the match length in wall-clock time at FPS.
func (c *Config) Seconds() float64 { return float64(c.Ticks) / c.FPS }
