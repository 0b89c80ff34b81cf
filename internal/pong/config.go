package pong

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/fuzzpong/internal/control"
)

// ErrInvalidConfig indicates a board, paddle or ball setting out of range.
var ErrInvalidConfig = errors.New("pong: invalid config")

const (
	DefaultBoardWidth        = 800.0
	DefaultBoardHeight       = 400.0
	DefaultPaddleWidth       = 80.0
	DefaultPaddleHeight      = 20.0
	DefaultPaddleMaxSpeed    = 10.0
	DefaultBallSize          = 20.0
	DefaultBallSpeed         = 3.0
	DefaultPowerFactor       = 1.1
	DefaultCollisionCooldown = 4
)

// Config describes the board, both paddles and the ball, in board units
// and ticks.
type Config struct {
	BoardWidth     float64 `yaml:"board_width" json:"board_width"`
	BoardHeight    float64 `yaml:"board_height" json:"board_height"`
	PaddleWidth    float64 `yaml:"paddle_width" json:"paddle_width"`
	PaddleHeight   float64 `yaml:"paddle_height" json:"paddle_height"`
	PaddleMaxSpeed float64 `yaml:"paddle_max_speed" json:"paddle_max_speed"`
	BallSize       float64 `yaml:"ball_size" json:"ball_size"`
	BallSpeed      float64 `yaml:"ball_speed" json:"ball_speed"`
	// PowerFactor multiplies ball speed on an edge hit.
	PowerFactor float64 `yaml:"power_factor" json:"power_factor"`
	// CollisionCooldown is the number of ticks after a paddle hit during
	// which no further paddle collision is resolved.
	CollisionCooldown int `yaml:"collision_cooldown" json:"collision_cooldown"`
}

func DefaultConfig() Config {
	return Config{
		BoardWidth:        DefaultBoardWidth,
		BoardHeight:       DefaultBoardHeight,
		PaddleWidth:       DefaultPaddleWidth,
		PaddleHeight:      DefaultPaddleHeight,
		PaddleMaxSpeed:    DefaultPaddleMaxSpeed,
		BallSize:          DefaultBallSize,
		BallSpeed:         DefaultBallSpeed,
		PowerFactor:       DefaultPowerFactor,
		CollisionCooldown: DefaultCollisionCooldown,
	}
}

func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"board_width", c.BoardWidth},
		{"board_height", c.BoardHeight},
		{"paddle_width", c.PaddleWidth},
		{"paddle_height", c.PaddleHeight},
		{"paddle_max_speed", c.PaddleMaxSpeed},
		{"ball_size", c.BallSize},
		{"ball_speed", c.BallSpeed},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, p.name, p.v)
		}
	}

	switch {
	case c.PaddleWidth >= c.BoardWidth:
		return fmt.Errorf("%w: paddle_width %g does not fit board_width %g", ErrInvalidConfig, c.PaddleWidth, c.BoardWidth)
	case c.BallSize >= c.BoardWidth || 2*c.PaddleHeight+c.BallSize >= c.BoardHeight:
		return fmt.Errorf("%w: ball_size %g does not fit the board", ErrInvalidConfig, c.BallSize)
	case c.PowerFactor < 1:
		return fmt.Errorf("%w: power_factor must be >= 1, got %g", ErrInvalidConfig, c.PowerFactor)
	case c.CollisionCooldown < 0:
		return fmt.Errorf("%w: collision_cooldown must be >= 0, got %d", ErrInvalidConfig, c.CollisionCooldown)
	}
	return nil
}

// Geometry is what a fuzzy controller needs to know about this board.
func (c Config) Geometry() control.Geometry {
	return control.Geometry{
		BoardWidth:  c.BoardWidth,
		BoardHeight: c.BoardHeight,
		PaddleWidth: c.PaddleWidth,
		MaxSpeed:    c.PaddleMaxSpeed,
	}
}
