package metrics

import (
	"math"

	"github.com/san-kum/fuzzpong/internal/pong"
)

// Saturation is the fraction of ticks a paddle moved at full speed.
type Saturation struct {
	name      string
	side      pong.Side
	maxSpeed  float64
	saturated int
	samples   int
}

func NewSaturation(side pong.Side, maxSpeed float64) *Saturation {
	return &Saturation{
		name:     "saturation_" + side.String(),
		side:     side,
		maxSpeed: maxSpeed,
	}
}

func (s *Saturation) Name() string {
	return s.name
}

func (s *Saturation) Observe(f pong.Frame, _ pong.Events) {
	s.samples++
	if math.Abs(f.Paddle(s.side).Applied) >= s.maxSpeed-1e-9 {
		s.saturated++
	}
}

func (s *Saturation) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.saturated) / float64(s.samples)
}

func (s *Saturation) Reset() {
	s.saturated = 0
	s.samples = 0
}
