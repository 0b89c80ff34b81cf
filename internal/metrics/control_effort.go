package metrics

import (
	"math"

	"github.com/san-kum/fuzzpong/internal/pong"
)

// ControlEffort is the mean absolute displacement a strategy requested per
// tick.
type ControlEffort struct {
	name    string
	side    pong.Side
	sum     float64
	samples int
}

func NewControlEffort(side pong.Side) *ControlEffort {
	return &ControlEffort{
		name: "control_effort_" + side.String(),
		side: side,
	}
}

func (c *ControlEffort) Name() string {
	return c.name
}

func (c *ControlEffort) Observe(f pong.Frame, _ pong.Events) {
	c.sum += math.Abs(f.Paddle(c.side).Command)
	c.samples++
}

func (c *ControlEffort) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *ControlEffort) Reset() {
	c.sum = 0
	c.samples = 0
}
