package sim

import (
	"fmt"

	"github.com/san-kum/fuzzpong/internal/pong"
)

type Metric interface {
	Name() string
	Observe(f pong.Frame, ev pong.Events)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(f pong.Frame, ev pong.Events)
}

type Config struct {
	Ticks          int
	ValidateFrames bool
}

// DefaultConfig is one minute of play at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		Ticks:          3600,
		ValidateFrames: true,
	}
}

type Result struct {
	Frames     []pong.Frame
	Metrics    map[string]float64
	Events     pong.Events
	TicksTaken int
	Errors     []error
}

// SimError records where a run went wrong.
type SimError struct {
	Tick    int
	Message string
}

func (e SimError) Error() string {
	return fmt.Sprintf("tick %d: %s", e.Tick, e.Message)
}
