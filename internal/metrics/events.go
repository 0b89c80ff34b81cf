package metrics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/fuzzpong/internal/pong"
)

// Count totals one kind of per-side event.
type Count struct {
	name  string
	side  pong.Side
	pick  func(pong.Events, pong.Side) int
	total int
}

func NewMisses(side pong.Side) *Count {
	return &Count{
		name: "misses_" + side.String(),
		side: side,
		pick: func(ev pong.Events, s pong.Side) int { return ev.Misses[s] },
	}
}

func NewHits(side pong.Side) *Count {
	return &Count{
		name: "hits_" + side.String(),
		side: side,
		pick: func(ev pong.Events, s pong.Side) int { return ev.Hits[s] },
	}
}

func NewPowerHits(side pong.Side) *Count {
	return &Count{
		name: "power_hits_" + side.String(),
		side: side,
		pick: func(ev pong.Events, s pong.Side) int { return ev.PowerHits[s] },
	}
}

func (c *Count) Name() string { return c.name }

func (c *Count) Observe(_ pong.Frame, ev pong.Events) {
	c.total += c.pick(ev, c.side)
}

func (c *Count) Value() float64 { return float64(c.total) }

func (c *Count) Reset() { c.total = 0 }

// RallyLength is the mean number of paddle hits between misses. Until the
// first miss it reports the hits of the rally in progress.
type RallyLength struct {
	current int
	rallies []float64
}

func NewRallyLength() *RallyLength {
	return &RallyLength{}
}

func (r *RallyLength) Name() string { return "rally_length" }

func (r *RallyLength) Observe(_ pong.Frame, ev pong.Events) {
	r.current += ev.Hits[pong.Top] + ev.Hits[pong.Bottom]
	if ev.Misses[pong.Top]+ev.Misses[pong.Bottom] > 0 {
		r.rallies = append(r.rallies, float64(r.current))
		r.current = 0
	}
}

func (r *RallyLength) Value() float64 {
	if len(r.rallies) == 0 {
		return float64(r.current)
	}
	return stat.Mean(r.rallies, nil)
}

func (r *RallyLength) Reset() {
	r.current = 0
	r.rallies = r.rallies[:0]
}
