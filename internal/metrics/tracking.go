package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/fuzzpong/internal/pong"
)

// TrackingError is the mean |dx| between paddle and ball centers.
type TrackingError struct {
	name    string
	side    pong.Side
	samples []float64
}

func NewTrackingError(side pong.Side) *TrackingError {
	return &TrackingError{name: "tracking_error_" + side.String(), side: side}
}

func (t *TrackingError) Name() string { return t.name }

func (t *TrackingError) Observe(f pong.Frame, _ pong.Events) {
	t.samples = append(t.samples, math.Abs(f.Paddle(t.side).Dx))
}

func (t *TrackingError) Value() float64 {
	if len(t.samples) == 0 {
		return 0
	}
	return stat.Mean(t.samples, nil)
}

func (t *TrackingError) Reset() { t.samples = t.samples[:0] }

// Jitter is the fraction of ticks whose requested move reverses the
// direction of the last non-zero request.
type Jitter struct {
	name     string
	side     pong.Side
	lastSign float64
	flips    int
	samples  int
}

func NewJitter(side pong.Side) *Jitter {
	return &Jitter{name: "jitter_" + side.String(), side: side}
}

func (j *Jitter) Name() string { return j.name }

func (j *Jitter) Observe(f pong.Frame, _ pong.Events) {
	j.samples++
	cmd := f.Paddle(j.side).Command
	if cmd == 0 {
		return
	}
	sign := math.Copysign(1, cmd)
	if j.lastSign != 0 && sign != j.lastSign {
		j.flips++
	}
	j.lastSign = sign
}

func (j *Jitter) Value() float64 {
	if j.samples == 0 {
		return 0
	}
	return float64(j.flips) / float64(j.samples)
}

func (j *Jitter) Reset() {
	j.lastSign = 0
	j.flips = 0
	j.samples = 0
}
