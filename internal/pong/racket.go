package pong

import "math"

// Racket is a paddle sliding along one horizontal edge of the board. It
// satisfies control.Racket.
type Racket struct {
	body       Rect
	maxSpeed   float64
	boardWidth float64

	commanded bool
	target    float64
	applied   float64
}

func newRacket(cfg Config, y float64) *Racket {
	return &Racket{
		body: Rect{
			X: cfg.BoardWidth/2 - cfg.PaddleWidth/2,
			Y: y,
			W: cfg.PaddleWidth,
			H: cfg.PaddleHeight,
		},
		maxSpeed:   cfg.PaddleMaxSpeed,
		boardWidth: cfg.BoardWidth,
	}
}

func (r *Racket) X() float64     { return r.body.X }
func (r *Racket) Width() float64 { return r.body.W }
func (r *Racket) Rect() Rect     { return r.body }

// Move heads for left-edge position x, travelling at most maxSpeed. A step
// that would leave the board is refused and the racket stays put.
// Non-finite targets are ignored.
func (r *Racket) Move(x float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return
	}
	r.commanded = true
	r.target = x

	delta := x - r.body.X
	delta = math.Max(-r.maxSpeed, math.Min(r.maxSpeed, delta))

	next := r.body.X + delta
	if next < 0 || next > r.boardWidth-r.body.W {
		r.applied = 0
		return
	}

	r.applied = delta
	r.body.X = next
}

// command reports the displacement requested relative to pos and the one
// actually applied since the last clearCommand.
func (r *Racket) command(pos float64) (requested, applied float64) {
	if !r.commanded {
		return 0, 0
	}
	return r.target - pos, r.applied
}

func (r *Racket) clearCommand() {
	r.commanded = false
	r.target = 0
	r.applied = 0
}
