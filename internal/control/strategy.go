package control

import "errors"

var (
	// ErrInvalidGeometry indicates a non-positive board or paddle dimension.
	ErrInvalidGeometry = errors.New("control: geometry must be positive")

	// ErrInvalidTuning indicates a tuning constant outside its valid range.
	ErrInvalidTuning = errors.New("control: tuning out of valid bounds")
)

// Racket is the command sink a strategy drives. X is the paddle's left
// edge; Move requests an absolute left-edge position and the racket clamps
// it to the board and to its per-tick speed.
type Racket interface {
	X() float64
	Width() float64
	Move(x float64)
}

// Strategy decides a paddle move from dx = paddle_center_x - ball_center_x
// and dy = paddle_center_y - ball_center_y.
type Strategy interface {
	Name() string
	Act(r Racket, dx, dy float64)
}

// Resetter is implemented by strategies holding per-rally memory.
type Resetter interface {
	Reset()
}

// Configurable strategies expose tunables for sweeps and live adjustment.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
