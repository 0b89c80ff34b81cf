package control

import "sync/atomic"

// Direction is a held input: left, right or nothing.
type Direction int32

const (
	Idle Direction = iota
	MoveLeft
	MoveRight
)

func (d Direction) String() string {
	switch d {
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	default:
		return "idle"
	}
}

// InputSource reports the direction currently held by a player.
type InputSource interface {
	Direction() Direction
}

// Keys is an InputSource set from outside the game loop, e.g. by a key
// handler or a replay script.
type Keys struct {
	held atomic.Int32
}

func (k *Keys) Press(d Direction) { k.held.Store(int32(d)) }
func (k *Keys) Release()          { k.held.Store(int32(Idle)) }

func (k *Keys) Direction() Direction { return Direction(k.held.Load()) }

// Human drives the paddle toward the board edge of the held direction and
// ignores the ball offsets.
type Human struct {
	boardWidth float64
	input      InputSource
}

func NewHuman(boardWidth float64, input InputSource) *Human {
	if input == nil {
		input = &Keys{}
	}
	return &Human{boardWidth: boardWidth, input: input}
}

func (h *Human) Name() string { return "human" }

func (h *Human) Act(r Racket, dx, dy float64) {
	switch h.input.Direction() {
	case MoveLeft:
		r.Move(0)
	case MoveRight:
		r.Move(h.boardWidth)
	}
}
