package pong

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/fuzzpong/internal/control"
)

// Side identifies a paddle: Top is the opponent at y=0, Bottom the player.
type Side int

const (
	Top Side = iota
	Bottom
)

var sides = [...]Side{Top, Bottom}

func (s Side) String() string {
	if s == Top {
		return "top"
	}
	return "bottom"
}

// ParseSide accepts "top" or "bottom".
func ParseSide(name string) (Side, error) {
	switch name {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	}
	return Top, fmt.Errorf("pong: unknown side %q", name)
}

// Events counts what happened during one or more ticks, per side where it
// applies.
type Events struct {
	Hits        [2]int `json:"hits"`
	PowerHits   [2]int `json:"power_hits"`
	Misses      [2]int `json:"misses"`
	WallBounces int    `json:"wall_bounces"`
}

func (e *Events) Add(o Events) {
	for _, s := range sides {
		e.Hits[s] += o.Hits[s]
		e.PowerHits[s] += o.PowerHits[s]
		e.Misses[s] += o.Misses[s]
	}
	e.WallBounces += o.WallBounces
}

// Paddle is one side's view of a frame.
type Paddle struct {
	X       float64 `json:"x"`
	Dx      float64 `json:"dx"`
	Dy      float64 `json:"dy"`
	Command float64 `json:"command"`
	Applied float64 `json:"applied"`
}

// Frame is the observable state after one tick. Dx/Dy are the offsets the
// strategy acted on, Command the displacement it requested and Applied the
// displacement left after clamping.
type Frame struct {
	Tick    int       `json:"tick"`
	BallX   float64   `json:"ball_x"`
	BallY   float64   `json:"ball_y"`
	BallVX  float64   `json:"ball_vx"`
	BallVY  float64   `json:"ball_vy"`
	Paddles [2]Paddle `json:"paddles"`
}

func (f Frame) Paddle(s Side) Paddle { return f.Paddles[s] }

// IsValid reports whether every value in the frame is finite.
func (f Frame) IsValid() bool {
	vals := []float64{f.BallX, f.BallY, f.BallVX, f.BallVY}
	for _, p := range f.Paddles {
		vals = append(vals, p.X, p.Dx, p.Dy, p.Command, p.Applied)
	}
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Game owns the ball and both rackets and advances them one tick at a time.
type Game struct {
	cfg        Config
	ball       *Ball
	rackets    [2]*Racket
	strategies [2]control.Strategy
	tick       int
	lastHit    int
}

func NewGame(cfg Config, top, bottom control.Strategy) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if top == nil || bottom == nil {
		return nil, errors.New("pong: both sides need a strategy")
	}

	g := &Game{
		cfg:        cfg,
		ball:       NewBall(cfg),
		strategies: [2]control.Strategy{top, bottom},
		lastHit:    -cfg.CollisionCooldown,
	}
	g.rackets[Top] = newRacket(cfg, 0)
	g.rackets[Bottom] = newRacket(cfg, cfg.BoardHeight-cfg.PaddleHeight)
	return g, nil
}

func (g *Game) Ball() Ball                       { return *g.ball }
func (g *Game) Racket(s Side) *Racket            { return g.rackets[s] }
func (g *Game) Strategy(s Side) control.Strategy { return g.strategies[s] }

// Offsets returns paddle center minus ball center for side s.
func (g *Game) Offsets(s Side) (dx, dy float64) {
	r := g.rackets[s].body
	return r.CenterX() - g.ball.CenterX(), r.CenterY() - g.ball.CenterY()
}

// Tick moves the ball, resolves walls, misses and paddle hits, then lets
// the top and bottom strategies act in that order.
func (g *Game) Tick() (Frame, Events) {
	g.tick++
	var ev Events

	b := g.ball
	b.Step()

	maxX := g.cfg.BoardWidth - b.W
	if b.X < 0 || b.X > maxX {
		b.BounceX()
		b.X = math.Max(0, math.Min(maxX, b.X))
		ev.WallBounces++
	}

	switch {
	case b.Y < 0:
		ev.Misses[Top]++
		g.serve()
	case b.Y > g.cfg.BoardHeight-b.H:
		ev.Misses[Bottom]++
		g.serve()
	default:
		g.collide(&ev)
	}

	f := Frame{Tick: g.tick}
	for _, s := range sides {
		r := g.rackets[s]
		r.clearCommand()
		pos := r.X()
		dx, dy := g.Offsets(s)

		g.strategies[s].Act(r, dx, dy)

		req, applied := r.command(pos)
		f.Paddles[s] = Paddle{X: r.X(), Dx: dx, Dy: dy, Command: req, Applied: applied}
	}

	f.BallX, f.BallY = b.X, b.Y
	f.BallVX, f.BallVY = b.VX, b.VY
	return f, ev
}

func (g *Game) collide(ev *Events) {
	if g.tick-g.lastHit < g.cfg.CollisionCooldown {
		return
	}

	b := g.ball
	for _, s := range []Side{Bottom, Top} {
		r := g.rackets[s].body
		if !b.Overlaps(r) {
			continue
		}
		g.lastHit = g.tick
		ev.Hits[s]++

		quarter := r.W / 4
		if b.Right() < r.Left()+quarter || b.Left() > r.Right()-quarter {
			b.PowerBounce(g.cfg.PowerFactor)
			ev.PowerHits[s]++
		} else {
			b.BounceY()
		}
		return
	}
}

func (g *Game) serve() {
	g.ball.Serve()
	for _, s := range g.strategies {
		if r, ok := s.(control.Resetter); ok {
			r.Reset()
		}
	}
}
