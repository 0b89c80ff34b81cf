package pong

// Rect is an axis-aligned box with its origin at the top-left corner and
// y growing downwards.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether the interiors intersect; touching edges do not
// count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() && o.Left() < r.Right() &&
		r.Top() < o.Bottom() && o.Top() < r.Bottom()
}

// Ball is a square body with a constant velocity between bounces.
type Ball struct {
	Rect
	VX, VY float64

	startX, startY, startSpeed float64
}

func NewBall(cfg Config) *Ball {
	b := &Ball{
		startX:     cfg.BoardWidth/2 - cfg.BallSize/2,
		startY:     cfg.BoardHeight/2 - cfg.BallSize/2,
		startSpeed: cfg.BallSpeed,
	}
	b.Rect = Rect{X: b.startX, Y: b.startY, W: cfg.BallSize, H: cfg.BallSize}
	b.VX, b.VY = cfg.BallSpeed, cfg.BallSpeed
	return b
}

func (b *Ball) Step() {
	b.X += b.VX
	b.Y += b.VY
}

func (b *Ball) BounceX() { b.VX = -b.VX }
func (b *Ball) BounceY() { b.VY = -b.VY }

// PowerBounce speeds the ball up by factor before bouncing it vertically.
func (b *Ball) PowerBounce(factor float64) {
	b.VX *= factor
	b.VY *= factor
	b.BounceY()
}

// Serve puts the ball back in the middle at start speed, heading up.
func (b *Ball) Serve() {
	b.X, b.Y = b.startX, b.startY
	b.VX, b.VY = b.startSpeed, b.startSpeed
	b.BounceY()
}
