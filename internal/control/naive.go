package control

// Naive parks the paddle's left edge under the ball's center every tick.
type Naive struct{}

func NewNaive() *Naive {
	return &Naive{}
}

func (n *Naive) Name() string { return "naive" }

func (n *Naive) Act(r Racket, dx, dy float64) {
	ballX := r.X() + r.Width()/2 - dx
	r.Move(ballX)
}
