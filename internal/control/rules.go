package control

import "github.com/san-kum/fuzzpong/internal/fuzzy"

// Horizontal labels. "left" means the ball is left of the paddle, which is
// a positive dx.
const (
	FarRight = "far_right"
	Right    = "right"
	Center   = "center"
	Left     = "left"
	FarLeft  = "far_left"
)

// Vertical labels over |dy|.
const (
	Near = "near"
	Mid  = "mid"
	Far  = "far"
)

// Consequent names a constant rule output as a fraction of max speed.
type Consequent int

const (
	Stop Consequent = iota
	FastLeft
	MidLeft
	DriftLeft
	DriftRight
	MidRight
	FastRight
)

var consequents = [...]struct {
	name  string
	scale float64
}{
	Stop:       {"stop", 0},
	FastLeft:   {"fast_left", -1.0},
	MidLeft:    {"mid_left", -0.9},
	DriftLeft:  {"drift_left", -0.7},
	DriftRight: {"drift_right", 0.7},
	MidRight:   {"mid_right", 0.9},
	FastRight:  {"fast_right", 1.0},
}

func (c Consequent) String() string { return consequents[c].name }

// Scale is the signed fraction of max speed this consequent commands.
func (c Consequent) Scale() float64 { return consequents[c].scale }

// rule fires with the min of its horizontal and vertical degrees; an empty
// y makes it independent of vertical distance.
type rule struct {
	x, y string
	then Consequent
}

var ruleBase = []rule{
	{x: FarLeft, then: FastLeft},
	{x: FarRight, then: FastRight},
	{x: Left, y: Near, then: FastLeft},
	{x: Right, y: Near, then: FastRight},
	{x: Left, y: Mid, then: MidLeft},
	{x: Right, y: Mid, then: MidRight},
	{x: Left, y: Far, then: DriftLeft},
	{x: Right, y: Far, then: DriftRight},
	{x: Center, then: Stop},
}

func (r rule) strength(x, y fuzzy.Degrees) float64 {
	if r.y == "" {
		return x.Get(r.x)
	}
	return fuzzy.And(x.Get(r.x), y.Get(r.y))
}

// Horizontal breakpoints as fractions of the half board width. Each
// triangle's feet sit on its neighbours' peaks so degrees sum to 1.
const (
	centerPeak = 0.06
	farStart   = 0.22
)

func horizontalTerms(span float64) []fuzzy.Term {
	return []fuzzy.Term{
		{Label: FarRight, MF: fuzzy.Trapezoid{A: -1, B: -1, C: -farStart, D: -centerPeak}.Scale(span)},
		{Label: Right, MF: fuzzy.Triangle(-farStart, -centerPeak, 0).Scale(span)},
		{Label: Center, MF: fuzzy.Triangle(-centerPeak, 0, centerPeak).Scale(span)},
		{Label: Left, MF: fuzzy.Triangle(0, centerPeak, farStart).Scale(span)},
		{Label: FarLeft, MF: fuzzy.Trapezoid{A: centerPeak, B: farStart, C: 1, D: 1}.Scale(span)},
	}
}

func verticalTerms(height float64) []fuzzy.Term {
	return []fuzzy.Term{
		{Label: Near, MF: fuzzy.Trapezoid{A: 0, B: 0, C: 0.30, D: 0.55}.Scale(height)},
		{Label: Mid, MF: fuzzy.Triangle(0.48, 0.68, 0.85).Scale(height)},
		{Label: Far, MF: fuzzy.Trapezoid{A: 0.78, B: 0.92, C: 1, D: 1}.Scale(height)},
	}
}

// Edge-shift weights per vertical label; closer balls shift harder.
const (
	edgeNear = 0.9
	edgeMid  = 0.4
	edgeFar  = 0.05
)
