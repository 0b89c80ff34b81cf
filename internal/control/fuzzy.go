package control

import (
	"fmt"
	"math"

	"github.com/san-kum/fuzzpong/internal/fuzzy"
)

// sumEps guards the weighted-average denominator.
const sumEps = 1e-9

// Fuzzy maps the ball offset to a paddle velocity with a Takagi-Sugeno
// rule base, then applies a dead zone and an approach boost.
type Fuzzy struct {
	geom   Geometry
	tuning Tuning
	xSet   *fuzzy.Set
	ySet   *fuzzy.Set

	prevDy  float64
	hasPrev bool
}

func NewFuzzy(geom Geometry, tuning Tuning) (*Fuzzy, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	span := geom.BoardWidth / 2
	xSet, err := fuzzy.NewSet(fuzzy.Universe{Min: -span, Max: span}, horizontalTerms(span)...)
	if err != nil {
		return nil, fmt.Errorf("horizontal set: %w", err)
	}
	ySet, err := fuzzy.NewSet(fuzzy.Universe{Min: 0, Max: geom.BoardHeight}, verticalTerms(geom.BoardHeight)...)
	if err != nil {
		return nil, fmt.Errorf("vertical set: %w", err)
	}

	return &Fuzzy{geom: geom, tuning: tuning, xSet: xSet, ySet: ySet}, nil
}

func (f *Fuzzy) Name() string { return "fuzzy" }

func (f *Fuzzy) Geometry() Geometry { return f.geom }
func (f *Fuzzy) Tuning() Tuning     { return f.tuning }

// HorizontalSet is the fuzzy partition of dx; VerticalSet that of |dy|.
func (f *Fuzzy) HorizontalSet() *fuzzy.Set { return f.xSet }
func (f *Fuzzy) VerticalSet() *fuzzy.Set   { return f.ySet }

// Horizontal returns the membership degrees of a horizontal offset.
func (f *Fuzzy) Horizontal(dx float64) fuzzy.Degrees { return f.xSet.Degrees(dx) }

// Vertical returns the membership degrees of an absolute vertical offset.
func (f *Fuzzy) Vertical(dyAbs float64) fuzzy.Degrees { return f.ySet.Degrees(dyAbs) }

// EdgeShift is the signed correction aiming the paddle edge rather than its
// center at the ball, larger when the ball is vertically close.
func (f *Fuzzy) EdgeShift(dyAbs, dx float64) float64 {
	y := f.ySet.Degrees(dyAbs)
	w := edgeNear*y.Get(Near) + edgeMid*y.Get(Mid) + edgeFar*y.Get(Far)
	return math.Copysign(w*f.tuning.EdgeFactor*f.geom.PaddleWidth, dx)
}

// RuleTrace records one rule evaluation.
type RuleTrace struct {
	X, Y     string
	Then     Consequent
	Strength float64
	Output   float64
}

// Trace is a full account of one stateless inference.
type Trace struct {
	Dx        float64
	DyAbs     float64
	Shift     float64
	Corrected float64
	X         fuzzy.Degrees
	Y         fuzzy.Degrees
	Rules     []RuleTrace
	Raw       float64
	Velocity  float64
}

// Explain runs edge correction, rule evaluation, aggregation and the jitter
// cutoff, recording every intermediate value. It does not touch the boost
// memory.
func (f *Fuzzy) Explain(dx, dyAbs float64) Trace {
	shift := f.EdgeShift(dyAbs, dx)
	corrected := dx - shift

	tr := Trace{
		Dx:        dx,
		DyAbs:     dyAbs,
		Shift:     shift,
		Corrected: corrected,
		X:         f.xSet.Degrees(corrected),
		Y:         f.ySet.Degrees(dyAbs),
		Rules:     make([]RuleTrace, len(ruleBase)),
	}

	firings := make([]fuzzy.Firing, len(ruleBase))
	for i, r := range ruleBase {
		out := r.then.Scale() * f.geom.MaxSpeed
		s := r.strength(tr.X, tr.Y)
		firings[i] = fuzzy.Firing{Strength: s, Output: out}
		tr.Rules[i] = RuleTrace{X: r.x, Y: r.y, Then: r.then, Strength: s, Output: out}
	}

	tr.Raw = fuzzy.WeightedAverage(firings, sumEps)
	tr.Velocity = tr.Raw
	if math.Abs(tr.Velocity) < f.tuning.CutoffFraction*f.geom.MaxSpeed {
		tr.Velocity = 0
	}
	return tr
}

// Infer is the stateless part of the decision: crisp velocity for a raw
// horizontal offset and absolute vertical offset.
func (f *Fuzzy) Infer(dx, dyAbs float64) float64 {
	return f.Explain(dx, dyAbs).Velocity
}

// Velocity is one tick of the decision: dead zone, inference, approach
// boost, then remembering |dy| for the next tick.
func (f *Fuzzy) Velocity(dx, dy float64) float64 {
	dyAbs := math.Abs(dy)

	v := 0.0
	if math.Abs(dx) >= f.tuning.DeadZone {
		v = f.Infer(dx, dyAbs)
		if f.hasPrev && v != 0 && dyAbs < f.prevDy-f.tuning.BoostEpsilon {
			v *= f.tuning.BoostGain
			v = math.Max(-f.geom.MaxSpeed, math.Min(f.geom.MaxSpeed, v))
		}
	}

	f.prevDy = dyAbs
	f.hasPrev = true
	return v
}

// Act moves the racket by one tick's worth of velocity. The racket does its
// own board and speed clamping.
func (f *Fuzzy) Act(r Racket, dx, dy float64) {
	r.Move(r.X() + f.Velocity(dx, dy))
}

// Reset forgets the previous |dy| so the next tick cannot boost.
func (f *Fuzzy) Reset() {
	f.prevDy = 0
	f.hasPrev = false
}

func (f *Fuzzy) GetParams() map[string]float64 {
	return f.tuning.Params()
}

func (f *Fuzzy) SetParam(name string, value float64) error {
	t, err := f.tuning.With(name, value)
	if err != nil {
		return err
	}
	f.tuning = t
	return nil
}
