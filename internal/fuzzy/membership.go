package fuzzy

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrEmptyUniverse indicates a universe whose Max is not above Min.
	ErrEmptyUniverse = errors.New("fuzzy: empty universe")

	// ErrBadBreakpoints indicates breakpoints that are not in ascending order.
	ErrBadBreakpoints = errors.New("fuzzy: breakpoints out of order")

	// ErrDuplicateLabel indicates two terms sharing a label in one set.
	ErrDuplicateLabel = errors.New("fuzzy: duplicate label")
)

// Universe is the closed interval a membership set is defined over.
type Universe struct {
	Min float64
	Max float64
}

// Clamp pins x to the universe bounds.
func (u Universe) Clamp(x float64) float64 {
	return math.Max(u.Min, math.Min(u.Max, x))
}

func (u Universe) Width() float64 { return u.Max - u.Min }

// MembershipFunc maps a crisp value to a degree in [0,1].
type MembershipFunc interface {
	Eval(x float64) float64
}

// Trapezoid rises linearly on [A,B], is 1 on [B,C] and falls on [C,D].
// A == B or C == D gives a shoulder that stays at 1 up to the edge.
type Trapezoid struct {
	A, B, C, D float64
}

// Triangle is a trapezoid whose plateau collapses to the single peak b.
func Triangle(a, b, c float64) Trapezoid {
	return Trapezoid{A: a, B: b, C: b, D: c}
}

func (t Trapezoid) Eval(x float64) float64 {
	switch {
	case x < t.A || x > t.D:
		return 0
	case x >= t.B && x <= t.C:
		return 1
	case x < t.B:
		return (x - t.A) / (t.B - t.A)
	default:
		return (t.D - x) / (t.D - t.C)
	}
}

func (t Trapezoid) validate() error {
	if !(t.A <= t.B && t.B <= t.C && t.C <= t.D) {
		return fmt.Errorf("%w: [%g %g %g %g]", ErrBadBreakpoints, t.A, t.B, t.C, t.D)
	}
	return nil
}

// Scale returns the trapezoid with every breakpoint multiplied by k (k > 0).
func (t Trapezoid) Scale(k float64) Trapezoid {
	return Trapezoid{A: t.A * k, B: t.B * k, C: t.C * k, D: t.D * k}
}
