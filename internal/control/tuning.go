package control

import (
	"fmt"
	"math"
	"sort"
)

// Geometry carries the construction inputs of the fuzzy controller.
type Geometry struct {
	BoardWidth  float64
	BoardHeight float64
	PaddleWidth float64
	MaxSpeed    float64
}

func (g Geometry) Validate() error {
	for name, v := range map[string]float64{
		"board width":  g.BoardWidth,
		"board height": g.BoardHeight,
		"paddle width": g.PaddleWidth,
		"max speed":    g.MaxSpeed,
	} {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s = %g", ErrInvalidGeometry, name, v)
		}
	}
	return nil
}

// Tuning holds the hand-tuned constants of the temporal heuristics.
type Tuning struct {
	// DeadZone is the |dx| below which the paddle holds still.
	DeadZone float64 `yaml:"dead_zone" json:"dead_zone"`
	// CutoffFraction of max speed below which inferred velocity snaps to 0.
	CutoffFraction float64 `yaml:"cutoff" json:"cutoff"`
	// BoostGain scales velocity while the ball closes in vertically.
	BoostGain float64 `yaml:"boost_gain" json:"boost_gain"`
	// BoostEpsilon is the minimum |dy| decrease counted as approaching.
	BoostEpsilon float64 `yaml:"boost_epsilon" json:"boost_epsilon"`
	// EdgeFactor is the share of paddle width used for edge targeting.
	EdgeFactor float64 `yaml:"edge_factor" json:"edge_factor"`
}

const (
	DefaultDeadZone       = 1.2
	DefaultCutoffFraction = 0.01
	DefaultBoostGain      = 1.10
	DefaultBoostEpsilon   = 0.001
	DefaultEdgeFactor     = 0.25
)

func DefaultTuning() Tuning {
	return Tuning{
		DeadZone:       DefaultDeadZone,
		CutoffFraction: DefaultCutoffFraction,
		BoostGain:      DefaultBoostGain,
		BoostEpsilon:   DefaultBoostEpsilon,
		EdgeFactor:     DefaultEdgeFactor,
	}
}

func (t Tuning) Validate() error {
	switch {
	case !(t.DeadZone >= 0):
		return fmt.Errorf("%w: dead_zone = %g", ErrInvalidTuning, t.DeadZone)
	case !(t.CutoffFraction >= 0 && t.CutoffFraction < 1):
		return fmt.Errorf("%w: cutoff = %g", ErrInvalidTuning, t.CutoffFraction)
	case !(t.BoostGain >= 1):
		return fmt.Errorf("%w: boost_gain = %g", ErrInvalidTuning, t.BoostGain)
	case !(t.BoostEpsilon >= 0):
		return fmt.Errorf("%w: boost_epsilon = %g", ErrInvalidTuning, t.BoostEpsilon)
	case !(t.EdgeFactor >= 0):
		return fmt.Errorf("%w: edge_factor = %g", ErrInvalidTuning, t.EdgeFactor)
	}
	return nil
}

// Params flattens the tuning into the names used by sweeps and configs.
func (t Tuning) Params() map[string]float64 {
	return map[string]float64{
		"dead_zone":     t.DeadZone,
		"cutoff":        t.CutoffFraction,
		"boost_gain":    t.BoostGain,
		"boost_epsilon": t.BoostEpsilon,
		"edge_factor":   t.EdgeFactor,
	}
}

// With returns a copy with the named parameter replaced.
func (t Tuning) With(name string, value float64) (Tuning, error) {
	switch name {
	case "dead_zone":
		t.DeadZone = value
	case "cutoff":
		t.CutoffFraction = value
	case "boost_gain":
		t.BoostGain = value
	case "boost_epsilon":
		t.BoostEpsilon = value
	case "edge_factor":
		t.EdgeFactor = value
	default:
		return t, fmt.Errorf("control: unknown tuning parameter %q (known: %v)", name, TuningNames())
	}
	return t, t.Validate()
}

// TuningNames lists the tunable parameter names in sorted order.
func TuningNames() []string {
	names := make([]string, 0, 5)
	for name := range DefaultTuning().Params() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
