package fuzzy

// Firing is one rule after evaluation: its activation and constant output.
type Firing struct {
	Strength float64
	Output   float64
}

// And is the min t-norm.
func And(a float64, rest ...float64) float64 {
	m := a
	for _, v := range rest {
		if v < m {
			m = v
		}
	}
	return m
}

// WeightedAverage is the zero-order Sugeno defuzzifier. Rules with
// non-positive strength are skipped; a total strength at or below eps
// yields 0.
func WeightedAverage(firings []Firing, eps float64) float64 {
	num, den := 0.0, 0.0
	for _, f := range firings {
		if f.Strength <= 0 {
			continue
		}
		num += f.Strength * f.Output
		den += f.Strength
	}
	if den <= eps {
		return 0
	}
	return num / den
}
