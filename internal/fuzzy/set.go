package fuzzy

import "fmt"

// Term is a linguistic label bound to its membership function.
type Term struct {
	Label string
	MF    MembershipFunc
}

// Set is an ordered collection of terms over one universe.
type Set struct {
	universe Universe
	terms    []Term
}

// Degrees maps each label of a set to its membership degree.
type Degrees map[string]float64

// Get returns the degree for label, 0 when the label is unknown.
func (d Degrees) Get(label string) float64 { return d[label] }

func (d Degrees) Sum() float64 {
	s := 0.0
	for _, v := range d {
		s += v
	}
	return s
}

// NewSet validates the universe and every trapezoid term.
func NewSet(u Universe, terms ...Term) (*Set, error) {
	if u.Width() <= 0 {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrEmptyUniverse, u.Min, u.Max)
	}

	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		if seen[t.Label] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, t.Label)
		}
		seen[t.Label] = true

		if tr, ok := t.MF.(Trapezoid); ok {
			if err := tr.validate(); err != nil {
				return nil, fmt.Errorf("term %q: %w", t.Label, err)
			}
		}
	}

	s := &Set{universe: u, terms: make([]Term, len(terms))}
	copy(s.terms, terms)
	return s, nil
}

func (s *Set) Universe() Universe { return s.universe }

// Labels returns the term labels in declaration order.
func (s *Set) Labels() []string {
	labels := make([]string, len(s.terms))
	for i, t := range s.terms {
		labels[i] = t.Label
	}
	return labels
}

// Degrees evaluates every term at x clamped into the universe.
func (s *Set) Degrees(x float64) Degrees {
	x = s.universe.Clamp(x)
	d := make(Degrees, len(s.terms))
	for _, t := range s.terms {
		d[t.Label] = t.MF.Eval(x)
	}
	return d
}
