package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/fuzzpong/internal/control"
)

// Grid is the controller response: Values[i][j] is the velocity for
// Dy[i] and Dx[j].
type Grid struct {
	Dx     []float64
	Dy     []float64
	Values [][]float64
}

// Surface evaluates the stateless controller over every (dx, |dy|) pair.
// Dead zone and boost are per-tick heuristics and are not included.
func Surface(geom control.Geometry, tuning control.Tuning, dxs, dys []float64) (*Grid, error) {
	f, err := control.NewFuzzy(geom, tuning)
	if err != nil {
		return nil, fmt.Errorf("surface: %w", err)
	}

	g := &Grid{Dx: dxs, Dy: dys, Values: make([][]float64, len(dys))}
	for i, dy := range dys {
		row := make([]float64, len(dxs))
		for j, dx := range dxs {
			row[j] = f.Infer(dx, dy)
		}
		g.Values[i] = row
	}
	return g, nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	return floats.Span(make([]float64, n), lo, hi)
}
