// Package fuzzy provides the building blocks of a Takagi-Sugeno inference
// step:
//
//   - [Trapezoid]: piecewise-linear membership function (triangles are
//     degenerate trapezoids, see [Triangle])
//   - [Set]: labelled membership functions over a bounded [Universe]
//   - [WeightedAverage]: crisp output from fired rules
//
// # Usage
//
//	set, _ := fuzzy.NewSet(fuzzy.Universe{Min: 0, Max: 400},
//		fuzzy.Term{Label: "near", MF: fuzzy.Trapezoid{A: 0, B: 0, C: 120, D: 220}},
//		fuzzy.Term{Label: "far", MF: fuzzy.Trapezoid{A: 180, B: 300, C: 400, D: 400}},
//	)
//	deg := set.Degrees(150)
//	v := fuzzy.WeightedAverage([]fuzzy.Firing{
//		{Strength: deg.Get("near"), Output: -10},
//		{Strength: deg.Get("far"), Output: -7},
//	}, 1e-9)
//
// Everything in this package is immutable after construction and safe for
// concurrent use.
package fuzzy
