// Package control provides paddle decision strategies.
//
// Strategies implement [Strategy] and are asked once per tick to act on
// the signed offsets between their paddle and the ball:
//
//   - [Fuzzy]: Takagi-Sugeno inference controller
//   - [Naive]: moves the paddle straight under the ball
//   - [Human]: forwards directions from an [InputSource]
//
// # Usage
//
//	ctrl, _ := control.NewFuzzy(control.Geometry{
//		BoardWidth: 800, BoardHeight: 400, PaddleWidth: 80, MaxSpeed: 10,
//	}, control.DefaultTuning())
//	ctrl.Act(racket, dx, dy) // issues racket.Move(racket.X() + v)
//
// Each strategy owns its state. Strategies are not safe for concurrent
// use; give every paddle its own instance.
package control
