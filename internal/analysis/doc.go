// Package analysis inspects recorded matches and the controller itself.
//
//   - [Spectrum] and [DominantFrequency]: periodicity of a paddle's velocity
//   - [Surface]: the stateless controller response over a (dx, |dy|) grid
//   - [Summarize]: descriptive statistics of any sample series
//   - [Scatter]: a dx-versus-velocity portrait of recorded frames
//
// A paddle that oscillates around the ball shows up as a sharp peak:
//
//	f, _, _ := analysis.DominantFrequency(velocities, 60)
//	if f > 5 {
//	    // paddle is hunting
//	}
package analysis
