package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

var ErrTooFewSamples = errors.New("analysis: need at least two samples")

// Spectrum returns the one-sided power spectrum of samples, zero-padded to
// the next power of two. Bin k covers frequency k*fps/n where n is the
// padded length.
func Spectrum(samples []float64) []float64 {
	n := nextPow2(len(samples))
	padded := make([]float64, n)
	copy(padded, samples)

	coeffs := fft.FFTReal(padded)
	ps := make([]float64, n/2+1)
	for i := range ps {
		a := cmplx.Abs(coeffs[i])
		ps[i] = a * a / float64(n)
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest non-DC bin
// and its power.
func DominantFrequency(samples []float64, fps float64) (freq, power float64, err error) {
	if len(samples) < 2 {
		return 0, 0, ErrTooFewSamples
	}
	if fps <= 0 {
		return 0, 0, errors.New("analysis: fps must be positive")
	}

	ps := Spectrum(samples)
	n := 2 * (len(ps) - 1)

	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	return float64(best) * fps / float64(n), ps[best], nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	if p < 2 {
		p = 2
	}
	return p
}
