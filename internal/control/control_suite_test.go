package control_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestControl(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Control Suite")
}

type fakeRacket struct {
	x, w  float64
	moves []float64
}

func (r *fakeRacket) X() float64     { return r.x }
func (r *fakeRacket) Width() float64 { return r.w }
func (r *fakeRacket) Move(x float64) { r.moves = append(r.moves, x) }
