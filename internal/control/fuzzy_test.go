package control_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fuzzpong/internal/control"
)

var classic = control.Geometry{BoardWidth: 800, BoardHeight: 400, PaddleWidth: 80, MaxSpeed: 10}

func newFuzzy(tuning control.Tuning) *control.Fuzzy {
	f, err := control.NewFuzzy(classic, tuning)
	Expect(err).NotTo(HaveOccurred())
	return f
}

var _ = Describe("Fuzzy", func() {
	var f *control.Fuzzy

	BeforeEach(func() {
		f = newFuzzy(control.DefaultTuning())
	})

	Describe("membership", func() {
		It("covers the horizontal universe with overlapping terms", func() {
			for x := -400.0; x <= 400.0; x += 0.25 {
				d := f.Horizontal(x)
				for label, v := range d {
					Expect(v).To(BeNumerically(">=", 0), "%s at %g", label, x)
					Expect(v).To(BeNumerically("<=", 1), "%s at %g", label, x)
				}
				Expect(d.Sum()).To(BeNumerically(">=", 1-1e-9), "sum at %g", x)
				Expect(d.Sum()).To(BeNumerically("<=", 2), "sum at %g", x)
			}
		})

		It("puts far_left at positive offsets", func() {
			Expect(f.Horizontal(400).Get(control.FarLeft)).To(Equal(1.0))
			Expect(f.Horizontal(-400).Get(control.FarRight)).To(Equal(1.0))
			Expect(f.Horizontal(0).Get(control.Center)).To(Equal(1.0))
		})

		It("clamps beyond the universe", func() {
			Expect(f.Horizontal(5000)).To(Equal(f.Horizontal(400)))
			Expect(f.Vertical(9000)).To(Equal(f.Vertical(400)))
		})

		It("grades vertical distance from near to far", func() {
			Expect(f.Vertical(0).Get(control.Near)).To(Equal(1.0))
			Expect(f.Vertical(272).Get(control.Mid)).To(BeNumerically("~", 1, 1e-12))
			Expect(f.Vertical(400).Get(control.Far)).To(Equal(1.0))
		})
	})

	Describe("EdgeShift", func() {
		It("follows the sign of dx and grows as the ball closes in", func() {
			near := f.EdgeShift(10, 50)
			far := f.EdgeShift(390, 50)
			Expect(near).To(BeNumerically("~", 0.9*0.25*80, 1e-12))
			Expect(far).To(BeNumerically("~", 0.05*0.25*80, 1e-12))
			Expect(f.EdgeShift(10, -50)).To(BeNumerically("~", -near, 1e-12))
		})
	})

	Describe("Infer", func() {
		It("evaluates the whole rule base", func() {
			tr := f.Explain(50, 10)
			Expect(tr.Rules).To(HaveLen(9))
			Expect(tr.Corrected).To(BeNumerically("~", 32, 1e-9))
			Expect(tr.Velocity).To(Equal(f.Infer(50, 10)))
		})

		It("saturates at the extremes of the universe", func() {
			for _, dy := range []float64{0, 100, 250, 399} {
				Expect(f.Infer(400, dy)).To(BeNumerically("~", -10, 1e-9))
				Expect(f.Infer(-400, dy)).To(BeNumerically("~", 10, 1e-9))
			}
		})

		It("is antisymmetric in dx", func() {
			for dx := -400.0; dx <= 400.0; dx += 7.3 {
				for _, dy := range []float64{0, 37, 150, 260, 330, 399} {
					Expect(f.Infer(dx, dy)).To(BeNumerically("~", -f.Infer(-dx, dy), 1e-9), "dx=%g dy=%g", dx, dy)
				}
			}
		})

		It("never exceeds max speed", func() {
			for dx := -400.0; dx <= 400.0; dx += 3.1 {
				for dy := 0.0; dy <= 400; dy += 20 {
					Expect(math.Abs(f.Infer(dx, dy))).To(BeNumerically("<=", 10))
				}
			}
		})

		It("snaps slow output to zero", func() {
			t := control.DefaultTuning()
			t.CutoffFraction = 0.5
			Expect(newFuzzy(t).Infer(5, 300)).To(BeZero())
		})
	})

	Describe("Velocity", func() {
		It("holds still inside the dead zone", func() {
			r := &fakeRacket{x: 360, w: 80}
			f.Act(r, 0.5, 50)
			Expect(r.moves).To(Equal([]float64{360}))

			Expect(f.Velocity(0, 200)).To(BeZero())
			Expect(f.Velocity(-1.19, 5)).To(BeZero())
		})

		It("moves hard toward a close ball", func() {
			v := f.Velocity(50, 10)
			Expect(v).To(BeNumerically("~", -10, 1e-9))
			Expect(newFuzzy(control.DefaultTuning()).Velocity(-50, 10)).To(BeNumerically("~", 10, 1e-9))
		})

		It("drifts gently toward a distant ball", func() {
			Expect(math.Abs(f.Velocity(5, 300))).To(BeNumerically("<", 8))
		})

		It("does not boost on the first tick", func() {
			Expect(f.Velocity(20, 290)).To(Equal(f.Infer(20, 290)))
		})

		It("boosts while the ball approaches", func() {
			f.Velocity(20, 300)
			boosted := f.Velocity(20, 290)
			plain := f.Infer(20, 290)

			Expect(math.Abs(boosted)).To(BeNumerically(">", math.Abs(plain)))
			Expect(boosted).To(BeNumerically("~", 1.1*plain, 1e-9))
			Expect(math.Abs(boosted)).To(BeNumerically("<=", 10))
		})

		It("clamps boosted velocity to max speed", func() {
			f.Velocity(50, 20)
			Expect(f.Velocity(50, 10)).To(BeNumerically("~", -10, 1e-9))
		})

		It("keeps boosted magnitude between plain and max speed", func() {
			for dx := 2.0; dx <= 400; dx += 11 {
				g := newFuzzy(control.DefaultTuning())
				g.Velocity(dx, 320)
				boosted := g.Velocity(dx, 300)
				plain := g.Infer(dx, 300)
				Expect(math.Abs(boosted)).To(BeNumerically(">=", math.Abs(plain)))
				Expect(math.Abs(boosted)).To(BeNumerically("<=", 10))
			}
		})

		It("ignores receding or hovering balls", func() {
			f.Velocity(20, 290)
			Expect(f.Velocity(20, 300)).To(Equal(f.Infer(20, 300)))
			Expect(f.Velocity(20, 300.0005)).To(Equal(f.Infer(20, 300.0005)))
			Expect(f.Velocity(20, 300.0001)).To(Equal(f.Infer(20, 300.0001)))
		})

		It("discards the sign of dy", func() {
			g := newFuzzy(control.DefaultTuning())
			Expect(f.Velocity(60, -120)).To(Equal(g.Velocity(60, 120)))
		})

		It("remembers dy through the dead zone", func() {
			f.Velocity(0, 300)
			Expect(f.Velocity(20, 290)).To(BeNumerically("~", 1.1*f.Infer(20, 290), 1e-9))
		})

		It("forgets dy on reset", func() {
			f.Velocity(20, 300)
			f.Reset()
			Expect(f.Velocity(20, 290)).To(Equal(f.Infer(20, 290)))
		})

		It("reproduces output sequences across instances", func() {
			g := newFuzzy(control.DefaultTuning())
			for i := 0; i < 500; i++ {
				dx := 300 * math.Sin(float64(i)*0.37)
				dy := 400 - math.Mod(float64(i)*13, 400)
				Expect(f.Velocity(dx, dy)).To(Equal(g.Velocity(dx, dy)))
			}
		})

		It("moves the racket by exactly one tick of velocity", func() {
			r := &fakeRacket{x: 100, w: 80}
			f.Act(r, 50, 10)
			Expect(r.moves).To(HaveLen(1))
			Expect(r.moves[0]).To(BeNumerically("~", 90, 1e-9))
		})
	})

	Describe("construction", func() {
		It("rejects non-positive geometry", func() {
			_, err := control.NewFuzzy(control.Geometry{BoardWidth: 800, BoardHeight: 0, PaddleWidth: 80, MaxSpeed: 10}, control.DefaultTuning())
			Expect(err).To(MatchError(control.ErrInvalidGeometry))
		})

		It("rejects a shrinking boost", func() {
			t := control.DefaultTuning()
			t.BoostGain = 0.9
			_, err := control.NewFuzzy(classic, t)
			Expect(err).To(MatchError(control.ErrInvalidTuning))
		})

		It("exposes tuning as parameters", func() {
			Expect(f.GetParams()).To(HaveKeyWithValue("boost_gain", 1.10))
			Expect(f.SetParam("boost_gain", 1.3)).To(Succeed())
			Expect(f.Tuning().BoostGain).To(Equal(1.3))
			Expect(f.SetParam("boost_gain", 0.2)).To(MatchError(control.ErrInvalidTuning))
			Expect(f.Tuning().BoostGain).To(Equal(1.3))
			Expect(f.SetParam("warp", 1)).NotTo(Succeed())
		})
	})
})

var _ = Describe("Consequent", func() {
	It("scales outputs by max speed", func() {
		Expect(control.FastLeft.Scale()).To(Equal(-1.0))
		Expect(control.MidRight.Scale()).To(Equal(0.9))
		Expect(control.DriftLeft.Scale()).To(Equal(-0.7))
		Expect(control.Stop.Scale()).To(BeZero())
		Expect(control.DriftRight.String()).To(Equal("drift_right"))
	})
})

var _ = Describe("TuningNames", func() {
	It("is sorted", func() {
		Expect(control.TuningNames()).To(Equal([]string{"boost_epsilon", "boost_gain", "cutoff", "dead_zone", "edge_factor"}))
	})
})
