package fuzzy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fuzzpong/internal/fuzzy"
)

var _ = Describe("Trapezoid", func() {
	tr := fuzzy.Trapezoid{A: 0, B: 10, C: 20, D: 40}

	DescribeTable("Eval",
		func(x, want float64) {
			Expect(tr.Eval(x)).To(BeNumerically("~", want, 1e-12))
		},
		Entry("left of support", -1.0, 0.0),
		Entry("left foot", 0.0, 0.0),
		Entry("rising edge", 5.0, 0.5),
		Entry("plateau start", 10.0, 1.0),
		Entry("plateau end", 20.0, 1.0),
		Entry("falling edge", 30.0, 0.5),
		Entry("right foot", 40.0, 0.0),
		Entry("right of support", 41.0, 0.0),
	)

	It("treats equal breakpoints as shoulders", func() {
		left := fuzzy.Trapezoid{A: -5, B: -5, C: 0, D: 5}
		Expect(left.Eval(-5)).To(Equal(1.0))
		right := fuzzy.Trapezoid{A: 0, B: 5, C: 9, D: 9}
		Expect(right.Eval(9)).To(Equal(1.0))
	})

	It("builds triangles as degenerate trapezoids", func() {
		tri := fuzzy.Triangle(-2, 0, 2)
		Expect(tri.Eval(0)).To(Equal(1.0))
		Expect(tri.Eval(1)).To(BeNumerically("~", 0.5, 1e-12))
		Expect(tri.Eval(-1)).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("scales every breakpoint", func() {
		Expect(fuzzy.Triangle(-1, 0, 1).Scale(50)).To(Equal(fuzzy.Trapezoid{A: -50, B: 0, C: 0, D: 50}))
	})
})

var _ = Describe("Set", func() {
	var set *fuzzy.Set

	BeforeEach(func() {
		var err error
		set, err = fuzzy.NewSet(fuzzy.Universe{Min: 0, Max: 100},
			fuzzy.Term{Label: "low", MF: fuzzy.Trapezoid{A: 0, B: 0, C: 20, D: 60}},
			fuzzy.Term{Label: "high", MF: fuzzy.Trapezoid{A: 20, B: 60, C: 100, D: 100}},
		)
		Expect(err).NotTo(HaveOccurred())
	})

	It("keeps declaration order", func() {
		Expect(set.Labels()).To(Equal([]string{"low", "high"}))
	})

	It("clamps values outside the universe", func() {
		Expect(set.Degrees(-50)).To(Equal(set.Degrees(0)))
		Expect(set.Degrees(500)).To(Equal(set.Degrees(100)))
	})

	It("reports partial membership on shared boundaries", func() {
		d := set.Degrees(40)
		Expect(d.Get("low")).To(BeNumerically("~", 0.5, 1e-12))
		Expect(d.Get("high")).To(BeNumerically("~", 0.5, 1e-12))
		Expect(d.Sum()).To(BeNumerically("<=", 1.0+1e-12))
	})

	It("returns zero for unknown labels", func() {
		Expect(set.Degrees(10).Get("mid")).To(BeZero())
	})

	It("rejects an empty universe", func() {
		_, err := fuzzy.NewSet(fuzzy.Universe{Min: 3, Max: 3})
		Expect(err).To(MatchError(fuzzy.ErrEmptyUniverse))
	})

	It("rejects unordered breakpoints", func() {
		_, err := fuzzy.NewSet(fuzzy.Universe{Min: 0, Max: 1},
			fuzzy.Term{Label: "bad", MF: fuzzy.Trapezoid{A: 0.5, B: 0.2, C: 0.7, D: 1}})
		Expect(err).To(MatchError(fuzzy.ErrBadBreakpoints))
		Expect(err.Error()).To(ContainSubstring(`"bad"`))
	})

	It("rejects duplicate labels", func() {
		t := fuzzy.Term{Label: "x", MF: fuzzy.Triangle(0, 0.5, 1)}
		_, err := fuzzy.NewSet(fuzzy.Universe{Min: 0, Max: 1}, t, t)
		Expect(err).To(MatchError(fuzzy.ErrDuplicateLabel))
	})
})

var _ = Describe("WeightedAverage", func() {
	It("averages outputs by strength", func() {
		v := fuzzy.WeightedAverage([]fuzzy.Firing{
			{Strength: 0.25, Output: -10},
			{Strength: 0.75, Output: 0},
		}, 1e-9)
		Expect(v).To(BeNumerically("~", -2.5, 1e-12))
	})

	It("skips rules that do not fire", func() {
		v := fuzzy.WeightedAverage([]fuzzy.Firing{
			{Strength: 0, Output: 100},
			{Strength: -1, Output: 100},
			{Strength: 0.5, Output: 7},
		}, 1e-9)
		Expect(v).To(BeNumerically("~", 7, 1e-12))
	})

	It("returns zero when nothing fires", func() {
		Expect(fuzzy.WeightedAverage(nil, 1e-9)).To(BeZero())
		Expect(fuzzy.WeightedAverage([]fuzzy.Firing{{Strength: 1e-12, Output: 9}}, 1e-9)).To(BeZero())
	})

	It("uses min as the conjunction", func() {
		Expect(fuzzy.And(0.4, 0.9, 0.6)).To(Equal(0.4))
		Expect(fuzzy.And(0.3)).To(Equal(0.3))
	})
})
