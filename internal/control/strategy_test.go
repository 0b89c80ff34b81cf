package control_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fuzzpong/internal/control"
)

var _ = Describe("Naive", func() {
	It("parks the left edge under the ball center", func() {
		r := &fakeRacket{x: 100, w: 80}
		control.NewNaive().Act(r, 30, -200)
		Expect(r.moves).To(Equal([]float64{110}))
	})
})

var _ = Describe("Human", func() {
	var (
		keys *control.Keys
		h    *control.Human
		r    *fakeRacket
	)

	BeforeEach(func() {
		keys = &control.Keys{}
		h = control.NewHuman(800, keys)
		r = &fakeRacket{x: 300, w: 80}
	})

	It("issues no command while idle", func() {
		h.Act(r, 100, 100)
		Expect(r.moves).To(BeEmpty())
	})

	It("heads for the held board edge", func() {
		keys.Press(control.MoveLeft)
		h.Act(r, 0, 0)
		keys.Press(control.MoveRight)
		h.Act(r, 0, 0)
		keys.Release()
		h.Act(r, 0, 0)
		Expect(r.moves).To(Equal([]float64{0, 800}))
	})

	It("defaults to an idle input", func() {
		control.NewHuman(800, nil).Act(r, 1, 1)
		Expect(r.moves).To(BeEmpty())
	})
})

var _ = Describe("Strategy set", func() {
	It("names every variant", func() {
		f, err := control.NewFuzzy(classic, control.DefaultTuning())
		Expect(err).NotTo(HaveOccurred())

		strategies := []control.Strategy{f, control.NewNaive(), control.NewHuman(800, nil)}
		names := make([]string, 0, len(strategies))
		for _, s := range strategies {
			names = append(names, s.Name())
		}
		Expect(names).To(Equal([]string{"fuzzy", "naive", "human"}))

		var _ control.Resetter = f
		var _ control.Configurable = f
	})
})
