package multipole

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fieldlab/internal/charge"
	"github.com/san-kum/fieldlab/internal/field"
)

var _ = Describe("GenerateFieldLines", func() {
	var c *Calculator

	BeforeEach(func() {
		c = NewCalculator()
	})

	It("draws nothing for a single charge", func() {
		Expect(c.GenerateFieldLines(poles([3]float64{350, 250, 1}), DefaultLineOptions())).To(BeEmpty())
	})

	It("draws a ring per pole plus midpoint segments for a centered dipole", func() {
		ps := poles([3]float64{250, 250, 1}, [3]float64{450, 250, -1})
		segs := c.GenerateFieldLines(ps, DefaultLineOptions())
		Expect(segs).To(HaveLen(2*8 + 4))

		for _, s := range segs[:16] {
			Expect(s.Length).To(BeNumerically(">=", 15))
			Expect(s.Length).To(BeNumerically("<=", 40))
		}
		for _, s := range segs[16:] {
			Expect(s.Length).To(BeNumerically(">=", 20))
			Expect(s.Length).To(BeNumerically("<=", 35))
			Expect(s.Origin.Dist(field.V(350, 250))).To(BeNumerically("~", 30, 1e-9))
		}
		for _, s := range segs {
			Expect(s.Weight).To(BeNumerically(">=", 1))
			Expect(s.Weight).To(BeNumerically("<=", 3))
			Expect(s.End.Dist(s.Origin)).To(BeNumerically("~", s.Length, 1e-9))
		}
	})

	It("drops ring start points outside the canvas", func() {
		ps := poles([3]float64{60, 250, 1}, [3]float64{450, 250, -1})
		segs := c.GenerateFieldLines(ps, DefaultLineOptions())

		for _, s := range segs[:len(segs)-4] {
			Expect(s.Origin.X).To(BeNumerically(">=", CanvasMargin))
			Expect(s.Origin.X).To(BeNumerically("<=", CanvasWidth-CanvasMargin))
			Expect(s.Origin.Y).To(BeNumerically(">=", CanvasMargin))
			Expect(s.Origin.Y).To(BeNumerically("<=", CanvasHeight-CanvasMargin))
		}
		Expect(len(segs)).To(BeNumerically("<", 2*8+4))
	})

	It("skips midpoint segments for more than two charges", func() {
		ps := poles([3]float64{200, 150, 1}, [3]float64{400, 150, -1}, [3]float64{400, 350, 1}, [3]float64{200, 350, -1})
		Expect(c.GenerateFieldLines(ps, DefaultLineOptions())).To(HaveLen(4 * 8))
	})
})

var _ = Describe("GenerateVectorField", func() {
	var (
		c  *Calculator
		ps []charge.Pole
	)

	BeforeEach(func() {
		c = NewCalculator()
		ps = poles([3]float64{250, 250, 1}, [3]float64{450, 250, -1}, [3]float64{350, 100, 0})
	})

	It("keeps every vector away from every pole", func() {
		vectors := c.GenerateVectorField(ps, 700, 500, 12)
		Expect(vectors).NotTo(BeEmpty())
		for _, v := range vectors {
			for _, p := range ps {
				Expect(v.Origin.Dist(p.Position)).To(BeNumerically(">=", PoleExclusion))
			}
		}
	})

	It("clamps lengths and weights", func() {
		for _, v := range c.GenerateVectorField(ps, 700, 500, 20) {
			Expect(v.Length).To(BeNumerically(">=", 8))
			Expect(v.Length).To(BeNumerically("<=", 20))
			Expect(v.Weight).To(BeNumerically(">=", 0.5))
			Expect(v.Weight).To(BeNumerically("<=", 1.5))
		}
	})

	It("samples an inset grid in scan order", func() {
		vectors := c.GenerateVectorField(ps, 700, 500, 0)
		first := vectors[0].Origin
		Expect(first).To(Equal(field.V(5, 5)))
		for i := 1; i < len(vectors); i++ {
			a, b := vectors[i-1].Origin, vectors[i].Origin
			Expect(b.X > a.X || (b.X == a.X && b.Y > a.Y)).To(BeTrue())
			Expect(b.X).To(BeNumerically("<", 700-5))
			Expect(b.Y).To(BeNumerically("<", 500-5))
			Expect(math.Mod(b.X-5, DefaultVectorSpacing)).To(BeNumerically("~", 0, 1e-9))
		}
	})

	It("emits nothing when every pole is neutral", func() {
		neutral := poles([3]float64{100, 100, 0})
		Expect(c.GenerateVectorField(neutral, 300, 300, 12)).To(BeEmpty())
	})
})
