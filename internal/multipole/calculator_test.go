package multipole

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fieldlab/internal/charge"
	"github.com/san-kum/fieldlab/internal/field"
)

func poles(coords ...[3]float64) []charge.Pole {
	out := make([]charge.Pole, len(coords))
	for i, s := range coords {
		out[i] = charge.New(s[0], s[1], s[2], 15)
	}
	return out
}

var _ = Describe("DipoleField", func() {
	var c *Calculator

	BeforeEach(func() {
		c = NewCalculator()
	})

	It("points away from a positive pole", func() {
		e := c.DipoleField(poles([3]float64{0, 0, 1}), 10, 0)
		Expect(e.Magnitude).To(BeNumerically("~", field.CoulombConstant/100, 1e-3))
		Expect(e.Angle).To(BeNumerically("~", 0, 1e-12))
		Expect(e.X).To(BeNumerically(">", 0))
	})

	It("points toward a negative pole", func() {
		e := c.DipoleField(poles([3]float64{0, 0, -1}), 10, 0)
		Expect(e.X).To(BeNumerically("<", 0))
		Expect(math.Abs(e.Angle)).To(BeNumerically("~", math.Pi, 1e-12))
	})

	It("superposes components", func() {
		ps := poles([3]float64{100, 0, 1}, [3]float64{200, 0, -1})
		e := c.DipoleField(ps, 150, 0)
		// both contributions point from + to - along +x
		Expect(e.X).To(BeNumerically("~", 2*field.CoulombConstant/2500, 1e-3))
		Expect(e.Y).To(BeNumerically("~", 0, 1e-9))
		Expect(e.Magnitude).To(BeNumerically("~", math.Hypot(e.X, e.Y), 1e-9))
	})

	It("ignores neutral poles and zero separation", func() {
		ps := poles([3]float64{0, 0, 0}, [3]float64{50, 50, 2})
		e := c.DipoleField(ps, 50, 50)
		Expect(e.Magnitude).To(BeZero())
		Expect(math.IsNaN(e.Angle)).To(BeFalse())
	})

	It("does not modify the poles it reads", func() {
		ps := poles([3]float64{100, 0, 1}, [3]float64{200, 0, -1})
		before := append([]charge.Pole(nil), ps...)
		c.DipoleField(ps, 10, 10)
		Expect(ps).To(Equal(before))
	})
})

var _ = Describe("Classification", func() {
	DescribeTable("DetectDipole",
		func(coords [][3]float64, expected bool) {
			Expect(DetectDipole(poles(coords...))).To(Equal(expected))
		},
		Entry("opposite pair", [][3]float64{{100, 0, 1}, {200, 0, -1}}, true),
		Entry("opposite pair with neutral pole", [][3]float64{{100, 0, 1}, {150, 0, 0}, {200, 0, -2}}, true),
		Entry("no charges", [][3]float64{{0, 0, 0}, {1, 1, 0}}, false),
		Entry("single charge", [][3]float64{{0, 0, 1}}, false),
		Entry("same sign pair", [][3]float64{{0, 0, 1}, {10, 0, 3}}, false),
		Entry("three charges", [][3]float64{{0, 0, 1}, {10, 0, -1}, {20, 0, 1}}, false),
	)

	DescribeTable("DetectQuadrupole",
		func(coords [][3]float64, expected bool) {
			Expect(DetectQuadrupole(poles(coords...))).To(Equal(expected))
		},
		Entry("two and two", [][3]float64{{0, 0, 1}, {10, 0, -1}, {10, 10, 1}, {0, 10, -1}}, true),
		Entry("three and one", [][3]float64{{0, 0, 1}, {10, 0, 1}, {10, 10, 1}, {0, 10, -1}}, false),
		Entry("dipole", [][3]float64{{0, 0, 1}, {10, 0, -1}}, false),
		Entry("five charges", [][3]float64{{0, 0, 1}, {10, 0, -1}, {10, 10, 1}, {0, 10, -1}, {5, 5, 1}}, false),
		Entry("four poles, one neutral", [][3]float64{{0, 0, 1}, {10, 0, -1}, {10, 10, 0}, {0, 10, -1}}, false),
	)

	It("classifies the reference dipole", func() {
		ps := poles([3]float64{100, 0, 1}, [3]float64{200, 0, -1})
		Expect(DetectDipole(ps)).To(BeTrue())
		Expect(DetectQuadrupole(ps)).To(BeFalse())
		Expect(Classify(ps)).To(Equal(Dipole))
		Expect(DipoleMoment(ps)).To(BeNumerically("~", 1.0, 1e-12))
	})

	It("classifies a quadrupole", func() {
		ps := poles([3]float64{0, 0, 1}, [3]float64{10, 0, -1}, [3]float64{10, 10, 1}, [3]float64{0, 10, -1})
		Expect(Classify(ps)).To(Equal(Quadrupole))
		Expect(Classify(ps).String()).To(Equal("quadrupole"))
		Expect(Classify(nil)).To(Equal(None))
	})
})

var _ = Describe("DipoleMoment", func() {
	It("uses the magnitude of the first charge and the distance in meters", func() {
		ps := poles([3]float64{0, 0, -3}, [3]float64{300, 400, 3})
		Expect(DipoleMoment(ps)).To(BeNumerically("~", 3*5.0, 1e-12))
	})

	It("is zero unless exactly two poles are charged", func() {
		Expect(DipoleMoment(poles([3]float64{0, 0, 1}))).To(BeZero())
		Expect(DipoleMoment(poles([3]float64{0, 0, 1}, [3]float64{1, 0, 1}, [3]float64{2, 0, -1}))).To(BeZero())
	})
})

var _ = Describe("AveragePairwiseDistance", func() {
	It("averages over charged pairs only", func() {
		ps := poles([3]float64{0, 0, 1}, [3]float64{3, 4, -1}, [3]float64{100, 100, 0})
		Expect(AveragePairwiseDistance(ps)).To(BeNumerically("~", 5, 1e-12))
	})

	It("averages three pairs", func() {
		ps := poles([3]float64{0, 0, 1}, [3]float64{6, 0, -1}, [3]float64{0, 8, 1})
		Expect(AveragePairwiseDistance(ps)).To(BeNumerically("~", (6.0+8.0+10.0)/3, 1e-12))
	})

	It("is zero with fewer than two charged poles", func() {
		Expect(AveragePairwiseDistance(nil)).To(BeZero())
		Expect(AveragePairwiseDistance(poles([3]float64{0, 0, 1}, [3]float64{5, 5, 0}))).To(BeZero())
	})
})
