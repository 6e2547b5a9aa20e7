package gauss

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/fieldlab/internal/field"
)

func TestFlux(t *testing.T) {
	g := NewWithT(t)
	c := NewCalculator()

	g.Expect(c.Flux(3, 4, 0)).To(Equal(12.0))
	g.Expect(c.Flux(3, 4, math.Pi/2)).To(BeNumerically("~", 0, 1e-12))
	g.Expect(c.Flux(3, 4, math.Pi)).To(Equal(-12.0))
	g.Expect(c.FluxMaxPositive(3, 4)).To(Equal(12.0))
	g.Expect(c.FluxMaxNegative(3, 4)).To(Equal(-12.0))
	g.Expect(c.FluxZero()).To(BeZero())
}

func TestDivergence(t *testing.T) {
	g := NewWithT(t)
	c := NewCalculator()

	for _, f := range []float64{-3, 0, 1.5, 1e9} {
		for _, v := range []float64{0.1, 1, 250} {
			g.Expect(c.Divergence(f, f, v)).To(BeZero())
		}
	}
	g.Expect(c.Divergence(2, 6, 2)).To(Equal(2.0))
	g.Expect(c.Divergence(6, 2, 2)).To(Equal(-2.0))
	g.Expect(c.Divergence(1, 5, 0)).To(BeZero())
}

func TestPointChargeField(t *testing.T) {
	g := NewWithT(t)
	c := NewCalculator()

	for _, q := range []float64{-1, 0, 1e-6, 42} {
		g.Expect(c.PointChargeField(q, 0)).To(BeZero())
	}
	g.Expect(c.PointChargeField(-2, 2)).To(BeNumerically("~", field.CoulombConstant/2, 1e-3))
}

func TestSphericalField(t *testing.T) {
	c := NewCalculator()

	t.Run("interior branch", func(t *testing.T) {
		g := NewWithT(t)
		q, r, d := 1e-6, 0.1, 0.05
		enclosed := q * math.Pow(d, 3) / math.Pow(r, 3)
		interior := field.CoulombConstant * enclosed / (d * d)
		exterior := field.CoulombConstant * q / (d * d)

		got := c.SphericalField(q, r, d)
		g.Expect(got).To(BeNumerically("~", interior, interior*1e-12))
		g.Expect(got).NotTo(BeNumerically("~", exterior, exterior*1e-3))
	})

	t.Run("continuous at the boundary", func(t *testing.T) {
		g := NewWithT(t)
		in := c.SphericalField(1e-6, 0.1, 0.1-1e-12)
		out := c.SphericalField(1e-6, 0.1, 0.1+1e-12)
		g.Expect(in).To(BeNumerically("~", out, out*1e-6))
	})

	t.Run("exterior uses total charge", func(t *testing.T) {
		g := NewWithT(t)
		g.Expect(c.SphericalField(-1e-6, 0.1, 0.2)).To(BeNumerically("~", c.PointChargeField(1e-6, 0.2), 1e-9))
	})

	t.Run("center", func(t *testing.T) {
		g := NewWithT(t)
		g.Expect(c.SphericalField(1e-6, 0.1, 0)).To(BeZero())
	})
}

func TestGenerateArrows(t *testing.T) {
	g := NewWithT(t)
	c := NewCalculator()
	center := field.V(100, 100)

	arrows := c.GenerateArrows(center, 50, 1e-3, 200, 200, 10)
	g.Expect(arrows).NotTo(BeEmpty())

	for _, a := range arrows {
		d := a.Position.Dist(center)
		g.Expect(d).To(BeNumerically(">=", ArrowCenterExclusion))
		g.Expect(a.Length).To(BeNumerically("<=", ArrowMaxLength))
		g.Expect(a.Angle).To(BeNumerically("~", a.Position.Sub(center).Angle(), 1e-12))
		g.Expect(a.Magnitude).To(Equal(c.SphericalField(1e-3, 50, d)))
	}

	// only the center point lies closer than the exclusion radius
	g.Expect(arrows).To(HaveLen(21*21 - 1))
}

func TestGenerateFlowParticles(t *testing.T) {
	g := NewWithT(t)
	c := NewCalculator()
	center := field.V(300, 200)

	particles := c.GenerateFlowParticles(center, 80, 8)
	g.Expect(particles).To(HaveLen(8))

	for i, p := range particles {
		angle := float64(i) * 2 * math.Pi / 8
		g.Expect(p.ID).To(Equal(i))
		g.Expect(p.Position.Dist(center)).To(BeNumerically("~", 80, 1e-9))
		g.Expect(p.Velocity.Norm()).To(BeNumerically("~", ParticleSpeed, 1e-12))

		radial := p.Position.Sub(center)
		g.Expect(math.Remainder(radial.Angle()-angle, 2*math.Pi)).To(BeNumerically("~", 0, 1e-9))
		g.Expect(math.Remainder(p.Velocity.Angle()-angle, 2*math.Pi)).To(BeNumerically("~", 0, 1e-9))
	}

	g.Expect(c.GenerateFlowParticles(center, 80, 0)).To(BeEmpty())
}

func TestParticle_Advance(t *testing.T) {
	g := NewWithT(t)
	p := Particle{Position: field.V(0, 0), Velocity: field.V(2, 0)}

	g.Expect(p.Advance(1.5).Position).To(Equal(field.V(3, 0)))
	g.Expect(p.Position).To(Equal(field.V(0, 0)))
}

func TestSurface(t *testing.T) {
	g := NewWithT(t)
	s := Surface{Center: field.V(0, 0), Radius: 2, Charge: 1e-9}

	g.Expect(s.Area()).To(BeNumerically("~", 16*math.Pi, 1e-12))
	g.Expect(s.Volume()).To(BeNumerically("~", 32.0/3.0*math.Pi, 1e-12))
	g.Expect(s.EnclosedCharge(2)).To(BeNumerically("~", 2*s.Volume(), 1e-12))
	g.Expect(s.Flux(field.VacuumPermittivity)).To(BeNumerically("~", 1e-9/field.VacuumPermittivity, 1e-6))
	g.Expect(s.Validate()).To(Succeed())
	g.Expect(Surface{Radius: 0}.Validate()).To(MatchError(field.ErrInvalidParameter))
}
