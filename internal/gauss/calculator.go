// Package gauss implements the Gauss's-law lesson: flux through a surface,
// divergence from an in/out flux balance, and the field of point and
// spherical charges, together with arrow and particle samples for drawing.
package gauss

import (
	"math"

	"github.com/san-kum/fieldlab/internal/field"
)

const (
	// ArrowCenterExclusion is the radius around the center where no arrow is drawn.
	ArrowCenterExclusion = 10.0
	// ArrowLengthDivisor converts N/C into display units.
	ArrowLengthDivisor = 1e6
	// ArrowMaxLength caps the display length of an arrow.
	ArrowMaxLength = 50.0

	DefaultParticleCount = 50
	ParticleSpeed        = 2.0
	ParticleSize         = 3.0
)

type Calculator struct {
	K       float64
	Epsilon float64
}

func NewCalculator() *Calculator {
	return &Calculator{K: field.CoulombConstant, Epsilon: field.VacuumPermittivity}
}

// Flux is E·A·cos(angle), angle measured between the field and the normal.
func (c *Calculator) Flux(e, area, angle float64) float64 {
	return e * area * math.Cos(angle)
}

func (c *Calculator) FluxMaxPositive(e, area float64) float64 { return c.Flux(e, area, 0) }

func (c *Calculator) FluxMaxNegative(e, area float64) float64 { return c.Flux(e, area, math.Pi) }

func (c *Calculator) FluxZero() float64 { return 0 }

// Divergence is the net outward flux per unit volume. A zero volume yields 0.
func (c *Calculator) Divergence(fluxIn, fluxOut, volume float64) float64 {
	if volume == 0 {
		return 0
	}
	return (fluxOut - fluxIn) / volume
}

// PointChargeField is k|q|/d², 0 at d = 0.
func (c *Calculator) PointChargeField(q, distance float64) float64 {
	if distance == 0 {
		return 0
	}
	return c.K * math.Abs(q) / (distance * distance)
}

// SphericalField is the field of a uniformly charged sphere of radius R.
// Inside, only the enclosed fraction (d/R)³ of the charge contributes.
func (c *Calculator) SphericalField(total, radius, distance float64) float64 {
	if distance == 0 {
		return 0
	}
	q := math.Abs(total)
	if distance < radius {
		q = q * distance * distance * distance / (radius * radius * radius)
	}
	return c.K * q / (distance * distance)
}

// Arrow is one radial arrow of the Gauss sphere grid.
type Arrow struct {
	Position  field.Vec2 `json:"position"`
	Magnitude float64    `json:"magnitude"`
	Angle     float64    `json:"angle"`
	Length    float64    `json:"length"`
}

// Vector converts the arrow into a drawable vector.
func (a Arrow) Vector() field.Vector {
	return field.NewVector(a.Position, field.Sample{Magnitude: a.Magnitude, Angle: a.Angle}, a.Length)
}

// GenerateArrows samples [0, gridW]×[0, gridH] in column-major order and
// returns the radial field of the charged sphere at every point further than
// ArrowCenterExclusion from its center.
func (c *Calculator) GenerateArrows(center field.Vec2, radius, charge, gridW, gridH, cellSize float64) []Arrow {
	xs := field.Steps(0, gridW, cellSize, true)
	ys := field.Steps(0, gridH, cellSize, true)

	return field.ParallelRows(len(xs), func(i int) []Arrow {
		col := make([]Arrow, 0, len(ys))
		for _, y := range ys {
			p := field.V(xs[i], y)
			disp := p.Sub(center)
			d := disp.Norm()
			if d < ArrowCenterExclusion {
				continue
			}
			e := c.SphericalField(charge, radius, d)
			col = append(col, Arrow{
				Position:  p,
				Magnitude: e,
				Angle:     disp.Angle(),
				Length:    math.Min(e/ArrowLengthDivisor, ArrowMaxLength),
			})
		}
		return col
	})
}

// Particle is a flow marker leaving the sphere's surface.
type Particle struct {
	ID       int        `json:"id"`
	Position field.Vec2 `json:"position"`
	Velocity field.Vec2 `json:"velocity"`
	Size     float64    `json:"size"`
	Life     float64    `json:"life"`
}

// Advance moves the particle by its velocity scaled by dt.
func (p Particle) Advance(dt float64) Particle {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	return p
}

// GenerateFlowParticles spaces count particles evenly around the circle of
// the given radius, each moving radially outward.
func (c *Calculator) GenerateFlowParticles(center field.Vec2, radius float64, count int) []Particle {
	if count <= 0 {
		return nil
	}
	out := make([]Particle, count)
	for i := range out {
		angle := float64(i) / float64(count) * 2 * math.Pi
		out[i] = Particle{
			ID:       i,
			Position: center.Add(field.Polar(angle, radius)),
			Velocity: field.Polar(angle, ParticleSpeed),
			Size:     ParticleSize,
			Life:     1.0,
		}
	}
	return out
}
