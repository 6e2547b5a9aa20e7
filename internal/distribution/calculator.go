package distribution

import (
	"math"

	"github.com/san-kum/fieldlab/internal/field"
)

// Center is where every distribution sits in display coordinates.
var Center = field.V(300, 200)

// Linear footprints are drawn as a band of this half height around the axis.
const LinearHalfHeight = 20.0

type Calculator struct {
	K       float64
	Epsilon float64
	Center  field.Vec2
	Scaler  MagnitudeScaler
}

func NewCalculator() *Calculator {
	return &Calculator{
		K:       field.CoulombConstant,
		Epsilon: field.VacuumPermittivity,
		Center:  Center,
		Scaler:  DefaultScaler{},
	}
}

// FieldAtLinear treats the rod's charge as concentrated on its axis: the
// magnitude is kQ/d² in the perpendicular distance d and the direction is
// vertical, pointing away from the axis.
func (c *Calculator) FieldAtLinear(density, length, x, y float64) field.Sample {
	d := math.Abs(y - c.Center.Y)
	if d == 0 {
		return field.Sample{}
	}
	q := density * length
	angle := -math.Pi / 2
	if y > c.Center.Y {
		angle = math.Pi / 2
	}
	return oriented(c.K*q/(d*d), angle)
}

// FieldAtSurface uses the point-charge field outside the square and the
// infinite-sheet value inside it.
func (c *Calculator) FieldAtSurface(density, side, x, y float64) field.Sample {
	disp := field.V(x, y).Sub(c.Center)
	r := disp.Norm()
	if r == 0 {
		return field.Sample{}
	}
	half := side / 2
	if math.Abs(disp.X) > half || math.Abs(disp.Y) > half {
		q := density * side * side
		return oriented(c.K*q/(r*r), disp.Angle())
	}
	return oriented(density/(2*c.Epsilon), math.Pi/2)
}

// FieldAtVolumetric is the uniformly charged sphere: kQ/r² outside and
// kQr/R³ inside, continuous at r = R.
func (c *Calculator) FieldAtVolumetric(density, radius, x, y float64) field.Sample {
	disp := field.V(x, y).Sub(c.Center)
	r := disp.Norm()
	q := density * sphereVolume(radius)

	var mag float64
	switch {
	case r > radius:
		mag = c.K * q / (r * r)
	case radius > 0:
		mag = c.K * q * r / (radius * radius * radius)
	}
	return oriented(mag, disp.Angle())
}

// FieldAt dispatches on p.Kind. An unknown kind yields the zero sample.
func (c *Calculator) FieldAt(p Params, x, y float64) field.Sample {
	switch p.Kind {
	case Linear:
		return c.FieldAtLinear(p.Density, p.Size, x, y)
	case Surface:
		return c.FieldAtSurface(p.Density, p.Size, x, y)
	case Volumetric:
		return c.FieldAtVolumetric(p.Density, p.Size, x, y)
	}
	return field.Sample{}
}

// IsInside reports whether (x, y) falls within the drawn footprint.
func (c *Calculator) IsInside(kind Kind, x, y, size float64) bool {
	switch kind {
	case Linear:
		return x >= c.Center.X-size/2 && x <= c.Center.X+size/2 &&
			y >= c.Center.Y-LinearHalfHeight && y <= c.Center.Y+LinearHalfHeight
	case Surface:
		return x >= c.Center.X-size/2 && x <= c.Center.X+size/2 &&
			y >= c.Center.Y-size/2 && y <= c.Center.Y+size/2
	case Volumetric:
		return field.V(x, y).Dist(c.Center) < size
	}
	return false
}

// oriented keeps magnitudes non-negative: a negative signed value means the
// field points the other way.
func oriented(signed, angle float64) field.Sample {
	if signed >= 0 {
		return field.Sample{Magnitude: signed, Angle: angle}
	}
	angle += math.Pi
	if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return field.Sample{Magnitude: -signed, Angle: angle}
}
