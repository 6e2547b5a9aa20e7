package field

import "math"

const (
	// CoulombConstant is k in E = kq/r².
	CoulombConstant = 8.99e9
	// VacuumPermittivity is ε₀.
	VacuumPermittivity = 8.85e-12
)

type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

func (v Vec2) Norm() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Norm() }

// Angle is atan2(y, x).
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Polar returns a vector of length r pointing along angle.
func Polar(angle, r float64) Vec2 {
	return Vec2{math.Cos(angle) * r, math.Sin(angle) * r}
}

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Sample is the field at a single point.
type Sample struct {
	Magnitude float64 `json:"magnitude"`
	Angle     float64 `json:"angle"`
}

// Components splits the sample into cartesian parts.
func (s Sample) Components() Vec2 {
	return Polar(s.Angle, s.Magnitude)
}

// Vector is one arrow of a sampled grid. Magnitude keeps the physical
// value; Length is the display length the end point was built from.
type Vector struct {
	Origin    Vec2    `json:"origin"`
	End       Vec2    `json:"end"`
	Magnitude float64 `json:"magnitude"`
	Angle     float64 `json:"angle"`
	Length    float64 `json:"length"`
	Weight    float64 `json:"weight,omitempty"`
}

// NewVector builds an arrow starting at origin along s with display length l.
func NewVector(origin Vec2, s Sample, l float64) Vector {
	return Vector{
		Origin:    origin,
		End:       origin.Add(Polar(s.Angle, l)),
		Magnitude: s.Magnitude,
		Angle:     s.Angle,
		Length:    l,
	}
}

// Segment is a short piece of a field line.
type Segment = Vector

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// InverseSquare returns k|q|/r², or 0 when r is not positive.
func InverseSquare(q, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return CoulombConstant * math.Abs(q) / (r * r)
}
