package gauss

import (
	"math"

	"github.com/san-kum/fieldlab/internal/field"
)

// Surface is a spherical Gaussian surface.
type Surface struct {
	Center field.Vec2 `json:"center" yaml:"center"`
	Radius float64    `json:"radius" yaml:"radius"`
	Charge float64    `json:"charge" yaml:"charge"`
}

func (s Surface) Area() float64 { return 4 * math.Pi * s.Radius * s.Radius }

func (s Surface) Volume() float64 { return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius }

// EnclosedCharge is the charge held by a uniform volume density.
func (s Surface) EnclosedCharge(density float64) float64 {
	return density * s.Volume()
}

// Flux is the total flux through the closed surface, Q/ε₀.
func (s Surface) Flux(epsilon float64) float64 {
	if epsilon == 0 {
		return 0
	}
	return s.Charge / epsilon
}

func (s Surface) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return field.Invalid("radius", s.Radius)
	}
	if math.IsNaN(s.Charge) || math.IsInf(s.Charge, 0) {
		return field.Invalid("charge", s.Charge)
	}
	return nil
}
