package distribution

import (
	"math"

	"github.com/san-kum/fieldlab/internal/field"
)

// MagnitudeScaler turns a physical magnitude into a display length.
type MagnitudeScaler interface {
	ScaleMagnitude(magnitude float64, kind Kind, density, size float64) float64
}

// DefaultScaler is the visual tuning the lessons were calibrated with.
type DefaultScaler struct{}

// Per-kind display divisor and maximum length before density/size
// adjustment.
var scaleTable = map[Kind]struct{ divisor, max float64 }{
	Linear:     {1e8, 60},
	Surface:    {1e9, 40},
	Volumetric: {1e10, 20},
}

func (DefaultScaler) ScaleMagnitude(magnitude float64, kind Kind, density, size float64) float64 {
	divisor, max := 1e10, 20.0
	if s, ok := scaleTable[kind]; ok {
		divisor, max = s.divisor, s.max
	}

	f := ScaleDensityFactor(density) * ScaleSizeFactor(size)
	divisor /= f
	max *= math.Sqrt(f)

	return math.Min(magnitude/divisor, max)
}

// ScaleDensityFactor grows display lengths with density, never below 0.1.
func ScaleDensityFactor(density float64) float64 {
	return math.Max(0.1, density/5)
}

// ScaleSizeFactor grows display lengths with size, never below 0.5.
func ScaleSizeFactor(size float64) float64 {
	return math.Max(0.5, size/100)
}

// GridDensityFactor tightens sampling for denser distributions.
func GridDensityFactor(density float64) float64 {
	return field.Clamp(density/3, 0.5, 1.5)
}

// GridSizeFactor tightens sampling for larger distributions.
func GridSizeFactor(size float64) float64 {
	return field.Clamp(size/150, 0.5, 1.5)
}

// GridSpacing is the adjusted cell size used by SampleVectorField.
func GridSpacing(cellSize, density, size float64) float64 {
	return cellSize / (GridDensityFactor(density) * GridSizeFactor(size))
}
