package distribution

import (
	"math"
	"strings"

	"github.com/san-kum/fieldlab/internal/field"
)

// Kind selects the footprint of a distribution.
type Kind int

const (
	Linear Kind = iota + 1
	Surface
	Volumetric
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Surface:
		return "surface"
	case Volumetric:
		return "volumetric"
	}
	return "unknown"
}

// ParseKind accepts the English names and the Spanish lesson labels.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "lineal", "line":
		return Linear, nil
	case "surface", "superficial", "sheet":
		return Surface, nil
	case "volumetric", "volumetrica", "volumétrica", "sphere":
		return Volumetric, nil
	}
	return 0, &parseError{name: s}
}

type parseError struct{ name string }

func (e *parseError) Error() string {
	return field.ErrUnsupportedDistribution.Error() + ": " + e.name
}

func (e *parseError) Unwrap() error { return field.ErrUnsupportedDistribution }

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Params describes one distribution. Size is the length of a linear
// distribution, the side of a surface and the radius of a volume.
type Params struct {
	Kind    Kind    `json:"kind" yaml:"kind"`
	Density float64 `json:"density" yaml:"density"`
	Size    float64 `json:"size" yaml:"size"`
}

func NewLinear(density, length float64) Params {
	return Params{Kind: Linear, Density: density, Size: length}
}

func NewSurface(density, side float64) Params {
	return Params{Kind: Surface, Density: density, Size: side}
}

func NewVolumetric(density, radius float64) Params {
	return Params{Kind: Volumetric, Density: density, Size: radius}
}

// TotalCharge is the charge carried by the whole footprint.
func (p Params) TotalCharge() float64 {
	switch p.Kind {
	case Linear:
		return p.Density * p.Size
	case Surface:
		return p.Density * p.Size * p.Size
	case Volumetric:
		return p.Density * sphereVolume(p.Size)
	}
	return 0
}

// Validate rejects parameters the calculators would silently accept.
func (p Params) Validate() error {
	switch p.Kind {
	case Linear, Surface, Volumetric:
	default:
		return &parseError{name: p.Kind.String()}
	}
	if math.IsNaN(p.Density) || math.IsInf(p.Density, 0) {
		return field.Invalid("density", p.Density)
	}
	if !(p.Size > 0) || math.IsInf(p.Size, 0) {
		return field.Invalid("size", p.Size)
	}
	return nil
}

func sphereVolume(r float64) float64 {
	return 4.0 / 3.0 * math.Pi * r * r * r
}
