// Package multipole computes the superposed field of a handful of discrete
// poles and recognises dipole and quadrupole arrangements.
package multipole

import (
	"math"

	"github.com/san-kum/fieldlab/internal/charge"
	"github.com/san-kum/fieldlab/internal/field"
)

// DisplayUnitsPerMeter converts display distances (cm) into meters.
const DisplayUnitsPerMeter = 100.0

type Calculator struct {
	K float64
}

func NewCalculator() *Calculator {
	return &Calculator{K: field.CoulombConstant}
}

// Field is the superposed field at a point, with its cartesian components.
type Field struct {
	Magnitude float64 `json:"magnitude"`
	Angle     float64 `json:"angle"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
}

func (f Field) Sample() field.Sample {
	return field.Sample{Magnitude: f.Magnitude, Angle: f.Angle}
}

// DipoleField sums the point-charge fields of every charged pole at (x, y).
// Positive poles push outward, negative poles pull inward. Poles sitting
// exactly on the query point contribute nothing.
func (c *Calculator) DipoleField(poles []charge.Pole, x, y float64) Field {
	at := field.V(x, y)
	var sum field.Vec2
	for _, p := range poles {
		if !p.HasCharge() {
			continue
		}
		disp := at.Sub(p.Position)
		d := disp.Norm()
		if d == 0 {
			continue
		}
		mag := c.K * math.Abs(p.Charge) / (d * d)
		sum = sum.Add(field.Polar(disp.Angle(), mag*float64(p.Sign())))
	}
	return Field{
		Magnitude: sum.Norm(),
		Angle:     sum.Angle(),
		X:         sum.X,
		Y:         sum.Y,
	}
}

// DetectDipole is true for exactly two charged poles of opposite sign.
func DetectDipole(poles []charge.Pole) bool {
	charged := charge.Charged(poles)
	if len(charged) != 2 {
		return false
	}
	return charged[0].Charge*charged[1].Charge < 0
}

// DetectQuadrupole is true for exactly four charged poles, two of each sign.
func DetectQuadrupole(poles []charge.Pole) bool {
	charged := charge.Charged(poles)
	if len(charged) != 4 {
		return false
	}
	pos, neg := charge.CountBySign(charged)
	return pos == 2 && neg == 2
}

// DipoleMoment is |q₁|·d for a pair of charged poles, d in meters. Any other
// number of charged poles gives 0.
func DipoleMoment(poles []charge.Pole) float64 {
	charged := charge.Charged(poles)
	if len(charged) != 2 {
		return 0
	}
	d := charged[0].DistanceTo(charged[1]) / DisplayUnitsPerMeter
	return math.Abs(charged[0].Charge) * d
}

// AveragePairwiseDistance is the mean distance over all pairs of charged
// poles, 0 when fewer than two poles are charged.
func AveragePairwiseDistance(poles []charge.Pole) float64 {
	charged := charge.Charged(poles)
	total, pairs := 0.0, 0
	for i := range charged {
		for j := i + 1; j < len(charged); j++ {
			total += charged[i].DistanceTo(charged[j])
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return total / float64(pairs)
}

// Configuration names a recognised multipole arrangement.
type Configuration int

const (
	None Configuration = iota
	Dipole
	Quadrupole
)

func (c Configuration) String() string {
	switch c {
	case Dipole:
		return "dipole"
	case Quadrupole:
		return "quadrupole"
	}
	return "none"
}

func Classify(poles []charge.Pole) Configuration {
	switch {
	case DetectDipole(poles):
		return Dipole
	case DetectQuadrupole(poles):
		return Quadrupole
	}
	return None
}
