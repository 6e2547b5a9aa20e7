package gauss

import (
	"fmt"
	"math"
)

// FluxText describes the flux for an angle in degrees between the field and
// the surface normal.
//
// The thresholds are kept exactly as the lessons shipped them: anything at
// or above 85° reads as zero flux, so the 175° branch can never be reached.
func FluxText(deg float64) string {
	switch {
	case deg <= 5:
		return "maximum positive flux"
	case deg >= 85:
		return "flux = 0"
	case deg >= 175:
		return "maximum negative flux"
	}
	return fmt.Sprintf("flux: %.2f", math.Cos(deg*math.Pi/180))
}

func DivergenceText(div float64) string {
	switch {
	case math.Abs(div) < 0.01:
		return "divergence = 0"
	case div > 0:
		return fmt.Sprintf("divergence = +%.2f", div)
	}
	return fmt.Sprintf("divergence = %.2f", div)
}

// Balance classifies a region by its in/out line count.
type Balance int

const (
	Neutral Balance = iota
	Source
	Sink
)

func (b Balance) String() string {
	switch b {
	case Source:
		return "source"
	case Sink:
		return "sink"
	}
	return "neutral"
}

func ClassifyBalance(in, out float64) Balance {
	switch {
	case in == out:
		return Neutral
	case out > in:
		return Source
	}
	return Sink
}

// Describe explains the balance for a learner.
func (b Balance) Describe() string {
	switch b {
	case Source:
		return "more lines leaving: positive divergence, a field source like a positive charge"
	case Sink:
		return "more lines entering: negative divergence, a field sink like a negative charge"
	}
	return "entering equals leaving: zero divergence, no charge accumulates"
}

// DescribeAngle explains how much of the surface the field crosses.
func DescribeAngle(deg float64) string {
	switch {
	case deg == 0:
		return "0°: maximum positive flux, lines cross the surface perpendicularly"
	case deg < 45:
		return "small angle: high flux, the field crosses almost the whole surface"
	case deg < 90:
		return "large angle: partial flux, fewer lines cross the surface"
	}
	return "90°: zero flux, the field is tangent to the surface"
}

// DescribeIntensity explains a divergence intensity level in [0, 10].
func DescribeIntensity(intensity float64) string {
	switch {
	case intensity < 4:
		return "low intensity: weak field, few lines leave the center"
	case intensity < 8:
		return "moderate field: divergence grows, lines spread faster"
	}
	return "very intense field: high divergence, many lines emerge at once"
}
