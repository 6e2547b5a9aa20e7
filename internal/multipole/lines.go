package multipole

import (
	"math"

	"github.com/san-kum/fieldlab/internal/charge"
	"github.com/san-kum/fieldlab/internal/field"
)

// Canvas bounds for field-line start points.
const (
	CanvasWidth  = 700.0
	CanvasHeight = 500.0
	CanvasMargin = 50.0
)

const (
	linesPerPole       = 8
	poleRingRadius     = 60.0
	midpointLines      = 4
	midpointRing       = 30.0
	lineMinMagnitude   = 0.01
	vectorMinMagnitude = 1e-4

	// DefaultVectorSpacing is the grid step used when no cell size is given.
	DefaultVectorSpacing = 12.0
	vectorMargin         = 5.0
	// PoleExclusion keeps vectors away from every pole.
	PoleExclusion = 25.0
)

// LineOptions mirrors the knobs hosts pass for field lines. The ring layout
// is fixed per pole, so only defaults are filled in here.
type LineOptions struct {
	NumLines int
	Radius   float64
	Center   field.Vec2
}

func DefaultLineOptions() LineOptions {
	return LineOptions{NumLines: 16, Radius: 60, Center: field.V(300, 200)}
}

// chargeFactor is the total |q| used to scale lengths and weights, 1 when
// every pole is neutral.
func chargeFactor(poles []charge.Pole) float64 {
	if f := charge.TotalAbsCharge(poles); f > 0 {
		return f
	}
	return 1
}

func inCanvas(p field.Vec2) bool {
	return p.X >= CanvasMargin && p.X <= CanvasWidth-CanvasMargin &&
		p.Y >= CanvasMargin && p.Y <= CanvasHeight-CanvasMargin
}

// GenerateFieldLines emits a ring of short segments around every charged
// pole plus, for exactly two charged poles, a few segments around their
// midpoint. Nothing is drawn for fewer than two charged poles.
func (c *Calculator) GenerateFieldLines(poles []charge.Pole, _ LineOptions) []field.Segment {
	charged := charge.Charged(poles)
	if len(charged) < 2 {
		return nil
	}
	f := chargeFactor(poles)

	var out []field.Segment
	for _, p := range charged {
		for i := 0; i < linesPerPole; i++ {
			start := p.Position.Add(field.Polar(float64(i)/linesPerPole*2*math.Pi, poleRingRadius))
			if !inCanvas(start) {
				continue
			}
			if seg, ok := c.segment(poles, start, f, 15, 40, 2000); ok {
				out = append(out, seg)
			}
		}
	}

	if len(charged) == 2 {
		mid := charged[0].Position.Add(charged[1].Position).Scale(0.5)
		for i := 0; i < midpointLines; i++ {
			start := mid.Add(field.Polar(float64(i)/midpointLines*2*math.Pi, midpointRing))
			if seg, ok := c.segment(poles, start, f, 20, 35, 1500); ok {
				out = append(out, seg)
			}
		}
	}
	return out
}

func (c *Calculator) segment(poles []charge.Pole, start field.Vec2, f, minLen, maxLen, gain float64) (field.Segment, bool) {
	e := c.DipoleField(poles, start.X, start.Y)
	if e.Magnitude <= lineMinMagnitude {
		return field.Segment{}, false
	}
	seg := field.NewVector(start, e.Sample(), field.Clamp(e.Magnitude*gain*f, minLen, maxLen))
	seg.Weight = field.Clamp(e.Magnitude*1000*f, 1, 3)
	return seg, true
}

// GenerateVectorField samples the plane on a regular grid inset by a small
// margin. Points within PoleExclusion of any pole, charged or not, are
// skipped, as are points where the field is negligible. cellSize <= 0 uses
// DefaultVectorSpacing.
func (c *Calculator) GenerateVectorField(poles []charge.Pole, gridW, gridH, cellSize float64) []field.Vector {
	if cellSize <= 0 {
		cellSize = DefaultVectorSpacing
	}
	f := chargeFactor(poles)
	xs := field.Steps(vectorMargin, gridW-vectorMargin, cellSize, false)
	ys := field.Steps(vectorMargin, gridH-vectorMargin, cellSize, false)

	return field.ParallelRows(len(xs), func(i int) []field.Vector {
		col := make([]field.Vector, 0, len(ys))
		for _, y := range ys {
			at := field.V(xs[i], y)
			if nearPole(poles, at) {
				continue
			}
			e := c.DipoleField(poles, at.X, at.Y)
			if e.Magnitude <= vectorMinMagnitude {
				continue
			}
			v := field.NewVector(at, e.Sample(), field.Clamp(e.Magnitude*5000*f, 8, 20))
			v.Weight = field.Clamp(e.Magnitude*4000*f, 0.5, 1.5)
			col = append(col, v)
		}
		return col
	})
}

func nearPole(poles []charge.Pole, at field.Vec2) bool {
	for _, p := range poles {
		if at.Dist(p.Position) < PoleExclusion {
			return true
		}
	}
	return false
}
