package distribution

import "github.com/san-kum/fieldlab/internal/field"

// SampleVectorField samples the field over [0, gridW]×[0, gridH] and returns
// one arrow per grid point outside the footprint, in column-major scan
// order (x outer, y inner).
func (c *Calculator) SampleVectorField(p Params, gridW, gridH, cellSize float64) []field.Vector {
	step := GridSpacing(cellSize, p.Density, p.Size)
	xs := field.Steps(0, gridW, step, true)
	ys := field.Steps(0, gridH, step, true)

	scaler := c.Scaler
	if scaler == nil {
		scaler = DefaultScaler{}
	}

	return field.ParallelRows(len(xs), func(i int) []field.Vector {
		x := xs[i]
		col := make([]field.Vector, 0, len(ys))
		for _, y := range ys {
			if c.IsInside(p.Kind, x, y, p.Size) {
				continue
			}
			s := c.FieldAt(p, x, y)
			l := scaler.ScaleMagnitude(s.Magnitude, p.Kind, p.Density, p.Size)
			col = append(col, field.NewVector(field.V(x, y), s, l))
		}
		return col
	})
}
