// Package field provides the shared primitives of the electric-field engine.
//
// The calculators in the sibling packages all speak the same small
// vocabulary defined here:
//
//   - [Vec2]: a position or displacement in the 2-D display plane
//   - [Sample]: magnitude and direction of the field at one point
//   - [Vector]: a sampled arrow ready for rendering
//   - [Segment]: a short field-line piece with a stroke weight
//
// Magnitudes are in raw physical units (N/C scale) unless a value has
// explicitly gone through a presentation scaler. Any computation at zero
// separation yields a magnitude of 0, never NaN or Inf.
//
// # Thread Safety
//
// Everything in this package is a value type or a pure function.
// [ParallelRows] fans grid columns out to goroutines but returns only once
// every column is done.
package field
