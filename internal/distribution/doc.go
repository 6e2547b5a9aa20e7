// Package distribution computes the field of a single continuous charge
// distribution centered in the display plane.
//
// Three footprints are supported:
//
//   - [Linear]: a rod of length L and linear density λ
//   - [Surface]: a square sheet of side s and surface density σ
//   - [Volumetric]: a sphere of radius R and volume density ρ
//
// The physics layer ([Calculator.FieldAt] and friends) returns true-unit
// magnitudes. Display lengths are produced by a separate [MagnitudeScaler]
// so the visual tuning can change without touching the formulas.
//
// The near-field rules are deliberate teaching approximations: the linear
// field is inverse-square in the perpendicular distance and purely
// vertical, and the sheet field is the infinite-plane value σ/(2ε₀).
package distribution
