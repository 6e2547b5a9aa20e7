// Package viz draws field vectors in the terminal.
//
// [Canvas] is a Braille pixel grid (2x4 dots per cell) that rasterises
// vectors sampled on the 700x500 display plane. [Explorer] is a Bubble Tea
// model for moving and recharging multipole poles while the field redraws.
//
// # Key Bindings
//
//	Tab     - Select next pole
//	Arrows  - Move selected pole
//	+ / -   - Raise or lower its charge
//	V       - Toggle field lines / vector grid
//	T       - Cycle color themes
//	Q       - Quit
package viz
