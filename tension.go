package squircle

import "math"

// === Tension Mapping =======================================================

// Kappa is the classical handle length for approximating a quarter circle
// with a cubic Bézier curve, 4/3·(√2−1) ≈ 0.5523, measured as a fraction
// of the circle radius. It is the zero-tension baseline of the tension
// scale; 1/Kappa is the squircle ceiling.
const Kappa = 4.0 / 3.0 * (math.Sqrt2 - 1)

// Named landmarks on the display tension scale.
const (
	PresetCircle   = 0.0   // true circle approximation
	PresetOptical  = 13.0  // optically compensated roundness
	PresetType     = 20.0  // common for text typefaces
	PresetSquircle = 100.0 // maximum superellipticity
)

// Default parameter values for the solvers and the contour driver.
const (
	DefaultTension    = PresetType
	DefaultAdjustment = 50.0
	DefaultSlant      = 0.0
)

// InternalTension maps tension from the user-facing 0–100 display scale
// to the internal 0–1 scale. The mapping is quadratic: real-world tension
// values cluster below display 20, and quadratic compression widens the
// usable range at the low end.
func InternalTension(display float64) float64 {
	return (display / 100) * (display / 100)
}

// DisplayTension maps an internal tension value back to the display
// scale. Inverse of InternalTension; negative input clamps to 0.
func DisplayTension(internal float64) float64 {
	return 100 * math.Sqrt(math.Max(internal, 0))
}
