package handles

import (
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/squircle"
)

// Balance computes new handle positions for a cubic segment, realizing a
// generalized circular-arc approximation modified toward squircle-like
// curvature. Tension selects the position on the diamond–circle–squircle
// continuum, Adjustment additionally pulls oblong (eccentric) segments
// toward the squircle end. Endpoints P0 and P3 stay put.
//
// Balance returns the segment with P1 and P2 replaced, or unchanged
// together with the skip reason when the geometry is degenerate.
func Balance(seg Segment, par Params) (Segment, Outcome) {
	chord := squircle.Distance(seg.P0, seg.P3)
	if chord <= epsilon {
		return seg, SkipDegenerate
	}
	theta0, theta1, ok := squircle.TangentAngles(seg.P0, seg.P1, seg.P2, seg.P3)
	if !ok {
		return seg, SkipTangents
	}
	tension := squircle.InternalTension(par.Tension)
	adjustment := par.Adjustment / 100

	alpha := math.Abs(theta0) + math.Abs(theta1) // total turning angle
	beta := alpha / 2
	sin0, cos0 := math.Sincos(theta0)
	sin1, cos1 := math.Sincos(theta1)
	sinB, cosB := math.Sincos(beta)

	// Radii of the circular arcs through P0 and P3 subtending the two
	// departure angles, normalized to chord length 1 (law of sines), and
	// the arc's handle-length constant generalized from the classical
	// quarter-circle kappa. sin β vanishes only when both handles lie on
	// the chord; 0.5 and 2/3 are the straight-line limits.
	radius0, radius1 := 0.5, 0.5
	kappa := 2.0 / 3.0
	if sinB != 0 {
		radius := 1 / (2 * sinB)
		radius0 = radius * math.Abs(sin1/sinB)
		radius1 = radius * math.Abs(sin0/sinB)
		kappa = 4.0 / 3.0 * (1 - cosB) / sinB
	}

	// Superellipticity: 1/Kappa−1 is the multiplicative headroom between
	// the circle baseline and the squircle ceiling.
	headroom := 1/squircle.Kappa - 1
	s := tension * headroom

	// Eccentricity compensation: sin(θ0−θ1) measures the angular asymmetry
	// of the segment; the adjustment pulls skewed segments toward the
	// ceiling regardless of tension.
	eccentricity := math.Abs(sin0*cos1 - cos0*sin1)
	s += (headroom - s) * eccentricity * adjustment

	// Damping for small total turning angles, so that chains of segments
	// approximating an almost straight curve stay put.
	angleFactor := (1 - math.Cos(alpha)) * (1 - math.Cos(alpha))
	if angleFactor > 1 {
		angleFactor = 1
	}
	s *= angleFactor
	kappa *= 1 + s
	tracer().Debugf("balance: θ0=%.5g θ1=%.5g κ=%.5g", theta0, theta1, kappa)

	h1 := radius0 * kappa
	h2 := radius1 * kappa
	phi := squircle.Angle(seg.P0, seg.P3)
	sin01, cos01 := math.Sincos(phi + theta0)
	sin23, cos23 := math.Sincos(phi - theta1)
	seg.P1 = seg.P0 + arithm.P(cos01*h1*chord, sin01*h1*chord)
	seg.P2 = seg.P3 - arithm.P(cos23*h2*chord, sin23*h2*chord)
	return seg, Adjusted
}
