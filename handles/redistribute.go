package handles

import (
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/squircle"
)

// Redistribute restores a designer's deliberate handle-length asymmetry
// after balancing, without disturbing the area enclosed by the curve.
// orig carries the pre-balance handles, bal the output of Balance for the
// same segment; the endpoints of both are expected to coincide.
//
// The signed area of a cubic with fixed endpoints and fixed handle
// directions is bilinear in the two handle lengths (Green's theorem).
// Imposing the original length ratio on the balanced directions turns
// area preservation into one quadratic equation; among its positive roots
// the one closest to the balanced length wins, favoring continuity with
// the balanced shape. Returns bal with new handle lengths, or unchanged
// together with the skip reason.
func Redistribute(orig, bal Segment) (Segment, Outcome) {
	u1, l1bal := unitAndLength(bal.P1 - bal.P0)
	u2, l2bal := unitAndLength(bal.P2 - bal.P3)
	if l1bal < epsilon || l2bal < epsilon {
		return bal, SkipDegenerate
	}
	l1orig := squircle.Distance(orig.P0, orig.P1)
	l2orig := squircle.Distance(orig.P3, orig.P2)
	if l1orig < epsilon || l2orig < epsilon {
		return bal, SkipDegenerate
	}

	// The triangle-percentage ratio isolates the designer's deliberate
	// asymmetry from the asymmetry already inherent in the balanced
	// solution.
	rbal := l1bal / l2bal
	rorig := l1orig / l2orig
	pct := rorig / rbal
	if math.Abs(pct-1) < epsilon {
		return bal, SkipMatched
	}
	rtarget := pct * rbal

	c0, c1, c2, c12 := areaCoefficients(bal.P0, bal.P3, u1, u2)
	atarget := c0 + c1*l1bal + c2*l2bal + c12*l1bal*l2bal

	// With h1 = rtarget·h2, A(h1,h2) = atarget is a quadratic in h2.
	h2, ok := solveLength(c12*rtarget, c1*rtarget+c2, c0-atarget, l2bal)
	if !ok {
		return bal, SkipNoRoot
	}
	h1 := rtarget * h2
	tracer().Debugf("redistribute: ratio %.4g -> %.4g, handles %.4g/%.4g", rbal, rtarget, h1, h2)
	bal.P1 = bal.P0 + scaled(u1, h1)
	bal.P2 = bal.P3 + scaled(u2, h2)
	return bal, Adjusted
}

// Coefficients of the bilinear area form A(h1,h2) = c0 + c1·h1 + c2·h2 +
// c12·h1·h2 for a cubic with endpoints p0, p3 and handles p0 + h1·u1,
// p3 + h2·u2, derived from the Green's theorem integral of a cubic
// Bézier.
func areaCoefficients(p0, p3, u1, u2 arithm.Pair) (c0, c1, c2, c12 float64) {
	x0, y0 := p0.F()
	x3, y3 := p3.F()
	u1x, u1y := u1.F()
	u2x, u2y := u2.F()
	c0 = (x0*y3 - x3*y0) / 2
	c1 = 6.0 / 20.0 * (u1x*(y3-y0) - u1y*(x3-x0))
	c2 = 6.0 / 20.0 * (u2x*(y3-y0) - u2y*(x3-x0))
	c12 = 3.0 / 20.0 * (u1x*u2y - u2x*u1y)
	return c0, c1, c2, c12
}

// Solve qa·h² + qb·h + qc = 0 for a positive handle length. With two
// positive roots the one closest to ref wins. When the quadratic term
// vanishes the equation degenerates to a linear one with a single root.
func solveLength(qa, qb, qc, ref float64) (float64, bool) {
	if math.Abs(qa) < 1e-12 {
		if qb == 0 {
			return 0, false
		}
		h := -qc / qb
		if h <= epsilon {
			return 0, false
		}
		return h, true
	}
	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	h, found := 0.0, false
	for _, root := range [2]float64{(-qb + sq) / (2 * qa), (-qb - sq) / (2 * qa)} {
		if root <= 0 {
			continue
		}
		if !found || math.Abs(root-ref) < math.Abs(h-ref) {
			h, found = root, true
		}
	}
	return h, found
}
