package handles

import (
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/squircle"
)

// SmoothNode enforces G2 (curvature) continuity at a smooth on-curve node
// by scaling the two near handles A2 and B1; far handles and the node
// itself stay put.
//
// Curvature from one side of the node is taken proportional to the
// perpendicular offset of that side's far handle over the squared near
// handle length. Matching both sides fixes the ratio of the new lengths;
// the lengths themselves minimize the squared relative deviation from the
// balanced input. Each handle is clamped at the intersection of its
// segment's two control polygon legs so that it cannot cross the far
// handle line. Returns the window with A2 and B1 replaced, or unchanged
// together with the skip reason.
func SmoothNode(w Window) (Window, Outcome) {
	ua, laBal := unitAndLength(w.A2 - w.N)
	ub, lbBal := unitAndLength(w.B1 - w.N)
	if laBal < epsilon || lbBal < epsilon {
		return w, SkipDegenerate
	}

	// Perpendicular offsets of the far handles from the tangent line
	// through N. Opposite signs put the curvature centers on opposite
	// sides: the node is an inflection and no scaling can match G2. A
	// vanishing offset means zero curvature on that side, same verdict.
	normal := perp(ub)
	dperpA := dot(w.A1-w.N, normal)
	dperpB := dot(w.B2-w.N, normal)
	if math.Abs(dperpA) < epsilon || math.Abs(dperpB) < epsilon {
		return w, SkipInflection
	}
	if (dperpA > 0) != (dperpB > 0) {
		return w, SkipInflection
	}
	rho := math.Sqrt(math.Abs(dperpB) / math.Abs(dperpA))

	// Least-squares optimum of the two relative deviations under the
	// constraint Lb = ρ·La.
	la := laBal * lbBal * (lbBal + rho*laBal) / (lbBal*lbBal + rho*rho*laBal*laBal)
	if laMax, ok := clampLength(w.P0, w.A1, w.N, w.A2); ok && la > laMax {
		la = laMax
	}
	if lbMax, ok := clampLength(w.P3, w.B2, w.N, w.B1); ok && la > lbMax/rho {
		la = lbMax / rho
	}
	if la <= 0 {
		return w, SkipDegenerate
	}
	lb := rho * la
	tracer().Debugf("smooth: ρ=%.4g, near handles %.4g/%.4g", rho, la, lb)
	w.A2 = w.N + scaled(ua, la)
	w.B1 = w.N + scaled(ub, lb)
	return w, Adjusted
}

// clampLength bounds a near handle: it intersects the far leg of the
// control polygon (outer→far) with the near leg (node→near) and returns
// the intersection's distance from the node. ok is false when the legs
// are parallel or the intersection lies behind either leg's base point;
// the handle is unconstrained then.
func clampLength(outer, far, node, near arithm.Pair) (float64, bool) {
	p, s, t, ok := intersectLines(outer, far, node, near)
	if !ok || s <= 0 || t <= 0 {
		return 0, false
	}
	return squircle.Distance(node, p), true
}
