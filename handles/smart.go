package handles

import (
	"math"

	"github.com/npillmayer/squircle"
)

// SmartNode achieves G2 continuity at a smooth on-curve node by
// relocating the node itself, leaving all four handles untouched. The new
// node lies on the chord between the two near handles; its parameter
// along the chord derives from a geometric mean over the intersection of
// the two far-handle lines and is clamped to [0.05, 0.95] so the node
// cannot collapse onto either handle. Returns the window with N replaced,
// or unchanged together with the skip reason.
func SmartNode(w Window) (Window, Outcome) {
	if squircle.Distance(w.A2, w.B1) < epsilon {
		return w, SkipDegenerate
	}
	sect, _, _, ok := intersectLines(w.B1, w.B2, w.A2, w.A1)
	if !ok {
		return w, SkipParallel
	}
	db1 := squircle.Distance(w.B1, sect)
	da2 := squircle.Distance(w.A2, w.A1)
	if db1 < epsilon || da2 < epsilon {
		return w, SkipDegenerate
	}
	r0 := squircle.Distance(w.B2, w.B1) / db1
	r1 := squircle.Distance(sect, w.A2) / da2
	ratio := math.Sqrt(r0 * r1)

	t := ratio / (ratio + 1)
	if t < 0.05 {
		t = 0.05
	} else if t > 0.95 {
		t = 0.95
	}
	tracer().Debugf("smart: ratio=%.4g, t=%.4g", ratio, t)
	w.N = w.B1 + scaled(w.A2-w.B1, t)
	return w, Adjusted
}
