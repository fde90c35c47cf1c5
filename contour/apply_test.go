package contour

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/squircle"
	"github.com/stretchr/testify/assert"
)

// approxPairs compares coordinates within 1e-9 font units.
var approxPairs = cmp.Comparer(func(a, b arithm.Pair) bool {
	return math.Abs(a.X()-b.X()) <= 1e-9 && math.Abs(a.Y()-b.Y()) <= 1e-9
})

func TestApplyCircleFixedPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ring := circleContour(100)
	got, report, err := Apply(ring, Options{Tension: 0, Adjustment: 0, Mode: ModeBalanced})
	assert.NoError(t, err)
	assert.Equal(t, 4, report.Balanced)
	assert.Equal(t, 0, report.SkippedSegments)
	if diff := cmp.Diff(ring, got, approxPairs); diff != "" {
		t.Errorf("circle is not a fixed point at zero tension (-want +got):\n%s", diff)
	}
}

func TestApplySquircleCorners(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ring := circleContour(100)
	got, report, err := Apply(ring, Options{Tension: 100, Adjustment: 0, Mode: ModeBalanced})
	assert.NoError(t, err)
	assert.Equal(t, 4, report.Balanced)
	// Full tension pushes every handle pair onto its quadrant corner.
	want := circleContour(100)
	corners := []arithm.Pair{
		arithm.P(100, 100), arithm.P(-100, 100), arithm.P(-100, -100), arithm.P(100, -100),
	}
	for q, corner := range corners {
		want[3*q+1].Pos = corner
		want[3*q+2].Pos = corner
	}
	if diff := cmp.Diff(want, got, approxPairs); diff != "" {
		t.Errorf("unexpected squircle handles (-want +got):\n%s", diff)
	}
}

func TestApplyPreserveRestoresRatio(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ring := circleContour(100)
	ring[1].Pos = arithm.P(100, 30) // designer shortened this handle
	ring[2].Pos = arithm.P(20, 100) // and this one, in a 30:20 ratio
	opts := Options{Tension: 20, Adjustment: 50, Mode: ModeBalanced}
	balanced, _, err := Apply(ring, opts)
	assert.NoError(t, err)
	opts.Mode = ModePreserve
	preserved, report, err := Apply(ring, opts)
	assert.NoError(t, err)
	assert.Equal(t, 4, report.Balanced)
	// The three untouched quadrants already match their balanced ratio.
	assert.Equal(t, 1, report.Redistributed)
	ratio := squircle.Distance(preserved[0].Pos, preserved[1].Pos) /
		squircle.Distance(preserved[3].Pos, preserved[2].Pos)
	assert.InDelta(t, 1.5, ratio, 1e-6)
	assert.InDelta(t, balanced.Area(), preserved.Area(), 1e-6*math.Abs(balanced.Area()))
}

func TestApplySmoothCircleFixedPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ring := circleContour(100)
	got, report, err := Apply(ring, Options{Tension: 0, Mode: ModeSmooth})
	assert.NoError(t, err)
	assert.Equal(t, 4, report.Balanced)
	assert.Equal(t, 4, report.Harmonized)
	assert.Equal(t, 0, report.SkippedNodes)
	if diff := cmp.Diff(ring, got, approxPairs); diff != "" {
		t.Errorf("circle is not a smooth-mode fixed point (-want +got):\n%s", diff)
	}
}

// eggContour is a circle of radius 100 below the x axis continued by a
// taller half ellipse above it. Its left and right nodes join segments
// of different curvature, so harmonizing them is not a no-op.
func eggContour() Contour {
	k := squircle.Kappa
	on := func(x, y float64) Node { return Node{Pos: arithm.P(x, y), Type: Smooth} }
	return Contour{
		on(100, 0), offNode(100, 150*k), offNode(100*k, 150),
		on(0, 150), offNode(-100*k, 150), offNode(-100, 150*k),
		on(-100, 0), offNode(-100, -100*k), offNode(-100*k, -100),
		on(0, -100), offNode(100*k, -100), offNode(100, -100*k),
	}
}

func TestApplySmoothEggMatchesCurvature(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	egg := eggContour()
	balanced, _, err := Apply(egg, Options{Tension: 0, Mode: ModeBalanced})
	assert.NoError(t, err)
	got, report, err := Apply(egg, Options{Tension: 0, Mode: ModeSmooth})
	assert.NoError(t, err)
	assert.Equal(t, 4, report.Harmonized)
	assert.Equal(t, 0, report.SkippedNodes)
	// At the right node the circle and the ellipse side disagree, so both
	// near handles get rescaled.
	assert.Greater(t, squircle.Distance(balanced[11].Pos, got[11].Pos), 1.0)
	assert.Greater(t, squircle.Distance(balanced[1].Pos, got[1].Pos), 1.0)
	// Afterwards the curvature proxy d⊥/L² agrees between the incoming
	// and the outgoing side of that node.
	n := got[0].Pos
	la := squircle.Distance(n, got[11].Pos)
	lb := squircle.Distance(n, got[1].Pos)
	ubx := (got[1].Pos.X() - n.X()) / lb
	uby := (got[1].Pos.Y() - n.Y()) / lb
	nx, ny := -uby, ubx // normal of the node tangent
	da := (got[10].Pos.X()-n.X())*nx + (got[10].Pos.Y()-n.Y())*ny
	db := (got[2].Pos.X()-n.X())*nx + (got[2].Pos.Y()-n.Y())*ny
	assert.InDelta(t, math.Abs(da)/(la*la), math.Abs(db)/(lb*lb), 1e-9)
}

func TestApplySmartCircleFixedPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ring := circleContour(100)
	got, report, err := Apply(ring, Options{Tension: 0, Mode: ModeSmart})
	assert.NoError(t, err)
	assert.Equal(t, 4, report.Harmonized)
	if diff := cmp.Diff(ring, got, approxPairs); diff != "" {
		t.Errorf("circle is not a smart-mode fixed point (-want +got):\n%s", diff)
	}
}

func TestApplySmartMovesPerturbedNode(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ring := circleContour(100)
	ring[3].Pos = arithm.P(6, 104) // nudge the top node off the circle
	got, report, err := Apply(ring, Options{Tension: 0, Mode: ModeSmart})
	assert.NoError(t, err)
	assert.Equal(t, 4, report.Harmonized)
	assert.Greater(t, squircle.Distance(ring[3].Pos, got[3].Pos), 0.01)
	// The relocated node lies between its near handles, within the
	// documented parameter range.
	n, a2, b1 := got[3].Pos, got[2].Pos, got[4].Pos
	cr := (n.X()-b1.X())*(a2.Y()-b1.Y()) - (n.Y()-b1.Y())*(a2.X()-b1.X())
	assert.InDelta(t, 0, cr, 1e-6)
	tpar := squircle.Distance(b1, n) / squircle.Distance(b1, a2)
	assert.GreaterOrEqual(t, tpar, 0.05-1e-9)
	assert.LessOrEqual(t, tpar, 0.95+1e-9)
}

func TestApplySkipsLineSegments(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	square := Contour{onNode(0, 0), onNode(100, 0), onNode(100, 100), onNode(0, 100)}
	got, report, err := Apply(square, DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, 0, report.Balanced)
	assert.Equal(t, square, got)

	rounded := Contour{
		onNode(0, 0), onNode(60, 0),
		offNode(82, 0), offNode(100, 18),
		onNode(100, 40), onNode(100, 100), onNode(0, 100),
	}
	got, report, err = Apply(rounded, DefaultOptions())
	assert.NoError(t, err)
	assert.Equal(t, 1, report.Balanced)
	// Only the two handles of the rounded corner move.
	assert.Equal(t, rounded[0], got[0])
	assert.Equal(t, rounded[1], got[1])
	assert.NotEqual(t, rounded[2], got[2])
	assert.NotEqual(t, rounded[3], got[3])
	assert.Equal(t, rounded[4:], got[4:])
}

func TestApplySlantInvariance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	upright := circleContour(100)
	f := squircle.ShearFactor(12)
	slanted := make(Contour, len(upright))
	for i, node := range upright {
		slanted[i] = Node{Pos: squircle.Reslant(node.Pos, f), Type: node.Type}
	}
	opts := Options{Tension: 35, Adjustment: 50, Mode: ModeBalanced}
	fromUpright, _, err := Apply(upright, opts)
	assert.NoError(t, err)
	opts.Slant = 12
	fromSlanted, _, err := Apply(slanted, opts)
	assert.NoError(t, err)
	// Filtering the slanted contour equals filtering upright and
	// slanting afterwards.
	want := make(Contour, len(fromUpright))
	for i, node := range fromUpright {
		want[i] = Node{Pos: squircle.Reslant(node.Pos, f), Type: node.Type}
	}
	if diff := cmp.Diff(want, fromSlanted, approxPairs); diff != "" {
		t.Errorf("filter is not slant invariant (-want +got):\n%s", diff)
	}
}

func TestApplyClampsOptions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	over, _, err := Apply(circleContour(100), Options{Tension: 150, Adjustment: -3})
	assert.NoError(t, err)
	ceiling, _, err := Apply(circleContour(100), Options{Tension: 100, Adjustment: 0})
	assert.NoError(t, err)
	if diff := cmp.Diff(ceiling, over, approxPairs); diff != "" {
		t.Errorf("out-of-range options not clamped (-want +got):\n%s", diff)
	}
}

func TestApplyRejectsInvalid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, _, err := Apply(Contour{onNode(0, 0), offNode(1, 1), onNode(2, 0)}, DefaultOptions())
	assert.Error(t, err)
}

func TestDefaultOptions(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := DefaultOptions()
	assert.Equal(t, squircle.PresetType, opts.Tension)
	assert.Equal(t, 50.0, opts.Adjustment)
	assert.Equal(t, 0.0, opts.Slant)
	assert.Equal(t, ModeBalanced, opts.Mode)
}

func ExampleApply() {
	ring := Contour{
		{Pos: arithm.P(0, 0), Type: Corner},
		{Pos: arithm.P(60, 0), Type: Smooth},
		{Pos: arithm.P(82, 0), Type: OffCurve},
		{Pos: arithm.P(100, 18), Type: OffCurve},
		{Pos: arithm.P(100, 40), Type: Smooth},
		{Pos: arithm.P(100, 100), Type: Corner},
		{Pos: arithm.P(0, 100), Type: Corner},
	}
	_, report, err := Apply(ring, DefaultOptions())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d segment balanced, %d skipped\n", report.Balanced, report.SkippedSegments)
	// Output: 1 segment balanced, 0 skipped
}
