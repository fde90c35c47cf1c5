package contour

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/arithm"
)

// maxFlattenDepth bounds the recursive subdivision of a single cubic
// segment; 2^16 chords are beyond any realistic flatness tolerance.
const maxFlattenDepth = 16

// Polygon renders the contour as a polyclip polygon, approximating each
// cubic segment by a polyline. Segments are subdivided at their midpoint
// until both handles deviate less than tol from the chord.
func (c Contour) Polygon(tol float64) polyclip.Polygon {
	if len(c) == 0 {
		return polyclip.Polygon{}
	}
	start := 0
	for i, node := range c {
		if node.OnCurve() {
			start = i
			break
		}
	}
	ring := make(polyclip.Contour, 0, 4*len(c))
	emit := func(p arithm.Pair) {
		ring = append(ring, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	emit(c.at(start).Pos)
	i := start
	for k := 0; k < len(c); {
		run := 0
		for run < len(c) && !c.at(i+run+1).OnCurve() {
			run++
		}
		if run == 2 {
			flattenCubic(c.at(i).Pos, c.at(i+1).Pos, c.at(i+2).Pos, c.at(i+3).Pos, tol, 0, emit)
		} else {
			for m := 1; m <= run+1; m++ {
				emit(c.at(i + m).Pos)
			}
		}
		k += run + 1
		i += run + 1
	}
	// the walk arrives back at the start point; polyclip closes rings
	// implicitly
	return polyclip.Polygon{ring[:len(ring)-1]}
}

// InkDelta measures how much ink a filter run moved: the area of the
// symmetric difference between the regions enclosed by two contours,
// both flattened with tolerance tol. A fixed point of the filter has
// delta 0; typical tension changes move a fraction of a percent of the
// glyph area.
func InkDelta(before, after Contour, tol float64) float64 {
	xor := before.Polygon(tol).Construct(polyclip.XOR, after.Polygon(tol))
	ink := 0.0
	for _, ring := range xor {
		ink += shoelace(ring)
	}
	return math.Abs(ink)
}

func shoelace(ring polyclip.Contour) float64 {
	a := 0.0
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func flattenCubic(p0, p1, p2, p3 arithm.Pair, tol float64, depth int, emit func(arithm.Pair)) {
	if depth >= maxFlattenDepth || flatEnough(p0, p1, p2, p3, tol) {
		emit(p3)
		return
	}
	p01 := mid(p0, p1)
	p12 := mid(p1, p2)
	p23 := mid(p2, p3)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	m := mid(p012, p123)
	flattenCubic(p0, p01, p012, m, tol, depth+1, emit)
	flattenCubic(m, p123, p23, p3, tol, depth+1, emit)
}

// flatEnough is true when both handles lie within tol of the chord. For
// a collapsed chord the handle distances from p0 decide instead.
func flatEnough(p0, p1, p2, p3 arithm.Pair, tol float64) bool {
	d := p3 - p0
	dd := d.X()*d.X() + d.Y()*d.Y()
	if dd <= tol*tol {
		h1, h2 := p1-p0, p2-p0
		return h1.X()*h1.X()+h1.Y()*h1.Y() <= tol*tol &&
			h2.X()*h2.X()+h2.Y()*h2.Y() <= tol*tol
	}
	c1 := d.X()*(p1.Y()-p0.Y()) - d.Y()*(p1.X()-p0.X())
	c2 := d.X()*(p2.Y()-p0.Y()) - d.Y()*(p2.X()-p0.X())
	return c1*c1 <= tol*tol*dd && c2*c2 <= tol*tol*dd
}

func mid(a, b arithm.Pair) arithm.Pair {
	return arithm.P((a.X()+b.X())/2, (a.Y()+b.Y())/2)
}
