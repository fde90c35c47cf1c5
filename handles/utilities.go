package handles

import (
	"math/cmplx"

	"github.com/npillmayer/arithm"
)

// Unit direction and length of a vector. The direction is meaningless
// when the length is 0; callers check the length first.
func unitAndLength(v arithm.Pair) (arithm.Pair, float64) {
	l := cmplx.Abs(v.C())
	if l == 0 {
		return v, 0
	}
	return arithm.P(v.X()/l, v.Y()/l), l
}

// Scale a vector by a scalar.
func scaled(v arithm.Pair, a float64) arithm.Pair {
	return arithm.P(a, 0) * v
}

func dot(a, b arithm.Pair) float64 {
	return a.X()*b.X() + a.Y()*b.Y()
}

func cross(a, b arithm.Pair) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Rotate a vector by 90° counterclockwise.
func perp(v arithm.Pair) arithm.Pair {
	return arithm.P(-v.Y(), v.X())
}

// intersectLines intersects the infinite lines a0→a1 and b0→b1, returning
// the intersection point together with the line parameters s and t such
// that p = a0 + s·(a1−a0) = b0 + t·(b1−b0). ok is false for parallel or
// degenerate lines.
func intersectLines(a0, a1, b0, b1 arithm.Pair) (p arithm.Pair, s, t float64, ok bool) {
	da := a1 - a0
	db := b1 - b0
	denom := cross(da, db)
	if denom == 0 {
		return arithm.Origin, 0, 0, false
	}
	e := b0 - a0
	s = cross(e, db) / denom
	t = cross(e, da) / denom
	p = a0 + scaled(da, s)
	return p, s, t, true
}
