/*
Package squircle adjusts the Bézier handles of glyph outlines, moving
curve segments along a continuum from "diamond" through true circle
approximation to "squircle".

The root package provides the shared geometric primitives: distances,
chord angles, the tangent departure angles of a cubic segment, and the
slant shear transform that makes the algorithms of the subpackages
slant-invariant. The actual handle solvers live in package handles, a
driver for whole outline contours in package contour.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package squircle

import (
	"math"
	"math/cmplx"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'squircle'
func tracer() tracing.Trace {
	return tracing.Select("squircle")
}

// === Geometry Primitives ===================================================

// Distance returns the Euclidean distance between two points.
func Distance(a, b arithm.Pair) float64 {
	return cmplx.Abs((b - a).C())
}

// Angle returns the direction from a to b, in radians within [-π, π].
func Angle(a, b arithm.Pair) float64 {
	return cmplx.Phase((b - a).C())
}

// Reduce an angle to fit into -pi .. pi. Callers feed in combinations
// of at most two atan2 results plus π, staying within ±3π, so a single
// correction suffices.
func reduceAngle(a float64) float64 {
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// TangentAngles extracts the angular departure of the two handles of a
// cubic segment (p0, p1, p2, p3) from its chord p0→p3. theta0 is the
// angle between chord and the handle leaving p0, theta1 the angle
// between chord and the handle arriving at p3, each reduced to [-π, π].
// A positive angle turns counterclockwise off the chord.
//
// ok is false if the angles cannot be resolved, which happens for
// non-finite input coordinates only; callers are expected to leave the
// segment untouched then.
func TangentAngles(p0, p1, p2, p3 arithm.Pair) (theta0, theta1 float64, ok bool) {
	chord := Angle(p0, p3)
	theta0 = reduceAngle(Angle(p0, p1) - chord)
	theta1 = reduceAngle(math.Pi - Angle(p3, p2) + chord)
	if math.IsNaN(theta0) || math.IsNaN(theta1) {
		tracer().Debugf("tangent angles unresolved for chord %v .. %v", p0, p3)
		return 0, 0, false
	}
	return theta0, theta1, true
}

// === Slant Shear ===========================================================

// ShearFactor converts a slant angle, given in degrees, to the shear
// factor consumed by Deslant and Reslant.
func ShearFactor(slantDegrees float64) float64 {
	return math.Tan(slantDegrees * arithm.Deg2Rad)
}

// Deslant removes a slant from a point, mapping it into upright space:
// (x − y·factor, y). All solvers of this module operate on upright
// coordinates; with factor 0 this is the identity.
func Deslant(p arithm.Pair, factor float64) arithm.Pair {
	return arithm.P(p.X()-p.Y()*factor, p.Y())
}

// Reslant re-applies a slant removed by Deslant: (x + y·factor, y).
// Exact inverse of Deslant.
func Reslant(p arithm.Pair, factor float64) arithm.Pair {
	return arithm.P(p.X()+p.Y()*factor, p.Y())
}
