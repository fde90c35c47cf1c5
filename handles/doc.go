// Package handles computes Bézier handle positions for the curve
// segments of glyph outlines, moving each segment along a continuum from
// "diamond" through true circle approximation to "squircle".
/*

Type designers control the roundness of a curve segment almost entirely
through the lengths of its two off-curve handles. The classical reference
point is the approximation of a quarter circle: handles of length
4/3·(√2−1) ≈ 0.5523 times the radius trace a cubic that deviates from a
true circle by less than 0.02%. Longer handles bulge the segment outward
toward a superellipse ("squircle"), shorter ones let it sag toward a
diamond. The primary sources for the circle approximation are:

   Approximation of a Cubic Bézier Curve by Circular Arcs and Vice Versa
   Aleksas Riškus
   Information Technology and Control, Vol. 35, No. 4, 2006

and, for the superellipse family the upper end of the continuum strives
for:

   Les courbes de Lamé (Gabriel Lamé, 1818), popularized as the
   "superellipse" by Piet Hein in the 1960s.

Four solvers operate on immutable point windows and never touch host
state:

Balance computes handle positions for one segment from a tension and an
eccentricity adjustment parameter. It generalizes the quarter-circle
constant to arbitrary arc angles and scales the result toward the
squircle ceiling as tension grows; oblong segments are pulled further
out by the adjustment, while segments that barely turn are damped and
stay nearly untouched.

Redistribute restores a designer's deliberate handle asymmetry after
balancing. It solves for new handle lengths along the balanced tangent
directions such that the enclosed signed area of the curve is exactly
preserved (the area of a cubic is bilinear in the two handle lengths, so
this is a single quadratic equation).

SmoothNode equalizes curvature (G2 continuity) at a smooth on-curve node
by scaling the two near handles, clamped so that neither handle crosses
the far-handle line of its segment. The construction of clamping a handle
at the intersection of the two control polygon legs is familiar to type
designers from Eduardo Tunni's handle-balancing tools.

SmartNode equalizes curvature by moving the node itself along the chord
between the two near handles, leaving all four handles untouched.

Usage

Clients pick points out of their outline representation, call a solver,
and write the result back (package qualifiers omitted):

   seg := Segment{P0: P(0, 0), P1: P(0, 55), P2: P(45, 100), P3: P(100, 100)}
   bal, outcome := Balance(seg, Params{Tension: 20, Adjustment: 50})
   if !outcome.Skipped() {
       // write bal.P1, bal.P2 back
   }

Degenerate geometry (collapsed chords, zero-length handles, inflections,
parallel construction lines) is not an error: solvers return their input
unchanged together with an Outcome naming the reason, and callers decide
whether to log it. Package contour contains a driver that applies the
solvers to whole outline contours, including the slant handling for
oblique designs.

Caveats

The curvature used by the harmonizers is the proxy d⊥/L², the perpendicular
far-handle offset over the squared near-handle length, not the exact
endpoint curvature of a cubic. Both sides of a node share the same proxy,
which keeps the G2 match a closed-form solve.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package handles
