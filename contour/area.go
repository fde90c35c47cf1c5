package contour

import "github.com/npillmayer/arithm"

// Area returns the signed area enclosed by the contour, positive for
// counterclockwise winding. Cubic segments contribute their exact
// Green's theorem integral, no flattening involved. Off-curve runs that
// are not cubic handle pairs are measured as polylines.
func (c Contour) Area() float64 {
	if len(c) == 0 {
		return 0
	}
	start := 0
	for i, node := range c {
		if node.OnCurve() {
			start = i
			break
		}
	}
	area := 0.0
	i := start
	for k := 0; k < len(c); {
		run := 0
		for run < len(c) && !c.at(i+run+1).OnCurve() {
			run++
		}
		switch run {
		case 0:
			area += lineArea(c.at(i).Pos, c.at(i+1).Pos)
		case 2:
			area += cubicArea(c.at(i).Pos, c.at(i+1).Pos, c.at(i+2).Pos, c.at(i+3).Pos)
		default:
			for m := 0; m <= run; m++ {
				area += lineArea(c.at(i+m).Pos, c.at(i+m+1).Pos)
			}
		}
		k += run + 1
		i += run + 1
	}
	return area
}

// Sector area of a line segment with respect to the origin.
func lineArea(a, b arithm.Pair) float64 {
	return (a.X()*b.Y() - b.X()*a.Y()) / 2
}

// Sector area of a cubic segment with respect to the origin, the closed
// form of ∮(x·dy − y·dx)/2 over the Bézier polynomial.
func cubicArea(p0, p1, p2, p3 arithm.Pair) float64 {
	x0, y0 := p0.F()
	x1, y1 := p1.F()
	x2, y2 := p2.F()
	x3, y3 := p3.F()
	return (x0*(6*y1+3*y2+y3) +
		3*(x1*(-2*y0+y2+y3)-x2*(y0+y1-2*y3)) -
		x3*(y0+3*y1+6*y2)) / 20
}
