package pathsmooth

import "math"

// parallelEpsilon bounds the determinant below which two lines are considered
// parallel by [IntersectXZ].
const parallelEpsilon = 1e-6

// Line represents a line segment.
type Line struct {
	P0 Point
	P1 Point
}

// Length returns the length of the line, elevation included.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// PlanarLength returns the length of the line's projection onto the
// horizontal plane.
func (l Line) PlanarLength() float64 {
	return l.P1.SubPlanar(l.P0).Hypot()
}

// Eval returns the point at parameter t, with t = 0 at P0 and t = 1 at P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// IntersectXZ computes the point where the line through p1 with direction d1
// crosses the line through p2 with direction d2. Only the horizontal plane
// takes part; the directions need not be unit length. The elevation of the
// result is the mean of the elevations of p1 and p2.
//
// It returns false if the lines are parallel or nearly so.
func IntersectXZ(p1 Point, d1 Vec2, p2 Point, d2 Vec2) (Point, bool) {
	a1, b1, c1 := d1.X, -d2.X, p2.X-p1.X
	a2, b2, c2 := d1.Y, -d2.Y, p2.Z-p1.Z
	det := a1*b2 - a2*b1
	if math.Abs(det) < parallelEpsilon {
		return Point{}, false
	}
	// t = position along d1
	t := (c1*b2 - c2*b1) / det
	return Point{
		X: p1.X + t*d1.X,
		Y: (p1.Y + p2.Y) * 0.5,
		Z: p1.Z + t*d1.Y,
	}, true
}
