package pathsmooth

import (
	"fmt"
	"math"
)

// Point is a position in 2.5D space. X and Z span the horizontal plane, Y is
// elevation. Geometric constructions (directions, angles, radii) only look at
// the (X, Z) projection; elevation is interpolated separately.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec3 {
	return Vec3{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
		Z: pt.Z - o.Z,
	}
}

// SubPlanar computes the horizontal component of pt−o.
func (pt Point) SubPlanar(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Z - o.Z,
	}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec3(pt).Lerp(Vec3(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points, elevation
// included.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// PlanarDistance returns the distance between the projections of two points
// onto the horizontal plane.
func (pt Point) PlanarDistance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Z-o.Z)
}

// IsInf reports whether at least one of x, y, and z is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one of x, y, and z is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}

// IsFinite reports whether all coordinates are neither infinite nor NaN.
func (pt Point) IsFinite() bool {
	return !pt.IsInf() && !pt.IsNaN()
}
