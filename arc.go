package pathsmooth

import (
	"iter"
	"math"
)

// Arc is a circular arc in the horizontal plane, joining two tangent points
// around a corner.
//
// Elevation does not follow the circle: it is interpolated linearly along the
// chord from Start to End, using the same parameter as the angular sweep.
type Arc struct {
	// Center of the circle. Its elevation is the midpoint of the tangent
	// points' elevations.
	Center Point
	Radius float64
	// StartAngle is the angle of Start about Center, as returned by
	// [Vec2.Angle].
	StartAngle float64
	// SweepAngle is the signed angle from Start to End, in (−π, π].
	SweepAngle float64
	// Start and End are the tangent points. They are kept exactly rather than
	// recomputed from the angles.
	Start Point
	End   Point
}

// NewArc constructs the arc around center from start to end, sweeping
// whichever way around the circle is shorter.
func NewArc(center, start, end Point) Arc {
	a1 := start.SubPlanar(center).Angle()
	a2 := end.SubPlanar(center).Angle()
	return Arc{
		Center:     center,
		Radius:     start.PlanarDistance(center),
		StartAngle: a1,
		SweepAngle: ShortestSignedAngle(a2 - a1),
		Start:      start,
		End:        end,
	}
}

// Eval returns the point at parameter t ∈ [0, 1] along the arc. Eval(0) and
// Eval(1) coincide with Start and End up to rounding error.
func (a Arc) Eval(t float64) Point {
	sin, cos := math.Sincos(a.StartAngle + a.SweepAngle*t)
	return Point{
		X: a.Center.X + cos*a.Radius,
		Y: a.Start.Y + (a.End.Y-a.Start.Y)*t,
		Z: a.Center.Z + sin*a.Radius,
	}
}

// Length returns the planar length of the arc.
func (a Arc) Length() float64 {
	return math.Abs(a.SweepAngle) * a.Radius
}

// Points yields Start, then samples−1 points at equal angular increments,
// then End, for a total of samples+1 points. samples is clamped to at least 1.
func (a Arc) Points(samples int) iter.Seq[Point] {
	samples = max(samples, 1)
	return func(yield func(Point) bool) {
		if !yield(a.Start) {
			return
		}
		for s := 1; s < samples; s++ {
			if !yield(a.Eval(float64(s) / float64(samples))) {
				return
			}
		}
		yield(a.End)
	}
}
