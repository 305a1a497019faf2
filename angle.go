package pathsmooth

import "math"

// ShortestSignedAngle wraps a in radians into the interval (−π, π].
func ShortestSignedAngle(a float64) float64 {
	if a > -math.Pi && a <= math.Pi {
		return a
	}
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return math.NaN()
	}
	a = math.Remainder(a, 2*math.Pi)
	// Remainder yields [−π, π]; −π belongs to the other end of the range.
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// TurnAngle returns the unsigned angle, in radians, between the horizontal
// directions of u and v. It is in [0, π]. The result is NaN if either vector
// has zero length.
func TurnAngle(u, v Vec2) float64 {
	dot := u.Normalize().Dot(v.Normalize())
	// Rounding can push the dot product of unit vectors slightly out of
	// [-1, 1].
	dot = max(-1, min(1, dot))
	return math.Acos(dot)
}
