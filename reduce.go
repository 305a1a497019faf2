package pathsmooth

// Reduce merges points that lie within minDistance of the previously accepted
// point. A point further away than minDistance is accepted; a closer point is
// merged into the last accepted one by moving that point halfway towards it.
// Distances include elevation.
//
// The first and last points are never moved. Points close to the first point
// are dropped instead of being merged, and a last point that is close to its
// predecessor replaces that predecessor. An input of two or more points
// always produces at least two points.
//
// Negative values of minDistance are treated as zero. Reduce returns an error
// wrapping [ErrNonFinite] if any point has a NaN or infinite coordinate, and
// one wrapping [ErrInvalidParameter] if minDistance is NaN.
func Reduce(points Polyline, minDistance float64) (Polyline, error) {
	if err := checkDistance("minDistance", minDistance); err != nil {
		return nil, err
	}
	if err := points.validate(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return Polyline{}, nil
	}
	minDistance = max(minDistance, 0)

	out := make(Polyline, 1, len(points))
	out[0] = points[0]
	last := len(points) - 1
	for i := 1; i < len(points); i++ {
		pt := points[i]
		prev := &out[len(out)-1]
		switch {
		case prev.Distance(pt) > minDistance:
			out = append(out, pt)
		case i == last:
			if len(out) == 1 {
				out = append(out, pt)
			} else {
				*prev = pt
			}
		case len(out) == 1:
			// The first point is pinned.
		default:
			*prev = prev.Midpoint(pt)
		}
	}
	return out, nil
}
