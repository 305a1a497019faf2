package pathsmooth

import "iter"

// maxPresize bounds the number of arc points RoundCorners allocates room for
// up front.
const maxPresize = 1 << 16

// Corners yields the decision for every interior vertex of points, keyed by
// the vertex's index. See [RoundCorner] for the meaning of pullback.
func Corners(points Polyline, pullback float64) iter.Seq2[int, Corner] {
	return func(yield func(int, Corner) bool) {
		for i := 1; i < len(points)-1; i++ {
			if !yield(i, RoundCorner(points[i-1], points[i], points[i+1], pullback)) {
				return
			}
		}
	}
}

// RoundCorners replaces the sharp interior corners of points with circular
// arcs in the horizontal plane. Each rounded corner contributes arcSamples+1
// points: the two tangent points and arcSamples−1 points between them. Corners
// that cannot be rounded (see [CornerKind]) are kept as they are. The first
// and last points are always copied unchanged, and inputs of fewer than three
// points are returned as a copy.
//
// arcSamples is clamped to at least 1 and pullback to at least 0.
// RoundCorners returns an error wrapping [ErrNonFinite] if any point has a NaN
// or infinite coordinate, and one wrapping [ErrInvalidParameter] if pullback
// is NaN. The input is never modified.
func RoundCorners(points Polyline, pullback float64, arcSamples int) (Polyline, error) {
	if err := checkDistance("pullback", pullback); err != nil {
		return nil, err
	}
	if err := points.validate(); err != nil {
		return nil, err
	}
	if len(points) < 3 {
		if points == nil {
			return Polyline{}, nil
		}
		return points.Clone(), nil
	}
	arcSamples = max(arcSamples, 1)
	pullback = max(pullback, 0)

	corners := make([]Corner, 0, len(points)-2)
	rounded := 0
	for _, c := range Corners(points, pullback) {
		corners = append(corners, c)
		if !c.Passthrough() {
			rounded++
		}
	}

	// Each rounded corner turns one point into arcSamples+1. The extra room
	// is bounded; append grows beyond it.
	extra := 0
	if rounded > 0 {
		extra = maxPresize
		if arcSamples <= maxPresize/rounded {
			extra = rounded * arcSamples
		}
	}
	out := make(Polyline, 0, len(points)+extra)
	out = append(out, points[0])
	for _, c := range corners {
		if c.Passthrough() {
			out = append(out, c.Vertex)
			continue
		}
		for pt := range c.Arc.Points(arcSamples) {
			out = append(out, pt)
		}
	}
	out = append(out, points[len(points)-1])
	return out, nil
}
