package pathsmooth

// Options controls [Smooth].
type Options struct {
	// MinDistance is the merge threshold passed to [Reduce]. Larger values
	// produce coarser output.
	MinDistance float64
	// Pullback is the per-corner retraction passed to [RoundCorners]. Larger
	// values produce rounder corners.
	Pullback float64
	// ArcSamples is the number of segments per rounded corner. Higher values
	// produce smoother arcs and more points.
	ArcSamples int
}

var DefaultOptions = Options{
	MinDistance: 0.1,
	Pullback:    0.2,
	ArcSamples:  4,
}

// Smooth reduces points and then rounds the corners of the result.
func Smooth(points Polyline, opts Options) (Polyline, error) {
	reduced, err := Reduce(points, opts.MinDistance)
	if err != nil {
		return nil, err
	}
	return RoundCorners(reduced, opts.Pullback, opts.ArcSamples)
}
