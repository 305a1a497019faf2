package pathsmooth

import "errors"

var (
	// ErrNonFinite is returned when an input point has a NaN or infinite
	// coordinate.
	ErrNonFinite = errors.New("pathsmooth: non-finite coordinate")
	// ErrInvalidParameter is returned for NaN distance parameters.
	ErrInvalidParameter = errors.New("pathsmooth: invalid parameter")
)
