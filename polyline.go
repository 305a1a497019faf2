package pathsmooth

import (
	"fmt"
	"math"
)

// Polyline is an ordered sequence of points. The order defines the direction
// of travel.
type Polyline []Point

// validate returns an error wrapping [ErrNonFinite] for the first point that
// has a NaN or infinite coordinate.
func (p Polyline) validate() error {
	for i, pt := range p {
		if !pt.IsFinite() {
			return fmt.Errorf("point %d %v: %w", i, pt, ErrNonFinite)
		}
	}
	return nil
}

func checkDistance(name string, v float64) error {
	if math.IsNaN(v) {
		return fmt.Errorf("%s is NaN: %w", name, ErrInvalidParameter)
	}
	return nil
}

// Clone returns a copy of the polyline that does not share storage with p.
func (p Polyline) Clone() Polyline {
	if p == nil {
		return nil
	}
	return append(Polyline(make([]Point, 0, len(p))), p...)
}

// Length returns the sum of the euclidean lengths of the polyline's segments,
// elevation included.
func (p Polyline) Length() float64 {
	var l float64
	for i := 1; i < len(p); i++ {
		l += Line{p[i-1], p[i]}.Length()
	}
	return l
}

// At returns the point reached after travelling dist along the polyline from
// its first point, and the index of the segment it lies on (segment i joins
// p[i] and p[i+1]). dist is clamped to [0, p.Length()].
//
// At panics if p is empty.
func (p Polyline) At(dist float64) (Point, int) {
	if len(p) == 1 || dist <= 0 {
		return p[0], 0
	}
	for i := 1; i < len(p); i++ {
		seg := Line{p[i-1], p[i]}
		l := seg.Length()
		if dist < l {
			return seg.Eval(dist / l), i - 1
		}
		dist -= l
	}
	return p[len(p)-1], len(p) - 2
}

// Progress returns dist as a fraction of the polyline's length, clamped to
// [0, 1]. A polyline of zero length is complete as soon as it is started.
func (p Polyline) Progress(dist float64) float64 {
	l := p.Length()
	if l == 0 {
		return 1
	}
	return max(0, min(1, dist/l))
}
