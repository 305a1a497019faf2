package pathsmooth

import (
	"fmt"
	"math"
)

const (
	// Edges shorter than this in the horizontal plane have no usable
	// direction.
	minEdgeLength = 1e-4
	// Corners within this many radians of straight, or of a full reversal,
	// are left alone.
	minTurnAngle = 1 * math.Pi / 180
	minRadius    = 1e-5
	// The pullback never exceeds this fraction of the shorter adjacent edge,
	// so that the tangent points of neighbouring corners cannot cross.
	maxPullbackFraction = 0.49
)

// CornerKind describes how an interior vertex is treated by [RoundCorner].
type CornerKind uint8

const (
	// Rounded corners are replaced by an arc.
	Rounded CornerKind = iota
	// ShortEdge corners have an adjacent edge that is too short in the
	// horizontal plane to have a direction.
	ShortEdge
	// Straight corners barely change direction.
	Straight
	// Hairpin corners reverse direction almost completely.
	Hairpin
	// ParallelNormals corners have tangent normals that do not intersect.
	ParallelNormals
	// TinyRadius corners produced an arc too small to be worth drawing.
	TinyRadius
)

func (k CornerKind) String() string {
	switch k {
	case Rounded:
		return "Rounded"
	case ShortEdge:
		return "ShortEdge"
	case Straight:
		return "Straight"
	case Hairpin:
		return "Hairpin"
	case ParallelNormals:
		return "ParallelNormals"
	case TinyRadius:
		return "TinyRadius"
	default:
		return fmt.Sprintf("CornerKind(%d)", k)
	}
}

// Corner is the decision made for a single interior vertex. If Kind is
// Rounded, Arc replaces Vertex; otherwise Vertex is kept as is and Arc is the
// zero value.
type Corner struct {
	Kind   CornerKind
	Vertex Point
	Arc    Arc
}

// Passthrough reports whether the vertex is kept unchanged.
func (c Corner) Passthrough() bool {
	return c.Kind != Rounded
}

// RoundCorner decides how to round the vertex b, which is preceded by a and
// followed by c. pullback is the distance from b at which the arc meets each
// edge; it is clamped to 49% of the shorter edge and to at least zero.
//
// The arc's center is the intersection of the perpendiculars to both edges
// through the tangent points, making the circle tangent to both edges.
func RoundCorner(a, b, c Point, pullback float64) Corner {
	pass := func(kind CornerKind) Corner {
		return Corner{Kind: kind, Vertex: b}
	}

	edgeBA := Line{b, a}
	edgeBC := Line{b, c}
	lenBA := edgeBA.PlanarLength()
	lenBC := edgeBC.PlanarLength()
	if lenBA < minEdgeLength || lenBC < minEdgeLength {
		return pass(ShortEdge)
	}

	dirBA := a.SubPlanar(b).Div(lenBA)
	dirBC := c.SubPlanar(b).Div(lenBC)
	th := TurnAngle(dirBA, dirBC)
	switch {
	case th > math.Pi-minTurnAngle:
		return pass(Straight)
	case th < minTurnAngle:
		return pass(Hairpin)
	}

	d := min(max(pullback, 0), maxPullbackFraction*min(lenBA, lenBC))
	// Elevation follows each edge by the same fraction as the plane.
	t1 := edgeBA.Eval(d / lenBA)
	t2 := edgeBC.Eval(d / lenBC)

	center, ok := IntersectXZ(t1, dirBA.Perp(), t2, dirBC.Perp())
	if !ok {
		return pass(ParallelNormals)
	}
	arc := NewArc(center, t1, t2)
	if arc.Radius < minRadius {
		return pass(TinyRadius)
	}
	return Corner{Kind: Rounded, Vertex: b, Arc: arc}
}
