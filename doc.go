// Package pathsmooth turns raw polylines, such as navigation-mesh corridors or
// sequences of waypoints, into shorter, visually smooth polylines suitable for
// drawing and for incremental traversal.
//
// # Coordinates
//
// Paths live in 2.5D: a [Point] has two horizontal coordinates, X and Z, and an
// elevation, Y. All geometric constructions (directions, angles, intersections
// and radii) happen in the horizontal plane, on vectors of type [Vec2].
// Elevation never influences the shape of a corner; it is carried along by
// linear interpolation.
//
// # Stages
//
// Smoothing happens in two independent stages that are normally run in
// sequence:
//
//   - [Reduce] merges points that lie closer together than a threshold. Close
//     points are not simply dropped: they pull the previously accepted point
//     halfway towards themselves.
//   - [RoundCorners] replaces each sharp interior vertex with a circular arc
//     that is tangent to both adjacent edges at a fixed pullback distance from
//     the vertex.
//
// [Smooth] runs both stages with a set of [Options].
//
// Rounding a vertex is not always possible or desirable. Vertices next to
// edges of (nearly) zero length, vertices that are nearly straight or that
// nearly reverse direction, and vertices whose arc would degenerate are kept
// unchanged. [RoundCorner] and [Corners] expose the decision made for each
// vertex as a [Corner], whose [CornerKind] names the reason.
//
// The first and last points of a path are never moved by either stage.
//
// # Traversal
//
// [Polyline] offers [Polyline.Length], [Polyline.At] and [Polyline.Progress]
// for agents that walk a smoothed path at a given speed.
//
// # Errors
//
// Degenerate geometry is never an error. Input containing NaN or infinite
// coordinates is rejected with [ErrNonFinite], and NaN distance parameters
// with [ErrInvalidParameter]. Out-of-range parameters are clamped: distances
// to zero and sample counts to one.
//
// # Concurrency
//
// All functions are pure. They never modify their input and always return
// freshly allocated polylines, so they may be called concurrently.
package pathsmooth
