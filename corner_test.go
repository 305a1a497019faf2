package pathsmooth

import (
	"math"
	"testing"
)

func TestRoundCornerSquare(t *testing.T) {
	c := RoundCorner(Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 0, 10), 2)
	if c.Kind != Rounded {
		t.Fatalf("got kind %v, want Rounded", c.Kind)
	}
	want := Arc{
		Center:     Pt(8, 0, 2),
		Radius:     2,
		StartAngle: -math.Pi / 2,
		SweepAngle: math.Pi / 2,
		Start:      Pt(8, 0, 0),
		End:        Pt(10, 0, 2),
	}
	diff(t, want, c.Arc, approx)
}

func TestRoundCornerMirrored(t *testing.T) {
	// Turning the other way sweeps the other way.
	c := RoundCorner(Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 0, -10), 2)
	if c.Kind != Rounded {
		t.Fatalf("got kind %v, want Rounded", c.Kind)
	}
	diff(t, Pt(8, 0, -2), c.Arc.Center, approx)
	if c.Arc.SweepAngle >= 0 {
		t.Errorf("got sweep %v, want negative", c.Arc.SweepAngle)
	}
	if d := math.Abs(c.Arc.SweepAngle + math.Pi/2); d > 1e-9 {
		t.Errorf("got sweep %v, want -π/2", c.Arc.SweepAngle)
	}
}

func TestRoundCornerBulgesTowardsVertex(t *testing.T) {
	// The arc cuts the corner: its midpoint lies between the chord and the
	// vertex.
	for _, c := range []Corner{
		RoundCorner(Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 0, 10), 2),
		RoundCorner(Pt(0, 0, 0), Pt(10, 0, 0), Pt(3, 0, -4), 1),
		RoundCorner(Pt(-5, 0, 5), Pt(0, 0, 0), Pt(5, 0, 5), 3),
	} {
		if c.Kind != Rounded {
			t.Fatalf("got kind %v, want Rounded", c.Kind)
		}
		mid := c.Arc.Eval(0.5)
		chord := c.Arc.Start.Midpoint(c.Arc.End)
		if mid.PlanarDistance(c.Vertex) >= chord.PlanarDistance(c.Vertex) {
			t.Errorf("arc midpoint %v is further from %v than chord midpoint %v", mid, c.Vertex, chord)
		}
		if sweep := math.Abs(c.Arc.SweepAngle); sweep > math.Pi {
			t.Errorf("sweep %v exceeds π", sweep)
		}
	}
}

func TestRoundCornerTangency(t *testing.T) {
	c := RoundCorner(Pt(-3, 0, 7), Pt(1, 0, 1), Pt(9, 0, 4), 1.5)
	if c.Kind != Rounded {
		t.Fatalf("got kind %v, want Rounded", c.Kind)
	}
	a := c.Arc
	// Tangent points lie at the pullback distance from the vertex.
	for _, tp := range []Point{a.Start, a.End} {
		if d := tp.PlanarDistance(c.Vertex); math.Abs(d-1.5) > 1e-9 {
			t.Errorf("tangent point %v at distance %v, want 1.5", tp, d)
		}
	}
	// The radius is perpendicular to each edge at its tangent point.
	if d := a.Start.SubPlanar(a.Center).Dot(Pt(-3, 0, 7).SubPlanar(c.Vertex)); math.Abs(d) > 1e-9 {
		t.Errorf("radius at start is not perpendicular to edge, dot %v", d)
	}
	if d := a.End.SubPlanar(a.Center).Dot(Pt(9, 0, 4).SubPlanar(c.Vertex)); math.Abs(d) > 1e-9 {
		t.Errorf("radius at end is not perpendicular to edge, dot %v", d)
	}
	if d := a.End.PlanarDistance(a.Center); math.Abs(d-a.Radius) > 1e-9 {
		t.Errorf("end is %v from center, radius is %v", d, a.Radius)
	}
}

func TestRoundCornerPullbackClamp(t *testing.T) {
	c := RoundCorner(Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 0, 10), 100)
	if c.Kind != Rounded {
		t.Fatalf("got kind %v, want Rounded", c.Kind)
	}
	diff(t, Pt(5.1, 0, 0), c.Arc.Start, approx)
	diff(t, Pt(10, 0, 4.9), c.Arc.End, approx)
	if d := math.Abs(c.Arc.Radius - 4.9); d > 1e-9 {
		t.Errorf("got radius %v, want 4.9", c.Arc.Radius)
	}

	// The shorter edge decides.
	c = RoundCorner(Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 0, 2), math.Inf(1))
	diff(t, Pt(9.02, 0, 0), c.Arc.Start, approx)
	diff(t, Pt(10, 0, 0.98), c.Arc.End, approx)
}

func TestRoundCornerElevation(t *testing.T) {
	c := RoundCorner(Pt(0, 0, 0), Pt(10, 10, 0), Pt(10, 20, 10), 2)
	if c.Kind != Rounded {
		t.Fatalf("got kind %v, want Rounded", c.Kind)
	}
	// Elevation doesn't change the shape.
	if d := math.Abs(c.Arc.Radius - 2); d > 1e-9 {
		t.Errorf("got radius %v, want 2", c.Arc.Radius)
	}
	diff(t, Pt(8, 8, 0), c.Arc.Start, approx)
	diff(t, Pt(10, 12, 2), c.Arc.End, approx)
	diff(t, Pt(8, 10, 2), c.Arc.Center, approx)
	if y := c.Arc.Eval(0.25).Y; math.Abs(y-9) > 1e-9 {
		t.Errorf("got elevation %v at t=0.25, want 9", y)
	}
}

func TestRoundCornerPassthrough(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  Point
		pullback float64
		want     CornerKind
	}{
		{"coincident", Pt(0, 0, 0), Pt(0, 0, 0), Pt(5, 0, 5), 1, ShortEdge},
		{"vertical edge", Pt(0, 0, 0), Pt(0, 3, 0), Pt(5, 0, 5), 1, ShortEdge},
		{"short outgoing edge", Pt(0, 0, 0), Pt(5, 0, 0), Pt(5, 0, 5e-5), 1, ShortEdge},
		{"collinear", Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0), 1, Straight},
		{"half a degree", Pt(0, 0, 0), Pt(10, 0, 0), Pt(20, 0, 0.05), 1, Straight},
		{"reversal", Pt(0, 0, 0), Pt(10, 0, 0), Pt(0, 0, 0.01), 1, Hairpin},
		{"zero pullback", Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 0, 10), 0, TinyRadius},
		{"negative pullback", Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 0, 10), -4, TinyRadius},
		{"tiny pullback", Pt(0, 0, 0), Pt(10, 0, 0), Pt(10, 0, 10), 1e-6, TinyRadius},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RoundCorner(tt.a, tt.b, tt.c, tt.pullback)
			if c.Kind != tt.want {
				t.Errorf("got kind %v, want %v", c.Kind, tt.want)
			}
			if !c.Passthrough() {
				t.Error("corner is not passed through")
			}
			if c.Vertex != tt.b {
				t.Errorf("got vertex %v, want %v", c.Vertex, tt.b)
			}
			diff(t, Arc{}, c.Arc)
		})
	}
}

func TestCornerKindString(t *testing.T) {
	if s := Hairpin.String(); s != "Hairpin" {
		t.Errorf("got %q", s)
	}
	if s := CornerKind(42).String(); s != "CornerKind(42)" {
		t.Errorf("got %q", s)
	}
}
