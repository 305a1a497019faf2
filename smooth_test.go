package pathsmooth

import (
	"errors"
	"math"
	"testing"
)

func TestSmooth(t *testing.T) {
	in := Polyline{
		Pt(0, 0, 0),
		Pt(0.02, 0, 0),
		Pt(10, 0, 0),
		Pt(10.01, 0, 0.01),
		Pt(10, 0, 10),
	}
	got, err := Smooth(in, Options{MinDistance: 0.1, Pullback: 2, ArcSamples: 4})
	if err != nil {
		t.Fatal(err)
	}
	reduced, err := Reduce(in, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(reduced) != 3 {
		t.Fatalf("got %d reduced points, want 3", len(reduced))
	}
	want, err := RoundCorners(reduced, 2, 4)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, got)
	if len(got) != 7 {
		t.Errorf("got %d points, want 7", len(got))
	}
	if got[0] != in[0] || got[len(got)-1] != in[len(in)-1] {
		t.Error("endpoints moved")
	}
}

func TestSmoothDefaultOptions(t *testing.T) {
	in := Polyline{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 0, 1), Pt(2, 0, 1)}
	got, err := Smooth(in, DefaultOptions)
	if err != nil {
		t.Fatal(err)
	}
	// Two rounded corners of DefaultOptions.ArcSamples+1 points each.
	if want := 2 + 2*(DefaultOptions.ArcSamples+1); len(got) != want {
		t.Errorf("got %d points, want %d", len(got), want)
	}
}

func TestSmoothErrors(t *testing.T) {
	in := Polyline{Pt(0, 0, 0), Pt(math.NaN(), 0, 0), Pt(1, 0, 1)}
	if _, err := Smooth(in, DefaultOptions); !errors.Is(err, ErrNonFinite) {
		t.Errorf("got error %v, want ErrNonFinite", err)
	}
	opts := DefaultOptions
	opts.Pullback = math.NaN()
	if _, err := Smooth(Polyline{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 0, 1)}, opts); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want ErrInvalidParameter", err)
	}
}
