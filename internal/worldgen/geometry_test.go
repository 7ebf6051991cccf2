package worldgen

import (
	"math"
	"testing"
)

func TestOverlapsDetectsIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	b := Rect{X: 50, Y: 25, Width: 100, Height: 50}
	if !Overlaps(a, b) {
		t.Fatalf("expected %+v and %+v to overlap", a, b)
	}
	if !Overlaps(b, a) {
		t.Fatalf("Overlaps is not symmetric for %+v and %+v", a, b)
	}
}

func TestOverlapsRejectsTouchingEdges(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	cases := []Rect{
		{X: 100, Y: 0, Width: 40, Height: 50},  // right edge flush
		{X: -40, Y: 0, Width: 40, Height: 50},  // left edge flush
		{X: 0, Y: 50, Width: 100, Height: 30},  // bottom edge flush
		{X: 0, Y: -30, Width: 100, Height: 30}, // top edge flush
	}
	for _, b := range cases {
		if Overlaps(a, b) {
			t.Fatalf("touching rectangles must not overlap: %+v vs %+v", a, b)
		}
	}
}

func TestOverlapsRejectsDisjoint(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 500, Y: 500, Width: 10, Height: 10}
	if Overlaps(a, b) {
		t.Fatalf("disjoint rectangles reported as overlapping")
	}
}

func TestDistance(t *testing.T) {
	got := Distance(0, 0, 3, 4)
	if math.Abs(got-5) > 1e-9 {
		t.Fatalf("Distance(0,0,3,4) = %f, want 5", got)
	}
	if got := Distance(7, -2, 7, -2); got != 0 {
		t.Fatalf("distance of identical points = %f, want 0", got)
	}
}

func TestIntervalGap(t *testing.T) {
	if got := intervalGap(0, 10, 15, 20); math.Abs(got-5) > 1e-9 {
		t.Fatalf("gap of disjoint intervals = %f, want 5", got)
	}
	if got := intervalGap(15, 20, 0, 10); math.Abs(got-5) > 1e-9 {
		t.Fatalf("gap is not symmetric: got %f, want 5", got)
	}
	if got := intervalGap(0, 10, 5, 20); got != 0 {
		t.Fatalf("overlapping intervals gap = %f, want 0", got)
	}
	if got := intervalGap(0, 10, 10, 20); got != 0 {
		t.Fatalf("touching intervals gap = %f, want 0", got)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5,0,10) = %f, want 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Fatalf("Clamp(-1,0,10) = %f, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Fatalf("Clamp(11,0,10) = %f, want 10", got)
	}
}
