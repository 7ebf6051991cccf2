package worldgen

import (
	"math"

	"skybound/server/internal/blueprint"
)

// Rect is an axis-aligned rectangle with Y growing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the rectangle's center point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Overlaps reports whether two rectangles intersect. Rectangles that only
// touch along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamp limits value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// intervalGap returns the distance between two closed intervals, 0 when they
// overlap or touch.
func intervalGap(aMin, aMax, bMin, bMax float64) float64 {
	if aMax < bMin {
		return bMin - aMax
	}
	if bMax < aMin {
		return aMin - bMax
	}
	return 0
}

func platformRect(p blueprint.Platform) Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func spikeRect(s blueprint.Spike) Rect {
	return Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}
