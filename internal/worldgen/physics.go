package worldgen

import (
	"math"

	"skybound/server/internal/blueprint"
)

// IsReachable reports whether a jump from (fromX, fromY) can land on the
// platform span starting at toX with the given width and top edge toY.
//
// The model is deliberately asymmetric: falling onto a lower target is always
// allowed (gravity handles descent), while climbing is bounded by
// MaxJumpHeight. Horizontal travel is bounded by MaxJumpDistance in both
// directions. This asymmetry is what makes a generated level completable, so
// it must not be "simplified" into a symmetric distance check.
func IsReachable(fromX, fromY, toX, toY, toWidth float64) bool {
	climb := fromY - toY
	if climb > MaxJumpHeight {
		return false
	}
	gap := horizontalGap(fromX, toX, toX+toWidth)
	return gap <= MaxJumpDistance
}

// PlatformReachable reports whether dst can be reached by jumping from src,
// taking off from the point of src closest to dst.
func PlatformReachable(src, dst blueprint.Platform) bool {
	fromX := Clamp(dst.X+dst.Width/2, src.X, src.X+src.Width)
	return IsReachable(fromX, src.Y, dst.X, dst.Y, dst.Width)
}

// RestsOnSurface reports whether an object's bottom edge sits flush (within
// SurfaceTolerance) on the ground or on a platform whose span contains the
// object's full x-range. Partial overhangs do not count as support.
func RestsOnSurface(x, y, width, height float64, platforms []blueprint.Platform, groundY float64) bool {
	bottom := y + height
	if math.Abs(bottom-groundY) <= SurfaceTolerance {
		return true
	}
	for _, p := range platforms {
		if math.Abs(bottom-p.Y) > SurfaceTolerance {
			continue
		}
		if x >= p.X && x+width <= p.X+p.Width {
			return true
		}
	}
	return false
}

// restsOnPlatform is the stricter per-platform variant used for platform-top
// spikes: the object must sit flush on this specific platform, not merely on
// some surface that happens to pass underneath.
func restsOnPlatform(x, y, width, height float64, p blueprint.Platform) bool {
	bottom := y + height
	if math.Abs(bottom-p.Y) > SurfaceTolerance {
		return false
	}
	return x >= p.X && x+width <= p.X+p.Width
}

func horizontalGap(fromX, spanMin, spanMax float64) float64 {
	if fromX < spanMin {
		return spanMin - fromX
	}
	if fromX > spanMax {
		return fromX - spanMax
	}
	return 0
}
