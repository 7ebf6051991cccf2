package worldgen

import (
	"math"
	"math/rand"

	"skybound/server/internal/biome"
	"skybound/server/internal/blueprint"
)

// startingPlatform describes one of the hand-placed platforms near spawn.
// They are tuned so each is reachable from the ground or its predecessor,
// which is why placement only filters them against checkpoints instead of
// re-deriving overlap and reachability.
type startingPlatform struct {
	x, elevation, width float64
}

var startingPlatforms = []startingPlatform{
	{x: 80, elevation: 110, width: 140},
	{x: 300, elevation: 170, width: 120},
	{x: 520, elevation: 130, width: 130},
}

// generatePlatforms builds the platform set: the full-width ground slab, the
// fixed starting platforms, then zone-partitioned stochastic placement.
//
// Every committed non-ground platform is reachable, transitively from the
// ground, under the jump model: a candidate is only accepted when some
// already-reachable platform can jump to it. The per-zone platform count is
// a soft target — when a slot exhausts its attempt budget it is left empty.
// softTarget and zonePlaced report the summed per-zone targets and the count
// actually committed, for underfill diagnostics.
func generatePlatforms(def biome.Definition, width, height float64, checkpoints *CheckpointValidator, rng *rand.Rand) (platforms []blueprint.Platform, softTarget, zonePlaced int) {
	groundY := height - GroundThickness

	ground := blueprint.Platform{X: 0, Y: groundY, Width: width, Height: GroundThickness}
	platforms = []blueprint.Platform{ground}

	for _, sp := range startingPlatforms {
		candidate := blueprint.Platform{
			X:      sp.x,
			Y:      groundY - sp.elevation,
			Width:  sp.width,
			Height: def.PlatformHeight,
		}
		if candidate.X+candidate.Width > width {
			continue
		}
		cx, cy := platformRect(candidate).Center()
		if checkpoints.NearAny(cx, cy, DefaultCheckpointRadius) {
			continue
		}
		platforms = append(platforms, candidate)
	}

	span := width - PlatformStartOffset - PlatformEndOffset
	if span < def.PlatformWidthMin+2*def.ZoneEdgeMargin {
		return platforms, 0, 0
	}
	zoneWidth := span / float64(def.PlatformZones)

	for zone := 0; zone < def.PlatformZones; zone++ {
		zoneStart := PlatformStartOffset + float64(zone)*zoneWidth
		zoneEnd := zoneStart + zoneWidth

		target := randIntBetween(rng, def.PlatformsPerZoneMin, def.PlatformsPerZoneMax)
		softTarget += target

		for slot := 0; slot < target; slot++ {
			for attempt := 0; attempt < def.PlatformAttempts; attempt++ {
				candidate, ok := drawPlatform(def, zoneStart, zoneEnd, groundY, rng)
				if !ok {
					break
				}
				if !platformFits(candidate, platforms, checkpoints) {
					continue
				}
				platforms = append(platforms, candidate)
				zonePlaced++
				break
			}
		}
	}

	return platforms, softTarget, zonePlaced
}

func drawPlatform(def biome.Definition, zoneStart, zoneEnd, groundY float64, rng *rand.Rand) (blueprint.Platform, bool) {
	w := RandomDistance(rng, def.PlatformWidthMin, def.PlatformWidthMax)
	minX := zoneStart + def.ZoneEdgeMargin
	maxX := zoneEnd - def.ZoneEdgeMargin - w
	if maxX <= minX {
		return blueprint.Platform{}, false
	}
	x := RandomDistance(rng, minX, maxX)
	elevation := RandomDistance(rng, def.PlatformBandMin, def.PlatformBandMax)
	return blueprint.Platform{
		X:      x,
		Y:      groundY - elevation,
		Width:  w,
		Height: def.PlatformHeight,
	}, true
}

// platformFits applies the full candidate filter: checkpoint exclusion,
// overlap, the two-tier spacing rule, and the reachability chain. The first
// platform in the slice is always the ground and always counts as reachable.
func platformFits(candidate blueprint.Platform, platforms []blueprint.Platform, checkpoints *CheckpointValidator) bool {
	rect := platformRect(candidate)
	cx, cy := rect.Center()
	if checkpoints.NearAny(cx, cy, DefaultCheckpointRadius) {
		return false
	}

	for _, p := range platforms {
		if Overlaps(rect, platformRect(p)) {
			return false
		}
	}

	for i, p := range platforms {
		if i == 0 {
			continue // spacing rules do not apply against the ground
		}
		hGap := intervalGap(candidate.X, candidate.X+candidate.Width, p.X, p.X+p.Width)
		vGap := math.Abs(candidate.Y - p.Y)
		if hGap < horizontalBand && vGap < MinVerticalSpacing {
			return false
		}
		if vGap < similarHeightTolerance && hGap < MinHorizontalSpacing {
			return false
		}
	}

	// Committed platforms are reachable by induction, so any of them may
	// serve as the jump source for the candidate.
	for _, p := range platforms {
		if PlatformReachable(p, candidate) {
			return true
		}
	}
	return false
}
