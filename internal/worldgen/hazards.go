package worldgen

import (
	"math/rand"

	"skybound/server/internal/biome"
	"skybound/server/internal/blueprint"
)

const (
	groundSpikeAttempts     = 8
	dangerZoneAttempts      = 5
	platformSpikeTryFactor  = 10
)

// generateGroundSpikes runs the per-zone probabilistic spike pass. Hazard
// zones are narrower than platform zones so spikes spread more evenly. Each
// gated zone gets a bounded retry budget; an exhausted budget leaves the
// zone empty.
func generateGroundSpikes(def biome.Definition, width, height float64, platforms []blueprint.Platform, validator *PlacementValidator, spikes []blueprint.Spike, rng *rand.Rand) []blueprint.Spike {
	groundY := height - GroundThickness

	span := width - HazardStartOffset - HazardEndOffset
	if span < def.SpikeWidth {
		return spikes
	}
	zoneWidth := span / float64(def.HazardZones)
	if zoneWidth < def.SpikeWidth {
		return spikes
	}

	for zone := 0; zone < def.HazardZones; zone++ {
		if rng.Float64() >= def.SpikeChance {
			continue
		}
		zoneStart := HazardStartOffset + float64(zone)*zoneWidth
		zoneEnd := zoneStart + zoneWidth

		for attempt := 0; attempt < groundSpikeAttempts; attempt++ {
			x := RandomDistance(rng, zoneStart, zoneEnd-def.SpikeWidth)
			candidate := blueprint.Spike{
				X:      x,
				Y:      groundY - def.SpikeHeight,
				Width:  def.SpikeWidth,
				Height: def.SpikeHeight,
			}
			if !spikeFits(candidate, platforms, spikes, validator, groundY) {
				continue
			}
			spikes = append(spikes, candidate)
			break
		}
	}

	return spikes
}

// generateDangerZones places short runs of adjacent spikes to concentrate
// local difficulty. The zone-level checkpoint check runs once per run; the
// remaining checks run per spike, so a run may commit partially.
func generateDangerZones(def biome.Definition, width, height float64, platforms []blueprint.Platform, checkpoints *CheckpointValidator, validator *PlacementValidator, spikes []blueprint.Spike, rng *rand.Rand) []blueprint.Spike {
	groundY := height - GroundThickness

	span := width - HazardStartOffset - HazardEndOffset
	runWidth := float64(def.DangerZoneLength) * def.SpikeWidth
	if span < runWidth {
		return spikes
	}
	zoneWidth := span / float64(def.HazardZones)

	for run := 0; run < def.DangerZones; run++ {
		for attempt := 0; attempt < dangerZoneAttempts; attempt++ {
			zone := rng.Intn(def.HazardZones)
			zoneStart := HazardStartOffset + float64(zone)*zoneWidth
			zoneEnd := zoneStart + zoneWidth
			if zoneEnd-zoneStart < runWidth {
				continue
			}
			startX := RandomDistance(rng, zoneStart, zoneEnd-runWidth)

			// Zone-level gate: a run centered near a checkpoint is
			// rejected wholesale before any spike is attempted.
			if checkpoints.NearAny(startX+runWidth/2, groundY-def.SpikeHeight/2, DefaultCheckpointRadius) {
				continue
			}

			placedAny := false
			for i := 0; i < def.DangerZoneLength; i++ {
				candidate := blueprint.Spike{
					X:      startX + float64(i)*def.SpikeWidth,
					Y:      groundY - def.SpikeHeight,
					Width:  def.SpikeWidth,
					Height: def.SpikeHeight,
				}
				if !spikeFits(candidate, platforms, spikes, validator, groundY) {
					continue
				}
				spikes = append(spikes, candidate)
				placedAny = true
			}
			if placedAny {
				break
			}
		}
	}

	return spikes
}

// generatePlatformSpikes crowns a biome-configured number of eligible
// platforms with one spike each. Beyond the generic surface test, the spike
// must sit flush on the platform actually selected for it — a spike that
// technically rests on some other platform underneath is rejected.
func generatePlatformSpikes(def biome.Definition, platforms []blueprint.Platform, checkpoints *CheckpointValidator, spikes []blueprint.Spike, rng *rand.Rand) []blueprint.Spike {
	if def.PlatformSpikes <= 0 {
		return spikes
	}

	minWidth := def.SpikeWidth + 2*platformSpikeMargin
	eligible := make([]int, 0, len(platforms))
	for i, p := range platforms {
		if i == 0 {
			continue // never the ground slab
		}
		if p.Width < minWidth {
			continue
		}
		cx, cy := platformRect(p).Center()
		if checkpoints.NearAny(cx, cy, DefaultCheckpointRadius) {
			continue
		}
		eligible = append(eligible, i)
	}
	if len(eligible) == 0 {
		return spikes
	}

	used := make(map[int]bool, def.PlatformSpikes)
	placed := 0
	for attempt := 0; attempt < def.PlatformSpikes*platformSpikeTryFactor && placed < def.PlatformSpikes; attempt++ {
		idx := eligible[rng.Intn(len(eligible))]
		if used[idx] {
			continue
		}
		p := platforms[idx]

		x := RandomDistance(rng, p.X+platformSpikeMargin, p.X+p.Width-platformSpikeMargin-def.SpikeWidth)
		candidate := blueprint.Spike{
			X:          x,
			Y:          p.Y - def.SpikeHeight,
			Width:      def.SpikeWidth,
			Height:     def.SpikeHeight,
			OnPlatform: true,
		}
		if !restsOnPlatform(candidate.X, candidate.Y, candidate.Width, candidate.Height, p) {
			continue
		}
		cx, cy := spikeRect(candidate).Center()
		if checkpoints.NearAny(cx, cy, DefaultCheckpointRadius) {
			continue
		}
		if overlapsAnySpike(candidate, spikes) {
			continue
		}

		spikes = append(spikes, candidate)
		used[idx] = true
		placed++
	}

	return spikes
}

// spikeFits is the shared filter for ground-level spikes: checkpoint
// exclusion, no overlap with committed hazards, and flush support under the
// strict span-containment rule.
func spikeFits(candidate blueprint.Spike, platforms []blueprint.Platform, spikes []blueprint.Spike, validator *PlacementValidator, groundY float64) bool {
	existing := make([]Rect, 0, len(spikes))
	for _, s := range spikes {
		existing = append(existing, spikeRect(s))
	}
	if !validator.ValidatePosition(spikeRect(candidate), existing, 0) {
		return false
	}
	return RestsOnSurface(candidate.X, candidate.Y, candidate.Width, candidate.Height, platforms, groundY)
}

func overlapsAnySpike(candidate blueprint.Spike, spikes []blueprint.Spike) bool {
	rect := spikeRect(candidate)
	for _, s := range spikes {
		if Overlaps(rect, spikeRect(s)) {
			return true
		}
	}
	return false
}
