package worldgen

import (
	"math/rand"

	"skybound/server/internal/biome"
	"skybound/server/internal/blueprint"
	"skybound/server/internal/powerup"
)

// generatePowerUps scatters collectibles with a width-derived soft target.
// Each attempt picks a placement mode — snapped to the top of an elevated
// platform or floating in a height band — and must clear five independent
// exclusion distances: checkpoints, goal, enemies, hazards, and previously
// placed power-ups. The attempt budget is target × 15; exhaustion leaves the
// level sparser, never invalid.
func generatePowerUps(def biome.Definition, reg powerup.Registry, width, height float64, platforms []blueprint.Platform, spikes []blueprint.Spike, checkpoints *CheckpointValidator, goal blueprint.Goal, enemies []blueprint.Enemy, rng *rand.Rand) (powerups []blueprint.PowerUp, target int) {
	groundY := height - GroundThickness
	target = int(width/def.PowerUpDensity) + rng.Intn(powerUpCountJitter)
	if target <= 0 {
		return nil, 0
	}

	elevated := make([]blueprint.Platform, 0, len(platforms))
	for i, p := range platforms {
		if i == 0 {
			continue
		}
		if p.Width >= blueprint.PowerUpSize+2*powerUpPlatformMargin {
			elevated = append(elevated, p)
		}
	}

	goalCX := goal.X + goal.Width/2
	goalCY := goal.Y + goal.Height/2

	powerups = make([]blueprint.PowerUp, 0, target)
	maxAttempts := target * powerUpAttemptsPerTarget
	for attempt := 0; attempt < maxAttempts && len(powerups) < target; attempt++ {
		var x, y float64
		if rng.Float64() < 0.5 && len(elevated) > 0 {
			p := elevated[rng.Intn(len(elevated))]
			x = p.X + p.Width/2 - blueprint.PowerUpSize/2
			y = p.Y - blueprint.PowerUpSize
		} else {
			maxX := width - HazardEndOffset - blueprint.PowerUpSize
			if maxX <= powerUpStartOffset {
				continue
			}
			x = RandomDistance(rng, powerUpStartOffset, maxX)
			elevation := RandomDistance(rng, powerUpFloatBandMin, powerUpFloatBandMax)
			y = groundY - elevation - blueprint.PowerUpSize
		}

		cx := x + blueprint.PowerUpSize/2
		cy := y + blueprint.PowerUpSize/2

		if checkpoints.NearAny(cx, cy, def.PowerUpCheckpointDist) {
			continue
		}
		if Distance(cx, cy, goalCX, goalCY) < def.PowerUpGoalDist {
			continue
		}
		if nearAnyEnemy(cx, cy, enemies, def.PowerUpEnemyDist) {
			continue
		}
		if nearAnySpike(cx, cy, spikes, def.PowerUpHazardDist) {
			continue
		}
		if nearAnyPowerUp(cx, cy, powerups, def.PowerUpSpacing) {
			continue
		}

		powerups = append(powerups, blueprint.PowerUp{
			X:      x,
			Y:      y,
			Width:  blueprint.PowerUpSize,
			Height: blueprint.PowerUpSize,
			Type:   drawPowerUpType(def.PowerUpWeights, reg, rng),
		})
	}

	return powerups, target
}

// drawPowerUpType performs a weighted draw over the registered type set.
// Types iterate in sorted registry order so the draw is deterministic for a
// given RNG stream. The definition was validated at construction, so every
// weighted type is registered and the weights sum to 1.
func drawPowerUpType(weights map[powerup.Type]float64, reg powerup.Registry, rng *rand.Rand) powerup.Type {
	roll := rng.Float64()
	cumulative := 0.0
	last := powerup.Type("")
	for _, t := range reg.Types() {
		w := weights[t]
		if w <= 0 {
			continue
		}
		last = t
		cumulative += w
		if roll < cumulative {
			return t
		}
	}
	// Floating-point slop can leave roll marginally above the final
	// cumulative sum; the last weighted type absorbs it.
	return last
}

func nearAnyEnemy(x, y float64, enemies []blueprint.Enemy, minDist float64) bool {
	for _, e := range enemies {
		if Distance(x, y, e.X+e.Width/2, e.Y+e.Height/2) < minDist {
			return true
		}
	}
	return false
}

func nearAnySpike(x, y float64, spikes []blueprint.Spike, minDist float64) bool {
	for _, s := range spikes {
		if Distance(x, y, s.X+s.Width/2, s.Y+s.Height/2) < minDist {
			return true
		}
	}
	return false
}

func nearAnyPowerUp(x, y float64, powerups []blueprint.PowerUp, minDist float64) bool {
	for _, u := range powerups {
		if Distance(x, y, u.X+u.Width/2, u.Y+u.Height/2) < minDist {
			return true
		}
	}
	return false
}
