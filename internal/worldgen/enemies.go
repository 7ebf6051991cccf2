package worldgen

import (
	"math/rand"

	"skybound/server/internal/biome"
	"skybound/server/internal/blueprint"
)

// generateEnemies walks the committed platforms and rolls at most one spawn
// per platform. There is no retry loop: a failed roll or a rejected position
// simply skips the platform. Enemy count scales with platform count, so
// under-generation here is bounded and intentional.
func generateEnemies(def biome.Definition, platforms []blueprint.Platform, checkpoints *CheckpointValidator, goal blueprint.Goal, rng *rand.Rand) []blueprint.Enemy {
	enemies := make([]blueprint.Enemy, 0)
	goalCX := goal.X + goal.Width/2
	goalCY := goal.Y + goal.Height/2

	for i, p := range platforms {
		if p.Width < MinEnemyPlatformWidth {
			continue
		}

		// The walkable span must clear the spawn safe zone; a platform
		// that cannot hold the enemy plus its edge margin is skipped.
		minX := p.X + enemyEdgeMargin
		if minX < SpawnSafeZone {
			minX = SpawnSafeZone
		}
		maxX := p.X + p.Width - enemyEdgeMargin - blueprint.EnemyWidth
		if maxX <= minX {
			continue
		}

		chance := def.EnemyPlatformChance
		if i == 0 {
			chance = def.EnemyGroundChance
		}
		if rng.Float64() >= chance {
			continue
		}

		x := RandomDistance(rng, minX, maxX)
		candidate := blueprint.Enemy{
			X:      x,
			Y:      p.Y - blueprint.EnemyHeight,
			Width:  blueprint.EnemyWidth,
			Height: blueprint.EnemyHeight,
		}
		cx := candidate.X + candidate.Width/2
		cy := candidate.Y + candidate.Height/2

		if checkpoints.NearAny(cx, cy, EnemyExclusionRadius) {
			continue
		}
		if Distance(cx, cy, goalCX, goalCY) < EnemyExclusionRadius {
			continue
		}
		tooClose := false
		for _, e := range enemies {
			if Distance(cx, cy, e.X+e.Width/2, e.Y+e.Height/2) < EnemyExclusionRadius {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		enemies = append(enemies, candidate)
	}

	return enemies
}
