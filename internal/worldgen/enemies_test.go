package worldgen

import (
	"testing"

	"skybound/server/internal/biome"
	"skybound/server/internal/blueprint"
)

func TestGenerateEnemiesPlacement(t *testing.T) {
	def := biome.Glacial() // highest spawn odds
	checkpoints := generateCheckpoints(3000, 600)
	validator := NewCheckpointValidator(checkpoints)
	goal := goalFor(3000, 600)

	for _, seed := range []string{"pack-1", "pack-2", "pack-3"} {
		platforms, _, _ := generatePlatforms(def, 3000, 600, validator, NewDeterministicRNG(seed, "platforms"))
		enemies := generateEnemies(def, platforms, validator, goal, NewDeterministicRNG(seed, "enemies"))

		if len(enemies) > len(platforms) {
			t.Fatalf("seed %s: %d enemies from %d platforms; at most one per platform", seed, len(enemies), len(platforms))
		}

		for i, e := range enemies {
			if e.Width != blueprint.EnemyWidth || e.Height != blueprint.EnemyHeight {
				t.Fatalf("seed %s: enemy %d footprint %fx%f, want %fx%f", seed, i, e.Width, e.Height, blueprint.EnemyWidth, blueprint.EnemyHeight)
			}
			if e.X < SpawnSafeZone {
				t.Fatalf("seed %s: enemy %d at x=%f inside the spawn safe zone", seed, i, e.X)
			}
			if !RestsOnSurface(e.X, e.Y, e.Width, e.Height, platforms, 600-GroundThickness) {
				t.Fatalf("seed %s: enemy %d %+v has no supporting platform", seed, i, e)
			}

			cx := e.X + e.Width/2
			cy := e.Y + e.Height/2
			if validator.NearAny(cx, cy, EnemyExclusionRadius) {
				t.Fatalf("seed %s: enemy %d inside a checkpoint exclusion radius", seed, i)
			}
			if Distance(cx, cy, goal.X+goal.Width/2, goal.Y+goal.Height/2) < EnemyExclusionRadius {
				t.Fatalf("seed %s: enemy %d inside the goal exclusion radius", seed, i)
			}
			for j, other := range enemies {
				if j == i {
					continue
				}
				if Distance(cx, cy, other.X+other.Width/2, other.Y+other.Height/2) < EnemyExclusionRadius {
					t.Fatalf("seed %s: enemies %d and %d closer than the exclusion radius", seed, i, j)
				}
			}
		}
	}
}

func TestGenerateEnemiesSkipsNarrowPlatforms(t *testing.T) {
	def := biome.Glacial()
	def.EnemyPlatformChance = 1.0 // every eligible platform rolls a spawn
	checkpoints := NewCheckpointValidator(generateCheckpoints(3000, 600))
	goal := goalFor(3000, 600)

	narrow := []blueprint.Platform{
		{X: 0, Y: 550, Width: 3000, Height: GroundThickness},
		{X: 900, Y: 400, Width: MinEnemyPlatformWidth - 1, Height: 15},
	}
	def.EnemyGroundChance = 0
	enemies := generateEnemies(def, narrow, checkpoints, goal, NewDeterministicRNG("narrow", "enemies"))
	for _, e := range enemies {
		if e.Y == 400-blueprint.EnemyHeight {
			t.Fatalf("enemy spawned on a platform below the width threshold: %+v", e)
		}
	}
}
