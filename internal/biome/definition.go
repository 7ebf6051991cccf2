package biome

import (
	"fmt"
	"math"

	"skybound/server/internal/blueprint"
	"skybound/server/internal/powerup"
)

const weightSumTolerance = 1e-6

// Definition is the complete per-biome parameter bundle consumed by the
// generator. It is pure data: the generation algorithm is fixed and only
// these numbers vary between biomes.
type Definition struct {
	Name    string            `json:"name"`
	Palette blueprint.Palette `json:"palette"`
	Music   string            `json:"music"`

	// Platform placement.
	PlatformZones       int     `json:"platformZones"`
	PlatformsPerZoneMin int     `json:"platformsPerZoneMin"`
	PlatformsPerZoneMax int     `json:"platformsPerZoneMax"`
	PlatformAttempts    int     `json:"platformAttempts"`
	PlatformWidthMin    float64 `json:"platformWidthMin"`
	PlatformWidthMax    float64 `json:"platformWidthMax"`
	PlatformHeight      float64 `json:"platformHeight"`
	PlatformBandMin     float64 `json:"platformBandMin"`
	PlatformBandMax     float64 `json:"platformBandMax"`
	ZoneEdgeMargin      float64 `json:"zoneEdgeMargin"`

	// Hazard placement.
	SpikeWidth       float64 `json:"spikeWidth"`
	SpikeHeight      float64 `json:"spikeHeight"`
	SpikeChance      float64 `json:"spikeChance"`
	HazardZones      int     `json:"hazardZones"`
	DangerZones      int     `json:"dangerZones"`
	DangerZoneLength int     `json:"dangerZoneLength"`
	PlatformSpikes   int     `json:"platformSpikes"`

	// Enemy placement.
	EnemyGroundChance   float64 `json:"enemyGroundChance"`
	EnemyPlatformChance float64 `json:"enemyPlatformChance"`

	// Power-up placement.
	PowerUpWeights        map[powerup.Type]float64 `json:"powerUpWeights"`
	PowerUpDensity        float64                  `json:"powerUpDensity"`
	PowerUpCheckpointDist float64                  `json:"powerUpCheckpointDist"`
	PowerUpGoalDist       float64                  `json:"powerUpGoalDist"`
	PowerUpEnemyDist      float64                  `json:"powerUpEnemyDist"`
	PowerUpHazardDist     float64                  `json:"powerUpHazardDist"`
	PowerUpSpacing        float64                  `json:"powerUpSpacing"`
}

// Normalized returns a copy with defaults applied to unset values.
func (d Definition) Normalized() Definition {
	normalized := d
	if normalized.PlatformZones <= 0 {
		normalized.PlatformZones = 6
	}
	if normalized.PlatformsPerZoneMin < 0 {
		normalized.PlatformsPerZoneMin = 0
	}
	if normalized.PlatformsPerZoneMax < normalized.PlatformsPerZoneMin {
		normalized.PlatformsPerZoneMax = normalized.PlatformsPerZoneMin
	}
	if normalized.PlatformAttempts <= 0 {
		normalized.PlatformAttempts = 25
	}
	if normalized.PlatformWidthMin <= 0 {
		normalized.PlatformWidthMin = 100
	}
	if normalized.PlatformWidthMax < normalized.PlatformWidthMin {
		normalized.PlatformWidthMax = normalized.PlatformWidthMin
	}
	if normalized.PlatformHeight <= 0 {
		normalized.PlatformHeight = 20
	}
	if normalized.PlatformBandMin <= 0 {
		normalized.PlatformBandMin = 100
	}
	if normalized.PlatformBandMax < normalized.PlatformBandMin {
		normalized.PlatformBandMax = normalized.PlatformBandMin
	}
	if normalized.ZoneEdgeMargin < 0 {
		normalized.ZoneEdgeMargin = 0
	}
	if normalized.SpikeWidth <= 0 {
		normalized.SpikeWidth = 40
	}
	if normalized.SpikeHeight <= 0 {
		normalized.SpikeHeight = 30
	}
	if normalized.HazardZones <= 0 {
		normalized.HazardZones = normalized.PlatformZones * 2
	}
	if normalized.DangerZones < 0 {
		normalized.DangerZones = 0
	}
	if normalized.DangerZoneLength <= 0 {
		normalized.DangerZoneLength = 2
	}
	if normalized.PlatformSpikes < 0 {
		normalized.PlatformSpikes = 0
	}
	if normalized.PowerUpDensity <= 0 {
		normalized.PowerUpDensity = 900
	}
	if normalized.PowerUpCheckpointDist <= 0 {
		normalized.PowerUpCheckpointDist = 100
	}
	if normalized.PowerUpGoalDist <= 0 {
		normalized.PowerUpGoalDist = 150
	}
	if normalized.PowerUpEnemyDist <= 0 {
		normalized.PowerUpEnemyDist = 120
	}
	if normalized.PowerUpHazardDist <= 0 {
		normalized.PowerUpHazardDist = 80
	}
	if normalized.PowerUpSpacing <= 0 {
		normalized.PowerUpSpacing = 90
	}
	return normalized
}

// Validate rejects definitions that reference unregistered power-up types or
// carry a probability table that does not sum to 1. These are content errors
// and fail at construction time, never during generation.
func (d Definition) Validate(reg powerup.Registry) error {
	if d.Name == "" {
		return fmt.Errorf("biome: missing name")
	}
	if d.Music == "" {
		return fmt.Errorf("biome %s: missing music key", d.Name)
	}
	if len(d.PowerUpWeights) == 0 {
		return fmt.Errorf("biome %s: empty power-up probability table", d.Name)
	}
	if err := reg.Validate(d.PowerUpWeights); err != nil {
		return fmt.Errorf("biome %s: %w", d.Name, err)
	}
	sum := 0.0
	for t, w := range d.PowerUpWeights {
		if w < 0 {
			return fmt.Errorf("biome %s: negative weight for power-up type %q", d.Name, t)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("biome %s: power-up weights sum to %.6f, want 1.0", d.Name, sum)
	}
	if d.SpikeChance < 0 || d.SpikeChance > 1 {
		return fmt.Errorf("biome %s: spike chance %.3f outside [0,1]", d.Name, d.SpikeChance)
	}
	if d.EnemyGroundChance < 0 || d.EnemyGroundChance > 1 {
		return fmt.Errorf("biome %s: enemy ground chance %.3f outside [0,1]", d.Name, d.EnemyGroundChance)
	}
	if d.EnemyPlatformChance < 0 || d.EnemyPlatformChance > 1 {
		return fmt.Errorf("biome %s: enemy platform chance %.3f outside [0,1]", d.Name, d.EnemyPlatformChance)
	}
	return nil
}
