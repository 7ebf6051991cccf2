package worldgen

// World layout constants shared by every biome. Per-biome tuning lives in
// biome.Definition; these numbers define the fixed physics and layout
// contract the loader and player movement code rely on.
const (
	DefaultWorldWidth  = 3000.0
	DefaultWorldHeight = 600.0

	// GroundThickness is the height of the full-width floor platform.
	GroundThickness = 50.0

	// Checkpoint layout. Checkpoints are deterministic: exactly
	// CheckpointsPerLevel of them, CheckpointSpacing apart, at a fixed
	// offset above the bottom of the world.
	CheckpointsPerLevel   = 3
	CheckpointSpacing     = 800.0
	CheckpointFloorOffset = 150.0

	// Jump model, derived from the player's movement constants
	// (speed 5 px/frame, jump impulse 18, gravity 0.8) with a safety
	// margin so a generated gap is always clearable in practice.
	MaxJumpDistance = 200.0
	MaxJumpHeight   = 160.0

	// SurfaceTolerance is how far an object's bottom edge may sit from a
	// supporting surface and still count as resting on it.
	SurfaceTolerance = 5.0

	// DefaultCheckpointRadius is the exclusion radius used when a caller
	// does not supply its own.
	DefaultCheckpointRadius = 120.0

	// Two-tier platform spacing rule: platforms closer than
	// horizontalBand sideways must differ by at least MinVerticalSpacing
	// in height, and platforms within similarHeightTolerance of each
	// other vertically must keep MinHorizontalSpacing of clearance.
	MinVerticalSpacing     = 50.0
	MinHorizontalSpacing   = 80.0
	horizontalBand         = 60.0
	similarHeightTolerance = 30.0

	// Horizontal windows for the stochastic passes. Zones start after the
	// spawn area and stop short of the goal.
	PlatformStartOffset = 600.0
	PlatformEndOffset   = 300.0
	HazardStartOffset   = 500.0
	HazardEndOffset     = 200.0

	// SpawnSafeZone keeps enemies away from the spawn area.
	SpawnSafeZone        = 600.0
	EnemyExclusionRadius = 150.0
	MinEnemyPlatformWidth = 80.0
	enemyEdgeMargin      = 20.0

	// Goal placement: bottom-right corner, inset from the world edge.
	GoalEdgeMargin = 60.0

	platformSpikeMargin = 20.0

	powerUpCountJitter       = 3
	powerUpAttemptsPerTarget = 15
	powerUpPlatformMargin    = 20.0
	powerUpStartOffset       = 300.0
	powerUpFloatBandMin      = 120.0
	powerUpFloatBandMax      = 320.0
)
