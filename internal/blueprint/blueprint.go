package blueprint

import "skybound/server/internal/powerup"

// Fixed entity footprints. The loader instantiates live gameplay objects at
// exactly these sizes, so the generator bakes them into the blueprint.
const (
	CheckpointWidth  = 40.0
	CheckpointHeight = 60.0
	GoalWidth        = 60.0
	GoalHeight       = 250.0
	EnemyWidth       = 40.0
	EnemyHeight      = 50.0
	PowerUpSize      = 35.0
)

// RGB is a color triple used by the level palette.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Palette maps the semantic color roles of a level to concrete colors.
type Palette struct {
	Sky      RGB `json:"sky"`
	Ground   RGB `json:"ground"`
	Platform RGB `json:"platform"`
	Hazard   RGB `json:"hazard"`
}

// Platform is an axis-aligned rectangle. Y grows downward; y=0 is the top of
// the world and Y is the platform's top edge.
type Platform struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Spike is a hazard rectangle. OnPlatform distinguishes platform-top spikes
// from ground spikes; it is informational only.
type Spike struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	OnPlatform bool    `json:"onPlatform,omitempty"`
}

// Checkpoint marks a respawn point. ID is the 0-based generation index and is
// the identity used by save/restore, so it must be stable.
type Checkpoint struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Goal is the level exit. Every generated level has exactly one.
type Goal struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Enemy is a spawn descriptor; the loader turns it into a live actor.
type Enemy struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PowerUp is a collectible spawn descriptor.
type PowerUp struct {
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Type   powerup.Type `json:"type"`
}

// World is the complete declarative description of one generated level.
// It is built once by a single generator call and never mutated afterwards;
// the loader copies its data into live gameplay entities.
type World struct {
	Name        string       `json:"name"`
	Palette     Palette      `json:"palette"`
	Platforms   []Platform   `json:"platforms"`
	Spikes      []Spike      `json:"spikes"`
	Checkpoints []Checkpoint `json:"checkpoints"`
	Goal        Goal         `json:"goal"`
	Enemies     []Enemy      `json:"enemies"`
	PowerUps    []PowerUp    `json:"powerups"`
	Music       string       `json:"music"`
}
