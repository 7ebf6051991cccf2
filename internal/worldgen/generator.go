package worldgen

import (
	"context"
	"math/rand"
	"strings"

	"skybound/server/internal/biome"
	"skybound/server/internal/blueprint"
	"skybound/server/internal/powerup"
	"skybound/server/logging"
)

const (
	EventLevelGenerated logging.EventType = "worldgen.level_generated"
	EventUnderfill      logging.EventType = "worldgen.underfill"
)

// Deps bundles the injectable collaborators of a Generator. Both fields are
// optional; the zero value yields deterministic default RNG streams and a
// no-op publisher.
type Deps struct {
	RNG       RNGFactory
	Publisher logging.Publisher
}

// Generator produces world blueprints for one biome under one root seed.
// GenerateWorld is a pure function of (width, height, definition, seed):
// each call re-derives its per-stage RNG streams from the root seed, so
// repeated calls with the same arguments yield bit-identical blueprints.
type Generator struct {
	def        biome.Definition
	reg        powerup.Registry
	seed       string
	rngFactory RNGFactory
	publisher  logging.Publisher
}

// New validates the biome definition against the power-up registry and
// builds a generator. Definition errors (unregistered power-up type, weights
// not summing to 1) surface here, never during generation.
func New(def biome.Definition, reg powerup.Registry, seed string, deps Deps) (*Generator, error) {
	normalized := def.Normalized()
	if err := normalized.Validate(reg); err != nil {
		return nil, err
	}

	seed = strings.TrimSpace(seed)
	if seed == "" {
		seed = DefaultSeed
	}

	factory := deps.RNG
	if factory == nil {
		factory = NewDeterministicRNG
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = logging.NopPublisher()
	}

	return &Generator{
		def:        normalized,
		reg:        reg,
		seed:       seed,
		rngFactory: factory,
		publisher:  publisher,
	}, nil
}

// Definition returns the normalized biome definition in use.
func (g *Generator) Definition() biome.Definition {
	return g.def
}

// Seed returns the root seed in use.
func (g *Generator) Seed() string {
	return g.seed
}

// GenerateWorld builds one complete level blueprint. The stage ordering is
// fixed: checkpoints, platforms, hazards, goal, enemies, power-ups, music.
// Later stages consume earlier stages' output, so the order must not change.
//
// Placement stages are best-effort: an entity that finds no valid position
// within its attempt budget is omitted, and the result is a sparser but
// structurally valid level. The structural pieces — ground slab, checkpoint
// set, goal — are deterministic and always present.
func (g *Generator) GenerateWorld(width, height float64) *blueprint.World {
	if width <= 0 {
		width = DefaultWorldWidth
	}
	if height <= 0 {
		height = DefaultWorldHeight
	}

	checkpoints := generateCheckpoints(width, height)
	checkpointValidator := NewCheckpointValidator(checkpoints)
	placementValidator := NewPlacementValidator(checkpointValidator)

	platforms, platformTarget, platformPlaced := generatePlatforms(g.def, width, height, checkpointValidator, g.rng("platforms"))

	spikes := make([]blueprint.Spike, 0)
	spikes = generateGroundSpikes(g.def, width, height, platforms, placementValidator, spikes, g.rng("hazards.ground"))
	spikes = generateDangerZones(g.def, width, height, platforms, checkpointValidator, placementValidator, spikes, g.rng("hazards.danger"))
	spikes = generatePlatformSpikes(g.def, platforms, checkpointValidator, spikes, g.rng("hazards.platform"))

	goal := goalFor(width, height)

	enemies := generateEnemies(g.def, platforms, checkpointValidator, goal, g.rng("enemies"))

	powerups, powerupTarget := generatePowerUps(g.def, g.reg, width, height, platforms, spikes, checkpointValidator, goal, enemies, g.rng("powerups"))

	world := &blueprint.World{
		Name:        g.def.Name,
		Palette:     g.def.Palette,
		Platforms:   platforms,
		Spikes:      spikes,
		Checkpoints: checkpoints,
		Goal:        goal,
		Enemies:     enemies,
		PowerUps:    powerups,
		Music:       g.def.Music,
	}

	g.reportUnderfill("platforms", platformTarget, platformPlaced)
	g.reportUnderfill("powerups", powerupTarget, len(powerups))
	g.publisher.Publish(context.Background(), logging.Event{
		Type:     EventLevelGenerated,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryGeneration,
		Biome:    g.def.Name,
		Seed:     g.seed,
		Payload: map[string]int{
			"platforms":   len(platforms),
			"spikes":      len(spikes),
			"checkpoints": len(checkpoints),
			"enemies":     len(enemies),
			"powerups":    len(powerups),
		},
	})

	return world
}

// goalFor places the level exit in the bottom-right corner with its fixed
// footprint, standing on the ground slab.
func goalFor(width, height float64) blueprint.Goal {
	return blueprint.Goal{
		X:      width - blueprint.GoalWidth - GoalEdgeMargin,
		Y:      height - GroundThickness - blueprint.GoalHeight,
		Width:  blueprint.GoalWidth,
		Height: blueprint.GoalHeight,
	}
}

func (g *Generator) rng(label string) *rand.Rand {
	return g.rngFactory(g.seed, label)
}

func (g *Generator) reportUnderfill(stage string, wanted, placed int) {
	if placed >= wanted {
		return
	}
	g.publisher.Publish(context.Background(), logging.Event{
		Type:     EventUnderfill,
		Severity: logging.SeverityWarn,
		Category: logging.CategoryGeneration,
		Biome:    g.def.Name,
		Seed:     g.seed,
		Stage:    stage,
		Payload:  map[string]int{"wanted": wanted, "placed": placed},
	})
}
