package worldgen

import (
	"testing"

	"skybound/server/internal/blueprint"
)

func TestGenerateCheckpointsLayout(t *testing.T) {
	checkpoints := generateCheckpoints(3000, 600)

	if len(checkpoints) != CheckpointsPerLevel {
		t.Fatalf("checkpoint count = %d, want %d", len(checkpoints), CheckpointsPerLevel)
	}
	for i, cp := range checkpoints {
		if cp.ID != i {
			t.Fatalf("checkpoint %d has id %d, want %d", i, cp.ID, i)
		}
		wantX := float64(i+1) * CheckpointSpacing
		if cp.X != wantX {
			t.Fatalf("checkpoint %d at x=%f, want %f", i, cp.X, wantX)
		}
		if cp.Y != 600-CheckpointFloorOffset {
			t.Fatalf("checkpoint %d at y=%f, want %f", i, cp.Y, 600-CheckpointFloorOffset)
		}
		if cp.Width != blueprint.CheckpointWidth || cp.Height != blueprint.CheckpointHeight {
			t.Fatalf("checkpoint %d footprint %fx%f, want %fx%f", i, cp.Width, cp.Height,
				blueprint.CheckpointWidth, blueprint.CheckpointHeight)
		}
	}
}

func TestGenerateCheckpointsIgnoresNarrowWorlds(t *testing.T) {
	// The count invariant holds even when the spacing pushes checkpoints
	// past the world edge; downstream code tolerates that.
	checkpoints := generateCheckpoints(400, 600)
	if len(checkpoints) != CheckpointsPerLevel {
		t.Fatalf("narrow world checkpoint count = %d, want %d", len(checkpoints), CheckpointsPerLevel)
	}
	if checkpoints[2].X != 3*CheckpointSpacing {
		t.Fatalf("checkpoint spacing must not compress for narrow worlds")
	}
}

func TestCheckpointValidatorNearAny(t *testing.T) {
	checkpoints := generateCheckpoints(3000, 600)
	validator := NewCheckpointValidator(checkpoints)

	cx := checkpoints[0].X + checkpoints[0].Width/2
	cy := checkpoints[0].Y + checkpoints[0].Height/2

	if !validator.NearAny(cx+50, cy, 100) {
		t.Fatalf("point 50 units from a checkpoint center must be near with radius 100")
	}
	if validator.NearAny(cx+150, cy, 100) {
		t.Fatalf("point 150 units away must not be near with radius 100")
	}
	if !validator.NearAny(cx+150, cy, 200) {
		t.Fatalf("radius is per-call: the same point must be near with radius 200")
	}
}

func TestCheckpointValidatorEmptySet(t *testing.T) {
	validator := NewCheckpointValidator(nil)
	if validator.NearAny(0, 0, 1e9) {
		t.Fatalf("validator with no checkpoints must never report proximity")
	}
}
