package worldgen

import "skybound/server/internal/blueprint"

// generateCheckpoints lays out the fixed checkpoint set for a level. This
// step is deterministic, never random: the rest of the pipeline assumes
// exactly CheckpointsPerLevel checkpoints exist at exact positions, and the
// 0-based IDs are the identity used by save/restore.
//
// For degenerate worlds narrower than the checkpoint spacing the positions
// fall outside the playable span; that is accepted rather than special-cased
// so the count invariant holds unconditionally.
func generateCheckpoints(width, height float64) []blueprint.Checkpoint {
	checkpoints := make([]blueprint.Checkpoint, 0, CheckpointsPerLevel)
	for i := 1; i <= CheckpointsPerLevel; i++ {
		checkpoints = append(checkpoints, blueprint.Checkpoint{
			ID:     i - 1,
			X:      float64(i) * CheckpointSpacing,
			Y:      height - CheckpointFloorOffset,
			Width:  blueprint.CheckpointWidth,
			Height: blueprint.CheckpointHeight,
		})
	}
	return checkpoints
}

// CheckpointValidator answers exclusion-radius queries against the fixed
// checkpoint set of a level. It is built once, after checkpoints are laid
// out, and reused by every later placement stage.
type CheckpointValidator struct {
	centers [][2]float64
}

func NewCheckpointValidator(checkpoints []blueprint.Checkpoint) *CheckpointValidator {
	centers := make([][2]float64, 0, len(checkpoints))
	for _, cp := range checkpoints {
		centers = append(centers, [2]float64{cp.X + cp.Width/2, cp.Y + cp.Height/2})
	}
	return &CheckpointValidator{centers: centers}
}

// NearAny reports whether (x, y) lies within radius of any checkpoint
// center. Different entity types pass different radii.
func (v *CheckpointValidator) NearAny(x, y, radius float64) bool {
	for _, c := range v.centers {
		if Distance(x, y, c[0], c[1]) < radius {
			return true
		}
	}
	return false
}
