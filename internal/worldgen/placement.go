package worldgen

// PlacementValidator composes the checkpoint exclusion test with category
// overlap and optional minimum spacing into a single "can this go here"
// decision. Checks short-circuit: callers reject the candidate on the first
// violated constraint and retry with a fresh random draw.
type PlacementValidator struct {
	checkpoints *CheckpointValidator
}

func NewPlacementValidator(checkpoints *CheckpointValidator) *PlacementValidator {
	return &PlacementValidator{checkpoints: checkpoints}
}

// ValidatePosition reports whether candidate may be placed given the
// already-committed objects of its category. minSpacing, when positive, also
// enforces a center-to-center distance against every existing object.
func (v *PlacementValidator) ValidatePosition(candidate Rect, existing []Rect, minSpacing float64) bool {
	cx, cy := candidate.Center()
	if v.checkpoints.NearAny(cx, cy, DefaultCheckpointRadius) {
		return false
	}
	for _, other := range existing {
		if Overlaps(candidate, other) {
			return false
		}
	}
	if minSpacing > 0 {
		for _, other := range existing {
			ox, oy := other.Center()
			if Distance(cx, cy, ox, oy) < minSpacing {
				return false
			}
		}
	}
	return true
}
