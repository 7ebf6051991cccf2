package worldgen

// Shared invariant helpers used by the placement and generator tests.

import (
	"testing"

	"skybound/server/internal/blueprint"
)

// assertChainReachable verifies the traversability property: every
// non-ground platform is reachable from the ground through a chain of jumps.
func assertChainReachable(t *testing.T, platforms []blueprint.Platform) {
	t.Helper()
	if len(platforms) == 0 {
		t.Fatalf("no platforms generated")
	}

	reachable := make([]bool, len(platforms))
	reachable[0] = true // ground
	for changed := true; changed; {
		changed = false
		for i, p := range platforms {
			if reachable[i] {
				continue
			}
			for j, src := range platforms {
				if !reachable[j] {
					continue
				}
				if PlatformReachable(src, p) {
					reachable[i] = true
					changed = true
					break
				}
			}
		}
	}

	for i, ok := range reachable {
		if !ok {
			t.Fatalf("platform %d %+v is not reachable from the ground", i, platforms[i])
		}
	}
}

func assertNoPlatformOverlap(t *testing.T, platforms []blueprint.Platform) {
	t.Helper()
	for i := 0; i < len(platforms); i++ {
		for j := i + 1; j < len(platforms); j++ {
			if Overlaps(platformRect(platforms[i]), platformRect(platforms[j])) {
				t.Fatalf("platforms %d and %d overlap: %+v vs %+v", i, j, platforms[i], platforms[j])
			}
		}
	}
}

func assertNoSpikeOverlap(t *testing.T, spikes []blueprint.Spike) {
	t.Helper()
	for i := 0; i < len(spikes); i++ {
		for j := i + 1; j < len(spikes); j++ {
			if Overlaps(spikeRect(spikes[i]), spikeRect(spikes[j])) {
				t.Fatalf("spikes %d and %d overlap: %+v vs %+v", i, j, spikes[i], spikes[j])
			}
		}
	}
}

func assertSpikesSupported(t *testing.T, spikes []blueprint.Spike, platforms []blueprint.Platform, groundY float64) {
	t.Helper()
	for i, s := range spikes {
		if !RestsOnSurface(s.X, s.Y, s.Width, s.Height, platforms, groundY) {
			t.Fatalf("spike %d %+v floats unsupported", i, s)
		}
	}
}

func assertGroundSlab(t *testing.T, platforms []blueprint.Platform, width, height float64) blueprint.Platform {
	t.Helper()
	want := blueprint.Platform{X: 0, Y: height - GroundThickness, Width: width, Height: GroundThickness}
	count := 0
	for _, p := range platforms {
		if p == want {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("found %d full-width ground slabs matching %+v, want exactly 1", count, want)
	}
	if platforms[0] != want {
		t.Fatalf("ground slab must be the first platform, got %+v", platforms[0])
	}
	return want
}
