package worldgen

import (
	"hash/fnv"
	"math/rand"
)

// DefaultSeed is used when a caller does not supply a root seed.
const DefaultSeed = "skybound"

// RNGFactory produces deterministic RNG instances for generation stages.
type RNGFactory func(rootSeed, label string) *rand.Rand

// DeterministicSeedValue hashes a root seed and a stage label into a 64-bit
// seed. Every generation stage draws from its own stream, so inserting or
// reordering draws inside one stage never perturbs another.
func DeterministicSeedValue(rootSeed, label string) int64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(rootSeed))
	hasher.Write([]byte{0})
	hasher.Write([]byte(label))
	sum := hasher.Sum64()
	if sum == 0 {
		sum = 1
	}
	return int64(sum)
}

// NewDeterministicRNG builds the RNG for a stage label under a root seed.
func NewDeterministicRNG(rootSeed, label string) *rand.Rand {
	return rand.New(rand.NewSource(DeterministicSeedValue(rootSeed, label)))
}

// RandomDistance draws a value in [min, max).
func RandomDistance(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}

// randIntBetween draws an integer in [min, max].
func randIntBetween(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}
