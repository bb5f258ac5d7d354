package seed

import "math/rand"

// All random draws go through the Seeder's rng so a pinned SEED_RANDOM_SEED
// reproduces the whole dataset.

func pickOne[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// intBetween returns a value in [min, max] inclusive.
func intBetween(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// chance reports true with probability p in [0, 1].
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
