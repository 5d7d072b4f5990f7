// Package circle - RNG policy for randomized insertion starts.
//
// Goals:
//   - Determinism: same seed ⇒ identical circles across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; randomness only picks a starting offset,
//     never affects whether a fit exists.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Circulator owns its RNG and is
//     itself single-threaded; do not share one across goroutines.
package circle

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// randOffset draws a hop count in [0, n) from rng. n ≤ 1 short-circuits to
// zero so callers never pass a degenerate bound to Intn.
//
// Complexity: O(1).
func randOffset(rng *rand.Rand, n int) int {
	if n <= 1 {
		return 0
	}

	return rng.Intn(n)
}
