// SPDX-License-Identifier: MIT
// Package: trio/roster

// Package roster - internal configuration and deterministic defaults.
//
// Design:
//   - rosterConfig is the single source of truth for all generator knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newRosterConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   - nameFn  = prefixedName         ("P1","P2",…)
//   - groupFn = letterLabel          ("A","B",…,"Z","A1","B1",…)
//   - rng     = fixed default stream (reproducible unless reseeded)

package roster

import (
	"math/rand"
	"strconv"
)

// rosterConfig aggregates all knobs used by the generators.
// It is passed by VALUE to generators (immutable to callers).
type rosterConfig struct {
	// Participant name scheme: index -> name (deterministic).
	nameFn func(int) string

	// Group label scheme: group index -> label (deterministic).
	groupFn func(int) string

	// RNG for random group assignment in Grouped.
	rng *rand.Rand
}

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0;
// same policy as the circle package.
const defaultRNGSeed int64 = 1

// defaultNamePrefix prefixes generated participant names.
const defaultNamePrefix = "P"

// letterCount is the size of the base group alphabet A..Z.
const letterCount = 26

// newRosterConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newRosterConfig(opts ...Option) rosterConfig {
	cfg := rosterConfig{
		nameFn:  prefixedName,
		groupFn: letterLabel,
		rng:     rngFromSeed(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise the seed verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// prefixedName renders participant index i as "P<i+1>" ("P1","P2",…).
// Deterministic and allocation-light; suitable for golden tests.
func prefixedName(i int) string {
	return defaultNamePrefix + strconv.Itoa(i+1)
}

// letterLabel renders group index i as a letter: "A".."Z" for the first
// twenty-six, then "A1","B1",… for further alphabets.
func letterLabel(i int) string {
	letter := string(rune('A' + i%letterCount))
	if i < letterCount {
		return letter
	}

	return letter + strconv.Itoa(i/letterCount)
}
