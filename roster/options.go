// SPDX-License-Identifier: MIT
// Package: trio/roster

// Package roster - functional options for the generators.
//
// Contract (strict):
//   - Options are functional (type Option func(*rosterConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     generators themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package roster

import "math/rand"

// Option customizes generator behavior by mutating a rosterConfig before
// generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*rosterConfig)

// WithSeed derives a fresh deterministic RNG from the given seed
// (seed==0 selects the stable default stream).
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *rosterConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand provides an explicit RNG for random group assignment.
// Panics on nil; prefer WithSeed for reproducible rosters.
// Complexity: O(1).
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("roster: WithRand(nil)")
	}

	return func(c *rosterConfig) {
		c.rng = r
	}
}

// WithNameFn sets the deterministic participant name scheme: idx -> name.
// Panics on nil to surface programmer error early.
// Complexity: O(1).
func WithNameFn(fn func(int) string) Option {
	if fn == nil {
		panic("roster: WithNameFn(nil)")
	}

	return func(c *rosterConfig) {
		c.nameFn = fn
	}
}

// WithGroupFn sets the deterministic group label scheme: group idx -> label.
// Panics on nil.
// Complexity: O(1).
func WithGroupFn(fn func(int) string) Option {
	if fn == nil {
		panic("roster: WithGroupFn(nil)")
	}

	return func(c *rosterConfig) {
		c.groupFn = fn
	}
}
