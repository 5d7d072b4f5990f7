// SPDX-License-Identifier: MIT
// Package: trio/roster

// Package roster supplies participants to the circle package: parsing of
// "name/group" tokens and deterministic test-roster generators.
//
// ⚙️ Parsing:
//
//	ps, err := roster.ParseList("A/x, B/y, C")   // "C" ⇒ no group
//
// ⚙️ Generating:
//
//	ps, err := roster.Uniform(8)                  // 8 ungrouped participants
//	ps, err := roster.Grouped(12, 4, roster.WithSeed(7))
//	ps, warns, err := roster.Sized(34, []int{10, 8, 5, 4, 3, 2, 1, 1})
//
// Sized follows the tolerant configuration policy: when the explicit group
// sizes do not sum to the requested count, it emits exactly one Warning
// value and proceeds with the explicit sizes — the size list wins. The
// library never logs; warnings are data for the caller to surface.
//
// Determinism mirrors the circle package: generators default to a fixed
// RNG stream, WithSeed/WithRand make the policy explicit. Names and group
// labels come from injectable schemes (WithNameFn, WithGroupFn) so golden
// tests can pin human-readable rosters.
package roster
