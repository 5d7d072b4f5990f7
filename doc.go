// Package trio builds three simultaneous "hunter→prey" assignment circles
// over one set of participants — three edge-disjoint Hamiltonian cycles,
// grown incrementally under cross-circle and group constraints.
//
// 🚀 What is trio?
//
//	A small, deterministic library for social deduction games that need
//	several hunting assignments running at once:
//		• Each circle visits every participant exactly once (one cycle, no islands)
//		• No hunter stalks the same prey in two different circles
//		• No hunter and prey share a group label within a circle
//
// ✨ Why choose trio?
//
//   - Incremental – a fixed 5-node seed graph, then one insertion per
//     participant per circle; no global search, no backtracking
//   - Deterministic – explicit, injectable RNG; same seed ⇒ same circles
//   - Strict sentinels – every failure is an errors.Is-able value, never a hang
//   - Pure Go library – the only binary surface is the optional trio CLI
//
// Under the hood, everything is organized under three subpackages:
//
//	circle/ — Participant nodes, the seed graph, the insertion engine and
//	          the Circulator orchestrator (build, traverse, render)
//	order/  — group-diversity preprocessor (bucket + interleave)
//	roster/ — participant supply: "name/group" token parsing & generators
//
// Quick ASCII example (circle 0 of a five-participant seed):
//
//	    A──▶B
//	    ▲    ╲
//	    E◀─D◀─C
//
// Dive into the package docs and example_test.go files for full walkthroughs.
//
//	go get github.com/katalvlaran/trio
package trio
