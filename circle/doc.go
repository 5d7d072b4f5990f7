// Package circle grows three edge-disjoint Hamiltonian "hunter→prey" cycles
// (circles 0, 1 and 2) over a single participant set.
//
// 🚀 How does it work?
//
//	Construction is incremental, never global:
//	  1. Preprocess — participants are reordered for group diversity
//	     (see package order), so the early skeleton fans groups out.
//	  2. Seed — the first five participants form a fixed base graph:
//	     three cycles generated by the offsets +1, −1 and +2 (mod 5),
//	     pairwise edge-disjoint by construction.
//	  3. Grow — every remaining participant is spliced into each circle
//	     in turn: pick a random start on the cycle, walk forward to the
//	     first gap that admits the newcomer, split that edge.
//
// ✨ Guarantees after a successful Build:
//
//   - Cycle completeness: each circle is one cycle over all participants
//   - Bijectivity: prey and hunter links are exact inverses per circle
//   - Cross-circle distinctness: no hunter repeats a prey across circles
//   - Group exclusion: adjacent participants never share a group label
//
// ⚙️ Usage:
//
//	ps, _ := roster.ParseList("A/x,B/y,C/y,D/z,E/z,F/x")
//	cl, err := circle.New(ps, circle.WithSeed(42))
//	if err != nil { ... }
//	if err = cl.Build(); err != nil { ... }   // ErrNoFit when unsatisfiable
//	out, _ := cl.Render(0)                    // "A/x,D/z,..." hunter→prey order
//
// The insertion walk is bounded to one full lap per circle, so an
// unsatisfiable roster surfaces as ErrNoFit instead of a livelock. One lap
// inspects every gap exactly once, which makes ErrNoFit definitive: no
// alternative starting offset could have succeeded.
//
// Known limitation: group constraints among the five seed participants are
// not enforced by the fixed seed topology. The order preprocessor makes a
// clash unlikely (it spreads the largest groups first), and Validate
// reports one explicitly if it happens.
//
// Complexity: Build is O(n²) worst case (n participants, one lap per
// insertion); memory is O(n) beyond the participants themselves.
package circle
