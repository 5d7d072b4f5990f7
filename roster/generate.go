// SPDX-License-Identifier: MIT
// Package: trio/roster

package roster

import (
	"fmt"

	"github.com/katalvlaran/trio/circle"
)

// Warning is a non-fatal configuration notice produced during generation.
// The library never logs; callers decide where warnings surface.
type Warning string

// Uniform generates n ungrouped participants named by the configured name
// scheme ("P1".."Pn" by default).
//
// Errors: ErrBadCount for n < 1.
// Complexity: O(n).
func Uniform(n int, opts ...Option) ([]*circle.Participant, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadCount)
	}

	cfg := newRosterConfig(opts...)
	ps := make([]*circle.Participant, n)
	for i := 0; i < n; i++ {
		ps[i] = circle.NewParticipant(cfg.nameFn(i), "")
	}

	return ps, nil
}

// Grouped generates n participants, each assigned one of g group labels
// uniformly at random from the configured RNG. Group sizes are therefore
// random; use Sized for exact sizes.
//
// Errors: ErrBadCount for n < 1, ErrBadGroupCount for g < 1.
// Complexity: O(n).
func Grouped(n, g int, opts ...Option) ([]*circle.Participant, error) {
	if n < 1 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrBadCount)
	}
	if g < 1 {
		return nil, fmt.Errorf("g=%d: %w", g, ErrBadGroupCount)
	}

	cfg := newRosterConfig(opts...)
	ps := make([]*circle.Participant, n)
	for i := 0; i < n; i++ {
		ps[i] = circle.NewParticipant(cfg.nameFn(i), cfg.groupFn(cfg.rng.Intn(g)))
	}

	return ps, nil
}

// Sized generates participants distributed into groups of the exact given
// sizes: sizes[g] participants carry the g-th group label. The requested
// total n is advisory — when sum(sizes) differs from n, Sized emits
// exactly one Warning and proceeds with the explicit sizes (the size list
// wins). A matching sum emits no warning.
//
// Errors: ErrBadSizes for an empty list or a negative entry.
// Complexity: O(sum(sizes)).
func Sized(n int, sizes []int, opts ...Option) ([]*circle.Participant, []Warning, error) {
	if len(sizes) == 0 {
		return nil, nil, fmt.Errorf("empty size list: %w", ErrBadSizes)
	}

	total := 0
	for g, size := range sizes {
		if size < 0 {
			return nil, nil, fmt.Errorf("sizes[%d]=%d: %w", g, size, ErrBadSizes)
		}
		total += size
	}

	var warns []Warning
	if total != n {
		warns = append(warns, Warning(fmt.Sprintf(
			"roster: requested %d participants but group sizes sum to %d; using explicit sizes", n, total)))
	}

	cfg := newRosterConfig(opts...)
	ps := make([]*circle.Participant, 0, total)
	for g, size := range sizes {
		label := cfg.groupFn(g)
		for i := 0; i < size; i++ {
			ps = append(ps, circle.NewParticipant(cfg.nameFn(len(ps)), label))
		}
	}

	return ps, warns, nil
}
