package circle

// Prey returns the participant hunted by p in circle c, or nil if p has
// not been inserted into that circle. Returns nil for an out-of-range c.
// Complexity: O(1).
func (p *Participant) Prey(c int) *Participant {
	if c < 0 || c >= Circles {
		return nil
	}
	return p.prey[c]
}

// Hunter returns the participant hunting p in circle c, or nil if p has
// not been inserted into that circle. Returns nil for an out-of-range c.
// Complexity: O(1).
func (p *Participant) Hunter(c int) *Participant {
	if c < 0 || c >= Circles {
		return nil
	}
	return p.hunter[c]
}

// HasPrey reports whether q is p's prey in ANY circle. The membership test
// spans all slots on purpose: it enforces cross-circle distinctness, not
// per-circle adjacency.
// Complexity: O(Circles) = O(1).
func (p *Participant) HasPrey(q *Participant) bool {
	for c := 0; c < Circles; c++ {
		if p.prey[c] == q {
			return true
		}
	}

	return false
}

// HasHunter reports whether q hunts p in ANY circle (the inverse of
// HasPrey, same cross-circle purpose).
// Complexity: O(Circles) = O(1).
func (p *Participant) HasHunter(q *Participant) bool {
	for c := 0; c < Circles; c++ {
		if p.hunter[c] == q {
			return true
		}
	}

	return false
}

// link makes q the prey of p in circle c and p the hunter of q, in one
// unconditional step. No validation happens here: fitness is the
// insertion engine's job, and the seed topology is valid by construction.
// Complexity: O(1).
func (p *Participant) link(c int, q *Participant) {
	p.prey[c] = q
	q.hunter[c] = p
}

// Advance returns the participant reached by following k prey hops in
// circle c from p. k must be ≥ 0 and p must already be inserted into c.
// Used to pick a randomized starting point for insertion.
// Complexity: O(k).
func (p *Participant) Advance(c, k int) *Participant {
	at := p
	for ; k > 0; k-- {
		at = at.prey[c]
	}

	return at
}

// FitsAfter reports whether q may be spliced between p and p.Prey(c)
// without violating the cross-circle or group invariants:
//
//   - p must not already hunt q in any circle;
//   - p's current prey must not already be hunted by q in any circle;
//   - if q carries a group, neither p nor p's current prey may share it.
//
// p must already be inserted into circle c.
// Complexity: O(1).
func (p *Participant) FitsAfter(c int, q *Participant) bool {
	next := p.prey[c]
	if p.HasPrey(q) || next.HasHunter(q) {
		return false
	}
	if q.Group == "" {
		return true
	}

	return p.Group != q.Group && next.Group != q.Group
}

// insertAfterFirstFit walks forward from p along circle c for at most
// limit hops and splices q into the first fitting gap via two link calls.
// With limit equal to the current circle size the walk is exactly one
// lap, inspecting every gap once; ErrNoFit is therefore definitive.
// Complexity: O(limit).
func (p *Participant) insertAfterFirstFit(c int, q *Participant, limit int) error {
	at := p
	for i := 0; i < limit; i++ {
		if at.FitsAfter(c, q) {
			// Split the edge at→next into at→q→next.
			next := at.prey[c]
			at.link(c, q)
			q.link(c, next)

			return nil
		}
		at = at.prey[c]
	}

	return ErrNoFit
}
