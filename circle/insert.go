package circle

// insert splices p into circle c, which currently holds n participants.
//
// The starting point is randomized: a uniform offset in [0, n) advanced
// from the starter along circle c, so repeated insertions do not pile up
// around the anchor. From there the engine walks forward to the first gap
// satisfying FitsAfter and splits that edge.
//
// The walk is bounded to one full lap (n hops). A lap inspects every gap
// in the circle exactly once, so a returned ErrNoFit means no starting
// offset could have succeeded either — the engine does not retry.
// Complexity: O(n) worst case.
func (cl *Circulator) insert(p *Participant, c, n int) error {
	start := cl.starter.Advance(c, randOffset(cl.cfg.rng, n))

	return start.insertAfterFirstFit(c, p, n)
}
