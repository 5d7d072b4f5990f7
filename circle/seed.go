package circle

// seedOffsets generate the three base cycles over the first five
// participants: participant i links to participant (i+off) mod 5 in each
// circle. The residues +1, −1 (≡ +4) and +2 are pairwise distinct and
// non-zero mod 5, so the three directed cycles they generate over K5
// never share an edge — cross-circle distinctness holds for the seed by
// construction.
var seedOffsets = [Circles]int{1, 4, 2}

// seedCircles wires the fixed 5-participant base graph. Callers guarantee
// len(ps) ≥ seedSize; only the first five entries are touched.
//
// Group constraints among the seed participants are NOT checked here: the
// topology is fixed, so an adversarial group distribution over the first
// five can place two same-group participants adjacently. The order
// preprocessor makes that unlikely and Validate detects it after Build.
// Complexity: O(1) (15 links).
func seedCircles(ps []*Participant) {
	for i := 0; i < seedSize; i++ {
		for c, off := range seedOffsets {
			ps[i].link(c, ps[(i+off)%seedSize])
		}
	}
}
