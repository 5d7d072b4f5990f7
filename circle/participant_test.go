// Package circle_test verifies Participant-level contracts: accessors,
// traversal hops and the FitsAfter predicate that gates every insertion.
package circle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trio/circle"
)

// fiveDistinct builds a Circulator over five participants A..E whose group
// labels a..e sort in input order, so the preprocessed order (and thus the
// seed topology) is exactly A,B,C,D,E.
func fiveDistinct(t *testing.T) (*circle.Circulator, []*circle.Participant) {
	t.Helper()

	ps := []*circle.Participant{
		circle.NewParticipant("A", "a"),
		circle.NewParticipant("B", "b"),
		circle.NewParticipant("C", "c"),
		circle.NewParticipant("D", "d"),
		circle.NewParticipant("E", "e"),
	}
	cl, err := circle.New(ps)
	require.NoError(t, err, "five participants must construct")
	require.NoError(t, cl.Build(), "seed-only build must succeed")

	return cl, ps
}

// TestParticipant_Token checks the canonical "name/group" wire form,
// including the trailing slash for ungrouped participants.
func TestParticipant_Token(t *testing.T) {
	assert.Equal(t, "N/g", circle.NewParticipant("N", "g").Token())
	assert.Equal(t, "N/", circle.NewParticipant("N", "").Token())
}

// TestParticipant_SeedAccessors verifies Prey/Hunter against the fixed
// seed offsets (+1, −1, +2 mod 5) and nil results for out-of-range
// circles.
func TestParticipant_SeedAccessors(t *testing.T) {
	_, ps := fiveDistinct(t)
	a, b, c, d, e := ps[0], ps[1], ps[2], ps[3], ps[4]

	assert.Same(t, b, a.Prey(0), "circle 0 follows +1")
	assert.Same(t, e, a.Prey(1), "circle 1 follows -1")
	assert.Same(t, c, a.Prey(2), "circle 2 follows +2")

	assert.Same(t, e, a.Hunter(0), "hunter is the prey inverse in circle 0")
	assert.Same(t, b, a.Hunter(1), "hunter is the prey inverse in circle 1")
	assert.Same(t, d, a.Hunter(2), "hunter is the prey inverse in circle 2")

	assert.Nil(t, a.Prey(-1), "negative circle index yields nil")
	assert.Nil(t, a.Prey(circle.Circles), "overflowing circle index yields nil")
	assert.Nil(t, a.Hunter(circle.Circles), "overflowing circle index yields nil")
}

// TestParticipant_Advance walks prey chains for various hop counts,
// including zero hops and a full lap.
func TestParticipant_Advance(t *testing.T) {
	_, ps := fiveDistinct(t)
	a := ps[0]

	assert.Same(t, a, a.Advance(0, 0), "zero hops stays put")
	assert.Same(t, ps[2], a.Advance(0, 2), "two +1 hops reach C")
	assert.Same(t, a, a.Advance(0, 5), "a full lap returns to the start")
	assert.Same(t, ps[3], a.Advance(1, 2), "two -1 hops reach D")
}

// TestParticipant_HasPreySpansCircles confirms the membership tests cover
// ALL circles: A hunts C only in circle 2, yet HasPrey reports it.
func TestParticipant_HasPreySpansCircles(t *testing.T) {
	_, ps := fiveDistinct(t)
	a, c := ps[0], ps[2]

	assert.True(t, a.HasPrey(c), "A→C exists in circle 2")
	assert.True(t, c.HasHunter(a), "inverse link must be visible too")
	assert.False(t, a.HasPrey(circle.NewParticipant("X", "")), "unlinked stranger is nobody's prey")
}

// TestParticipant_FitsAfter exercises the three constraint classes the
// predicate enforces: group-vs-hunter, group-vs-prey and cross-circle
// distinctness.
func TestParticipant_FitsAfter(t *testing.T) {
	_, ps := fiveDistinct(t)
	a, b := ps[0], ps[1]

	sameAsHunter := circle.NewParticipant("X", "a")
	assert.False(t, a.FitsAfter(0, sameAsHunter), "newcomer shares the hunter's group")
	assert.True(t, b.FitsAfter(0, sameAsHunter), "one hop later both neighbours differ")

	sameAsPrey := circle.NewParticipant("Y", "b")
	assert.False(t, a.FitsAfter(0, sameAsPrey), "newcomer shares the prey's group")

	ungrouped := circle.NewParticipant("Z", "")
	assert.True(t, a.FitsAfter(0, ungrouped), "no group disables group constraints")

	// Cross-circle: A already hunts C in circle 2, so splicing C after A
	// anywhere else would duplicate the pair.
	assert.False(t, a.FitsAfter(0, ps[2]), "duplicate hunter→prey pair across circles")
}
