// Package roster_test verifies the generators: counts, name/label
// schemes, seeded determinism and the warn-and-proceed policy of Sized.
package roster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trio/roster"
)

// TestUniform_NamesAndCount checks the default name scheme and the
// ErrBadCount guard.
func TestUniform_NamesAndCount(t *testing.T) {
	ps, err := roster.Uniform(3)
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, "P1", ps[0].Name)
	assert.Equal(t, "P3", ps[2].Name)
	for _, p := range ps {
		assert.Empty(t, p.Group, "Uniform rosters carry no groups")
	}

	_, err = roster.Uniform(0)
	assert.ErrorIs(t, err, roster.ErrBadCount)
}

// TestGrouped_SeededDeterminism draws the same roster twice under one
// seed and expects identical group assignments; labels must come from the
// requested alphabet prefix.
func TestGrouped_SeededDeterminism(t *testing.T) {
	first, err := roster.Grouped(20, 4, roster.WithSeed(9))
	require.NoError(t, err)
	second, err := roster.Grouped(20, 4, roster.WithSeed(9))
	require.NoError(t, err)

	require.Len(t, first, 20)
	valid := map[string]struct{}{"A": {}, "B": {}, "C": {}, "D": {}}
	for i := range first {
		assert.Equal(t, first[i].Group, second[i].Group, "index %d diverged under one seed", i)
		_, ok := valid[first[i].Group]
		assert.True(t, ok, "label %q outside the four-group alphabet", first[i].Group)
	}

	_, err = roster.Grouped(0, 4)
	assert.ErrorIs(t, err, roster.ErrBadCount)
	_, err = roster.Grouped(4, 0)
	assert.ErrorIs(t, err, roster.ErrBadGroupCount)
}

// TestSized_MatchingSum is the boundary scenario: sizes summing exactly
// to the requested count must produce no warning and exact group sizes.
func TestSized_MatchingSum(t *testing.T) {
	sizes := []int{10, 8, 5, 4, 3, 2, 1, 1}
	ps, warns, err := roster.Sized(34, sizes)
	require.NoError(t, err)
	assert.Empty(t, warns, "matching sum must not warn")
	require.Len(t, ps, 34)

	count := make(map[string]int)
	for _, p := range ps {
		count[p.Group]++
	}
	assert.Equal(t, map[string]int{
		"A": 10, "B": 8, "C": 5, "D": 4, "E": 3, "F": 2, "G": 1, "H": 1,
	}, count, "explicit sizes must be honored exactly")
}

// TestSized_MismatchWarnsOnce confirms the tolerant policy: any other
// requested count emits exactly one warning and the explicit sizes win.
func TestSized_MismatchWarnsOnce(t *testing.T) {
	sizes := []int{10, 8, 5, 4, 3, 2, 1, 1}
	ps, warns, err := roster.Sized(30, sizes)
	require.NoError(t, err)
	require.Len(t, warns, 1, "exactly one warning per mismatch")
	assert.Contains(t, string(warns[0]), "30")
	assert.Contains(t, string(warns[0]), "34")
	assert.Len(t, ps, 34, "the explicit size list wins over the requested count")
}

// TestSized_BadSizes rejects malformed size lists up front.
func TestSized_BadSizes(t *testing.T) {
	_, _, err := roster.Sized(5, nil)
	assert.ErrorIs(t, err, roster.ErrBadSizes, "empty size list")

	_, _, err = roster.Sized(5, []int{3, -1, 3})
	assert.ErrorIs(t, err, roster.ErrBadSizes, "negative entry")
}

// TestOptions_CustomSchemes routes names and labels through injected
// schemes.
func TestOptions_CustomSchemes(t *testing.T) {
	ps, _, err := roster.Sized(2, []int{1, 1},
		roster.WithNameFn(func(i int) string { return "player-" + string(rune('a'+i)) }),
		roster.WithGroupFn(func(g int) string { return "team-" + string(rune('1'+g)) }),
	)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "player-a", ps[0].Name)
	assert.Equal(t, "team-1", ps[0].Group)
	assert.Equal(t, "player-b", ps[1].Name)
	assert.Equal(t, "team-2", ps[1].Group)
}

// TestOptions_PanicOnNil locks the fail-fast contract of option
// constructors.
func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { roster.WithRand(nil) })
	assert.Panics(t, func() { roster.WithNameFn(nil) })
	assert.Panics(t, func() { roster.WithGroupFn(nil) })
}
