// Package circle core types: the Participant node, circle constants and
// sentinel errors.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context via fmt.Errorf("…: %w", ErrX).
//   - Algorithms never panic at runtime; validation panics are confined
//     to option constructors (WithX…).

package circle

import "errors"

// Circles is the number of simultaneous hunter→prey mappings.
// The seed topology (offsets +1, −1, +2 mod 5) is specific to three
// circles; this constant is not a tunable.
const Circles = 3

// seedSize is the minimum participant count: the smallest complete graph
// admitting three pairwise edge-disjoint Hamiltonian cycles is K5.
const seedSize = 5

// Sentinel errors for circle construction and inspection.
var (
	// ErrTooFewParticipants indicates fewer than five participants were
	// supplied; three edge-disjoint cycles need at least K5.
	ErrTooFewParticipants = errors.New("circle: fewer than five participants")

	// ErrNilParticipant indicates a nil entry in the participant list.
	ErrNilParticipant = errors.New("circle: nil participant")

	// ErrCircleIndex indicates a circle index outside [0, Circles).
	ErrCircleIndex = errors.New("circle: circle index out of range")

	// ErrNoFit indicates that no gap in the target circle admits the
	// participant under the cross-circle and group constraints. A full
	// lap inspects every gap, so this outcome is definitive.
	ErrNoFit = errors.New("circle: no fitting position")

	// ErrNotBuilt indicates traversal or validation was requested before
	// a successful Build.
	ErrNotBuilt = errors.New("circle: circles not built yet")

	// ErrAlreadyBuilt indicates Build was called twice; links are
	// monotonic and never rewired, so construction is one-shot.
	ErrAlreadyBuilt = errors.New("circle: circles already built")

	// ErrBrokenCycle indicates a circle is not a single cycle over all
	// participants (missing link, sub-cycle, or hunter/prey mismatch).
	ErrBrokenCycle = errors.New("circle: broken cycle")

	// ErrDuplicatePrey indicates a hunter holds the same prey in two
	// different circles.
	ErrDuplicatePrey = errors.New("circle: duplicate prey across circles")

	// ErrGroupClash indicates a hunter and its prey share a group label.
	ErrGroupClash = errors.New("circle: hunter and prey share a group")
)

// Participant is a node of the three circles.
//
// Name uniquely identifies the participant within a run; uniqueness is the
// caller's responsibility, not enforced here. An empty Group disables all
// group constraints for this participant.
//
// The prey and hunter slot arrays hold the per-circle links: prey[c] is
// this participant's target in circle c, hunter[c] the exact inverse.
// Slots stay nil until the participant is inserted into that circle, and
// once set they are never rewired.
type Participant struct {
	// Name is the opaque identity of this participant.
	Name string

	// Group is the optional group label ("" = unconstrained).
	Group string

	// prey[c] is the participant hunted in circle c (successor).
	prey [Circles]*Participant

	// hunter[c] is the participant hunting in circle c. Maintained
	// solely as the inverse of prey by link; never independently set.
	hunter [Circles]*Participant
}

// NewParticipant returns an unlinked Participant with the given name and
// optional group label.
// Complexity: O(1).
func NewParticipant(name, group string) *Participant {
	return &Participant{Name: name, Group: group}
}

// Token renders the participant in the canonical "name/group" wire form
// ("name/" when ungrouped), the same form roster.Parse accepts.
// Complexity: O(len(Name)+len(Group)).
func (p *Participant) Token() string {
	return p.Name + "/" + p.Group
}
