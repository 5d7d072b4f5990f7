package circle

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/trio/order"
)

// Circulator orchestrates construction of the three circles: preprocess,
// seed, then grow participant by participant. It owns the anchor
// ("starter") participant from which every traversal and randomized walk
// begins — explicit state, never a package global.
//
// A Circulator is single-threaded and one-shot: Build may succeed at most
// once, and links are never rewired afterwards.
type Circulator struct {
	cfg config

	// all holds every participant in preprocessed (group-diverse) order.
	all []*Participant

	// starter anchors traversals; always all[0] after preprocessing.
	starter *Participant

	built bool
}

// New prepares a Circulator over the given participants. The slice is not
// modified; the preprocessed order is kept internally.
//
// Errors: ErrTooFewParticipants when len(ps) < 5, ErrNilParticipant on a
// nil entry. Name uniqueness is the caller's responsibility.
// Complexity: O(n) preprocessing.
func New(ps []*Participant, opts ...Option) (*Circulator, error) {
	if len(ps) < seedSize {
		return nil, fmt.Errorf("%d of %d: %w", len(ps), seedSize, ErrTooFewParticipants)
	}

	groups := make([]string, len(ps))
	for i, p := range ps {
		if p == nil {
			return nil, fmt.Errorf("index %d: %w", i, ErrNilParticipant)
		}
		groups[i] = p.Group
	}

	// Reorder for group diversity: the earliest participants form the
	// skeleton that later, possibly same-group, entries must fit around.
	arranged := make([]*Participant, len(ps))
	for i, j := range order.Arrange(groups) {
		arranged[i] = ps[j]
	}

	return &Circulator{
		cfg:     newConfig(opts...),
		all:     arranged,
		starter: arranged[0],
	}, nil
}

// Build constructs all three circles: seed the first five participants,
// then insert each remaining participant into circles 0, 1 and 2 in that
// fixed order. The running circle size is shared across circles — every
// participant enters all three before the next one starts.
//
// Errors: ErrAlreadyBuilt on a second call; ErrNoFit (wrapped with the
// circle index and participant name) when some participant fits nowhere,
// leaving the graph partially built and the Circulator unusable.
// Complexity: O(n²) worst case, O(n) links total.
func (cl *Circulator) Build() error {
	if cl.built {
		return ErrAlreadyBuilt
	}

	seedCircles(cl.all)

	// Growth phase: size is the circle population BEFORE p is inserted,
	// so the random start offset always lands on an existing member.
	for size := seedSize; size < len(cl.all); size++ {
		p := cl.all[size]
		for c := 0; c < Circles; c++ {
			if err := cl.insert(p, c, size); err != nil {
				return fmt.Errorf("circle %d: insert %q: %w", c, p.Name, err)
			}
		}
	}
	cl.built = true

	return nil
}

// Cycle returns the participants of circle c in hunter→prey order,
// starting at the anchor and following prey links until the anchor
// recurs.
//
// Errors: ErrCircleIndex, ErrNotBuilt.
// Complexity: O(n).
func (cl *Circulator) Cycle(c int) ([]*Participant, error) {
	if c < 0 || c >= Circles {
		return nil, fmt.Errorf("%d: %w", c, ErrCircleIndex)
	}
	if !cl.built {
		return nil, ErrNotBuilt
	}

	out := make([]*Participant, 0, len(cl.all))
	out = append(out, cl.starter)
	for p := cl.starter.prey[c]; p != cl.starter; p = p.prey[c] {
		out = append(out, p)
	}

	return out, nil
}

// Render returns circle c as a comma-joined sequence of "name/group"
// tokens ("name/" when ungrouped), in traversal order from the anchor.
//
// Errors: ErrCircleIndex, ErrNotBuilt.
// Complexity: O(n).
func (cl *Circulator) Render(c int) (string, error) {
	ps, err := cl.Cycle(c)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, p := range ps {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(p.Token())
	}

	return sb.String(), nil
}

// Validate re-checks every construction invariant over the built graph:
//
//  1. each circle is a single cycle visiting all participants;
//  2. prey and hunter links are exact inverses;
//  3. no hunter holds the same prey in two circles;
//  4. no hunter→prey edge joins two participants of one group.
//
// Build maintains 1–3 by construction; 4 can be violated only inside the
// unchecked five-participant seed, which is precisely what Validate lets
// callers detect.
//
// Errors: ErrNotBuilt, ErrBrokenCycle, ErrDuplicatePrey, ErrGroupClash
// (each wrapped with the offending circle and participant).
// Complexity: O(n) per circle.
func (cl *Circulator) Validate() error {
	if !cl.built {
		return ErrNotBuilt
	}

	n := len(cl.all)
	for c := 0; c < Circles; c++ {
		seen := make(map[*Participant]struct{}, n)
		p := cl.starter
		for i := 0; i < n; i++ {
			next := p.prey[c]
			if next == nil {
				return fmt.Errorf("circle %d: %q has no prey: %w", c, p.Name, ErrBrokenCycle)
			}
			if next.hunter[c] != p {
				return fmt.Errorf("circle %d: %q→%q hunter link mismatch: %w", c, p.Name, next.Name, ErrBrokenCycle)
			}
			if _, dup := seen[p]; dup {
				return fmt.Errorf("circle %d: %q revisited: %w", c, p.Name, ErrBrokenCycle)
			}
			seen[p] = struct{}{}

			for c2 := c + 1; c2 < Circles; c2++ {
				if p.prey[c2] == next {
					return fmt.Errorf("circles %d/%d: %q→%q: %w", c, c2, p.Name, next.Name, ErrDuplicatePrey)
				}
			}
			if p.Group != "" && p.Group == next.Group {
				return fmt.Errorf("circle %d: %q→%q group %q: %w", c, p.Name, next.Name, p.Group, ErrGroupClash)
			}
			p = next
		}
		if p != cl.starter {
			return fmt.Errorf("circle %d: did not return to anchor: %w", c, ErrBrokenCycle)
		}
	}

	return nil
}
