// SPDX-License-Identifier: MIT
// Package: trio/roster

package roster

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/trio/circle"
)

// tokenSeparator splits a name from its optional group label.
const tokenSeparator = "/"

// listSeparator splits tokens inside a ParseList string.
const listSeparator = ","

// Parse converts raw tokens of the form "name/group" or "name" (no slash
// ⇒ no group) into participants. Names and groups are trimmed of
// surrounding whitespace; only the first slash separates, so a name may
// not contain one but a group may.
//
// Errors: ErrEmptyName (wrapped with the offending token).
// Complexity: O(total input length).
func Parse(tokens []string) ([]*circle.Participant, error) {
	ps := make([]*circle.Participant, 0, len(tokens))
	for _, tok := range tokens {
		name, group, _ := strings.Cut(tok, tokenSeparator)
		name = strings.TrimSpace(name)
		group = strings.TrimSpace(group)
		if name == "" {
			return nil, fmt.Errorf("token %q: %w", tok, ErrEmptyName)
		}
		ps = append(ps, circle.NewParticipant(name, group))
	}

	return ps, nil
}

// ParseList is a convenience over Parse for a single comma-separated
// string, e.g. "A/x,B/y,C". A blank input yields an empty roster.
// Complexity: O(len(s)).
func ParseList(s string) ([]*circle.Participant, error) {
	if strings.TrimSpace(s) == "" {
		return []*circle.Participant{}, nil
	}

	return Parse(strings.Split(s, listSeparator))
}
