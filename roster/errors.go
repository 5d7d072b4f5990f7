// SPDX-License-Identifier: MIT
// Package: trio/roster

// Package roster - sentinel errors.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Context is attached via %w wrapping at the failure site.
//   - Option constructors (WithX…) panic on meaningless input; parsing and
//     generation never panic.

package roster

import "errors"

// ErrEmptyName indicates a token whose name part is empty ("" or "/x").
// Usage: if errors.Is(err, ErrEmptyName) { /* reject the token */ }.
var ErrEmptyName = errors.New("roster: empty participant name")

// ErrBadCount indicates a non-positive participant count was requested.
var ErrBadCount = errors.New("roster: participant count must be positive")

// ErrBadGroupCount indicates a non-positive number of groups was requested
// from Grouped.
var ErrBadGroupCount = errors.New("roster: group count must be positive")

// ErrBadSizes indicates an empty size list or a negative entry passed to
// Sized. A sum mismatch against the requested count is NOT an error — it
// is reported as a Warning and the explicit sizes win.
var ErrBadSizes = errors.New("roster: invalid group sizes")
