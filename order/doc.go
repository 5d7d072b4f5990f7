// Package order reorders a participant list to maximize group diversity
// among its earliest entries.
//
// The incremental circle construction in package circle performs best when
// the early skeleton spreads groups out: later, possibly same-group,
// participants then always find a gap whose neighbours belong elsewhere.
// order delivers exactly that permutation:
//
//  1. Bucket participants by group label (the empty label is a group of
//     its own).
//  2. Sort buckets by descending size; equal sizes tie-break on label so
//     the bucket sequence is independent of input order.
//  3. Interleave round-robin across buckets, dropping exhausted ones.
//
// The package is deliberately primitive: it speaks indices and labels, not
// circle.Participant values, so it stays dependency-free and reusable.
//
// Complexity: O(n log n) for the bucket sort, O(n) for the interleave.
package order
