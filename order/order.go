package order

import "sort"

// Bucket is one group of input indices sharing a label.
type Bucket struct {
	// Label is the shared group label ("" for ungrouped entries).
	Label string

	// Members are input indices in first-appearance order.
	Members []int
}

// Buckets partitions the indices 0..len(groups)-1 by label and returns
// the buckets sorted by descending size, ties broken by ascending label.
// Bucket contents depend only on the label multiset, never on input
// order; member order inside a bucket follows the input.
// Complexity: O(n log n) time, O(n) space.
func Buckets(groups []string) []Bucket {
	at := make(map[string]int, len(groups))
	bs := make([]Bucket, 0, len(groups))
	for i, g := range groups {
		j, ok := at[g]
		if !ok {
			j = len(bs)
			at[g] = j
			bs = append(bs, Bucket{Label: g})
		}
		bs[j].Members = append(bs[j].Members, i)
	}

	sort.SliceStable(bs, func(a, b int) bool {
		if len(bs[a].Members) != len(bs[b].Members) {
			return len(bs[a].Members) > len(bs[b].Members)
		}

		return bs[a].Label < bs[b].Label
	})

	return bs
}

// Arrange returns a permutation of the indices 0..len(groups)-1 that
// interleaves the group buckets round-robin: bucket[0][0], bucket[1][0],
// …, bucket[0][1], bucket[1][1], …, skipping exhausted buckets. Larger
// groups come first in every round, so the head of the permutation is as
// group-diverse as the input allows.
// Complexity: O(n log n) time, O(n) space.
func Arrange(groups []string) []int {
	bs := Buckets(groups)

	out := make([]int, 0, len(groups))
	for round := 0; len(out) < len(groups); round++ {
		for _, b := range bs {
			if round < len(b.Members) {
				out = append(out, b.Members[round])
			}
		}
	}

	return out
}
