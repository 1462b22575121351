// Copyright 2025 The lanekit Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

// Range is the half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits [0, n) into exactly parts contiguous, non-overlapping
// ranges. Every range holds n/parts indices except the last, which also
// absorbs the n%parts remainder, so the ranges cover [0, n) exactly once.
// parts < 1 is treated as 1; n < 0 as 0.
func Partition(n, parts int) []Range {
	parts = max(parts, 1)
	n = max(n, 0)

	size := n / parts
	ranges := make([]Range, parts)
	for i := range ranges {
		ranges[i] = Range{Start: i * size, End: (i + 1) * size}
	}
	ranges[parts-1].End = n
	return ranges
}
