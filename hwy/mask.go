// Copyright 2025 lanekit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "math/bits"

// This file provides the mask queries kernels use to turn a lane-parallel
// comparison back into positions.

// CountTrue counts true lanes in mask.
func CountTrue[T Lanes](mask Mask[T]) int {
	return bits.OnesCount64(mask.bits)
}

// AllTrue returns true if all lanes are true.
// This is a function wrapper around Mask.AllTrue() for consistency.
func AllTrue[T Lanes](mask Mask[T]) bool {
	return mask.AllTrue()
}

// AllFalse returns true if no lane is true.
func AllFalse[T Lanes](mask Mask[T]) bool {
	return mask.bits == 0
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	if mask.bits == 0 {
		return -1
	}
	return bits.TrailingZeros64(mask.bits)
}

// FindLastTrue returns index of last true lane, or -1 if none.
func FindLastTrue[T Lanes](mask Mask[T]) int {
	if mask.bits == 0 {
		return -1
	}
	return 63 - bits.LeadingZeros64(mask.bits)
}

// FirstN creates a mask of d.Lanes() lanes with the first n lanes set.
func FirstN[T Lanes](d Tag, n int) Mask[T] {
	lanes := d.Lanes()
	n = max(0, min(n, lanes))
	return Mask[T]{bits: laneBits(n), n: lanes}
}

// MaskAnd returns the lane-wise AND of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{bits: a.bits & b.bits, n: a.n}
}

// ForEachTrue calls fn with the index of every true lane in ascending order
// and stops early when fn returns false.
func ForEachTrue[T Lanes](mask Mask[T], fn func(lane int) bool) {
	for rest := mask.bits; rest != 0; rest &= rest - 1 {
		if !fn(bits.TrailingZeros64(rest)) {
			return
		}
	}
}
