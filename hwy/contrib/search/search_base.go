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

package search

import (
	"bytes"

	"github.com/lanekit/lanekit/hwy"
)

// BaseIndexByte returns the index of the first c in haystack, or -1 if c is
// not present.
func BaseIndexByte(d hwy.Tag, haystack []byte, c byte) int {
	target := hwy.Set(d, c)
	lanes := d.Lanes()

	// Process full vectors - compare lanes bytes at once
	i := 0
	for ; i+lanes <= len(haystack); i += lanes {
		v := hwy.Load(d, haystack[i:])
		if idx := hwy.FindFirstTrue(hwy.Equal(v, target)); idx >= 0 {
			return i + idx
		}
	}

	// Handle tail elements
	for ; i < len(haystack); i++ {
		if haystack[i] == c {
			return i
		}
	}
	return -1
}

// BaseIndex returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle is found at index 0.
func BaseIndex(d hwy.Tag, haystack, needle []byte) int {
	switch {
	case len(needle) == 0:
		return 0
	case len(needle) > len(haystack):
		return -1
	case len(needle) == 1:
		return BaseIndexByte(d, haystack, needle[0])
	}

	first := hwy.Set(d, needle[0])
	lanes := d.Lanes()
	// last is the largest offset at which needle still fits.
	last := len(haystack) - len(needle)

	i := 0
	for ; i+lanes <= len(haystack) && i <= last; i += lanes {
		candidates := hwy.Equal(hwy.Load(d, haystack[i:]), first)
		if !candidates.AnyTrue() {
			continue
		}

		found := -1
		hwy.ForEachTrue(candidates, func(lane int) bool {
			pos := i + lane
			if pos > last {
				return false
			}
			if bytes.Equal(haystack[pos:pos+len(needle)], needle) {
				found = pos
				return false
			}
			return true
		})
		if found >= 0 {
			return found
		}
	}

	// Remaining offsets that did not fill a chunk
	for pos := i; pos <= last; pos++ {
		if haystack[pos] == needle[0] && bytes.Equal(haystack[pos:pos+len(needle)], needle) {
			return pos
		}
	}
	return -1
}

// NaiveIndex is the reference for Index: it compares needle against every
// offset of haystack in turn, byte by byte.
func NaiveIndex(haystack, needle []byte) int {
	for pos := 0; pos+len(needle) <= len(haystack); pos++ {
		match := true
		for j := range needle {
			if haystack[pos+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return pos
		}
	}
	return -1
}
