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

import "github.com/lanekit/lanekit/hwy"

// Index returns the index of the first instance of needle in haystack, or -1
// if needle is not present in haystack.
func Index(haystack, needle []byte) int {
	return BaseIndex(hwy.ScalableTag(), haystack, needle)
}

// Contains reports whether needle is within haystack.
func Contains(haystack, needle []byte) bool {
	return Index(haystack, needle) >= 0
}

// IndexByte returns the index of the first instance of c in haystack, or -1.
func IndexByte(haystack []byte, c byte) int {
	return BaseIndexByte(hwy.ScalableTag(), haystack, c)
}

// ContainsByte reports whether c is within haystack.
func ContainsByte(haystack []byte, c byte) bool {
	return IndexByte(haystack, c) >= 0
}

// IndexString is Index with a string needle. Only the needle is copied.
func IndexString(haystack []byte, needle string) int {
	return Index(haystack, []byte(needle))
}

// ContainsString is Contains with a string needle.
func ContainsString(haystack []byte, needle string) bool {
	return IndexString(haystack, needle) >= 0
}
