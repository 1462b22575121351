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

import "fmt"

// Tag describes a vector shape: how many lanes each operation covers.
//
// The zero Tag is the scalable tag and follows LANES. Kernels take a Tag so
// that tests and tuning code can run the same kernel at any width without
// touching the process-wide configuration.
type Tag struct {
	lanes int
}

// ScalableTag returns the tag for the configured LANES.
// This is the tag the public kernel entry points use.
//
// Usage:
//
//	d := hwy.ScalableTag()
//	lanes := d.Lanes()
func ScalableTag() Tag {
	return Tag{}
}

// FixedTag returns a tag of exactly lanes lanes.
// It panics if lanes is outside [1, MaxTagLanes].
func FixedTag(lanes int) Tag {
	if lanes < 1 || lanes > MaxTagLanes {
		panic(fmt.Sprintf("hwy: FixedTag lanes %d out of range [1, %d]", lanes, MaxTagLanes))
	}
	return Tag{lanes: lanes}
}

// FixedTag128 returns the 128-bit shape for 4-byte lanes (SSE2, NEON).
func FixedTag128() Tag {
	return Tag{lanes: 16 / laneBytes}
}

// FixedTag256 returns the 256-bit shape for 4-byte lanes (AVX2).
func FixedTag256() Tag {
	return Tag{lanes: 32 / laneBytes}
}

// FixedTag512 returns the 512-bit shape for 4-byte lanes (AVX-512).
func FixedTag512() Tag {
	return Tag{lanes: 64 / laneBytes}
}

// Lanes returns the number of lanes per vector for this tag.
func (d Tag) Lanes() int {
	if d.lanes == 0 {
		return currentLanes
	}
	return d.lanes
}

// IsScalable reports whether the tag follows LANES.
func (d Tag) IsScalable() bool {
	return d.lanes == 0
}

// String returns "scalable(N)" or "fixed(N)".
func (d Tag) String() string {
	if d.IsScalable() {
		return fmt.Sprintf("scalable(%d)", d.Lanes())
	}
	return fmt.Sprintf("fixed(%d)", d.lanes)
}
