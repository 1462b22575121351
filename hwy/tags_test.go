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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTags(t *testing.T) {
	assert.Equal(t, 4, FixedTag128().Lanes())
	assert.Equal(t, 8, FixedTag256().Lanes())
	assert.Equal(t, 16, FixedTag512().Lanes())
	assert.Equal(t, 3, FixedTag(3).Lanes())

	var zero Tag
	assert.True(t, zero.IsScalable())
	assert.Equal(t, CurrentLanes(), zero.Lanes())
	assert.Equal(t, ScalableTag(), zero)

	assert.Equal(t, "fixed(7)", FixedTag(7).String())
	assert.Contains(t, ScalableTag().String(), "scalable(")
}

func TestFixedTagPanics(t *testing.T) {
	assert.Panics(t, func() { FixedTag(0) })
	assert.Panics(t, func() { FixedTag(-1) })
	assert.Panics(t, func() { FixedTag(MaxTagLanes + 1) })
	assert.NotPanics(t, func() { FixedTag(MaxTagLanes) })
}

func TestProcessWithTail(t *testing.T) {
	for _, lanes := range []int{1, 3, 4, 8} {
		for _, size := range []int{0, 1, 3, 4, 7, 8, 9, 17} {
			d := FixedTag(lanes)
			var offsets []int
			tailOffset, tailCount := -1, 0

			ProcessWithTail(d, size,
				func(offset int) { offsets = append(offsets, offset) },
				func(offset, count int) { tailOffset, tailCount = offset, count },
			)

			assert.Len(t, offsets, size/lanes, "lanes=%d size=%d", lanes, size)
			for i, off := range offsets {
				assert.Equal(t, i*lanes, off)
			}
			if size%lanes == 0 {
				assert.Equal(t, -1, tailOffset)
			} else {
				assert.Equal(t, ChunkedSize(d, size), tailOffset)
				assert.Equal(t, size%lanes, tailCount)
			}
			assert.Equal(t, size%lanes == 0, IsAligned(d, size))
		}
	}
}
