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

package image

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBAFromBytes(t *testing.T) {
	px, err := RGBAFromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	assert.Equal(t, []RGBA{{1, 2, 3, 4}, {5, 6, 7, 8}}, px)

	px, err = RGBAFromBytes(nil)
	require.NoError(t, err)
	assert.Empty(t, px)
}

func TestRGBAFromBytesChannelMismatch(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 7} {
		_, err := RGBAFromBytes(make([]byte, n))
		require.Error(t, err)
		assert.Equal(t, ErrChannelMismatch, errors.Cause(err), "n=%d", n)
	}
}

func TestRGBBytes(t *testing.T) {
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, RGBBytes([]RGB{{1, 2, 3}, {4, 5, 6}}))
	assert.Empty(t, RGBBytes(nil))
}

func TestLuma8Bytes(t *testing.T) {
	src := []byte{
		255, 255, 255, 255,
		0, 0, 0, 255,
		100, 150, 200, 0,
	}
	dst := make([]byte, 9)
	require.NoError(t, Luma8Bytes(dst, src))

	y := LumaPixel8(RGBA{100, 150, 200, 0})
	assert.Equal(t, []byte{255, 255, 255, 0, 0, 0, y, y, y}, dst)
}

func TestLuma8BytesRejectsBadSizes(t *testing.T) {
	dst := []byte{9, 9, 9, 9}

	err := Luma8Bytes(dst, make([]byte, 6))
	assert.True(t, errors.Is(err, ErrChannelMismatch))

	err = Luma8Bytes(dst, make([]byte, 4))
	assert.True(t, errors.Is(err, ErrOutputSize))

	err = Luma8Bytes(make([]byte, 2), make([]byte, 4))
	assert.True(t, errors.Is(err, ErrOutputSize))

	// Nothing is written on failure.
	assert.Equal(t, []byte{9, 9, 9, 9}, dst)
}

func TestLuma8BytesMatchesPixels(t *testing.T) {
	src := randomPixels(newTestRand(), 1001)
	b := make([]byte, 0, len(src)*ChannelsRGBA)
	for _, p := range src {
		b = append(b, p[:]...)
	}
	dst := make([]byte, len(src)*ChannelsRGB)
	require.NoError(t, Luma8Bytes(dst, b))
	assert.Equal(t, RGBBytes(ScalarLuma8(src)), dst)
}
