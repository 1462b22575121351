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
	"github.com/pkg/errors"

	"github.com/lanekit/lanekit/hwy"
)

var (
	// ErrChannelMismatch is returned for a byte buffer whose length is not a
	// whole number of pixels.
	ErrChannelMismatch = errors.New("image: buffer length is not a multiple of the channel count")

	// ErrOutputSize is returned when an output buffer does not have exactly
	// the size the conversion produces.
	ErrOutputSize = errors.New("image: output buffer has the wrong size")
)

// RGBAFromBytes copies a packed R, G, B, A byte buffer into pixels.
func RGBAFromBytes(b []byte) ([]RGBA, error) {
	if len(b)%ChannelsRGBA != 0 {
		return nil, errors.Wrapf(ErrChannelMismatch, "%d bytes, %d channels", len(b), ChannelsRGBA)
	}
	px := make([]RGBA, len(b)/ChannelsRGBA)
	copy(flat[uint8](px, ChannelsRGBA), b)
	return px, nil
}

// RGBBytes returns the packed R, G, B bytes of px.
func RGBBytes(px []RGB) []byte {
	b := make([]byte, len(px)*ChannelsRGB)
	copy(b, flat[uint8](px, ChannelsRGB))
	return b
}

// Luma8Bytes writes the fixed-point luminance of a packed RGBA buffer into a
// packed RGB buffer. dst must hold exactly 3 bytes per source pixel; nothing
// is written when either length is wrong.
func Luma8Bytes(dst, src []byte) error {
	if len(src)%ChannelsRGBA != 0 {
		return errors.Wrapf(ErrChannelMismatch, "source of %d bytes", len(src))
	}
	if want := len(src) / ChannelsRGBA * ChannelsRGB; len(dst) != want {
		return errors.Wrapf(ErrOutputSize, "got %d bytes, want %d", len(dst), want)
	}
	baseLuma8Flat(hwy.ScalableTag(), dst, src)
	return nil
}
