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

import "unsafe"

// RGBA is one 8-bit pixel with channels in R, G, B, A order.
type RGBA [ChannelsRGBA]uint8

// RGB is one 8-bit pixel with channels in R, G, B order.
type RGB [ChannelsRGB]uint8

// RGBAF is one normalized float pixel with channels in R, G, B, A order.
type RGBAF [ChannelsRGBA]float32

// RGBF is one normalized float pixel with channels in R, G, B order.
type RGBF [ChannelsRGB]float32

// flat reinterprets a slice of fixed-size pixel arrays as the packed slice of
// their channels. P must be an array of exactly channels elements of type E.
func flat[E, P any](px []P, channels int) []E {
	if len(px) == 0 {
		return nil
	}
	return unsafe.Slice((*E)(unsafe.Pointer(&px[0])), len(px)*channels)
}
