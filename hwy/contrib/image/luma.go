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

import "github.com/lanekit/lanekit/hwy"

// Luma8 returns the fixed-point luminance of src as a new slice of the same
// length and order.
func Luma8(src []RGBA) []RGB {
	dst := make([]RGB, len(src))
	BaseLuma8(hwy.ScalableTag(), dst, src)
	return dst
}

// Luma8Into writes the fixed-point luminance of src into dst.
// It panics if dst and src differ in length.
func Luma8Into(dst []RGB, src []RGBA) {
	BaseLuma8(hwy.ScalableTag(), dst, src)
}

// ScalarLuma8 is the pixel-at-a-time reference for Luma8.
func ScalarLuma8(src []RGBA) []RGB {
	dst := make([]RGB, len(src))
	for i, p := range src {
		y := LumaPixel8(p)
		dst[i] = RGB{y, y, y}
	}
	return dst
}

// LumaF32 returns the luminance of normalized src pixels as a new slice.
func LumaF32(src []RGBAF) []RGBF {
	dst := make([]RGBF, len(src))
	BaseLumaF32(hwy.ScalableTag(), dst, src)
	return dst
}

// ScalarLumaF32 is the pixel-at-a-time reference for LumaF32.
func ScalarLumaF32(src []RGBAF) []RGBF {
	dst := make([]RGBF, len(src))
	for i, p := range src {
		y := LumaPixelF32(p)
		dst[i] = RGBF{y, y, y}
	}
	return dst
}
