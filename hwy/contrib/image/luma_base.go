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
	"fmt"

	"github.com/lanekit/lanekit/hwy"
)

// LumaPixel8 returns the fixed-point luminance of p:
// (54·R + 183·G + 19·B) >> 8, computed in 16 bits.
func LumaPixel8(p RGBA) uint8 {
	return luma8(p[0], p[1], p[2])
}

func luma8(r, g, b uint8) uint8 {
	sum := LumaR8*uint16(r) + LumaG8*uint16(g) + LumaB8*uint16(b)
	return uint8(sum >> LumaShift)
}

// LumaPixelF32 returns the luminance of a normalized pixel:
// fma(B, 0.0722, fma(G, 0.7152, 0.2126·R)).
func LumaPixelF32(p RGBAF) float32 {
	return lumaF32(p[0], p[1], p[2])
}

func lumaF32(r, g, b float32) float32 {
	y := r * float32(LumaR)
	y = hwy.MulAddScalar(g, float32(LumaG), y)
	return hwy.MulAddScalar(b, float32(LumaB), y)
}

// BaseLuma8 writes the fixed-point luminance of every src pixel to the
// matching dst pixel, d.Lanes() pixels at a time.
//
// It panics if dst and src differ in length.
func BaseLuma8(d hwy.Tag, dst []RGB, src []RGBA) {
	checkLen("BaseLuma8", len(dst), len(src))
	baseLuma8Flat(d, flat[uint8](dst, ChannelsRGB), flat[uint8](src, ChannelsRGBA))
}

// baseLuma8Flat is BaseLuma8 over packed channels. len(src) must be a
// multiple of 4 and len(dst) must be 3·len(src)/4.
func baseLuma8Flat(d hwy.Tag, dst, src []uint8) {
	wr := hwy.Set(d, uint16(LumaR8))
	wg := hwy.Set(d, uint16(LumaG8))
	wb := hwy.Set(d, uint16(LumaB8))
	lanes := d.Lanes()
	pixels := len(src) / ChannelsRGBA

	// Process full vectors: deinterleave, widen, weigh, narrow, interleave
	i := 0
	for ; i+lanes <= pixels; i += lanes {
		r, g, b, _ := hwy.LoadInterleaved4(d, src[i*ChannelsRGBA:])
		sum := hwy.Mul(hwy.PromoteU8ToU16(r), wr)
		sum = hwy.Add(sum, hwy.Mul(hwy.PromoteU8ToU16(g), wg))
		sum = hwy.Add(sum, hwy.Mul(hwy.PromoteU8ToU16(b), wb))
		y := hwy.TruncateU16ToU8(hwy.ShiftRight(sum, LumaShift))
		hwy.StoreInterleaved3(y, y, y, dst[i*ChannelsRGB:])
	}

	// Handle remaining pixels with the identical scalar formula
	for ; i < pixels; i++ {
		s := src[i*ChannelsRGBA:]
		y := luma8(s[0], s[1], s[2])
		o := dst[i*ChannelsRGB:]
		o[0], o[1], o[2] = y, y, y
	}
}

// BaseLumaF32 writes the luminance of every normalized src pixel to the
// matching dst pixel, d.Lanes() pixels at a time.
//
// It panics if dst and src differ in length.
func BaseLumaF32(d hwy.Tag, dst []RGBF, src []RGBAF) {
	checkLen("BaseLumaF32", len(dst), len(src))
	in := flat[float32](src, ChannelsRGBA)
	out := flat[float32](dst, ChannelsRGB)

	wr := hwy.Set(d, float32(LumaR))
	wg := hwy.Set(d, float32(LumaG))
	wb := hwy.Set(d, float32(LumaB))
	lanes := d.Lanes()

	i := 0
	for ; i+lanes <= len(src); i += lanes {
		r, g, b, _ := hwy.LoadInterleaved4(d, in[i*ChannelsRGBA:])
		y := hwy.Mul(r, wr)
		y = hwy.MulAdd(g, wg, y)
		y = hwy.MulAdd(b, wb, y)
		hwy.StoreInterleaved3(y, y, y, out[i*ChannelsRGB:])
	}

	for ; i < len(src); i++ {
		y := LumaPixelF32(src[i])
		dst[i] = RGBF{y, y, y}
	}
}

func checkLen(fn string, dst, src int) {
	if dst != src {
		panic(fmt.Sprintf("image: %s dst has %d pixels, src has %d", fn, dst, src))
	}
}
