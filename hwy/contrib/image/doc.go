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

// Package image converts RGBA pixels to luminance.
//
// Luminance follows ITU-R BT.709:
//
//	L = 0.2126·R + 0.7152·G + 0.0722·B
//
// Two representations are supported. Luma8 works on 8-bit channels in fixed
// point, with the weights scaled by 256 and a 16-bit intermediate so that the
// weighted sum cannot overflow. LumaF32 works on normalized [0, 1] float32
// channels and evaluates the weighted sum as a chain of fused multiply-adds.
// Alpha is always dropped and every output pixel repeats L in all three
// channels.
//
// Each conversion has a lane-parallel Base form taking an explicit hwy.Tag
// and a Scalar form that applies the per-pixel formula in a plain loop. The
// two agree exactly: fixed point bit for bit against the same integer
// formula, float bit for bit against the same fused expression.
//
// # Buffers
//
// Pixel slices ([]RGBA, []RGB) share memory layout with packed byte buffers.
// RGBAFromBytes and Luma8Bytes accept raw buffers, as produced by image
// decoders, and reject lengths that are not a whole number of pixels or an
// output of the wrong size. FromImage and ToImage bridge to the standard
// image package.
//
// # Usage Example
//
//	px := image.FromImage(decoded)
//	gray := image.Luma8(px)
//	out, err := image.ToImage(gray, width, height)
package image
