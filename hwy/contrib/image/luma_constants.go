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

// BT.709 luminance coefficients.
const (
	LumaR = 0.2126
	LumaG = 0.7152
	LumaB = 0.0722
)

// Fixed-point luminance weights: the BT.709 coefficients scaled by
// 1<<LumaShift. They sum to exactly 256, so white maps to 255 and black to 0.
const (
	LumaR8 = 54
	LumaG8 = 183
	LumaB8 = 19

	LumaShift = 8
)

// Channel counts of the packed pixel layouts.
const (
	ChannelsRGBA = 4
	ChannelsRGB  = 3
)
