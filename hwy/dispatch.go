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
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DispatchLevel represents the vector instruction set the lane width was derived from.
type DispatchLevel int

const (
	// DispatchScalar indicates no recognized vector extension; LANES is 1.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (128-bit, x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX or AVX2 instructions (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 Foundation instructions (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// laneBytes is the element size LANES is measured in (float32).
const laneBytes = 4

// currentLevel is the detected instruction set for this process.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the vector register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current level.
// Set by init() in dispatch_*.go files.
var currentName string

// currentLanes is LANES: the number of elements every kernel processes per
// vector operation. Resolved once, after the per-architecture probe.
var currentLanes = 1

// configErr records an HWY_LANES value that was rejected at init.
var configErr error

// CurrentLevel returns the instruction set the lane width was derived from.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512, 4 for scalar.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// CurrentLanes returns LANES, the lane count shared by all kernels:
// 16 on AVX-512, 8 on AVX/AVX2, 4 on SSE2 and NEON, 1 without a recognized
// vector extension, or the value of HWY_LANES when it is set and valid.
func CurrentLanes() int {
	return currentLanes
}

// ConfigError returns the reason an HWY_LANES override was ignored, or nil.
func ConfigError() error {
	return configErr
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar level is used regardless of CPU capabilities.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setLevel(level DispatchLevel, width int) {
	currentLevel = level
	currentWidth = width
	currentName = level.String()
}

func setScalarMode() {
	setLevel(DispatchScalar, laneBytes)
}

// resolveLanes derives LANES from the probed width and applies HWY_LANES.
// Called at the end of every per-architecture init().
func resolveLanes() {
	currentLanes = max(currentWidth/laneBytes, 1)

	lanes, err := parseLanesEnv(os.Getenv("HWY_LANES"))
	if err != nil {
		configErr = err
		return
	}
	if lanes > 0 {
		currentLanes = lanes
	}
}

// parseLanesEnv returns 0 for an unset value.
func parseLanesEnv(val string) (int, error) {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("hwy: HWY_LANES=%q is not an integer", val)
	}
	if n < 1 || n > MaxTagLanes {
		return 0, fmt.Errorf("hwy: HWY_LANES=%d out of range [1, %d]", n, MaxTagLanes)
	}
	return n, nil
}

// MaxLanes returns LANES. The lane count does not depend on the element
// type: a byte kernel and a float kernel both step LANES elements at a time.
func MaxLanes[T Lanes]() int {
	return currentLanes
}
