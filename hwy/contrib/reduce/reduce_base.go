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

package reduce

import (
	"math"
	"unsafe"

	"github.com/lanekit/lanekit/hwy"
)

// Sentinels returns the seeds of the reduction: the largest finite value of T
// for the running minimum and its negation for the running maximum. MinMax of
// an empty slice returns exactly these.
func Sentinels[T hwy.Floats]() (lo, hi T) {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return T(math.MaxFloat32), -T(math.MaxFloat32)
	}
	m := math.MaxFloat64
	return T(m), T(-m)
}

// BaseMinMax returns the smallest and largest element of data, processing
// d.Lanes() elements per step.
//
// Each lane keeps a running minimum and maximum seeded with Sentinels. After
// the last full chunk the lanes are reduced horizontally and the remaining
// len(data) % d.Lanes() elements are folded in one by one.
func BaseMinMax[T hwy.Floats](d hwy.Tag, data []T) (lo, hi T) {
	lo, hi = Sentinels[T]()
	minVec := hwy.Set(d, lo)
	maxVec := hwy.Set(d, hi)
	lanes := d.Lanes()

	// Process full vectors
	var i int
	for i = 0; i+lanes <= len(data); i += lanes {
		v := hwy.Load(d, data[i:])
		minVec = hwy.Min(minVec, v)
		maxVec = hwy.Max(maxVec, v)
	}

	lo = hwy.ReduceMin(minVec)
	hi = hwy.ReduceMax(maxVec)

	// Handle tail elements with scalar code
	for ; i < len(data); i++ {
		if data[i] < lo {
			lo = data[i]
		}
		if data[i] > hi {
			hi = data[i]
		}
	}
	return lo, hi
}

// MinMax returns the smallest and largest element of data using LANES lanes.
func MinMax[T hwy.Floats](data []T) (lo, hi T) {
	return BaseMinMax(hwy.ScalableTag(), data)
}

// ScalarMinMax is the linear-scan reference for MinMax.
func ScalarMinMax[T hwy.Floats](data []T) (lo, hi T) {
	lo, hi = Sentinels[T]()
	for _, x := range data {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}
