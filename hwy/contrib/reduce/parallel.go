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
	"github.com/lanekit/lanekit/hwy"
	"github.com/lanekit/lanekit/hwy/contrib/workerpool"
)

// minParallelLen is the input length below which ParallelMinMax does not
// split the work.
const minParallelLen = 1 << 15

// ParallelMinMax computes MinMax by splitting data into one contiguous range
// per pool worker, reducing each range with MinMax and folding the partial
// results.
//
// If pool is nil or data is short the reduction runs on the calling
// goroutine. The result equals ScalarMinMax for finite data.
func ParallelMinMax[T hwy.Floats](pool *workerpool.Pool, data []T) (lo, hi T) {
	if pool == nil || pool.NumWorkers() < 2 || len(data) < minParallelLen {
		return MinMax(data)
	}

	ranges := workerpool.Partition(len(data), pool.NumWorkers())
	los := make([]T, len(ranges))
	his := make([]T, len(ranges))
	pool.ParallelForRanges(ranges, func(part int, r workerpool.Range) {
		los[part], his[part] = MinMax(data[r.Start:r.End])
	})

	lo, hi = Sentinels[T]()
	for part := range ranges {
		lo = min(lo, los[part])
		hi = max(hi, his[part])
	}
	return lo, hi
}
