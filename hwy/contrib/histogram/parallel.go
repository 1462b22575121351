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

package histogram

import (
	"golang.org/x/sync/errgroup"

	"github.com/lanekit/lanekit/hwy/contrib/workerpool"
)

// Parallel adds the byte frequencies of data to out using parts workers.
//
// The input is split with workerpool.Partition into parts contiguous ranges
// that cover it exactly once. Each range is counted into its own Bins, so no
// two workers write the same counter; the partial histograms are summed into
// out once every worker has finished. parts < 1 is treated as 1.
//
// Ranges run on pool's workers. If pool is nil each range gets its own
// goroutine.
func Parallel(pool *workerpool.Pool, data []byte, out *Bins, parts int) {
	ranges := workerpool.Partition(len(data), parts)
	if len(ranges) == 1 {
		Histogram(data, out)
		return
	}

	partial := make([]Bins, len(ranges))
	count := func(part int, r workerpool.Range) {
		Histogram(data[r.Start:r.End], &partial[part])
	}

	if pool != nil {
		pool.ParallelForRanges(ranges, count)
	} else {
		var g errgroup.Group
		for part, r := range ranges {
			g.Go(func() error {
				count(part, r)
				return nil
			})
		}
		// Workers cannot fail; Wait is the join.
		_ = g.Wait()
	}

	for part := range partial {
		out.Add(&partial[part])
	}
}
