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

// Package histogram provides 256-bin byte-frequency counting.
//
// A Bins value maps every byte value to a 32-bit count. The kernels
// accumulate into the Bins they are given and never reset it, so the same
// Bins can be fed several buffers in turn:
//
//	var bins histogram.Bins
//	histogram.Histogram(header, &bins)
//	histogram.Histogram(body, &bins)
//	total := bins.Total() // len(header) + len(body)
//
// Parallel splits a buffer into contiguous ranges, counts each range into
// its own private Bins on a worker and merges the partial results after all
// workers have finished.
package histogram
