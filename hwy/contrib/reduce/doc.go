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

// Package reduce provides the min/max extremum reduction over float slices.
//
// Every reduction comes in three forms:
//
//   - BaseMinMax takes an explicit hwy.Tag and is the lane-parallel path.
//   - MinMax runs BaseMinMax with hwy.ScalableTag(), that is with LANES lanes.
//   - ScalarMinMax is a plain linear scan: the reference BaseMinMax must match.
//
// For all finite inputs the three agree exactly. Inputs containing NaN give
// an unspecified result: comparisons against NaN are always false, so a NaN
// neither wins nor reliably loses, and the vector and scalar paths may order
// those comparisons differently.
//
// Empty input is not an error. It returns the Sentinels for the element type,
// which callers treat as "no data".
//
// Example:
//
//	lo, hi := reduce.MinMax([]float32{3, -1, 42, 7.5}) // -1, 42
package reduce
