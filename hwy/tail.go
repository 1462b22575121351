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

// ProcessWithTail is a helper for processing arrays in chunks of exactly
// d.Lanes() elements plus a scalar remainder.
//
// It calls:
//   - fullFn(offset) for each full chunk, in ascending offset order
//   - tailFn(offset, count) once for the remainder if size is not a multiple of the lane count
//
// Example:
//
//	hwy.ProcessWithTail(d, len(data),
//	    func(offset int) {
//	        v := hwy.Load(d, data[offset:])
//	        hwy.Store(hwy.Add(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        for i := offset; i < offset+count; i++ {
//	            output[i] = data[i] + data[i]
//	        }
//	    },
//	)
func ProcessWithTail(d Tag, size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := d.Lanes()

	fullChunks := size / lanes
	for i := range fullChunks {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(fullChunks*lanes, remaining)
	}
}

// ChunkedSize rounds size down to a multiple of the lane count: the number
// of elements the full-chunk loop covers.
func ChunkedSize(d Tag, size int) int {
	lanes := d.Lanes()
	return size - size%lanes
}

// IsAligned returns true if size is a multiple of the lane count.
func IsAligned(d Tag, size int) bool {
	return size%d.Lanes() == 0
}
