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

import "github.com/lanekit/lanekit/hwy"

// NumBins is the number of distinct byte values.
const NumBins = 256

// Bins holds one occurrence count per byte value.
//
// Indexing a Bins with a byte is always in range, so the counting loops below
// carry no bounds checks on the increment.
type Bins [NumBins]uint32

// Total returns the sum of all counts, which equals the number of bytes
// counted since the last Reset.
func (b *Bins) Total() uint64 {
	var total uint64
	for _, c := range b {
		total += uint64(c)
	}
	return total
}

// Add sums other into b bin by bin.
func (b *Bins) Add(other *Bins) {
	for i := range b {
		b[i] += other[i]
	}
}

// Reset zeroes every bin.
func (b *Bins) Reset() {
	*b = Bins{}
}

// BaseHistogram adds the byte frequencies of data to out, staging d.Lanes()
// bytes at a time.
//
// Histogram updates have data-dependent addresses, so the increment itself is
// scalar per lane: the vector step only stages a chunk. Bytes that do not
// fill a full chunk are counted individually.
func BaseHistogram(d hwy.Tag, data []byte, out *Bins) {
	lanes := d.Lanes()

	var i int
	for i = 0; i+lanes <= len(data); i += lanes {
		v := hwy.Load(d, data[i:])
		for j := range lanes {
			out[hwy.GetLane(v, j)]++
		}
	}

	for _, c := range data[i:] {
		out[c]++
	}
}

// Histogram adds the byte frequencies of data to out using LANES lanes.
func Histogram(data []byte, out *Bins) {
	BaseHistogram(hwy.ScalableTag(), data, out)
}

// ScalarHistogram is the byte-at-a-time reference for Histogram.
func ScalarHistogram(data []byte, out *Bins) {
	for _, c := range data {
		out[c]++
	}
}

// Merge adds every src histogram into dst. Nil entries are skipped.
func Merge(dst *Bins, src ...*Bins) {
	for _, s := range src {
		if s != nil {
			dst.Add(s)
		}
	}
}
