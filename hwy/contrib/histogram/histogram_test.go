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
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanekit/lanekit/hwy"
	"github.com/lanekit/lanekit/hwy/contrib/workerpool"
)

func randomBytes(rng *rand.Rand, n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(rng.UintN(256))
	}
	return data
}

func TestHistogramLetters(t *testing.T) {
	var got Bins
	Histogram([]byte("aabbbc"), &got)

	var want Bins
	want['a'] = 2
	want['b'] = 3
	want['c'] = 1
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Histogram(\"aabbbc\") mismatch (-want +got):\n%s", diff)
	}
}

func TestHistogramEmpty(t *testing.T) {
	var got Bins
	Histogram(nil, &got)
	assert.Equal(t, uint64(0), got.Total())
}

func TestHistogramAccumulates(t *testing.T) {
	var got Bins
	got['x'] = 10
	Histogram([]byte("xxy"), &got)
	assert.Equal(t, uint32(12), got['x'])
	assert.Equal(t, uint32(1), got['y'])
	assert.Equal(t, uint64(13), got.Total())

	got.Reset()
	assert.Equal(t, Bins{}, got)
}

func TestHistogramMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for lanes := 1; lanes <= 17; lanes++ {
		d := hwy.FixedTag(lanes)
		for _, n := range []int{0, 1, lanes - 1, lanes, lanes + 1, 3*lanes + 2, 1000} {
			t.Run(fmt.Sprintf("lanes=%d/n=%d", lanes, n), func(t *testing.T) {
				data := randomBytes(rng, n)
				var got, want Bins
				BaseHistogram(d, data, &got)
				ScalarHistogram(data, &want)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Fatalf("mismatch (-scalar +vector):\n%s", diff)
				}
				require.Equal(t, uint64(n), got.Total())
			})
		}
	}
}

func TestHistogramEveryByteValue(t *testing.T) {
	data := make([]byte, 256*3)
	for i := range data {
		data[i] = byte(i)
	}
	var got Bins
	BaseHistogram(hwy.FixedTag(16), data, &got)
	for v, c := range got {
		if c != 3 {
			t.Errorf("bin %d = %d, want 3", v, c)
		}
	}
}

func TestMerge(t *testing.T) {
	var a, b, dst Bins
	a[0], a[255] = 1, 2
	b[0], b[7] = 3, 4
	Merge(&dst, &a, nil, &b)

	var want Bins
	want[0], want[7], want[255] = 4, 4, 2
	assert.Equal(t, want, dst)
}

func TestParallelMatchesSingleThreaded(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	rng := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{0, 1, 7, 100, 4099, 65536 + 13} {
		data := randomBytes(rng, n)
		var want Bins
		ScalarHistogram(data, &want)

		for _, parts := range []int{-1, 0, 1, 2, 3, 4, 7, 16, 33} {
			var withPool, withoutPool Bins
			Parallel(pool, data, &withPool, parts)
			Parallel(nil, data, &withoutPool, parts)

			if diff := cmp.Diff(want, withPool); diff != "" {
				t.Fatalf("pool n=%d parts=%d mismatch (-want +got):\n%s", n, parts, diff)
			}
			if diff := cmp.Diff(want, withoutPool); diff != "" {
				t.Fatalf("goroutines n=%d parts=%d mismatch (-want +got):\n%s", n, parts, diff)
			}
		}
	}
}

func TestParallelMorePartsThanBytes(t *testing.T) {
	var got Bins
	Parallel(nil, []byte("abc"), &got, 10)
	assert.Equal(t, uint64(3), got.Total())
	assert.Equal(t, uint32(1), got['a'])
	assert.Equal(t, uint32(1), got['c'])
}

func BenchmarkHistogram(b *testing.B) {
	data := randomBytes(rand.New(rand.NewPCG(5, 6)), 1<<20)
	var bins Bins

	b.Run("Vector", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			Histogram(data, &bins)
		}
	})
	b.Run("Scalar", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			ScalarHistogram(data, &bins)
		}
	})
	b.Run("Parallel", func(b *testing.B) {
		pool := workerpool.New(0)
		defer pool.Close()
		b.ReportAllocs()
		b.SetBytes(int64(len(data)))
		for i := 0; i < b.N; i++ {
			Parallel(pool, data, &bins, pool.NumWorkers())
		}
	})
}
