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

package search

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanekit/lanekit/hwy"
)

func TestIndexHelloWorld(t *testing.T) {
	h := []byte("hello world")
	assert.Equal(t, 6, Index(h, []byte("world")))
	assert.Equal(t, -1, Index(h, []byte("xyz")))
	assert.Equal(t, 0, Index(h, []byte("hello")))
	assert.Equal(t, 4, Index(h, []byte("o")))
	assert.True(t, ContainsString(h, "lo w"))
	assert.False(t, ContainsString(h, "worlds"))
	assert.Equal(t, 10, IndexString(h, "d"))
}

func TestEmptyNeedle(t *testing.T) {
	assert.True(t, Contains(nil, nil))
	assert.True(t, Contains([]byte(""), []byte("")))
	assert.True(t, Contains([]byte("abc"), []byte("")))
	assert.Equal(t, 0, Index(nil, nil))
	assert.Equal(t, 0, Index([]byte("abc"), []byte{}))
	for lanes := 1; lanes <= 17; lanes++ {
		assert.Equal(t, 0, BaseIndex(hwy.FixedTag(lanes), []byte("xyz"), nil))
	}
}

func TestNeedleLongerThanHaystack(t *testing.T) {
	assert.False(t, Contains([]byte("ab"), []byte("abc")))
	assert.Equal(t, -1, Index([]byte("ab"), []byte("abc")))
	assert.Equal(t, -1, Index(nil, []byte("a")))
	assert.False(t, ContainsByte(nil, 'a'))
}

func TestIndexByte(t *testing.T) {
	h := []byte("0123456789abcdefghij")
	for lanes := 1; lanes <= 17; lanes++ {
		d := hwy.FixedTag(lanes)
		for i, c := range h {
			assert.Equal(t, i, BaseIndexByte(d, h, c), "lanes=%d byte=%q", lanes, c)
		}
		assert.Equal(t, -1, BaseIndexByte(d, h, 'z'), "lanes=%d", lanes)
	}
	assert.True(t, ContainsByte(h, 'j'))
	assert.Equal(t, 19, IndexByte(h, 'j'))
}

func TestMatchStraddlesChunkBoundary(t *testing.T) {
	// "needle" starts inside the first chunk and ends in the second.
	h := []byte("xxxxxxneedlexxxx")
	for lanes := 1; lanes <= 17; lanes++ {
		assert.Equal(t, 6, BaseIndex(hwy.FixedTag(lanes), h, []byte("needle")), "lanes=%d", lanes)
	}
}

func TestMatchInRemainder(t *testing.T) {
	// With 8 lanes, offsets 8.. are only reachable through the remainder pass.
	h := []byte("aaaaaaaaab")
	assert.Equal(t, 8, BaseIndex(hwy.FixedTag(8), h, []byte("ab")))
	assert.Equal(t, 9, BaseIndexByte(hwy.FixedTag(8), h, 'b'))
}

func TestCandidateBeyondLastOffset(t *testing.T) {
	// The first byte matches near the end, where the needle no longer fits.
	h := []byte("xxxxxxxa")
	assert.Equal(t, -1, BaseIndex(hwy.FixedTag(8), h, []byte("ab")))
	assert.Equal(t, -1, BaseIndex(hwy.FixedTag(4), h, []byte("ab")))
}

func TestFirstOfSeveralMatches(t *testing.T) {
	h := []byte("abababab abab")
	for lanes := 1; lanes <= 17; lanes++ {
		assert.Equal(t, 1, BaseIndex(hwy.FixedTag(lanes), h, []byte("bab")), "lanes=%d", lanes)
	}
}

func TestNaiveIndex(t *testing.T) {
	assert.Equal(t, 0, NaiveIndex(nil, nil))
	assert.Equal(t, 6, NaiveIndex([]byte("hello world"), []byte("world")))
	assert.Equal(t, -1, NaiveIndex([]byte("hello"), []byte("hello!")))
}

func TestIndexMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	// A small alphabet makes partial first-byte matches frequent.
	const alphabet = "abc"
	randomText := func(n int) []byte {
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rng.IntN(len(alphabet))]
		}
		return b
	}

	for lanes := 1; lanes <= 17; lanes++ {
		d := hwy.FixedTag(lanes)
		t.Run(fmt.Sprintf("lanes=%d", lanes), func(t *testing.T) {
			for range 300 {
				h := randomText(rng.IntN(70))
				n := randomText(rng.IntN(6))
				want := bytes.Index(h, n)
				require.Equal(t, want, BaseIndex(d, h, n), "h=%q n=%q", h, n)
				require.Equal(t, want, NaiveIndex(h, n), "h=%q n=%q", h, n)
				require.Equal(t, bytes.Contains(h, n), BaseIndex(d, h, n) >= 0)
			}
		})
	}
}

func TestIndexNeedleFromHaystack(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	h := make([]byte, 4096)
	for i := range h {
		h[i] = byte(rng.UintN(256))
	}
	for range 200 {
		start := rng.IntN(len(h) - 32)
		n := h[start : start+1+rng.IntN(31)]
		assert.Equal(t, bytes.Index(h, n), Index(h, n))
		assert.True(t, Contains(h, n))
	}
}

func BenchmarkIndex(b *testing.B) {
	h := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 1<<12)
	n := []byte("lazy cat")

	b.Run("Vector", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(h)))
		for i := 0; i < b.N; i++ {
			Index(h, n)
		}
	})
	b.Run("Naive", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(h)))
		for i := 0; i < b.N; i++ {
			NaiveIndex(h, n)
		}
	})
	b.Run("bytes.Index", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(h)))
		for i := 0; i < b.N; i++ {
			bytes.Index(h, n)
		}
	})
}
