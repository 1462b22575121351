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

// LoadInterleaved4 loads interleaved quads and deinterleaves into four vectors.
// This converts Array-of-Structures (AoS) format to Structure-of-Arrays (SoA).
//
// Input memory layout (interleaved quads):
//
//	[a0, b0, c0, d0, a1, b1, c1, d1, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, ...]
//	vec_b = [b0, b1, ...]
//	vec_c = [c0, c1, ...]
//	vec_d = [d0, d1, ...]
//
// This is how RGBA pixels are split into channel vectors. Only complete quads
// present in src are read; lanes without a source quad are zero.
func LoadInterleaved4[T Lanes](d Tag, src []T) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	n := d.Lanes()
	a, b, c, e := Vec[T]{n: n}, Vec[T]{n: n}, Vec[T]{n: n}, Vec[T]{n: n}

	quads := min(n, len(src)/4)
	for i := range quads {
		q := src[i*4 : i*4+4]
		a.data[i] = q[0]
		b.data[i] = q[1]
		c.data[i] = q[2]
		e.data[i] = q[3]
	}

	return a, b, c, e
}

// StoreInterleaved3 stores three vectors interleaved to dst.
// This converts Structure-of-Arrays (SoA) format to Array-of-Structures (AoS).
//
// Input vectors:
//
//	vec_a = [a0, a1, a2, ...]
//	vec_b = [b0, b1, b2, ...]
//	vec_c = [c0, c1, c2, ...]
//
// Output memory layout (interleaved triples):
//
//	[a0, b0, c0, a1, b1, c1, a2, b2, c2, ...]
//
// Only complete triples that fit in dst are written.
func StoreInterleaved3[T Lanes](a, b, c Vec[T], dst []T) {
	triples := min(a.n, len(dst)/3)
	for i := range triples {
		t := dst[i*3 : i*3+3]
		t[0] = a.data[i]
		t[1] = b.data[i]
		t[2] = c.data[i]
	}
}
