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

import "math"

// This file provides the pure Go implementations of the lane operations.
// Every operation works lane-by-lane over NumLanes elements; binary operations
// use the lane count of their first operand.

// Load creates a vector from the first d.Lanes() elements of src.
// If src is shorter, only len(src) elements are read and the remaining lanes
// are zero: Load never reads past the end of src.
func Load[T Lanes](d Tag, src []T) Vec[T] {
	n := d.Lanes()
	v := Vec[T]{n: n}
	copy(v.data[:n], src)
	return v
}

// Store writes a vector's lanes to dst, up to len(dst).
func Store[T Lanes](v Vec[T], dst []T) {
	v.Store(dst)
}

// Set creates a vector with all lanes set to the same value (a broadcast).
func Set[T Lanes](d Tag, value T) Vec[T] {
	n := d.Lanes()
	v := Vec[T]{n: n}
	for i := range n {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes](d Tag) Vec[T] {
	return Vec[T]{n: d.Lanes()}
}

// GetLane returns lane i of v. It panics if i is not a valid lane.
func GetLane[T Lanes](v Vec[T], i int) T {
	if i < 0 || i >= v.n {
		panic("hwy: GetLane index out of range")
	}
	return v.data[i]
}

// Add performs element-wise addition. Integer lanes wrap on overflow.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] += b.data[i]
	}
	return a
}

// Mul performs element-wise multiplication. Integer lanes wrap on overflow.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] *= b.data[i]
	}
	return a
}

// MulAdd computes a*b + c per lane with a single rounding of the float64
// fused result. This is the FMA used by every float kernel and by their
// scalar references, so both agree bit for bit.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	for i := range a.n {
		a.data[i] = MulAddScalar(a.data[i], b.data[i], c.data[i])
	}
	return a
}

// MulAddScalar is the single-lane form of MulAdd.
func MulAddScalar[T Floats](a, b, c T) T {
	return T(math.FMA(float64(a), float64(b), float64(c)))
}

// Min returns the lane-wise minimum, keeping the lane of a unless the lane of
// b compares strictly smaller. With NaN lanes the result is unspecified.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		if b.data[i] < a.data[i] {
			a.data[i] = b.data[i]
		}
	}
	return a
}

// Max returns the lane-wise maximum, keeping the lane of a unless the lane of
// b compares strictly greater. With NaN lanes the result is unspecified.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	for i := range a.n {
		if b.data[i] > a.data[i] {
			a.data[i] = b.data[i]
		}
	}
	return a
}

// ReduceMin returns the minimum value across all lanes.
// A vector with no lanes reduces to the zero value.
func ReduceMin[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		if v.data[i] < m {
			m = v.data[i]
		}
	}
	return m
}

// ReduceMax returns the maximum value across all lanes.
// A vector with no lanes reduces to the zero value.
func ReduceMax[T Lanes](v Vec[T]) T {
	if v.n == 0 {
		var zero T
		return zero
	}
	m := v.data[0]
	for i := 1; i < v.n; i++ {
		if v.data[i] > m {
			m = v.data[i]
		}
	}
	return m
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for i := range v.n {
		sum += v.data[i]
	}
	return sum
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	var bits uint64
	for i := range a.n {
		if a.data[i] == b.data[i] {
			bits |= 1 << uint(i)
		}
	}
	return Mask[T]{bits: bits, n: a.n}
}

// ShiftRight performs element-wise right shift by a constant number of bits.
// For signed integers, this is arithmetic shift (sign-extended).
// For unsigned integers, this is logical shift (zero-filled).
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	for i := range v.n {
		v.data[i] >>= uint(bits)
	}
	return v
}

// Iota returns a vector with lanes set to [0, 1, 2, 3, ...].
func Iota[T Lanes](d Tag) Vec[T] {
	n := d.Lanes()
	v := Vec[T]{n: n}
	for i := range n {
		v.data[i] = T(i)
	}
	return v
}
