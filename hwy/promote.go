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

// PromoteU8ToU16 zero-extends each uint8 lane to uint16.
// Fixed-point pixel math widens through 16 bits so that weighted channel sums
// cannot overflow.
func PromoteU8ToU16(v Vec[uint8]) Vec[uint16] {
	r := Vec[uint16]{n: v.n}
	for i := range v.n {
		r.data[i] = uint16(v.data[i])
	}
	return r
}

// TruncateU16ToU8 keeps the low 8 bits of each uint16 lane.
func TruncateU16ToU8(v Vec[uint16]) Vec[uint8] {
	r := Vec[uint8]{n: v.n}
	for i := range v.n {
		r.data[i] = uint8(v.data[i])
	}
	return r
}

// DemoteU16ToU8 narrows each uint16 lane to uint8 with saturation to 255.
func DemoteU16ToU8(v Vec[uint16]) Vec[uint8] {
	r := Vec[uint8]{n: v.n}
	for i := range v.n {
		r.data[i] = uint8(min(v.data[i], 255))
	}
	return r
}
