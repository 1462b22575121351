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

// Package search provides byte-pattern search over byte slices.
//
// Single-byte needles compare a broadcast of the byte against LANES bytes of
// the haystack at a time and resolve the first matching lane. Longer needles
// use the same comparison on the needle's first byte as a candidate filter:
// every matching lane is a candidate offset that is then confirmed with an
// exact comparison of the whole needle, in ascending offset order.
//
// Results are identical to bytes.Index and bytes.Contains for every input:
//
//	search.Index([]byte("hello world"), []byte("world")) // 6
//	search.Index([]byte("hello world"), []byte("xyz"))   // -1
//	search.Contains(nil, nil)                            // true
package search
