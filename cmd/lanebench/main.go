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

// Command lanebench times the lanekit kernels against their scalar
// references and third-party baselines.
//
// Every benchmark row first checks that the kernel's result equals the
// baseline's. A mismatch is reported as invalid and makes the command fail,
// so a speedup is never printed for a wrong answer.
//
// Usage:
//
//	lanebench info
//	lanebench minmax --sizes 1000,1000000 --trials 50
//	lanebench histogram --text titles.txt --workers 8
//	lanebench search --text titles.txt --needle "AVX-512"
//	lanebench luma --image lenna.png --out gray.png
//
// Settings can also be read from a YAML file with --config; flags given on
// the command line take precedence.
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
