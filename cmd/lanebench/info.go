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

package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/lanekit/lanekit/hwy"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected vector target, LANES and CPU features",
		RunE: func(*cobra.Command, []string) error {
			w := a.out
			fmt.Fprintf(w, "Target:        %s (%d-byte vectors)\n", hwy.CurrentName(), hwy.CurrentWidth())
			fmt.Fprintf(w, "LANES:         %d\n", hwy.CurrentLanes())
			if hwy.NoSimdEnv() {
				fmt.Fprintln(w, "HWY_NO_SIMD:   set")
			}
			if err := hwy.ConfigError(); err != nil {
				fmt.Fprintf(w, "HWY_LANES:     ignored (%v)\n", err)
			}
			fmt.Fprintf(w, "GOARCH:        %s\n", runtime.GOARCH)
			fmt.Fprintf(w, "CPU:           %s\n", cpuid.CPU.BrandName)
			fmt.Fprintf(w, "Cores:         %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
			if cpuid.CPU.Cache.L1D > 0 {
				fmt.Fprintf(w, "L1D / L2:      %s / %s\n",
					humanize.IBytes(uint64(cpuid.CPU.Cache.L1D)), humanize.IBytes(uint64(cpuid.CPU.Cache.L2)))
			}
			fmt.Fprintf(w, "Features:      %s\n", strings.Join(cpuid.CPU.FeatureSet(), " "))

			vi := vek32.Info()
			fmt.Fprintf(w, "vek32:         accelerated=%t\n", vi.Acceleration)
			return nil
		},
	}
}
