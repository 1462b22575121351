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

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/lanekit/lanekit/hwy/contrib/reduce"
)

// sinkF32 keeps benchmarked results alive.
var sinkF32 float32

func newMinMaxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "minmax",
		Short: "Benchmark the min/max reduction on random float32 data",
		RunE: func(*cobra.Command, []string) error {
			return a.runMinMax()
		},
	}
}

func (a *app) runMinMax() error {
	pool := a.newPool()
	defer pool.Close()

	rng := newRand(a.cfg.Seed)
	scalar := newTable(a.out, "Min/max: vector vs scalar", "Elements", "Scalar", "Vector")
	vek := newTable(a.out, "Min/max: vector vs vek32", "Elements", "vek32", "Vector")
	parallel := newTable(a.out, fmt.Sprintf("Min/max: parallel (%d workers) vs scalar", pool.NumWorkers()),
		"Elements", "Scalar", "Parallel")

	for _, n := range a.cfg.Sizes {
		level.Debug(a.logger).Log("msg", "generating data", "elements", n)
		data := randomFloats(rng, n)
		label := humanize.Comma(int64(n))

		lo, hi := reduce.MinMax(data)
		slo, shi := reduce.ScalarMinMax(data)
		plo, phi := reduce.ParallelMinMax(pool, data)
		vlo, vhi := vek32.Min(data), vek32.Max(data)

		tVector := a.bench(func() {
			l, h := reduce.MinMax(data)
			sinkF32 += l + h
		})
		tScalar := a.bench(func() {
			l, h := reduce.ScalarMinMax(data)
			sinkF32 += l + h
		})
		tVek := a.bench(func() {
			sinkF32 += vek32.Min(data) + vek32.Max(data)
		})
		tParallel := a.bench(func() {
			l, h := reduce.ParallelMinMax(pool, data)
			sinkF32 += l + h
		})

		scalar.add(row{label, tScalar, tVector, lo == slo && hi == shi})
		vek.add(row{label, tVek, tVector, lo == vlo && hi == vhi})
		parallel.add(row{label, tScalar, tParallel, plo == slo && phi == shi})
	}

	return firstErr(scalar.close(), vek.close(), parallel.close())
}
