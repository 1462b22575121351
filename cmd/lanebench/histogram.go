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
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lanekit/lanekit/hwy/contrib/histogram"
)

func newHistogramCmd(a *app) *cobra.Command {
	var (
		text  string
		parts int
	)
	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Benchmark the byte histogram on a text dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("text") {
				a.cfg.Text = text
			}
			if cmd.Flags().Changed("parts") {
				if parts < 0 {
					return errors.Errorf("--parts must not be negative, got %d", parts)
				}
				a.cfg.Parts = parts
			}
			return a.runHistogram()
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Newline-separated text dataset (synthetic when empty)")
	cmd.Flags().IntVar(&parts, "parts", 0, "Ranges for the parallel histogram (0 = one per worker)")
	return cmd
}

func (a *app) runHistogram() error {
	data, err := loadText(a.cfg.Text, a.cfg.TextSize, ' ', newRand(a.cfg.Seed))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Data size: %s\n", humanize.Bytes(uint64(len(data))))
	fmt.Fprintf(a.out, "Unique words: %s\n", humanize.Comma(int64(countWords(data))))

	pool := a.newPool()
	defer pool.Close()
	parts := a.cfg.Parts
	if parts == 0 {
		parts = pool.NumWorkers()
	}
	level.Debug(a.logger).Log("msg", "parallel histogram", "workers", pool.NumWorkers(), "parts", parts)

	var want, got, withPool, withGoroutines histogram.Bins
	histogram.ScalarHistogram(data, &want)
	histogram.Histogram(data, &got)
	histogram.Parallel(pool, data, &withPool, parts)
	histogram.Parallel(nil, data, &withGoroutines, parts)

	var scratch histogram.Bins
	tScalar := a.bench(func() {
		scratch.Reset()
		histogram.ScalarHistogram(data, &scratch)
	})
	tVector := a.bench(func() {
		scratch.Reset()
		histogram.Histogram(data, &scratch)
	})
	tPool := a.bench(func() {
		scratch.Reset()
		histogram.Parallel(pool, data, &scratch, parts)
	})
	tGoroutines := a.bench(func() {
		scratch.Reset()
		histogram.Parallel(nil, data, &scratch, parts)
	})

	t := newTable(a.out, "Histogram", "Method", "Scalar", "Kernel")
	t.add(row{"vector", tScalar, tVector, got == want})
	t.add(row{fmt.Sprintf("parallel pool x%d", parts), tScalar, tPool, withPool == want})
	t.add(row{fmt.Sprintf("parallel goroutines x%d", parts), tScalar, tGoroutines, withGoroutines == want})
	if total := got.Total(); total != uint64(len(data)) {
		level.Error(a.logger).Log("msg", "histogram lost bytes", "counted", total, "bytes", len(data))
	}
	return t.close()
}

// countWords returns the number of distinct case-folded words in text.
func countWords(text []byte) int {
	seen := make(map[string]struct{})
	for _, w := range bytes.Fields(text) {
		seen[strings.ToLower(string(w))] = struct{}{}
	}
	return len(seen)
}
