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

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/lanekit/lanekit/hwy/contrib/search"
)

// Keeps benchmarked results alive.
var (
	sinkInt  int
	sinkBool bool
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		text    string
		needles []string
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Benchmark substring search against the bytes package",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("text") {
				a.cfg.Text = text
			}
			if cmd.Flags().Changed("needle") {
				a.cfg.Needles = needles
			}
			return a.runSearch()
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "Newline-separated text dataset (synthetic when empty)")
	cmd.Flags().StringArrayVar(&needles, "needle", nil, "Search term, repeatable (replaces the configured needles)")
	return cmd
}

func (a *app) runSearch() error {
	data, err := loadText(a.cfg.Text, a.cfg.TextSize, ',', newRand(a.cfg.Seed))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Data size: %s\n", humanize.Bytes(uint64(len(data))))

	var errs []error
	for _, term := range a.cfg.Needles {
		needle := []byte(term)

		wantContains := bytes.Contains(data, needle)
		wantIndex := bytes.Index(data, needle)
		gotIndex := search.Index(data, needle)
		level.Debug(a.logger).Log("msg", "searching", "needle", term, "index", wantIndex)

		tStdContains := a.bench(func() { sinkBool = bytes.Contains(data, needle) })
		tContains := a.bench(func() { sinkBool = search.Contains(data, needle) })
		tStdIndex := a.bench(func() { sinkInt = bytes.Index(data, needle) })
		tIndex := a.bench(func() { sinkInt = search.Index(data, needle) })

		t := newTable(a.out, fmt.Sprintf("%q search", term), "Method", "bytes", "Kernel")
		t.add(row{"contains", tStdContains, tContains, search.Contains(data, needle) == wantContains})
		t.add(row{"index", tStdIndex, tIndex, gotIndex == wantIndex})
		errs = append(errs, t.close())
	}
	return firstErr(errs...)
}
