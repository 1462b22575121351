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
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
)

// measure runs fn warmup times untimed, then trials times timed, and returns
// the mean duration of one timed run.
func measure(warmup, trials int, fn func()) time.Duration {
	for range warmup {
		fn()
	}

	var total time.Duration
	for range trials {
		start := time.Now()
		fn()
		total += time.Since(start)
	}
	return total / time.Duration(trials)
}

// formatDuration prints d with two decimals in the largest unit of s, ms, µs
// and ns that keeps the value at or above one.
func formatDuration(d time.Duration) string {
	ns := float64(d.Nanoseconds())
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%.2fs", ns/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%.2fms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.2fµs", ns/1e3)
	default:
		return fmt.Sprintf("%.2fns", ns)
	}
}

// speedup returns how many times faster kernel is than baseline.
func speedup(baseline, kernel time.Duration) float64 {
	if kernel <= 0 {
		return 0
	}
	return float64(baseline) / float64(kernel)
}

// row is one line of a results table.
type row struct {
	label    string
	baseline time.Duration
	kernel   time.Duration
	valid    bool
}

// table writes aligned benchmark rows and remembers failed correctness checks.
type table struct {
	tw      *tabwriter.Writer
	invalid []string
}

func newTable(w io.Writer, title, labelHeader, baselineHeader, kernelHeader string) *table {
	fmt.Fprintf(w, "\n%s\n", title)
	t := &table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)}
	fmt.Fprintf(t.tw, "%s\t%s\t%s\tSpeedup\tValid\t\n", labelHeader, baselineHeader, kernelHeader)
	fmt.Fprintf(t.tw, "%s\t%s\t%s\t%s\t%s\t\n",
		strings.Repeat("-", len(labelHeader)), strings.Repeat("-", len(baselineHeader)),
		strings.Repeat("-", len(kernelHeader)), "-------", "-----")
	return t
}

func (t *table) add(r row) {
	mark := "ok"
	speed := fmt.Sprintf("%.2fx", speedup(r.baseline, r.kernel))
	if !r.valid {
		mark = "FAIL"
		speed = "-"
		t.invalid = append(t.invalid, r.label)
	}
	fmt.Fprintf(t.tw, "%s\t%s\t%s\t%s\t%s\t\n",
		r.label, formatDuration(r.baseline), formatDuration(r.kernel), speed, mark)
}

// close flushes the table and returns an error naming every invalid row.
func (t *table) close() error {
	if err := t.tw.Flush(); err != nil {
		return errors.Wrap(err, "writing results")
	}
	if len(t.invalid) > 0 {
		return errors.Errorf("kernel result differs from baseline for %s", strings.Join(t.invalid, ", "))
	}
	return nil
}
