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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.00ns"},
		{999 * time.Nanosecond, "999.00ns"},
		{1500 * time.Nanosecond, "1.50µs"},
		{2*time.Millisecond + 346*time.Microsecond, "2.35ms"},
		{3 * time.Second, "3.00s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d), "%d", tt.d)
	}
}

func TestMeasureRunsWarmupAndTrials(t *testing.T) {
	calls := 0
	measure(2, 5, func() { calls++ })
	assert.Equal(t, 7, calls)
}

func TestSpeedup(t *testing.T) {
	assert.Equal(t, 2.0, speedup(10*time.Millisecond, 5*time.Millisecond))
	assert.Equal(t, 0.0, speedup(time.Second, 0))
}

func TestTableReportsInvalidRows(t *testing.T) {
	var buf bytes.Buffer
	tbl := newTable(&buf, "title", "Elements", "Scalar", "Vector")
	tbl.add(row{"1,000", 2 * time.Microsecond, time.Microsecond, true})
	tbl.add(row{"10,000", 20 * time.Microsecond, 10 * time.Microsecond, false})

	err := tbl.close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10,000")

	out := buf.String()
	assert.Contains(t, out, "title")
	assert.Contains(t, out, "2.00x")
	assert.Contains(t, out, "FAIL")
}

func TestTableAllValid(t *testing.T) {
	var buf bytes.Buffer
	tbl := newTable(&buf, "t", "Method", "bytes", "Kernel")
	tbl.add(row{"index", time.Millisecond, time.Millisecond, true})
	require.NoError(t, tbl.close())
	assert.Contains(t, buf.String(), "1.00x")
}
