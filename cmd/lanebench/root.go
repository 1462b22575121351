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
	"io"
	"os"
	"runtime"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lanekit/lanekit/hwy"
	"github.com/lanekit/lanekit/hwy/contrib/workerpool"
)

// app is the state shared by all subcommands, built once the flags are parsed.
type app struct {
	cfg    Config
	logger log.Logger
	out    io.Writer
}

// newPool returns a worker pool sized by the configuration.
func (a *app) newPool() *workerpool.Pool {
	return workerpool.New(a.cfg.Workers)
}

// newRootCmd builds the command tree; results are written to out.
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	var (
		configPath string
		logLevel   string
		sizes      []int
		trials     int
		warmup     int
		seed       uint64
		workers    int
	)

	root := &cobra.Command{
		Use:           "lanebench",
		Short:         "Benchmark the lanekit kernels against scalar and library baselines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(os.Stderr, logLevel)
			if err != nil {
				return err
			}
			a.logger = logger

			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("sizes") {
				cfg.Sizes = sizes
			}
			if flags.Changed("trials") {
				cfg.Trials = trials
			}
			if flags.Changed("warmup") {
				cfg.Warmup = warmup
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg

			if err := hwy.ConfigError(); err != nil {
				level.Warn(a.logger).Log("msg", "ignoring lane override", "err", err)
			}
			level.Debug(a.logger).Log(
				"msg", "configured",
				"target", hwy.CurrentName(),
				"lanes", hwy.CurrentLanes(),
				"trials", cfg.Trials,
				"warmup", cfg.Warmup,
				"gomaxprocs", runtime.GOMAXPROCS(0),
			)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "YAML file with benchmark settings")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.IntSliceVar(&sizes, "sizes", nil, "Element counts for synthetic inputs")
	pf.IntVar(&trials, "trials", 0, "Timed runs averaged per measurement")
	pf.IntVar(&warmup, "warmup", 0, "Untimed runs before measuring")
	pf.Uint64Var(&seed, "seed", 0, "Seed for synthetic data")
	pf.IntVar(&workers, "workers", 0, "Worker pool size (0 = GOMAXPROCS)")

	root.AddCommand(
		newInfoCmd(a),
		newMinMaxCmd(a),
		newHistogramCmd(a),
		newSearchCmd(a),
		newLumaCmd(a),
	)
	return root
}

// newLogger returns a logfmt logger on w that drops records below lvl.
func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "info":
		opt = level.AllowInfo()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		return nil, errors.Errorf("unknown log level %q", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}
