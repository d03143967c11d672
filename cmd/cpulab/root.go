// Copyright 2025 go-cpulab Authors
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

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-cpulab/internal/config"
	"github.com/ajroetker/go-cpulab/internal/logger"
	"github.com/ajroetker/go-cpulab/lab"
	"github.com/ajroetker/go-cpulab/simd"
)

type rootOptions struct {
	envFile   string
	seed      uint64
	workers   int
	parallel  bool
	noSimd    bool
	logLevel  string
	logFormat string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "cpulab",
		Short:         "Run SAXPY, Monte Carlo pi, median filter and pooling kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file with CPULAB_* settings")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 = from clock)")
	f.IntVar(&opts.workers, "workers", 0, "worker goroutines for --parallel (0 = GOMAXPROCS)")
	f.BoolVar(&opts.parallel, "parallel", false, "use the row-parallel kernels")
	f.BoolVar(&opts.noSimd, "no-simd", false, "force scalar dispatch")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&opts.logFormat, "log-format", "", "text or json")

	cmd.AddCommand(
		newSaxpyCmd(opts),
		newMCPiCmd(opts),
		newMedianCmd(opts),
		newPoolCmd(opts),
		newConvertCmd(opts),
		newInfoCmd(opts),
	)
	return cmd
}

// load merges the environment with the flags that were set explicitly.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = o.seed
	}
	if f.Changed("workers") {
		cfg.Workers = o.workers
	}
	if f.Changed("parallel") {
		cfg.Parallel = o.parallel
	}
	if f.Changed("no-simd") {
		cfg.NoSimd = o.noSimd
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}

	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	o.cfg = cfg
	return nil
}

func (o *rootOptions) runner() *lab.Runner {
	return lab.NewRunner(o.cfg)
}

func newInfoCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the detected SIMD level and effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "simd:      %s (%d-byte registers, fma=%t)\n", simd.CurrentName(), simd.CurrentWidth(), simd.HasFMA())
			fmt.Fprintf(out, "seed:      %d\n", opts.cfg.Seed)
			fmt.Fprintf(out, "parallel:  %t (workers=%d)\n", opts.cfg.Parallel, opts.cfg.Workers)
			fmt.Fprintf(out, "log:       %s/%s\n", opts.cfg.LogLevel, opts.cfg.LogFormat)
			return nil
		},
	}
}
