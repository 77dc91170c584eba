// Copyright 2025 go-highway Authors
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
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ajroetker/go-accumulate/accum"
	"github.com/ajroetker/go-accumulate/internal/cpuinfo"
	"github.com/ajroetker/go-accumulate/internal/report"
	"github.com/ajroetker/go-accumulate/samples"
)

var errNegativeSamples = errors.New("sample count must not be negative")

type runOptions struct {
	n       int
	seed    uint32
	kinds   []string
	orders  []string
	workers int
	noColor bool
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:           "accumulate",
		Short:         "Compare accumulator precision across numeric types",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.n, "samples", "n", samples.DefaultN, "number of uniform [0,1) samples")
	f.Uint32Var(&opts.seed, "seed", samples.DefaultSeed, "MT19937 seed")
	f.StringSliceVar(&opts.kinds, "kinds", nil, "accumulator kinds: float32,float64,int32,int64 or float,double,int,long (default all)")
	f.StringSliceVar(&opts.orders, "orders", nil, "orders: forward,backward,parallel (default forward,backward)")
	f.IntVar(&opts.workers, "workers", 0, "goroutines for the parallel order (0 = GOMAXPROCS)")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newInfoCommand())
	return cmd
}

func run(cmd *cobra.Command, opts *runOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	defer func() { _ = logger.Sync() }()

	if opts.n < 0 {
		return errNegativeSamples
	}
	kinds, err := accum.ParseKinds(opts.kinds)
	if err != nil {
		return err
	}
	orders, err := accum.ParseOrders(opts.orders)
	if err != nil {
		return err
	}

	host := cpuinfo.Detect()
	logger.Debug("host",
		zap.String("goarch", host.GOARCH),
		zap.Int("gomaxprocs", host.GOMAXPROCS),
		zap.Strings("features", host.Present()))

	start := time.Now()
	xs := samples.Uniform(opts.n, opts.seed)
	logger.Debug("generated samples",
		zap.Int("n", len(xs)),
		zap.Uint32("seed", opts.seed),
		zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	results, err := accum.Sweep(xs, kinds, orders, accum.Options{Workers: opts.workers})
	if err != nil {
		return err
	}
	logger.Info("sweep complete",
		zap.Int("kinds", len(kinds)),
		zap.Int("orders", len(orders)),
		zap.Duration("elapsed", time.Since(start)))

	h := report.Header{
		Samples:     len(xs),
		Seed:        opts.seed,
		Reference:   accum.Reference(xs),
		Compensated: accum.Compensated(xs),
	}
	return report.Write(cmd.OutOrStdout(), h, results, report.Options{NoColor: opts.noColor})
}

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print CPU features and the default parallel worker count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cpuinfo.Detect().Print(cmd.OutOrStdout())
		},
	}
}

// newLogger writes console-encoded logs to w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}
