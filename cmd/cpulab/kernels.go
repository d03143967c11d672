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
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-cpulab/simd/contrib/image"
	"github.com/ajroetker/go-cpulab/simd/contrib/median"
	"github.com/ajroetker/go-cpulab/simd/contrib/pool"
)

// choices renders the accepted values of an enum flag for its help text.
func choices[T fmt.Stringer](values ...T) string {
	return strings.Join(lo.Map(values, func(v T, _ int) string { return v.String() }), ", ")
}

func newSaxpyCmd(opts *rootOptions) *cobra.Command {
	var size uint64
	cmd := &cobra.Command{
		Use:   "saxpy",
		Short: "Run y = a*x + y on random vectors and verify the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := opts.runner()
			defer r.Close()

			rep, err := r.RunSaxpy(cmd.Context(), size)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saxpy: %d elements, scale %.4f, %d mismatches, %v\n",
				rep.Size, rep.Scale, rep.Mismatches, rep.Elapsed)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&size, "size", 1<<20, "vector length")
	return cmd
}

func newMCPiCmd(opts *rootOptions) *cobra.Command {
	var iterations, samples uint64
	cmd := &cobra.Command{
		Use:   "mcpi",
		Short: "Estimate pi by Monte Carlo sampling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := opts.runner()
			defer r.Close()

			res, err := r.RunMCPi(cmd.Context(), iterations, samples)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pi ~= %.8f (stddev %.2e, error %.2e, %d x %d samples)\n",
				res.Mean, res.StdDev, res.AbsError, res.Iterations, res.SampleSize)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&iterations, "iterations", 10, "number of independent trials")
	cmd.Flags().Uint64Var(&samples, "samples", 1_000_000, "points per trial")
	return cmd
}

func newMedianCmd(opts *rootOptions) *cobra.Command {
	var (
		in, out    string
		fh, fw     uint32
		borderName string
	)
	cmd := &cobra.Command{
		Use:   "median",
		Short: "Median-filter a raw byte image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			border, err := image.ParseBorder(borderName)
			if err != nil {
				return err
			}
			r := opts.runner()
			defer r.Close()

			args := median.MedianFilterArgs{FilterH: fh, FilterW: fw, Border: border}
			return r.RunMedianFilter(cmd.Context(), in, out, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in, "in", "", "input raw image")
	f.StringVar(&out, "out", "", "output raw image")
	f.Uint32Var(&fh, "filter-h", 3, "window height (odd)")
	f.Uint32Var(&fw, "filter-w", 3, "window width (odd)")
	f.StringVar(&borderName, "border", image.BorderClamp.String(), "edge policy: "+
		choices(image.BorderClamp, image.BorderMirror, image.BorderWrap, image.BorderShrink))
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newPoolCmd(opts *rootOptions) *cobra.Command {
	var (
		in, out        string
		opName         string
		window, stride uint32
	)
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Downsample a raw byte image with max, avg or min pooling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			op, err := pool.ParseOp(opName)
			if err != nil {
				return err
			}
			r := opts.runner()
			defer r.Close()

			args := pool.PoolArgs{WindowH: window, WindowW: window, StrideH: stride, StrideW: stride, Op: op}
			return r.RunPool(cmd.Context(), in, out, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in, "in", "", "input raw image")
	f.StringVar(&out, "out", "", "output raw image")
	f.StringVar(&opName, "op", pool.MaxPool.String(), "reduction: "+choices(pool.MaxPool, pool.AvgPool, pool.MinPool))
	f.Uint32Var(&window, "window", 2, "square window size")
	f.Uint32Var(&stride, "stride", 0, "stride (0 = window size)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between raw byte images and png/jpeg/gif/bmp/tiff/webp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := opts.runner()
			defer r.Close()
			return r.ConvertImage(cmd.Context(), in, out)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "input image (.bytes/.raw or encoded)")
	cmd.Flags().StringVar(&out, "out", "", "output image (.bytes/.raw or png/jpeg/gif/bmp/tiff)")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
