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

// Package pool implements window pooling (max, average, min) over raw byte
// images, producing a downsampled image.
//
// For a WindowH × WindowW window moved by StrideH × StrideW the output has
//
//	outH = (H - WindowH) / StrideH + 1
//	outW = (W - WindowW) / StrideW + 1
//
// pixels; windows that would cross the bottom or right edge are dropped.
package pool

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ajroetker/go-cpulab/simd/contrib/image"
	"github.com/ajroetker/go-cpulab/simd/contrib/workerpool"
)

// PoolOp selects the per-window reduction.
type PoolOp int

const (
	MaxPool PoolOp = iota
	AvgPool
	MinPool
)

var opNames = [...]string{"max", "avg", "min"}

func (op PoolOp) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("PoolOp(%d)", int(op))
	}
	return opNames[op]
}

// ErrArgs reports an unusable window, stride or operation.
var ErrArgs = errors.New("pool: invalid arguments")

// ParseOp parses "max", "avg" (or "average", "mean") and "min".
func ParseOp(s string) (PoolOp, error) {
	switch strings.ToLower(s) {
	case "max":
		return MaxPool, nil
	case "avg", "average", "mean":
		return AvgPool, nil
	case "min":
		return MinPool, nil
	}
	return 0, fmt.Errorf("%w: unknown op %q", ErrArgs, s)
}

// PoolArgs describes a pooling pass. A zero stride defaults to the window
// size along that axis (non-overlapping windows).
type PoolArgs struct {
	WindowH, WindowW uint32
	StrideH, StrideW uint32
	Op               PoolOp
}

func (a PoolArgs) withDefaults() PoolArgs {
	if a.StrideH == 0 {
		a.StrideH = a.WindowH
	}
	if a.StrideW == 0 {
		a.StrideW = a.WindowW
	}
	return a
}

// OutputDim returns the dimensions Apply produces for an input of shape dim.
func (a PoolArgs) OutputDim(dim image.ImageDim) (image.ImageDim, error) {
	a = a.withDefaults()
	if a.WindowH == 0 || a.WindowW == 0 {
		return image.ImageDim{}, fmt.Errorf("%w: window %dx%d", ErrArgs, a.WindowH, a.WindowW)
	}
	if a.Op < MaxPool || a.Op > MinPool {
		return image.ImageDim{}, fmt.Errorf("%w: op %v", ErrArgs, a.Op)
	}
	if a.WindowH > dim.Height || a.WindowW > dim.Width {
		return image.ImageDim{}, fmt.Errorf("%w: window %dx%d larger than %v", ErrArgs, a.WindowH, a.WindowW, dim)
	}
	out := dim
	out.Height = (dim.Height-a.WindowH)/a.StrideH + 1
	out.Width = (dim.Width-a.WindowW)/a.StrideW + 1
	return out, nil
}

// Apply pools in and returns a new image.
func Apply(in *image.Bytes, args PoolArgs) (*image.Bytes, error) {
	return ParallelApply(nil, in, args)
}

// ParallelApply is Apply with output rows split across pool. A nil pool runs
// on the calling goroutine.
func ParallelApply(p *workerpool.Pool, in *image.Bytes, args PoolArgs) (*image.Bytes, error) {
	if err := in.Check(); err != nil {
		return nil, err
	}
	args = args.withDefaults()
	dim, err := args.OutputDim(in.Dim)
	if err != nil {
		return nil, err
	}
	out, err := image.NewBytes(dim)
	if err != nil {
		return nil, err
	}

	p.ParallelFor(int(dim.Height), func(start, end int) {
		poolRows(in, out, args, start, end)
	})
	return out, nil
}

func poolRows(in, out *image.Bytes, a PoolArgs, y0, y1 int) {
	ps := int(in.Dim.PixelSize)
	ch := int(in.Dim.Channels)

	for oy := y0; oy < y1; oy++ {
		iy := oy * int(a.StrideH)
		for ox := range int(out.Dim.Width) {
			ix := ox * int(a.StrideW)
			dst := out.PixOffset(ox, oy)
			src := in.PixOffset(ix, iy)

			for c := range ch {
				out.Pix[dst+c] = reduce(in, a, ix, iy, c)
			}
			// Padding bytes take the window's top-left pixel.
			copy(out.Pix[dst+ch:dst+ps], in.Pix[src+ch:src+ps])
		}
	}
}

// reduce applies a.Op to channel c of the window whose top-left is (x, y).
// Averages round half up.
func reduce(in *image.Bytes, a PoolArgs, x, y, c int) byte {
	ps := int(in.Dim.PixelSize)
	h, w := int(a.WindowH), int(a.WindowW)

	var sum uint64
	lo, hi := byte(255), byte(0)
	for dy := range h {
		off := in.PixOffset(x, y+dy) + c
		for dx := range w {
			v := in.Pix[off+dx*ps]
			sum += uint64(v)
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}

	switch a.Op {
	case MaxPool:
		return hi
	case MinPool:
		return lo
	}
	n := uint64(h * w)
	return byte((sum + n/2) / n)
}
