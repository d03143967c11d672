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

package median

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-cpulab/simd/contrib/image"
	"github.com/ajroetker/go-cpulab/simd/contrib/workerpool"
)

// MedianFilterArgs holds the window shape and edge policy of a filter pass.
type MedianFilterArgs struct {
	FilterH uint32
	FilterW uint32
	Border  image.Border
}

// Validate checks that both window dimensions are odd and positive.
func (a MedianFilterArgs) Validate() error {
	if a.FilterH == 0 || a.FilterW == 0 || a.FilterH%2 == 0 || a.FilterW%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrWindow, a.FilterH, a.FilterW)
	}
	return nil
}

// Filter writes the median-filtered in to out in a single-threaded sweep.
// out must have the same dimensions as in and must not share its storage.
func Filter(in, out *image.Bytes, args MedianFilterArgs) error {
	return ParallelFilter(nil, in, out, args)
}

// ParallelFilter is Filter with rows split across pool. A nil pool runs on
// the calling goroutine. The output is identical to Filter's.
func ParallelFilter(pool *workerpool.Pool, in, out *image.Bytes, args MedianFilterArgs) error {
	if err := check(in, out, args); err != nil {
		return err
	}
	cols := windowIndex(int(in.Dim.Width), int(args.FilterW), args.Border)
	pool.ParallelFor(int(in.Dim.Height), func(start, end int) {
		filterRows(in, out, args, cols, start, end)
	})
	return nil
}

func check(in, out *image.Bytes, args MedianFilterArgs) error {
	if err := args.Validate(); err != nil {
		return err
	}
	if err := in.Check(); err != nil {
		return fmt.Errorf("median: input: %w", err)
	}
	if err := out.Check(); err != nil {
		return fmt.Errorf("median: output: %w", err)
	}
	if !image.SameDim(in, out) {
		return fmt.Errorf("%w: %v vs %v", ErrDimMismatch, in.Dim, out.Dim)
	}
	if overlaps(in.Pix, out.Pix) {
		return ErrAlias
	}
	return nil
}

// overlaps reports whether a and b share any byte of backing storage.
func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return a0 < b0+uintptr(len(b)) && b0 < a0+uintptr(len(a))
}

// windowIndex precomputes, for every position in [0, size), the source index
// of each of the k window taps under border. Shrunk taps are -1.
func windowIndex(size, k int, border image.Border) [][]int {
	r := k / 2
	idx := make([][]int, size)
	flat := make([]int, size*k)
	for p := range size {
		taps := flat[p*k : (p+1)*k]
		for d := -r; d <= r; d++ {
			taps[d+r] = border.Index(p+d, size)
		}
		idx[p] = taps
	}
	return idx
}

func filterRows(in, out *image.Bytes, args MedianFilterArgs, cols [][]int, y0, y1 int) {
	h := int(in.Dim.Height)
	w := int(in.Dim.Width)
	ps := int(in.Dim.PixelSize)
	ch := int(in.Dim.Channels)
	kh := int(args.FilterH)
	rh := kh / 2

	window := make([]byte, kh*int(args.FilterW))
	rows := make([]int, kh)

	for y := y0; y < y1; y++ {
		for d := -rh; d <= rh; d++ {
			rows[d+rh] = args.Border.Index(y+d, h)
		}

		for x := range w {
			dst := (y*w + x) * ps
			for c := range ch {
				n := 0
				for _, sy := range rows {
					if sy < 0 {
						continue
					}
					base := sy*w*ps + c
					for _, sx := range cols[x] {
						if sx < 0 {
							continue
						}
						window[n] = in.Pix[base+sx*ps]
						n++
					}
				}
				out.Pix[dst+c] = Median(window[:n])
			}
			copy(out.Pix[dst+ch:dst+ps], in.Pix[dst+ch:dst+ps])
		}
	}
}
