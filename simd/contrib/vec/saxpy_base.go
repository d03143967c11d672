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

package vec

import "github.com/ajroetker/go-cpulab/simd"

// BaseSaxpy performs in-place y[i] = scale*x[i] + y[i].
//
// If the slices have different lengths, the operation uses the minimum length.
// Full blocks of simd.MaxLanes[T]() elements are processed with the bounds
// checks hoisted; the remainder is handled by a scalar loop.
//
// Example:
//
//	x := []float32{1, 2, 3, 4}
//	y := []float32{10, 10, 10, 10}
//	BaseSaxpy(x, y, 2)  // y is now {12, 14, 16, 18}
func BaseSaxpy[T simd.Floats](x, y []T, scale T) {
	n := min(len(x), len(y))
	if n == 0 {
		return
	}
	lanes := simd.MaxLanes[T]()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		xs := x[i : i+lanes]
		ys := y[i : i+lanes : i+lanes]
		for j := range ys {
			ys[j] = scale*xs[j] + ys[j]
		}
	}

	for ; i < n; i++ {
		y[i] = scale*x[i] + y[i]
	}
}

// ScalarSaxpy is the reference one-element-per-iteration SAXPY.
func ScalarSaxpy[T simd.Floats](x, y []T, scale T) {
	n := min(len(x), len(y))
	for i := 0; i < n; i++ {
		y[i] = scale*x[i] + y[i]
	}
}

// BaseScaleTo performs dst[i] = scale * s[i].
func BaseScaleTo[T simd.Floats](dst, s []T, scale T) {
	n := min(len(dst), len(s))
	simd.ProcessWithTail[T](n,
		func(offset int) {
			lanes := simd.MaxLanes[T]()
			ss := s[offset : offset+lanes]
			ds := dst[offset : offset+lanes : offset+lanes]
			for j := range ds {
				ds[j] = scale * ss[j]
			}
		},
		func(offset, count int) {
			for j := offset; j < offset+count; j++ {
				dst[j] = scale * s[j]
			}
		},
	)
}

// BaseAddTo performs dst[i] = a[i] + b[i].
func BaseAddTo[T simd.Floats](dst, a, b []T) {
	n := min(len(dst), min(len(a), len(b)))
	simd.ProcessWithTail[T](n,
		func(offset int) {
			lanes := simd.MaxLanes[T]()
			as := a[offset : offset+lanes]
			bs := b[offset : offset+lanes]
			ds := dst[offset : offset+lanes : offset+lanes]
			for j := range ds {
				ds[j] = as[j] + bs[j]
			}
		},
		func(offset, count int) {
			for j := offset; j < offset+count; j++ {
				dst[j] = a[j] + b[j]
			}
		},
	)
}
