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

// Saxpy computes y[i] = scale*x[i] + y[i] for i in [0, min(len(x), len(y))).
//
// x and y may alias only if they are the same slice; partially overlapping
// slices give unspecified results.
func Saxpy(x, y []float32, scale float32) {
	if simd.IsVector() {
		BaseSaxpy(x, y, scale)
		return
	}
	ScalarSaxpy(x, y, scale)
}

// Saxpy64 is the float64 form of Saxpy (DAXPY).
func Saxpy64(x, y []float64, scale float64) {
	if simd.IsVector() {
		BaseSaxpy(x, y, scale)
		return
	}
	ScalarSaxpy(x, y, scale)
}

// ScaleTo computes dst[i] = scale * s[i].
func ScaleTo(dst, s []float32, scale float32) {
	BaseScaleTo(dst, s, scale)
}

// AddTo computes dst[i] = a[i] + b[i].
func AddTo(dst, a, b []float32) {
	BaseAddTo(dst, a, b)
}
