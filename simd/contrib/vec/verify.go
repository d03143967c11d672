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

import "math"

// Tolerance is the relative error Verify accepts per element. It covers a
// fused multiply-add on one side and separate rounding on the other.
const Tolerance = 1e-5

// Verify counts the indices where c[i] is not scale*a[i] + b[i] within
// Tolerance*max(1, |expected|). It is the correctness oracle for Saxpy: a is
// the x input, b the original y and c the result.
//
// If the slices differ in length, every index beyond the shortest slice is
// counted as a mismatch.
func Verify(a, b, c []float32, scale float32) int {
	n := min(len(a), min(len(b), len(c)))
	longest := max(len(a), max(len(b), len(c)))

	mismatches := longest - n
	for i := 0; i < n; i++ {
		expected := float64(scale)*float64(a[i]) + float64(b[i])
		if !withinTolerance(float64(c[i]), expected) {
			mismatches++
		}
	}
	return mismatches
}

func withinTolerance(got, want float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return math.IsNaN(got) && math.IsNaN(want)
	}
	if math.IsInf(want, 0) {
		return got == want
	}
	return math.Abs(got-want) <= Tolerance*math.Max(1, math.Abs(want))
}
