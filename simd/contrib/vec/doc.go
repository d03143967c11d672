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

// Package vec provides the element-wise vector kernels of the lab: random
// initialization, SAXPY and its verification oracle.
//
// Kernels come in two forms:
//   - Base* generic implementations blocked by simd.MaxLanes
//   - Scalar* one-element-per-iteration reference loops
//
// Both forms are portable Go and compute the same expression per element, so
// results agree within rounding. The Base* form slices each block to exactly
// MaxLanes elements, which lets the compiler drop per-element bounds checks
// and unroll the inner loop; it is not hand-written vector code. Saxpy takes
// the Base* path when package simd reports a vector level and the Scalar*
// path otherwise (CPULAB_NO_SIMD, simd.SetScalar), so the reference loop can
// be timed against the blocked one on the same build:
//
//	go test -bench Saxpy ./simd/contrib/vec
//
//	x := make([]float32, n)
//	y := make([]float32, n)
//	vec.Init(x, rng)
//	vec.Init(y, rng)
//	ref := slices.Clone(y)
//	vec.Saxpy(x, y, 2.0)
//	if bad := vec.Verify(x, ref, y, 2.0); bad != 0 { ... }
package vec
