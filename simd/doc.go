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

// Package simd detects the vector capabilities of the running CPU and exposes
// the lane widths that the kernels in simd/contrib use to block their loops.
//
// The kernels are written in portable Go. Detection does not change results;
// it only decides how many elements a kernel processes per unrolled step:
//
//	lanes := simd.MaxLanes[float32]() // 8 on AVX2, 16 on AVX-512, 4 otherwise
//	simd.ProcessWithTail[float32](len(x),
//	    func(offset int) { /* full block at x[offset:offset+lanes] */ },
//	    func(offset, count int) { /* remaining count elements */ },
//	)
//
// Setting CPULAB_NO_SIMD=1 forces the scalar level, which is useful when
// comparing blocked and scalar kernels in tests.
package simd
