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

package simd

// ProcessWithTail invokes fullFn for each full block of MaxLanes[T]()
// elements and tailFn once for the remainder, if any.
//
//	simd.ProcessWithTail[float32](len(y),
//	    func(offset int) {
//	        // y[offset : offset+lanes]
//	    },
//	    func(offset, count int) {
//	        // y[offset : offset+count]
//	    },
//	)
func ProcessWithTail[T Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	if size <= 0 {
		return
	}
	lanes := MaxLanes[T]()
	if lanes <= 0 {
		tailFn(0, size)
		return
	}

	full := size / lanes
	for i := range full {
		fullFn(i * lanes)
	}

	if remaining := size % lanes; remaining > 0 {
		tailFn(full*lanes, remaining)
	}
}
