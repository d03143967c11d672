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

// insertionLimit is the window size up to which Median sorts in place;
// larger windows use a 256-bin histogram.
const insertionLimit = 48

// Median returns the lower median of window, i.e. element (len-1)/2 of the
// sorted window. It may reorder window. An empty window yields 0.
func Median(window []byte) byte {
	n := len(window)
	switch {
	case n == 0:
		return 0
	case n <= insertionLimit:
		insertionSort(window)
		return window[(n-1)/2]
	default:
		return histogramSelect(window, (n-1)/2)
	}
}

func insertionSort(v []byte) {
	for i := 1; i < len(v); i++ {
		x := v[i]
		j := i - 1
		for ; j >= 0 && v[j] > x; j-- {
			v[j+1] = v[j]
		}
		v[j+1] = x
	}
}

// histogramSelect returns the k-th smallest value (0-based) of v.
func histogramSelect(v []byte, k int) byte {
	var hist [256]int
	for _, b := range v {
		hist[b]++
	}
	seen := 0
	for val, count := range hist {
		seen += count
		if seen > k {
			return byte(val)
		}
	}
	return 255
}
