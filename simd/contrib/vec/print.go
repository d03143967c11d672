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

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes v as a bracketed list to w, e.g. "[ 1.00, 2.50, ... ]".
// At most limit elements are written; limit <= 0 writes all of them.
func Fprint(w io.Writer, v []float32, limit int) error {
	_, err := io.WriteString(w, Format(v, limit))
	return err
}

// Format returns the representation Fprint writes.
func Format(v []float32, limit int) string {
	n := len(v)
	if limit > 0 && limit < n {
		n = limit
	}

	var sb strings.Builder
	sb.WriteString("[ ")
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%.4f", v[i])
	}
	if n < len(v) {
		fmt.Fprintf(&sb, ", ... (%d more)", len(v)-n)
	}
	sb.WriteString(" ]")
	return sb.String()
}
