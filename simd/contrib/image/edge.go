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

package image

import (
	"fmt"
	"strings"
)

// Border selects how a window that extends past the image edge is sampled.
type Border int

const (
	// BorderClamp repeats the nearest edge pixel. It is the zero value.
	BorderClamp Border = iota

	// BorderMirror reflects about the edge, repeating the edge pixel
	// (abc|cba).
	BorderMirror

	// BorderWrap tiles the image.
	BorderWrap

	// BorderShrink drops out-of-bounds samples, shrinking the window.
	BorderShrink
)

var borderNames = [...]string{"clamp", "mirror", "wrap", "shrink"}

// String returns the lower-case policy name.
func (b Border) String() string {
	if b < 0 || int(b) >= len(borderNames) {
		return fmt.Sprintf("Border(%d)", int(b))
	}
	return borderNames[b]
}

// ParseBorder parses a policy name as printed by String.
func ParseBorder(s string) (Border, error) {
	for i, name := range borderNames {
		if strings.EqualFold(s, name) {
			return Border(i), nil
		}
	}
	return 0, fmt.Errorf("%w: border policy %q", ErrUnsupported, s)
}

// Index maps index into [0, size) under the policy. For BorderShrink it
// returns -1 for out-of-bounds indices.
func (b Border) Index(index, size int) int {
	switch b {
	case BorderMirror:
		return Mirror(index, size)
	case BorderWrap:
		return Wrap(index, size)
	case BorderShrink:
		if index < 0 || index >= size {
			return -1
		}
		return index
	default:
		return Clamp(index, size)
	}
}

// Mirror returns the mirrored index for out-of-bounds coordinates.
// Given bounds [0, size), it reflects index about both edges.
func Mirror(index, size int) int {
	if size <= 0 {
		return 0
	}
	period := 2 * size
	index %= period
	if index < 0 {
		index += period
	}
	if index >= size {
		index = period - index - 1
	}
	return index
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if index < 0 || size <= 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// Wrap returns index wrapped to [0, size) using modulo.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index %= size
	if index < 0 {
		index += size
	}
	return index
}
