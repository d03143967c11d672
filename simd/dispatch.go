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

import (
	"os"
	"strconv"
	"unsafe"
)

// DispatchLevel represents the widest vector instruction set detected.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable vector unit, or CPULAB_NO_SIMD.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512F (512-bit).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON/ASIMD (128-bit).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// scalarWidth is the block width used when no vector unit is available.
// Kernels still block by 16 bytes so that tails are exercised identically.
const scalarWidth = 16

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the detected dispatch level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the current level, e.g. "avx2".
func CurrentName() string {
	return currentLevel.String()
}

// IsVector reports whether a vector level wider than scalar was detected.
func IsVector() bool {
	return currentLevel != DispatchScalar
}

// NoSimdEnv checks if the CPULAB_NO_SIMD environment variable is set.
// Any non-empty value that does not parse as false disables detection.
func NoSimdEnv() bool {
	val := os.Getenv("CPULAB_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// SetScalar forces the scalar level and returns a function restoring the
// previous one. It is meant for tests and for the CLI --no-simd flag and must
// not race with running kernels.
func SetScalar() (restore func()) {
	level, width := currentLevel, currentWidth
	setLevel(DispatchScalar, scalarWidth)
	return func() { setLevel(level, width) }
}

func setLevel(level DispatchLevel, width int) {
	currentLevel = level
	currentWidth = width
}

// MaxLanes returns the number of elements of type T in one register at the
// current width.
//
// With AVX2 (32 bytes):
//   - float32: 8 lanes
//   - float64: 4 lanes
//   - uint8:   32 lanes
func MaxLanes[T Lanes]() int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return 0
	}
	return currentWidth / size
}
