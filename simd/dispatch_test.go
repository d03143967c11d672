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

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentWidth(t *testing.T) {
	w := CurrentWidth()
	if w != 16 && w != 32 && w != 64 {
		t.Errorf("CurrentWidth() = %d, want 16, 32 or 64", w)
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName() = %q, level = %v", CurrentName(), CurrentLevel())
	}
}

func TestMaxLanes(t *testing.T) {
	w := CurrentWidth()
	if got := MaxLanes[float32](); got != w/4 {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, w/4)
	}
	if got := MaxLanes[float64](); got != w/8 {
		t.Errorf("MaxLanes[float64]() = %d, want %d", got, w/8)
	}
	if got := MaxLanes[uint8](); got != w {
		t.Errorf("MaxLanes[uint8]() = %d, want %d", got, w)
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("CPULAB_NO_SIMD", tt.val)
		if got := NoSimdEnv(); got != tt.want {
			t.Errorf("NoSimdEnv() with %q = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestSetScalar(t *testing.T) {
	level := CurrentLevel()
	restore := SetScalar()
	if IsVector() {
		t.Error("IsVector() = true after SetScalar")
	}
	if CurrentWidth() != scalarWidth {
		t.Errorf("CurrentWidth() = %d, want %d", CurrentWidth(), scalarWidth)
	}

	restore()
	if CurrentLevel() != level {
		t.Errorf("CurrentLevel() = %v after restore, want %v", CurrentLevel(), level)
	}
}
