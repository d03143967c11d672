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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct{ idx, size, want int }{
		{-5, 4, 0}, {-1, 4, 0}, {0, 4, 0}, {3, 4, 3}, {4, 4, 3}, {100, 4, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.idx, tt.size), "Clamp(%d, %d)", tt.idx, tt.size)
	}
}

func TestMirror(t *testing.T) {
	// size 3: ... c b a | a b c | c b a ...
	tests := []struct{ idx, want int }{
		{-4, 2}, {-3, 2}, {-2, 1}, {-1, 0}, {0, 0}, {2, 2}, {3, 2}, {4, 1}, {5, 0}, {6, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mirror(tt.idx, 3), "Mirror(%d, 3)", tt.idx)
	}
	assert.Equal(t, 0, Mirror(5, 0))
}

func TestWrap(t *testing.T) {
	tests := []struct{ idx, want int }{
		{-4, 2}, {-1, 2}, {0, 0}, {2, 2}, {3, 0}, {7, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Wrap(tt.idx, 3), "Wrap(%d, 3)", tt.idx)
	}
}

func TestBorderIndex(t *testing.T) {
	assert.Equal(t, 0, BorderClamp.Index(-2, 5))
	assert.Equal(t, 1, BorderMirror.Index(-2, 5))
	assert.Equal(t, 3, BorderWrap.Index(-2, 5))
	assert.Equal(t, -1, BorderShrink.Index(-2, 5))
	assert.Equal(t, 4, BorderShrink.Index(4, 5))
}

func TestParseBorder(t *testing.T) {
	for _, b := range []Border{BorderClamp, BorderMirror, BorderWrap, BorderShrink} {
		got, err := ParseBorder(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	got, err := ParseBorder("MIRROR")
	require.NoError(t, err)
	assert.Equal(t, BorderMirror, got)

	_, err = ParseBorder("reflect101")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, "Border(9)", Border(9).String())
}
