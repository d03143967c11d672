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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageDimString(t *testing.T) {
	d := ImageDim{Height: 480, Width: 640, Channels: 3, PixelSize: 3}
	assert.Equal(t, "ImageDim{height: 480, width: 640, channels: 3, pixelSize: 3}", d.String())
}

func TestImageDimSizes(t *testing.T) {
	d := ImageDim{Height: 10, Width: 20, Channels: 3, PixelSize: 4}
	assert.Equal(t, 200, d.NumPixels())
	assert.Equal(t, 80, d.RowBytes())
	assert.Equal(t, 800, d.NumBytes())
}

func TestImageDimValidate(t *testing.T) {
	tests := []struct {
		name string
		dim  ImageDim
		ok   bool
	}{
		{"valid", ImageDim{1, 1, 1, 1}, true},
		{"padded", ImageDim{2, 2, 3, 4}, true},
		{"zero height", ImageDim{0, 1, 1, 1}, false},
		{"zero pixel size", ImageDim{1, 1, 1, 0}, false},
		{"channels exceed pixel", ImageDim{1, 1, 4, 3}, false},
		{"overflow", ImageDim{math.MaxUint32, math.MaxUint32, 1, math.MaxUint32}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dim.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidDim)
			}
		})
	}
	assert.Equal(t, -1, ImageDim{math.MaxUint32, math.MaxUint32, 1, math.MaxUint32}.NumBytes())
}

func TestBytesAccessors(t *testing.T) {
	img, err := NewBytes(ImageDim{Height: 2, Width: 3, Channels: 3, PixelSize: 4})
	assert.NoError(t, err)

	img.Set(2, 1, 1, 42)
	assert.Equal(t, byte(42), img.At(2, 1, 1))
	assert.Equal(t, byte(42), img.Pix[img.PixOffset(2, 1)+1])
	assert.Equal(t, byte(0), img.At(3, 1, 0))
	img.Set(-1, 0, 0, 9) // ignored

	img.Fill(7)
	for off := 0; off < len(img.Pix); off += 4 {
		assert.Equal(t, []byte{7, 7, 7, 0}, img.Pix[off:off+4])
	}

	c := img.Clone()
	c.Pix[0] = 1
	assert.Equal(t, byte(7), img.Pix[0])
	assert.True(t, SameDim(img, c))
	assert.Len(t, img.Row(1), 12)
	assert.Nil(t, img.Row(2))
}
