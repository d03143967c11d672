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
	"math"
	"math/bits"
)

// ImageDim describes the shape of a raw pixel buffer.
type ImageDim struct {
	Height    uint32
	Width     uint32
	Channels  uint32
	PixelSize uint32 // bytes per pixel, normally Channels × bytes-per-channel
}

// String formats the dimensions the way the raw-image tools print them.
func (d ImageDim) String() string {
	return fmt.Sprintf("ImageDim{height: %d, width: %d, channels: %d, pixelSize: %d}",
		d.Height, d.Width, d.Channels, d.PixelSize)
}

// Validate checks that every field is non-zero, that the channels fit in a
// pixel and that the buffer size is addressable.
func (d ImageDim) Validate() error {
	if d.Height == 0 || d.Width == 0 || d.Channels == 0 || d.PixelSize == 0 {
		return fmt.Errorf("%w: zero field in %v", ErrInvalidDim, d)
	}
	if d.Channels > d.PixelSize {
		return fmt.Errorf("%w: %d channels exceed pixel size %d", ErrInvalidDim, d.Channels, d.PixelSize)
	}
	if _, ok := d.numBytes(); !ok {
		return fmt.Errorf("%w: %v overflows", ErrInvalidDim, d)
	}
	return nil
}

// NumPixels returns Height × Width.
func (d ImageDim) NumPixels() int {
	return int(d.Height) * int(d.Width)
}

// RowBytes returns Width × PixelSize.
func (d ImageDim) RowBytes() int {
	return int(d.Width) * int(d.PixelSize)
}

// NumBytes returns Height × Width × PixelSize. It returns -1 if the product
// does not fit in an int.
func (d ImageDim) NumBytes() int {
	n, ok := d.numBytes()
	if !ok {
		return -1
	}
	return n
}

func (d ImageDim) numBytes() (int, bool) {
	hi, px := bits.Mul64(uint64(d.Height), uint64(d.Width))
	if hi != 0 {
		return 0, false
	}
	hi, n := bits.Mul64(px, uint64(d.PixelSize))
	if hi != 0 || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}
