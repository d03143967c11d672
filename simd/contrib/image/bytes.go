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
	"slices"
)

// Bytes is a raw image: dimensions plus interleaved row-major pixel data.
type Bytes struct {
	Dim ImageDim
	Pix []byte
}

// NewBytes allocates a zeroed image with the given dimensions.
func NewBytes(dim ImageDim) (*Bytes, error) {
	if err := dim.Validate(); err != nil {
		return nil, err
	}
	return &Bytes{Dim: dim, Pix: make([]byte, dim.NumBytes())}, nil
}

// Check validates the dimensions and the pixel buffer length.
func (b *Bytes) Check() error {
	if err := b.Dim.Validate(); err != nil {
		return err
	}
	if len(b.Pix) != b.Dim.NumBytes() {
		return fmt.Errorf("%w: have %d bytes, %v needs %d", ErrSizeMismatch, len(b.Pix), b.Dim, b.Dim.NumBytes())
	}
	return nil
}

// PixOffset returns the index of the first byte of pixel (x, y) in Pix.
func (b *Bytes) PixOffset(x, y int) int {
	return (y*int(b.Dim.Width) + x) * int(b.Dim.PixelSize)
}

// Row returns the bytes of row y.
func (b *Bytes) Row(y int) []byte {
	if y < 0 || y >= int(b.Dim.Height) {
		return nil
	}
	rb := b.Dim.RowBytes()
	return b.Pix[y*rb : (y+1)*rb]
}

// At returns byte c of pixel (x, y), or 0 when out of bounds.
func (b *Bytes) At(x, y, c int) byte {
	if !b.inBounds(x, y, c) {
		return 0
	}
	return b.Pix[b.PixOffset(x, y)+c]
}

// Set writes byte c of pixel (x, y). Out-of-bounds writes are ignored.
func (b *Bytes) Set(x, y, c int, v byte) {
	if !b.inBounds(x, y, c) {
		return
	}
	b.Pix[b.PixOffset(x, y)+c] = v
}

func (b *Bytes) inBounds(x, y, c int) bool {
	return x >= 0 && x < int(b.Dim.Width) &&
		y >= 0 && y < int(b.Dim.Height) &&
		c >= 0 && c < int(b.Dim.PixelSize)
}

// Fill sets every colour channel of every pixel to v. Padding bytes beyond
// Channels are left alone.
func (b *Bytes) Fill(v byte) {
	ps, ch := int(b.Dim.PixelSize), int(b.Dim.Channels)
	for off := 0; off+ps <= len(b.Pix); off += ps {
		for c := range ch {
			b.Pix[off+c] = v
		}
	}
}

// Clone returns a deep copy.
func (b *Bytes) Clone() *Bytes {
	return &Bytes{Dim: b.Dim, Pix: slices.Clone(b.Pix)}
}

// SameDim reports whether a and b have identical dimensions.
func SameDim(a, b *Bytes) bool {
	return a.Dim == b.Dim
}
