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
	stdimage "image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Register decoders for Decode. bmp and tiff register themselves through
	// the imports above.
	_ "golang.org/x/image/webp"
)

// FromImage converts a standard library image into a raw image.
//
// Gray images become 1-channel; opaque images become 3-channel RGB; anything
// else becomes 4-channel non-premultiplied RGBA.
func FromImage(src stdimage.Image) *Bytes {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if g, ok := src.(*stdimage.Gray); ok {
		dst := &Bytes{
			Dim: ImageDim{Height: uint32(h), Width: uint32(w), Channels: 1, PixelSize: 1},
			Pix: make([]byte, w*h),
		}
		for y := range h {
			row := g.Pix[y*g.Stride : y*g.Stride+w]
			copy(dst.Pix[y*w:], row)
		}
		return dst
	}

	nrgba := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	if !nrgba.Opaque() {
		return &Bytes{
			Dim: ImageDim{Height: uint32(h), Width: uint32(w), Channels: 4, PixelSize: 4},
			Pix: nrgba.Pix,
		}
	}

	dst := &Bytes{
		Dim: ImageDim{Height: uint32(h), Width: uint32(w), Channels: 3, PixelSize: 3},
		Pix: make([]byte, w*h*3),
	}
	for i, j := 0, 0; i < len(nrgba.Pix); i, j = i+4, j+3 {
		dst.Pix[j] = nrgba.Pix[i]
		dst.Pix[j+1] = nrgba.Pix[i+1]
		dst.Pix[j+2] = nrgba.Pix[i+2]
	}
	return dst
}

// ToImage converts a raw image into a standard library image. Supported
// layouts are 1 channel (gray), 3 channels (RGB, optionally padded to 4
// bytes) and 4 channels (non-premultiplied RGBA), all 8 bits per channel.
func (b *Bytes) ToImage() (stdimage.Image, error) {
	if err := b.Check(); err != nil {
		return nil, err
	}
	w, h := int(b.Dim.Width), int(b.Dim.Height)
	ps := int(b.Dim.PixelSize)
	rect := stdimage.Rect(0, 0, w, h)

	switch {
	case b.Dim.Channels == 1 && ps == 1:
		g := stdimage.NewGray(rect)
		copy(g.Pix, b.Pix)
		return g, nil

	case b.Dim.Channels == 3 && (ps == 3 || ps == 4):
		out := stdimage.NewNRGBA(rect)
		for i, j := 0, 0; i < len(b.Pix); i, j = i+ps, j+4 {
			out.Pix[j] = b.Pix[i]
			out.Pix[j+1] = b.Pix[i+1]
			out.Pix[j+2] = b.Pix[i+2]
			out.Pix[j+3] = 0xff
		}
		return out, nil

	case b.Dim.Channels == 4 && ps == 4:
		out := stdimage.NewNRGBA(rect)
		copy(out.Pix, b.Pix)
		return out, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupported, b.Dim)
}

// Decode reads an encoded image (png, jpeg, gif, bmp, tiff or webp) and
// returns it as a raw image together with the detected format name.
func Decode(r io.Reader) (*Bytes, string, error) {
	img, format, err := stdimage.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return FromImage(img), format, nil
}

// Encode writes b to w in the named format: png, jpeg, gif, bmp or tiff.
func Encode(w io.Writer, b *Bytes, format string) error {
	img, err := b.ToImage()
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "jpeg", "jpg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case "gif":
		return gif.Encode(w, img, &gif.Options{NumColors: 256, Drawer: draw.FloydSteinberg})
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: encode format %q", ErrUnsupported, format)
}

// FormatFromPath returns the format name implied by the file extension:
// "raw" for .bytes and .raw, otherwise the lower-case extension without the
// dot ("png", "jpg", ...).
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "bytes", "raw", "bin":
		return "raw"
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return ext
}
