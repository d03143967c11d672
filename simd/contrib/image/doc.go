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

// Package image provides raw byte images and their on-disk format.
//
// A raw image file is a 16-byte header of four little-endian uint32 values
// (height, width, channels, pixelSize) immediately followed by
// height·width·pixelSize bytes of interleaved, row-major pixel data. There is
// no magic number and no versioning.
//
//	img, err := image.Load("in.bytes")
//	if err != nil { ... }
//	fmt.Println(img.Dim) // ImageDim{height: 512, width: 512, channels: 3, pixelSize: 3}
//	err = image.Write("out.bytes", img)
//
// # Pixel layout
//
// Each pixel occupies PixelSize bytes. The first Channels bytes are the
// colour samples; any remaining bytes (alpha or padding) are opaque to the
// filters, which copy them through.
//
// # Edge Handling
//
// Coordinate helpers map out-of-bounds indices back into [0, size):
//
//	Clamp(index, size)  - repeat edge pixels
//	Mirror(index, size) - reflect at boundaries
//	Wrap(index, size)   - tile/wrap around
//
// # Codecs
//
// FromImage, ToImage, Decode and Encode convert between raw images and the
// standard library image types, with bmp, tiff and webp support from
// golang.org/x/image.
package image
