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
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// HeaderSize is the size in bytes of the raw file header.
const HeaderSize = 16

func decodeHeader(hdr []byte) ImageDim {
	return ImageDim{
		Height:    binary.LittleEndian.Uint32(hdr[0:4]),
		Width:     binary.LittleEndian.Uint32(hdr[4:8]),
		Channels:  binary.LittleEndian.Uint32(hdr[8:12]),
		PixelSize: binary.LittleEndian.Uint32(hdr[12:16]),
	}
}

func encodeHeader(d ImageDim) []byte {
	hdr := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(hdr[0:4], d.Height)
	binary.LittleEndian.PutUint32(hdr[4:8], d.Width)
	binary.LittleEndian.PutUint32(hdr[8:12], d.Channels)
	binary.LittleEndian.PutUint32(hdr[12:16], d.PixelSize)
	return hdr
}

// ReadDim reads and validates only the header.
func ReadDim(r io.Reader) (ImageDim, error) {
	hdr := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return ImageDim{}, fmt.Errorf("%w: header: %v", ErrTruncated, err)
		}
		return ImageDim{}, err
	}
	dim := decodeHeader(hdr)
	if err := dim.Validate(); err != nil {
		return ImageDim{}, err
	}
	return dim, nil
}

// Read decodes a raw image from r. Bytes after the pixel data are not read.
//
// The pixel buffer grows as data arrives, so a header that overstates the
// payload fails with ErrTruncated rather than allocating the declared size.
func Read(r io.Reader) (*Bytes, error) {
	dim, err := ReadDim(r)
	if err != nil {
		return nil, err
	}
	want := dim.NumBytes()
	pix, err := io.ReadAll(io.LimitReader(r, int64(want)))
	if err != nil {
		return nil, err
	}
	if len(pix) != want {
		return nil, fmt.Errorf("%w: have %d pixel bytes, %v needs %d", ErrTruncated, len(pix), dim, want)
	}
	return &Bytes{Dim: dim, Pix: pix}, nil
}

// Load reads a raw image file. For regular files the size is checked against
// the header before the pixel buffer is allocated; pipes and devices are read
// as a stream.
func Load(path string) (*Bytes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(f)
	if !st.Mode().IsRegular() {
		img, err := Read(br)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return img, nil
	}

	dim, err := ReadDim(br)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	want := dim.NumBytes()
	if st.Size()-HeaderSize < int64(want) {
		return nil, fmt.Errorf("%s: %w: file has %d pixel bytes, %v needs %d",
			path, ErrTruncated, st.Size()-HeaderSize, dim, want)
	}

	pix := make([]byte, want)
	if _, err := io.ReadFull(br, pix); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, ErrTruncated, err)
	}
	return &Bytes{Dim: dim, Pix: pix}, nil
}

// WriteTo encodes img to w as header followed by pixel bytes.
func WriteTo(w io.Writer, img *Bytes) error {
	if err := img.Check(); err != nil {
		return err
	}
	if _, err := w.Write(encodeHeader(img.Dim)); err != nil {
		return err
	}
	_, err := w.Write(img.Pix)
	return err
}

// Write creates or truncates path and writes img to it.
func Write(path string, img *Bytes) (err error) {
	if err := img.Check(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := WriteTo(bw, img); err != nil {
		return err
	}
	return bw.Flush()
}
