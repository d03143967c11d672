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

//go:build unix

package image

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// loadFromFifo writes data into a named pipe and loads it back by path.
func loadFromFifo(t *testing.T, data []byte) (*Bytes, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.fifo")
	require.NoError(t, unix.Mkfifo(path, 0o600))

	done := make(chan error, 1)
	go func() {
		w, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			done <- err
			return
		}
		_, err = w.Write(data)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		done <- err
	}()

	img, err := Load(path)
	require.NoError(t, <-done)
	return img, err
}

func TestLoadFifo(t *testing.T) {
	src := gradient(t, ImageDim{Height: 5, Width: 7, Channels: 3, PixelSize: 3})
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, src))

	got, err := loadFromFifo(t, buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, src.Dim, got.Dim)
	assert.Equal(t, src.Pix, got.Pix)
}

func TestLoadFifoTruncated(t *testing.T) {
	src := gradient(t, ImageDim{Height: 4, Width: 4, Channels: 1, PixelSize: 1})
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, src))

	_, err := loadFromFifo(t, buf.Bytes()[:buf.Len()-3])
	assert.ErrorIs(t, err, ErrTruncated)
}
