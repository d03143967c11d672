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

package lab

import (
	"bytes"
	"context"
	"io/fs"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-cpulab/internal/config"
	"github.com/ajroetker/go-cpulab/internal/logger"
	"github.com/ajroetker/go-cpulab/simd/contrib/image"
	"github.com/ajroetker/go-cpulab/simd/contrib/median"
	"github.com/ajroetker/go-cpulab/simd/contrib/montecarlo"
	"github.com/ajroetker/go-cpulab/simd/contrib/pool"
)

func newRunner(t *testing.T, parallel bool) *Runner {
	t.Helper()
	logger.SetOutput(&bytes.Buffer{})
	cfg := config.Default()
	cfg.Seed = 2024
	cfg.Parallel = parallel
	cfg.Workers = 3
	r := NewRunner(cfg)
	t.Cleanup(r.Close)
	return r
}

func writeNoisy(t *testing.T, path string) *image.Bytes {
	t.Helper()
	img, err := image.NewBytes(image.ImageDim{Height: 20, Width: 24, Channels: 3, PixelSize: 3})
	require.NoError(t, err)
	img.Fill(90)
	// Isolated salt and pepper pixels.
	img.Set(5, 5, 0, 255)
	img.Set(12, 7, 1, 0)
	img.Set(20, 15, 2, 255)
	require.NoError(t, image.Write(path, img))
	return img
}

func TestRunSaxpy(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		r := newRunner(t, parallel)
		for _, n := range []uint64{1, 7, 1000, 1 << 16} {
			rep, err := r.RunSaxpy(context.Background(), n)
			require.NoError(t, err, "n=%d", n)
			assert.Equal(t, n, rep.Size)
			assert.Zero(t, rep.Mismatches)
		}
	}
}

func TestRunSaxpyInvalidSize(t *testing.T) {
	r := newRunner(t, false)
	_, err := r.RunSaxpy(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = r.RunSaxpy(context.Background(), MaxVectorSize+1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestRunSaxpyCancelled(t *testing.T) {
	r := newRunner(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.RunSaxpy(ctx, 16)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunMCPi(t *testing.T) {
	r := newRunner(t, true)
	res, err := r.RunMCPi(context.Background(), 4, 200_000)
	require.NoError(t, err)
	assert.Len(t, res.Estimates, 4)
	assert.InDelta(t, math.Pi, res.Mean, 0.02)
	assert.Equal(t, r.Seed(), res.Seed)

	_, err = r.RunMCPi(context.Background(), 0, 10)
	assert.ErrorIs(t, err, montecarlo.ErrNoIterations)

	_, err = r.RunMCPi(context.Background(), 1<<62, 1)
	assert.ErrorIs(t, err, montecarlo.ErrTooManyIterations)
}

func TestRunMedianFilter(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		dir := t.TempDir()
		in := filepath.Join(dir, "in.bytes")
		out := filepath.Join(dir, "out.bytes")
		src := writeNoisy(t, in)

		r := newRunner(t, parallel)
		require.NoError(t, r.RunMedianFilter(context.Background(), in, out, median.MedianFilterArgs{FilterH: 3, FilterW: 3}))

		got, err := image.Load(out)
		require.NoError(t, err)
		assert.Equal(t, src.Dim, got.Dim)
		for _, v := range got.Pix {
			require.Equal(t, byte(90), v)
		}
	}
}

func TestRunMedianFilterStageErrors(t *testing.T) {
	r := newRunner(t, false)
	dir := t.TempDir()
	ctx := context.Background()
	args := median.MedianFilterArgs{FilterH: 3, FilterW: 3}

	err := r.RunMedianFilter(ctx, filepath.Join(dir, "absent.bytes"), filepath.Join(dir, "o.bytes"), args)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "load")

	in := filepath.Join(dir, "in.bytes")
	writeNoisy(t, in)

	err = r.RunMedianFilter(ctx, in, filepath.Join(dir, "o.bytes"), median.MedianFilterArgs{FilterH: 2, FilterW: 3})
	assert.ErrorIs(t, err, median.ErrWindow)
	assert.Contains(t, err.Error(), "filter")

	err = r.RunMedianFilter(ctx, in, filepath.Join(dir, "no", "such", "o.bytes"), args)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write")
}

func TestRunPool(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.bytes")
	out := filepath.Join(dir, "out.bytes")
	writeNoisy(t, in)

	r := newRunner(t, true)
	require.NoError(t, r.RunPool(context.Background(), in, out, pool.PoolArgs{WindowH: 2, WindowW: 2, Op: pool.MaxPool}))

	got, err := image.Load(out)
	require.NoError(t, err)
	assert.Equal(t, image.ImageDim{Height: 10, Width: 12, Channels: 3, PixelSize: 3}, got.Dim)
	// The salt pixel at (5,5) lands in output (2,2).
	assert.Equal(t, byte(255), got.At(2, 2, 0))
}

func TestConvertImageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "in.bytes")
	src := writeNoisy(t, raw)

	r := newRunner(t, false)
	png := filepath.Join(dir, "mid.png")
	back := filepath.Join(dir, "back.raw")
	require.NoError(t, r.ConvertImage(context.Background(), raw, png))
	require.NoError(t, r.ConvertImage(context.Background(), png, back))

	got, err := image.Load(back)
	require.NoError(t, err)
	assert.Equal(t, src.Dim, got.Dim)
	assert.Equal(t, src.Pix, got.Pix)
}

func TestConvertImageUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "in.bytes")
	writeNoisy(t, raw)

	r := newRunner(t, false)
	err := r.ConvertImage(context.Background(), raw, filepath.Join(dir, "out.xcf"))
	assert.ErrorIs(t, err, image.ErrUnsupported)
}
