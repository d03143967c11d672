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

package vec

import (
	"bytes"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-cpulab/simd"
)

// testSizes covers empty, sub-block, exact block and tail cases for any width.
var testSizes = []int{0, 1, 3, 4, 7, 8, 15, 16, 17, 31, 33, 100, 1023}

func randomPair(n int, seed uint64) ([]float32, []float32) {
	rng := NewRand(seed)
	x := make([]float32, n)
	y := make([]float32, n)
	Init(x, rng)
	Init(y, rng)
	return x, y
}

func TestSaxpyPostcondition(t *testing.T) {
	for _, n := range testSizes {
		x, y := randomPair(n, uint64(n)+1)
		orig := slices.Clone(y)
		const scale = float32(2.5)

		Saxpy(x, y, scale)

		for i := range n {
			want := scale*x[i] + orig[i]
			assert.InDeltaf(t, want, y[i], 1e-3, "n=%d i=%d", n, i)
		}
		assert.Zero(t, Verify(x, orig, y, scale), "n=%d", n)
	}
}

func TestSaxpyKnownValues(t *testing.T) {
	x := []float32{1, 2, 3, 4, 5}
	y := []float32{10, 10, 10, 10, 10}
	Saxpy(x, y, 2)
	assert.Equal(t, []float32{12, 14, 16, 18, 20}, y)
}

func TestSaxpyMismatchedLengths(t *testing.T) {
	x := []float32{1, 1, 1}
	y := []float32{0, 0, 0, 0, 0}
	Saxpy(x, y, 3)
	assert.Equal(t, []float32{3, 3, 3, 0, 0}, y)
}

func TestSaxpyScalarMatchesBlocked(t *testing.T) {
	for _, n := range testSizes {
		x, y := randomPair(n, 42)
		yScalar := slices.Clone(y)

		BaseSaxpy(x, y, 0.75)
		ScalarSaxpy(x, yScalar, 0.75)

		for i := range n {
			assert.InDeltaf(t, yScalar[i], y[i], 1e-4, "n=%d i=%d", n, i)
		}
	}
}

func TestSaxpyForcedScalar(t *testing.T) {
	level := simd.CurrentLevel()
	if level == simd.DispatchScalar {
		t.Skip("already scalar")
	}
	t.Cleanup(simd.SetScalar())

	x, y := randomPair(37, 7)
	orig := slices.Clone(y)
	Saxpy(x, y, -1.5)
	assert.Zero(t, Verify(x, orig, y, -1.5))
}

func TestSaxpy64(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	y := make([]float64, len(x))
	Saxpy64(x, y, 0.5)
	for i := range x {
		assert.InDelta(t, x[i]*0.5, y[i], 1e-12)
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	x, y := randomPair(64, 3)
	orig := slices.Clone(y)
	Saxpy(x, y, 1.25)
	require.Zero(t, Verify(x, orig, y, 1.25))

	y[0] += 1
	y[63] = float32(math.NaN())
	assert.Equal(t, 2, Verify(x, orig, y, 1.25))
}

func TestVerifyLengthMismatch(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{0, 0, 0}
	c := []float32{2, 4}
	assert.Equal(t, 1, Verify(a, b, c, 2))
}

func TestVerifyEmpty(t *testing.T) {
	assert.Zero(t, Verify(nil, nil, nil, 1))
}

func TestInitRange(t *testing.T) {
	v := make([]float32, 4096)
	Init(v, NewRand(1))
	var nonZero int
	for _, f := range v {
		require.GreaterOrEqual(t, f, float32(0))
		require.Less(t, f, float32(InitMax))
		if f != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, len(v)/2)
}

func TestInitDeterministic(t *testing.T) {
	a := make([]float32, 32)
	b := make([]float32, 32)
	Init(a, NewRand(99))
	Init(b, NewRand(99))
	assert.Equal(t, a, b)

	Init(b, nil)
	assert.NotEqual(t, a, b)
}

func TestScaleAndAdd(t *testing.T) {
	s := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	scaled := make([]float32, len(s))
	ScaleTo(scaled, s, 3)
	sum := make([]float32, len(s))
	AddTo(sum, scaled, s)
	for i := range s {
		assert.Equal(t, 3*s[i], scaled[i])
		assert.Equal(t, 4*s[i], sum[i])
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[ 1.0000, 2.5000 ]", Format([]float32{1, 2.5}, 0))
	assert.Equal(t, "[ 1.0000, ... (2 more) ]", Format([]float32{1, 2, 3}, 1))

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, []float32{0}, 10))
	assert.Equal(t, "[ 0.0000 ]", buf.String())
}

func BenchmarkSaxpy(b *testing.B) {
	for _, n := range []int{1 << 10, 1 << 16, 1 << 20} {
		x, y := randomPair(n, 1)
		b.Run(benchName(n), func(b *testing.B) {
			b.SetBytes(int64(n * 8))
			for b.Loop() {
				Saxpy(x, y, 1.0001)
			}
		})
	}
}

// BenchmarkSaxpyForms times the lane-blocked loop against the reference loop
// on identical inputs.
func BenchmarkSaxpyForms(b *testing.B) {
	forms := []struct {
		name string
		fn   func(x, y []float32, scale float32)
	}{
		{"Base", BaseSaxpy[float32]},
		{"Scalar", ScalarSaxpy[float32]},
	}
	for _, n := range []int{1 << 10, 1 << 16} {
		x, y := randomPair(n, 1)
		for _, f := range forms {
			b.Run(f.name+"/"+benchName(n), func(b *testing.B) {
				b.SetBytes(int64(n * 8))
				for b.Loop() {
					f.fn(x, y, 1.0001)
				}
			})
		}
	}
}

func benchName(n int) string {
	switch {
	case n >= 1<<20:
		return "1M"
	case n >= 1<<16:
		return "64K"
	default:
		return "1K"
	}
}
