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

package montecarlo

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/samber/lo"

	"github.com/ajroetker/go-cpulab/simd/contrib/workerpool"
)

// MaxIterations bounds the iteration count of a Run, since one estimate is
// kept per iteration.
const MaxIterations = 1 << 24

// Result aggregates the estimates of a Run.
type Result struct {
	Iterations uint64
	SampleSize uint64
	Seed       uint64

	// Estimates holds one π̂ per iteration, in iteration order.
	Estimates []float64

	Mean     float64
	StdDev   float64 // sample standard deviation; 0 for a single iteration
	AbsError float64 // |Mean - π|
}

// Trial draws sampleSize points in [-1, 1]² from rng and returns how many
// satisfy x² + y² <= 1.
func Trial(sampleSize uint64, rng *rand.Rand) uint64 {
	var hits uint64
	for range sampleSize {
		x := 2*rng.Float64() - 1
		y := 2*rng.Float64() - 1
		if x*x+y*y <= 1 {
			hits++
		}
	}
	return hits
}

// Estimate returns 4·hits/samples, or NaN for zero samples.
func Estimate(hits, samples uint64) float64 {
	if samples == 0 {
		return math.NaN()
	}
	return 4 * float64(hits) / float64(samples)
}

// Option configures Run.
type Option func(*options)

type options struct {
	seed uint64
	pool *workerpool.Pool
}

// WithSeed fixes the base seed. Zero means seed from the current time.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithPool runs iterations in parallel on pool. A nil pool is sequential.
func WithPool(pool *workerpool.Pool) Option {
	return func(o *options) { o.pool = pool }
}

// IterationRand returns the generator used for one iteration of a Run.
func IterationRand(seed, iteration uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, iteration))
}

// Run performs iterations independent trials of sampleSize points each.
func Run(iterations, sampleSize uint64, opts ...Option) (Result, error) {
	if iterations == 0 {
		return Result{}, ErrNoIterations
	}
	if iterations > MaxIterations {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyIterations, iterations, MaxIterations)
	}
	if sampleSize == 0 {
		return Result{}, ErrNoSamples
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == 0 {
		o.seed = uint64(time.Now().UnixNano())
	}

	estimates := make([]float64, iterations)
	o.pool.ParallelForAtomic(int(iterations), func(i int) {
		hits := Trial(sampleSize, IterationRand(o.seed, uint64(i)))
		estimates[i] = Estimate(hits, sampleSize)
	})

	return summarize(estimates, sampleSize, o.seed), nil
}

func summarize(estimates []float64, sampleSize, seed uint64) Result {
	n := float64(len(estimates))
	mean := lo.Sum(estimates) / n

	var stddev float64
	if len(estimates) > 1 {
		sq := lo.Map(estimates, func(e float64, _ int) float64 {
			return (e - mean) * (e - mean)
		})
		stddev = math.Sqrt(lo.Sum(sq) / (n - 1))
	}

	return Result{
		Iterations: uint64(len(estimates)),
		SampleSize: sampleSize,
		Seed:       seed,
		Estimates:  estimates,
		Mean:       mean,
		StdDev:     stddev,
		AbsError:   math.Abs(mean - math.Pi),
	}
}
