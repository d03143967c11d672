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
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-cpulab/simd/contrib/vec"
)

// MaxVectorSize bounds RunSaxpy allocations (three float32 vectors).
const MaxVectorSize = 1 << 30

// SaxpyReport describes one RunSaxpy pass.
type SaxpyReport struct {
	Size       uint64
	Scale      float32
	Mismatches int
	Elapsed    time.Duration
}

// RunSaxpy allocates x and y of vectorSize elements, fills them with random
// values, runs vec.Saxpy and checks the result with vec.Verify.
func (r *Runner) RunSaxpy(ctx context.Context, vectorSize uint64) (SaxpyReport, error) {
	if vectorSize == 0 || vectorSize > MaxVectorSize {
		return SaxpyReport{}, fmt.Errorf("%w: %d (max %d)", ErrInvalidSize, vectorSize, MaxVectorSize)
	}
	log := r.log.WithField("size", vectorSize)

	rng := vec.NewRand(r.seed)
	x := make([]float32, vectorSize)
	y := make([]float32, vectorSize)
	vec.Init(x, rng)
	vec.Init(y, rng)
	scale := rng.Float32() * vec.InitMax
	orig := slices.Clone(y)

	log.Debugf("x = %s", vec.Format(x, 8))
	log.Debugf("y = %s", vec.Format(y, 8))

	if err := ctx.Err(); err != nil {
		return SaxpyReport{}, err
	}

	start := time.Now()
	vec.Saxpy(x, y, scale)
	report := SaxpyReport{Size: vectorSize, Scale: scale, Elapsed: time.Since(start)}

	log.Debugf("y' = %s", vec.Format(y, 8))

	report.Mismatches = vec.Verify(x, orig, y, scale)
	log = log.WithFields(logrus.Fields{
		"scale":      scale,
		"mismatches": report.Mismatches,
		"elapsed":    report.Elapsed,
	})
	if report.Mismatches != 0 {
		log.Error("saxpy verification failed")
		return report, fmt.Errorf("verify: %w: %d of %d elements", ErrVerification, report.Mismatches, vectorSize)
	}
	log.Info("saxpy verified")
	return report, nil
}
