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
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-cpulab/simd/contrib/montecarlo"
)

// RunMCPi estimates π with iterationCount trials of sampleSize points each.
func (r *Runner) RunMCPi(ctx context.Context, iterationCount, sampleSize uint64) (montecarlo.Result, error) {
	if err := ctx.Err(); err != nil {
		return montecarlo.Result{}, err
	}

	start := time.Now()
	res, err := montecarlo.Run(iterationCount, sampleSize,
		montecarlo.WithSeed(r.seed),
		montecarlo.WithPool(r.pool),
	)
	if err != nil {
		return res, err
	}
	elapsed := time.Since(start)

	for i, est := range res.Estimates {
		r.log.Debugf("iteration %d: estimate = %.8f", i, est)
	}
	r.log.WithFields(logrus.Fields{
		"iterations": res.Iterations,
		"samples":    res.SampleSize,
		"estimate":   res.Mean,
		"stddev":     res.StdDev,
		"abs_error":  res.AbsError,
		"elapsed":    elapsed,
	}).Info("monte carlo pi done")
	return res, nil
}
