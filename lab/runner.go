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
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-cpulab/internal/config"
	"github.com/ajroetker/go-cpulab/internal/logger"
	"github.com/ajroetker/go-cpulab/simd"
	"github.com/ajroetker/go-cpulab/simd/contrib/workerpool"
)

// Runner carries the configuration and the optional worker pool shared by
// the Run methods. It is not safe for concurrent use.
type Runner struct {
	cfg  *config.Config
	pool *workerpool.Pool
	log  *logrus.Entry
	seed uint64
}

// NewRunner builds a Runner from cfg. A nil cfg uses config.Default. When
// cfg.Parallel is set a worker pool of cfg.Workers goroutines is started;
// call Close to stop it.
func NewRunner(cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if cfg.NoSimd {
		simd.SetScalar()
	}

	r := &Runner{
		cfg:  cfg,
		seed: cfg.Seed,
		log:  logger.WithField("simd", simd.CurrentName()),
	}
	if r.seed == 0 {
		r.seed = uint64(time.Now().UnixNano())
	}
	if cfg.Parallel {
		r.pool = workerpool.New(cfg.Workers)
		r.log = r.log.WithField("workers", r.pool.NumWorkers())
	}
	return r
}

// Seed returns the seed the runner derives its random streams from.
func (r *Runner) Seed() uint64 {
	return r.seed
}

// Pool returns the worker pool, or nil when running single-threaded.
func (r *Runner) Pool() *workerpool.Pool {
	return r.pool
}

// Close stops the worker pool, if any.
func (r *Runner) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}
