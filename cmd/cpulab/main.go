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

// Command cpulab runs the lab kernels from the command line.
//
// Usage:
//
//	cpulab saxpy --size 1048576
//	cpulab mcpi --iterations 10 --samples 1000000
//	cpulab median --in noisy.bytes --out clean.bytes --filter-h 3 --filter-w 3
//	cpulab pool --in img.bytes --out small.bytes --op max --window 2
//	cpulab convert --in photo.png --out photo.bytes
//	cpulab info
//
// Settings are read from the environment and an optional .env file
// (CPULAB_SEED, CPULAB_WORKERS, CPULAB_PARALLEL, CPULAB_NO_SIMD, LOG_LEVEL,
// LOG_FORMAT); flags override them. The exit status is 0 on success and 1 on
// any failure.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/ajroetker/go-cpulab/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logger.WithError(err).Error("cpulab failed")
		stop()
		os.Exit(1)
	}
}
