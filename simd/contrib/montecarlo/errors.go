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

import "errors"

var (
	// ErrNoIterations is returned when the iteration count is zero.
	ErrNoIterations = errors.New("montecarlo: iteration count must be positive")

	// ErrNoSamples is returned when the sample size is zero.
	ErrNoSamples = errors.New("montecarlo: sample size must be positive")

	// ErrTooManyIterations is returned when the iteration count exceeds
	// MaxIterations.
	ErrTooManyIterations = errors.New("montecarlo: iteration count exceeds MaxIterations")
)
