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

// Package montecarlo estimates π by sampling points uniformly in the square
// [-1, 1]² and counting the fraction that falls inside the unit circle:
//
//	π̂ = 4 · hits / samples
//
// Run repeats the trial and aggregates the estimates. The error shrinks like
// 1/sqrt(samples), so there is no exact oracle; tests check convergence.
//
// Every iteration draws from its own PCG stream keyed by (seed, iteration),
// so a fixed seed reproduces the same estimates whether the iterations run
// sequentially or on a workerpool.Pool.
package montecarlo
