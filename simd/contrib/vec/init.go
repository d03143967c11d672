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
	"math/rand/v2"
	"time"
)

// InitMax is the exclusive upper bound of values written by Init.
const InitMax = 100

// Init fills every element of v with a pseudo-random value in [0, InitMax).
// A nil rng uses a source seeded from the current time.
func Init(v []float32, rng *rand.Rand) {
	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	for i := range v {
		v[i] = rng.Float32() * InitMax
	}
}

// NewRand returns a PCG-backed generator for the given seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
