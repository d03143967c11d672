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

package median

import "errors"

var (
	// ErrWindow reports a zero or even window dimension.
	ErrWindow = errors.New("median: window dimensions must be odd and positive")

	// ErrDimMismatch reports input and output images of different shapes.
	ErrDimMismatch = errors.New("median: input and output dimensions differ")

	// ErrAlias reports input and output sharing pixel storage.
	ErrAlias = errors.New("median: input and output share pixel storage")
)
