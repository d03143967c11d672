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

// Package lab runs the kernels end to end: allocate or load input, run one
// pass, verify or write the result, and log what happened.
//
// Each Run method returns nil on success. Failures are wrapped with the
// stage that produced them (load, filter, write, verify) and can be matched
// with errors.Is against the sentinel errors of this package and of the
// kernel packages.
//
//	r := lab.NewRunner(cfg)
//	defer r.Close()
//	if _, err := r.RunSaxpy(ctx, 1<<20); err != nil { ... }
package lab
