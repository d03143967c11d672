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

package image

import "errors"

var (
	// ErrInvalidDim reports an ImageDim that cannot describe a buffer.
	ErrInvalidDim = errors.New("image: invalid dimensions")

	// ErrTruncated reports a raw file shorter than its header declares.
	ErrTruncated = errors.New("image: truncated raw image")

	// ErrSizeMismatch reports a pixel buffer whose length disagrees with its dimensions.
	ErrSizeMismatch = errors.New("image: pixel buffer size does not match dimensions")

	// ErrUnsupported reports a channel layout or format the codecs cannot handle.
	ErrUnsupported = errors.New("image: unsupported layout or format")
)
