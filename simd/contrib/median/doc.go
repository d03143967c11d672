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

// Package median implements a median filter over raw byte images.
//
// Each output sample is the median of the FilterH × FilterW window centred on
// the same pixel and channel of the input. Windows that cross the image edge
// are resolved by the image.Border in MedianFilterArgs; the zero value clamps
// (repeats the edge pixel). With BorderShrink the window is cut to the image
// and the lower median of the remaining samples is used.
//
//	out, _ := image.NewBytes(in.Dim)
//	err := median.Filter(in, out, median.MedianFilterArgs{FilterH: 3, FilterW: 3})
//
// Only the first Channels bytes of each pixel are filtered; padding or alpha
// bytes up to PixelSize are copied unchanged.
package median
