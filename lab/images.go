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
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-cpulab/simd/contrib/image"
	"github.com/ajroetker/go-cpulab/simd/contrib/median"
	"github.com/ajroetker/go-cpulab/simd/contrib/pool"
)

// RunMedianFilter loads the raw image at imgPath, median-filters it and
// writes the result to outPath.
func (r *Runner) RunMedianFilter(ctx context.Context, imgPath, outPath string, args median.MedianFilterArgs) error {
	log := r.log.WithFields(logrus.Fields{
		"in":     imgPath,
		"out":    outPath,
		"window": fmt.Sprintf("%dx%d", args.FilterH, args.FilterW),
		"border": args.Border,
	})

	in, err := image.Load(imgPath)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	log = log.WithField("dim", in.Dim)
	log.Debug("image loaded")

	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := image.NewBytes(in.Dim)
	if err != nil {
		return fmt.Errorf("allocate: %w", err)
	}
	if err := median.ParallelFilter(r.pool, in, out, args); err != nil {
		return fmt.Errorf("filter: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := image.Write(outPath, out); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	log.Info("median filter done")
	return nil
}

// RunPool loads the raw image at imgPath, pools it and writes the smaller
// result to outPath.
func (r *Runner) RunPool(ctx context.Context, imgPath, outPath string, args pool.PoolArgs) error {
	in, err := image.Load(imgPath)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	out, err := pool.ParallelApply(r.pool, in, args)
	if err != nil {
		return fmt.Errorf("pool: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := image.Write(outPath, out); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	r.log.WithFields(logrus.Fields{
		"in":      imgPath,
		"out":     outPath,
		"op":      args.Op,
		"in_dim":  in.Dim,
		"out_dim": out.Dim,
	}).Info("pooling done")
	return nil
}

// ConvertImage converts between raw images (.bytes, .raw, .bin) and encoded
// formats, choosing each side's format from its file extension.
func (r *Runner) ConvertImage(ctx context.Context, inPath, outPath string) error {
	img, err := LoadAny(inPath)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := StoreAny(outPath, img); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	r.log.WithFields(logrus.Fields{"in": inPath, "out": outPath, "dim": img.Dim}).Info("image converted")
	return nil
}

// LoadAny reads a raw or encoded image depending on the extension of path.
func LoadAny(path string) (*image.Bytes, error) {
	if image.FormatFromPath(path) == "raw" {
		return image.Load(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// StoreAny writes img raw or encoded depending on the extension of path.
func StoreAny(path string, img *image.Bytes) (err error) {
	format := image.FormatFromPath(path)
	if format == "raw" {
		return image.Write(path, img)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return image.Encode(f, img, format)
}
