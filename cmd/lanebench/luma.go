// Copyright 2025 lanekit Authors
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

package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lanekit/lanekit/hwy/contrib/image"
)

func newLumaCmd(a *app) *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "luma",
		Short: "Benchmark RGBA to luminance conversion on an image",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("image") {
				a.cfg.Image = in
			}
			return a.runLuma(out)
		},
	}
	cmd.Flags().StringVar(&in, "image", "", "Input image: png, jpeg, gif, bmp, tiff or webp (synthetic when empty)")
	cmd.Flags().StringVar(&out, "out", "", "Write the fixed-point greyscale result to this PNG file")
	return cmd
}

func (a *app) runLuma(out string) error {
	img, format, err := loadImage(a.cfg.Image)
	if err != nil {
		return err
	}
	b := img.Bounds()
	px := image.FromImage(img)
	fmt.Fprintf(a.out, "Image: %dx%d %s, %s pixels\n", b.Dx(), b.Dy(), format, humanize.Comma(int64(len(px))))

	pxf := make([]image.RGBAF, len(px))
	for i, p := range px {
		pxf[i] = image.RGBAF{float32(p[0]) / 255, float32(p[1]) / 255, float32(p[2]) / 255, float32(p[3]) / 255}
	}

	gray := image.Luma8(px)
	grayF := image.LumaF32(pxf)

	dst := make([]image.RGB, len(px))
	tScalar := a.bench(func() { image.ScalarLuma8(px) })
	tVector := a.bench(func() { image.Luma8Into(dst, px) })
	tScalarF := a.bench(func() { image.ScalarLumaF32(pxf) })
	tVectorF := a.bench(func() { image.LumaF32(pxf) })

	t := newTable(a.out, "Luminance", "Variant", "Scalar", "Vector")
	t.add(row{"fixed point", tScalar, tVector, cmp.Equal(gray, image.ScalarLuma8(px))})
	t.add(row{"float32", tScalarF, tVectorF, cmp.Equal(grayF, image.ScalarLumaF32(pxf))})
	if err := t.close(); err != nil {
		return err
	}

	if out == "" {
		return nil
	}
	return a.writePNG(out, gray, b.Dx(), b.Dy())
}

func (a *app) writePNG(path string, px []image.RGB, w, h int) error {
	img, err := image.ToImage(px, w, h)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}
	level.Info(a.logger).Log("msg", "wrote greyscale image", "path", path)
	return nil
}
