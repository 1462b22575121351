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
	"bytes"
	"image"
	"image/color"
	"math/rand/v2"
	"os"

	// Decoders for the luma input image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pkg/errors"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// randomFloats returns n values uniformly spread over [-1e6, 1e6).
func randomFloats(rng *rand.Rand, n int) []float32 {
	data := make([]float32, n)
	for i := range data {
		data[i] = rng.Float32()*2e6 - 1e6
	}
	return data
}

// loadText reads a newline-separated title list and joins the lines with sep,
// turning underscores into spaces. With an empty path it generates size
// bytes of synthetic titles instead.
func loadText(path string, size int, sep byte, rng *rand.Rand) ([]byte, error) {
	var raw []byte
	if path == "" {
		raw = syntheticText(rng, size)
	} else {
		var err error
		if raw, err = os.ReadFile(path); err != nil {
			return nil, errors.Wrap(err, "reading text dataset")
		}
	}

	for i, c := range raw {
		switch c {
		case '\n':
			raw[i] = sep
		case '_':
			raw[i] = ' '
		}
	}
	return raw, nil
}

var titleWords = []string{
	"List", "of", "the", "Battle", "River", "County", "Station", "Album",
	"Path", "Exile", "Film", "Church", "Railway", "Saint", "John", "Park",
	"AVX", "512", "Banana", "History", "School", "Island", "Team", "Season",
}

func syntheticText(rng *rand.Rand, size int) []byte {
	var buf bytes.Buffer
	buf.Grow(size + 64)
	for buf.Len() < size {
		words := 1 + rng.IntN(4)
		for w := range words {
			if w > 0 {
				buf.WriteByte('_')
			}
			buf.WriteString(titleWords[rng.IntN(len(titleWords))])
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()[:size]
}

// loadImage decodes the image at path. With an empty path it returns a
// synthetic w×h color gradient.
func loadImage(path string) (image.Image, string, error) {
	if path == "" {
		return gradient(1024, 768), "synthetic", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", errors.Wrap(err, "opening image")
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", errors.Wrapf(err, "decoding %s", path)
	}
	return img, format, nil
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: uint8((x + y) * 255 / (w + h)),
				A: 0xff,
			})
		}
	}
	return img
}
