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

package image

import (
	stdimage "image"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// FromImage returns the pixels of img in row-major order with
// non-premultiplied 8-bit channels, whatever the color model of img.
func FromImage(img stdimage.Image) []RGBA {
	b := img.Bounds()
	canvas := stdimage.NewNRGBA(stdimage.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Src)

	// A fresh canvas has no row padding: Pix is exactly the packed pixels.
	px := make([]RGBA, b.Dx()*b.Dy())
	copy(flat[uint8](px, ChannelsRGBA), canvas.Pix)
	return px
}

// ToImage builds an opaque width×height image from row-major pixels.
func ToImage(px []RGB, width, height int) (*stdimage.RGBA, error) {
	if width < 0 || height < 0 || width*height != len(px) {
		return nil, errors.Wrapf(ErrOutputSize, "%d pixels for a %dx%d image", len(px), width, height)
	}
	img := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	for i, p := range px {
		o := img.Pix[i*ChannelsRGBA : i*ChannelsRGBA+ChannelsRGBA]
		o[0], o[1], o[2], o[3] = p[0], p[1], p[2], 0xff
	}
	return img, nil
}
