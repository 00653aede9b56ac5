// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster renders mask frames into images.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/spotlight/colors"
	"cogentcore.org/spotlight/mask"
	"cogentcore.org/spotlight/math32"
	"cogentcore.org/spotlight/svgpath"
	"golang.org/x/image/vector"
)

// Options are the options for [Render].
type Options struct {

	// Background is drawn under the mask if it is non-nil.
	Background color.Color

	// Scale is the number of pixels per canvas unit. It defaults to 1.
	Scale float32

	// Tolerance is the maximum distance in pixels between an arc
	// and its approximation. It defaults to 0.25.
	Tolerance float32
}

// Size returns the image size for the given canvas size and scale.
func Size(canvas math32.Vector2, scale float32) image.Point {
	if scale <= 0 {
		scale = 1
	}
	return canvas.MulScalar(scale).Max(math32.Vector2{}).ToPointCeil()
}

// Render renders the given frame into a new image, filling its path
// with the even-odd rule in the frame fill color at the frame opacity.
func Render(f mask.Frame, opts *Options) (*image.RGBA, error) {
	if opts == nil {
		opts = &Options{}
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	p, err := svgpath.Parse(f.Path)
	if err != nil {
		return nil, fmt.Errorf("raster.Render: %w", err)
	}
	polys := svgpath.Flatten(p, opts.Tolerance/scale)
	for _, pl := range polys {
		for i := range pl {
			pl[i] = pl[i].MulScalar(scale)
		}
	}
	size := Size(f.Canvas, scale)
	img := image.NewRGBA(image.Rectangle{Max: size})
	if opts.Background != nil {
		draw.Draw(img, img.Rect, image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	cov := Coverage(size, polys)
	fill := colors.ApplyOpacity(f.Fill, math32.Clamp(f.Opacity, 0, 1))
	draw.DrawMask(img, img.Rect, image.NewUniform(fill), image.Point{}, cov, image.Point{}, draw.Over)
	return img, nil
}

// Coverage returns the even-odd coverage of the given polygons in an
// image of the given size: each polygon is rasterized on its own, with
// anti-aliasing, and a pixel covered by an even number of polygons
// is transparent.
func Coverage(size image.Point, polys []svgpath.Polygon) *image.Alpha {
	out := image.NewAlpha(image.Rectangle{Max: size})
	if size.X <= 0 || size.Y <= 0 {
		return out
	}
	sub := image.NewAlpha(out.Rect)
	z := vector.NewRasterizer(size.X, size.Y)
	for _, pl := range polys {
		if len(pl) < 3 {
			continue
		}
		z.Reset(size.X, size.Y)
		z.DrawOp = draw.Src
		z.MoveTo(pl[0].X, pl[0].Y)
		for _, pt := range pl[1:] {
			z.LineTo(pt.X, pt.Y)
		}
		z.ClosePath()
		z.Draw(sub, sub.Rect, image.Opaque, image.Point{})
		for i, c := range sub.Pix {
			a := int(out.Pix[i])
			out.Pix[i] = uint8((a*255 + int(c)*255 - 2*a*int(c) + 127) / 255)
		}
	}
	return out
}
