// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/spotlight/base/iox/imagex"
	"cogentcore.org/spotlight/colors"
	"cogentcore.org/spotlight/mask"
	"cogentcore.org/spotlight/math32"
	"cogentcore.org/spotlight/raster"
	"cogentcore.org/spotlight/tour"
)

// exampleTour returns the tour written by the init command.
func exampleTour() *tour.Tour {
	t := tour.New()
	t.Config.MaskOffset = 4
	t.Steps = []tour.Step{
		{Name: "search", Position: math32.Vec2(16, 64), Size: math32.Vec2(358, 44), CornerRadius: 22},
		{Name: "profile", Position: math32.Vec2(326, 12), Size: math32.Vec2(40, 40), Shape: mask.Circle},
		{Name: "feed", Position: math32.Vec2(16, 132), Size: math32.Vec2(358, 240), CornerRadius: 12},
		{Name: "tabs", Position: math32.Vec2(0, 780), Size: math32.Vec2(390, 64), Shape: mask.RectangleAndKeep},
	}
	return t
}

func runInit(ctx context.Context, args []string) error {
	fs := newFlags("init")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filename := "tour.yaml"
	if fs.NArg() > 0 {
		filename = fs.Arg(0)
	}
	if _, err := os.Stat(filename); err == nil {
		return fmt.Errorf("spotlight init: %q already exists", filename)
	}
	if err := exampleTour().Save(filename); err != nil {
		return err
	}
	slog.Info("wrote example tour", "file", filename)
	return nil
}

// frameFlags are the flags selecting one frame of a tour.
type frameFlags struct {
	step     int
	progress float64
	output   string
}

func (f *frameFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&f.step, "step", 0, "index of the step to render the transition into")
	fs.Float64Var(&f.progress, "progress", 1, "eased progress of the transition, from 0 to 1")
	fs.StringVar(&f.output, "o", "", "output file")
}

// frame opens the tour and returns the selected frame.
func (f *frameFlags) frame(fs *flag.FlagSet) (mask.Frame, error) {
	filename, err := tourArg(fs)
	if err != nil {
		return mask.Frame{}, err
	}
	t, err := tour.Open(filename)
	if err != nil {
		return mask.Frame{}, err
	}
	return t.FrameAt(f.step, float32(f.progress))
}

func runSVG(ctx context.Context, args []string) error {
	fs := newFlags("svg")
	var ff frameFlags
	ff.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	fr, err := ff.frame(fs)
	if err != nil {
		return err
	}
	if ff.output == "" {
		return mask.WriteSVG(os.Stdout, fr)
	}
	out, err := os.Create(ff.output)
	if err != nil {
		return err
	}
	defer out.Close()
	return mask.WriteSVG(out, fr)
}

// imageFlags are the flags of raster output.
type imageFlags struct {
	scale      float64
	background string
}

func (f *imageFlags) register(fs *flag.FlagSet) {
	fs.Float64Var(&f.scale, "scale", 1, "number of pixels per canvas unit")
	fs.StringVar(&f.background, "background", "white", "color drawn under the mask, or none")
}

func (f *imageFlags) options() (*raster.Options, error) {
	opts := &raster.Options{Scale: float32(f.scale)}
	bg, err := colors.FromString(f.background, nil)
	if err != nil {
		return nil, err
	}
	if bg != (color.RGBA{}) {
		opts.Background = bg
	}
	return opts, nil
}

func runPNG(ctx context.Context, args []string) error {
	fs := newFlags("png")
	var ff frameFlags
	var imf imageFlags
	ff.register(fs)
	imf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if ff.output == "" {
		return fmt.Errorf("spotlight png: missing output file")
	}
	fr, err := ff.frame(fs)
	if err != nil {
		return err
	}
	opts, err := imf.options()
	if err != nil {
		return err
	}
	img, err := raster.Render(fr, opts)
	if err != nil {
		return err
	}
	return imagex.Save(img, ff.output)
}

func runGIF(ctx context.Context, args []string) error {
	fs := newFlags("gif")
	var imf imageFlags
	imf.register(fs)
	fps := fs.Int("fps", 30, "frames per second")
	hold := fs.Duration("hold", time.Second, "time each step is shown at rest")
	output := fs.String("o", "", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *output == "" {
		return fmt.Errorf("spotlight gif: missing output file")
	}
	filename, err := tourArg(fs)
	if err != nil {
		return err
	}
	t, err := tour.Open(filename)
	if err != nil {
		return err
	}
	opts, err := imf.options()
	if err != nil {
		return err
	}
	interval := time.Second / time.Duration(max(*fps, 1))
	images, err := renderAll(ctx, tour.Frames(t, interval, *hold), opts)
	if err != nil {
		return err
	}
	slog.Info("writing animation", "file", *output, "frames", len(images))
	return imagex.SaveAnimation(images, interval, *output)
}

// renderAll renders all of the given frames.
func renderAll(ctx context.Context, frames []mask.Frame, opts *raster.Options) ([]image.Image, error) {
	images := make([]image.Image, len(frames))
	for i, f := range frames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := raster.Render(f, opts)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		images[i] = img
	}
	return images, nil
}
