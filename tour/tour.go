// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tour provides guided tours: ordered lists of regions
// to highlight, loaded from YAML or TOML files and played through
// a [mask.Controller].
package tour

import (
	"fmt"
	"path/filepath"
	"strings"

	"cogentcore.org/spotlight/base/errors"
	"cogentcore.org/spotlight/base/iox/tomlx"
	"cogentcore.org/spotlight/base/iox/yamlx"
	"cogentcore.org/spotlight/base/reflectx"
	"cogentcore.org/spotlight/mask"
	"cogentcore.org/spotlight/math32"
)

// DefaultCanvas is the canvas size of a tour that does not set one.
var DefaultCanvas = math32.Vec2(390, 844)

// Tour is a guided tour.
type Tour struct {

	// Config is the mask configuration.
	Config mask.Config `toml:"config" yaml:"config"`

	// Canvas is the size of the canvas the steps are laid out on.
	Canvas math32.Vector2 `toml:"canvas" yaml:"canvas"`

	// Steps are the steps of the tour, in order.
	Steps []Step `toml:"steps" yaml:"steps"`
}

// Step is one step of a [Tour].
type Step struct {

	// Name is the name of the step, for display and logging.
	Name string `toml:"name" yaml:"name"`

	// Position is the top left corner of the highlighted region.
	Position math32.Vector2 `toml:"position" yaml:"position"`

	// Size is the size of the highlighted region.
	Size math32.Vector2 `toml:"size" yaml:"size"`

	// Shape is the shape of the hole.
	Shape mask.Shapes `toml:"shape" yaml:"shape"`

	// CornerRadius is the corner radius of a rectangle hole.
	CornerRadius float32 `toml:"corner_radius" yaml:"corner_radius"`

	// Offset is the margin around the region; if zero,
	// [mask.Config.MaskOffset] is used.
	Offset float32 `toml:"offset" yaml:"offset"`
}

// Region returns the highlighted region of the step.
func (s *Step) Region() mask.Region {
	return mask.Region{Position: s.Position, Size: s.Size, Shape: s.Shape, CornerRadius: s.CornerRadius, Offset: s.Offset}
}

// String returns the name of the step, or a description of its region.
func (s *Step) String() string {
	if s.Name != "" {
		return s.Name
	}
	return s.Region().String()
}

// New returns a new [Tour] with default values.
func New() *Tour {
	t := &Tour{}
	t.Defaults()
	return t
}

// Defaults sets the default values of the tour.
func (t *Tour) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(t))
	t.Canvas = DefaultCanvas
}

// Validate returns an error if the tour cannot be played.
func (t *Tour) Validate() error {
	var errs []error
	if t.Canvas.X <= 0 || t.Canvas.Y <= 0 {
		errs = append(errs, fmt.Errorf("canvas size %v must be positive", t.Canvas))
	}
	if len(t.Steps) == 0 {
		errs = append(errs, errors.New("no steps"))
	}
	for i, s := range t.Steps {
		if s.Shape == mask.ShapeUnknown {
			errs = append(errs, fmt.Errorf("step %d (%s): unknown shape", i, s.String()))
		}
	}
	return errors.Join(errs...)
}

// format is a tour file format.
type format int

const (
	formatYAML format = iota
	formatTOML
)

func formatOf(filename string) (format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	}
	return 0, fmt.Errorf("tour: unsupported file extension for %q, expected .yaml, .yml or .toml", filename)
}

// Open opens the tour from the given YAML or TOML file, starting from
// the default values. Unknown shapes are accepted by the file format,
// but make the tour invalid.
func Open(filename string) (*Tour, error) {
	f, err := formatOf(filename)
	if err != nil {
		return nil, err
	}
	t := New()
	switch f {
	case formatYAML:
		err = yamlx.Open(t, filename)
	case formatTOML:
		err = tomlx.Open(t, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("tour.Open %q: %w", filename, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("tour.Open %q: %w", filename, err)
	}
	return t, nil
}

// Save saves the tour to the given YAML or TOML file.
func (t *Tour) Save(filename string) error {
	f, err := formatOf(filename)
	if err != nil {
		return err
	}
	if f == formatTOML {
		return tomlx.Save(t, filename)
	}
	return yamlx.Save(t, filename)
}

// Scaled returns a copy of the tour laid out on a canvas scaled by the
// given factors. Corner radii and offsets are scaled by the smaller factor.
func (t *Tour) Scaled(sx, sy float32) *Tour {
	st := *t
	f := math32.Vec2(sx, sy)
	m := math32.Min(sx, sy)
	st.Canvas = t.Canvas.Mul(f)
	st.Config.MaskOffset *= m
	st.Steps = make([]Step, len(t.Steps))
	for i, s := range t.Steps {
		s.Position = s.Position.Mul(f)
		s.Size = s.Size.Mul(f)
		s.CornerRadius *= m
		s.Offset *= m
		st.Steps[i] = s
	}
	return &st
}

// FrameAt returns the frame of the transition into the step at the given
// index at the given eased progress, as played from the previous step,
// or from the center of the canvas for the first step.
func (t *Tour) FrameAt(index int, progress float32) (mask.Frame, error) {
	if index < 0 || index >= len(t.Steps) {
		return mask.Frame{}, fmt.Errorf("tour.FrameAt: step index %d out of range [0, %d)", index, len(t.Steps))
	}
	progress = math32.ClampNaN(progress, 0, 1)
	prev := mask.CenterHole(t.Canvas)
	opacity := float32(1)
	if index > 0 {
		prev = t.Config.Resolve(t.Steps[index-1].Region())
	} else {
		opacity = progress
	}
	target := t.Config.Resolve(t.Steps[index].Region())
	return mask.Frame{
		Canvas:  t.Canvas,
		Path:    mask.MorphPath(t.Canvas, prev, target, progress),
		Opacity: opacity,
		Fill:    t.Config.Backdrop(),
	}, nil
}
