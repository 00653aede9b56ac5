// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"fmt"
	"image/color"
	"time"

	"cogentcore.org/spotlight/anim"
	"cogentcore.org/spotlight/base/errors"
	"cogentcore.org/spotlight/base/reflectx"
	"cogentcore.org/spotlight/colors"
)

// DefaultBackdropColor is the backdrop color used when
// [Config.BackdropColor] cannot be parsed.
var DefaultBackdropColor = color.RGBA{0, 0, 0, 0x66}

// Config contains the configuration of a [Controller].
type Config struct {

	// AnimationDuration is the duration of a transition in milliseconds.
	AnimationDuration int `default:"300" toml:"animation_duration" yaml:"animation_duration"`

	// Easing is the easing curve applied to transitions.
	Easing anim.Easings `default:"linear" toml:"easing" yaml:"easing"`

	// BackdropColor is the color of the backdrop, in any format
	// accepted by [colors.FromString].
	BackdropColor string `default:"#00000066" toml:"backdrop_color" yaml:"backdrop_color"`

	// MaskOffset is the offset applied to regions that have none.
	MaskOffset float32 `default:"0" toml:"mask_offset" yaml:"mask_offset"`

	// RetargetFromBaseline makes a transition that is retargeted while
	// running continue from the last committed hole instead of from the
	// hole that is currently shown, which may visibly snap back.
	RetargetFromBaseline bool `toml:"retarget_from_baseline" yaml:"retarget_from_baseline"`
}

// NewConfig returns a new [Config] with default values.
func NewConfig() Config {
	c := Config{}
	c.Defaults()
	return c
}

// Defaults sets all fields to their default values.
func (c *Config) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(c))
}

// Duration returns [Config.AnimationDuration] as a [time.Duration].
// Negative durations are treated as zero.
func (c *Config) Duration() time.Duration {
	return time.Duration(max(c.AnimationDuration, 0)) * time.Millisecond
}

// Backdrop returns the parsed [Config.BackdropColor]. If it cannot be
// parsed, the error is logged and [DefaultBackdropColor] is returned.
func (c *Config) Backdrop() color.RGBA {
	fill, err := colors.FromString(c.BackdropColor, nil)
	if err != nil {
		errors.Log(fmt.Errorf("mask.Config: invalid backdrop color: %w", err))
		return DefaultBackdropColor
	}
	return fill
}

// Resolve returns the [Hole] for the given region, using
// [Config.MaskOffset] if the region has no offset.
func (c *Config) Resolve(r Region) Hole {
	if r.Offset <= 0 {
		r.Offset = c.MaskOffset
	}
	return Resolve(r)
}

// timing returns the animation timing for a transition.
func (c *Config) timing() anim.Timing {
	return anim.Timing{To: 1, Duration: c.Duration(), Easing: c.Easing.Func()}
}
