// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"image/color"
	"testing"
	"time"

	"cogentcore.org/spotlight/anim"
	"cogentcore.org/spotlight/math32"
	"github.com/stretchr/testify/assert"
)

func TestConfigDefaults(t *testing.T) {
	c := NewConfig()
	assert.Equal(t, 300, c.AnimationDuration)
	assert.Equal(t, 300*time.Millisecond, c.Duration())
	assert.Equal(t, anim.EasingLinear, c.Easing)
	assert.Equal(t, "#00000066", c.BackdropColor)
	assert.Equal(t, float32(0), c.MaskOffset)
	assert.False(t, c.RetargetFromBaseline)
	assert.Equal(t, DefaultBackdropColor, c.Backdrop())

	c.AnimationDuration = -10
	assert.Equal(t, time.Duration(0), c.Duration())
}

func TestConfigBackdrop(t *testing.T) {
	c := NewConfig()
	c.BackdropColor = "rgba(0, 0, 0, 0.5)"
	assert.Equal(t, color.RGBA{0, 0, 0, 128}, c.Backdrop())

	c.BackdropColor = "not a color"
	assert.Equal(t, DefaultBackdropColor, c.Backdrop())
}

func TestConfigResolve(t *testing.T) {
	c := NewConfig()
	c.MaskOffset = 4
	r := Region{Position: math32.Vec2(50, 100), Size: math32.Vec2(80, 40), CornerRadius: 8}
	assert.Equal(t, hole(46, 96, 134, 144, 8), c.Resolve(r))
	r.Offset = 1
	assert.Equal(t, hole(49, 99, 131, 141, 8), c.Resolve(r))
}
