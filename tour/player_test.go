// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tour

import (
	"testing"
	"time"

	"cogentcore.org/spotlight/anim"
	"cogentcore.org/spotlight/mask"
	"cogentcore.org/spotlight/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTour() *Tour {
	t := New()
	t.Steps = []Step{
		{Name: "search", Position: math32.Vec2(50, 100), Size: math32.Vec2(80, 40), CornerRadius: 8},
		{Name: "avatar", Position: math32.Vec2(300, 40), Size: math32.Vec2(48, 48), Shape: mask.Circle},
		{Name: "tabs", Position: math32.Vec2(0, 780), Size: math32.Vec2(390, 64)},
	}
	return t
}

func TestPlayer(t *testing.T) {
	tr := testTour()
	drv := anim.NewDriver()
	p := NewPlayer(tr, drv, nil)
	assert.Equal(t, 0, p.Index())
	assert.Equal(t, "search", p.Step().Name)
	assert.Equal(t, mask.Transitioning, p.Controller.State())
	assert.Equal(t, mask.Resolve(tr.Steps[0].Region()), p.Controller.Target())

	drv.Tick(time.Second)
	p.Next()
	assert.Equal(t, 1, p.Index())
	assert.Equal(t, mask.Resolve(tr.Steps[1].Region()), p.Controller.Target())

	p.Next()
	p.Next()
	assert.Equal(t, 0, p.Index())
	p.Prev()
	assert.Equal(t, 2, p.Index())

	assert.False(t, p.Goto(10))
	assert.Equal(t, 2, p.Index())
	assert.True(t, p.Goto(1))
	assert.Equal(t, 1, p.Index())
}

func TestPlayerSetTour(t *testing.T) {
	tr := testTour()
	drv := anim.NewDriver()
	p := NewPlayer(tr, drv, nil)
	p.Goto(2)
	drv.Tick(time.Second)

	next := testTour()
	next.Steps = next.Steps[:2]
	next.Canvas = math32.Vec2(844, 390)
	next.Config.AnimationDuration = 100
	p.SetTour(next)
	assert.Equal(t, 1, p.Index())
	canvas, ok := p.Controller.Canvas()
	require.True(t, ok)
	assert.Equal(t, next.Canvas, canvas)
	assert.Equal(t, 100, p.Controller.Config.AnimationDuration)

	drv.Tick(100 * time.Millisecond)
	assert.Equal(t, mask.Resting, p.Controller.State())
}

func TestPlayerReloadConfig(t *testing.T) {
	tr := testTour()
	tr.Steps = tr.Steps[:1]
	drv := anim.NewDriver()
	p := NewPlayer(tr, drv, nil)
	drv.Tick(time.Second)
	assert.Equal(t, mask.Hole{TopLeft: math32.Vec2(50, 100), BottomRight: math32.Vec2(130, 140), Radius: 8}, p.Controller.Hole())

	next := testTour()
	next.Steps = next.Steps[:1]
	next.Config.MaskOffset = 10
	p.SetTour(next)
	want := mask.Hole{TopLeft: math32.Vec2(40, 90), BottomRight: math32.Vec2(140, 150), Radius: 8}
	assert.Equal(t, want, p.Controller.Target())
	assert.Equal(t, mask.Transitioning, p.Controller.State())

	drv.Tick(time.Second)
	assert.Equal(t, mask.Resting, p.Controller.State())
	assert.Equal(t, want, p.Controller.Hole())
}

func TestPlayerEmpty(t *testing.T) {
	p := NewPlayer(New(), anim.NewDriver(), nil)
	assert.Nil(t, p.Step())
	assert.False(t, p.Goto(0))
	p.Next()
	p.Prev()
	assert.Equal(t, 0, p.Index())
}

func TestFrames(t *testing.T) {
	tr := testTour()
	tr.Config.AnimationDuration = 100
	frames := Frames(tr, 20*time.Millisecond, 40*time.Millisecond)
	// per step: the start frame, 5 transition frames and 2 hold frames
	require.Len(t, frames, 3*8)

	assert.Equal(t, float32(0), frames[0].Opacity)
	assert.Equal(t, mask.Build(tr.Canvas, mask.CenterHole(tr.Canvas)), frames[0].Path)
	for i, st := range tr.Steps {
		last := frames[i*8+7]
		assert.Equal(t, mask.Build(tr.Canvas, mask.Resolve(st.Region())), last.Path, st.Name)
		assert.Equal(t, float32(1), last.Opacity)
		assert.Equal(t, tr.Canvas, last.Canvas)
	}
}
