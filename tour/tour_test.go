// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tour

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/spotlight/anim"
	"cogentcore.org/spotlight/mask"
	"cogentcore.org/spotlight/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tourYAML = `
config:
  animation_duration: 200
  easing: in-out-cubic
  mask_offset: 4
canvas: {x: 390, y: 844}
steps:
  - name: search
    position: {x: 50, y: 100}
    size: {x: 80, y: 40}
    corner_radius: 8
  - name: avatar
    position: {x: 300, y: 40}
    size: {x: 48, y: 48}
    shape: circle_and_keep
    offset: 2
`

const tourTOML = `
[config]
backdrop_color = "rgba(0, 0, 0, 0.6)"

[[steps]]
name = "search"
position = { x = 50.0, y = 100.0 }
size = { x = 80.0, y = 40.0 }
shape = "rectangle"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(filename, []byte(content), 0666))
	return filename
}

func TestOpenYAML(t *testing.T) {
	tr, err := Open(writeFile(t, "tour.yaml", tourYAML))
	require.NoError(t, err)
	assert.Equal(t, 200, tr.Config.AnimationDuration)
	assert.Equal(t, anim.EasingInOutCubic, tr.Config.Easing)
	assert.Equal(t, float32(4), tr.Config.MaskOffset)
	assert.Equal(t, "#00000066", tr.Config.BackdropColor)
	assert.Equal(t, math32.Vec2(390, 844), tr.Canvas)
	require.Len(t, tr.Steps, 2)

	assert.Equal(t, "search", tr.Steps[0].String())
	assert.Equal(t, mask.Region{Position: math32.Vec2(50, 100), Size: math32.Vec2(80, 40), CornerRadius: 8}, tr.Steps[0].Region())
	assert.Equal(t, mask.CircleAndKeep, tr.Steps[1].Shape)
	assert.Equal(t, float32(2), tr.Steps[1].Offset)
}

func TestOpenTOML(t *testing.T) {
	tr, err := Open(writeFile(t, "tour.toml", tourTOML))
	require.NoError(t, err)
	assert.Equal(t, 300, tr.Config.AnimationDuration)
	assert.Equal(t, "rgba(0, 0, 0, 0.6)", tr.Config.BackdropColor)
	assert.Equal(t, DefaultCanvas, tr.Canvas)
	require.Len(t, tr.Steps, 1)
	assert.Equal(t, math32.Vec2(80, 40), tr.Steps[0].Size)
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(writeFile(t, "tour.json", "{}"))
	assert.ErrorContains(t, err, "unsupported file extension")

	_, err = Open(writeFile(t, "tour.yaml", "canvas: {x: 390, y: 844}\n"))
	assert.ErrorContains(t, err, "no steps")

	_, err = Open(writeFile(t, "tour.yaml", "steps:\n  - shape: hexagon\n"))
	assert.ErrorContains(t, err, "unknown shape")

	_, err = Open(writeFile(t, "tour.toml", "steps = 3"))
	assert.Error(t, err)

	_, err = Open(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	tr, err := Open(writeFile(t, "tour.yaml", tourYAML))
	require.NoError(t, err)
	for _, name := range []string{"saved.yaml", "saved.toml"} {
		filename := filepath.Join(t.TempDir(), name)
		require.NoError(t, tr.Save(filename))
		got, err := Open(filename)
		require.NoError(t, err, name)
		assert.Equal(t, tr, got, name)
	}
}

func TestScaled(t *testing.T) {
	tr, err := Open(writeFile(t, "tour.yaml", tourYAML))
	require.NoError(t, err)
	st := tr.Scaled(0.5, 2)
	assert.Equal(t, math32.Vec2(195, 1688), st.Canvas)
	assert.Equal(t, float32(2), st.Config.MaskOffset)
	assert.Equal(t, math32.Vec2(25, 200), st.Steps[0].Position)
	assert.Equal(t, math32.Vec2(40, 80), st.Steps[0].Size)
	assert.Equal(t, float32(4), st.Steps[0].CornerRadius)
	assert.Equal(t, float32(1), st.Steps[1].Offset)
	// the receiver is unchanged
	assert.Equal(t, math32.Vec2(50, 100), tr.Steps[0].Position)
	assert.Equal(t, float32(4), tr.Config.MaskOffset)
}

func TestFrameAt(t *testing.T) {
	tr, err := Open(writeFile(t, "tour.yaml", tourYAML))
	require.NoError(t, err)
	first := mask.Hole{TopLeft: math32.Vec2(46, 96), BottomRight: math32.Vec2(134, 144), Radius: 8}

	f, err := tr.FrameAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, mask.Build(tr.Canvas, mask.CenterHole(tr.Canvas)), f.Path)
	assert.Equal(t, float32(0), f.Opacity)
	assert.Equal(t, mask.DefaultBackdropColor, f.Fill)

	f, err = tr.FrameAt(0, 1)
	require.NoError(t, err)
	assert.Equal(t, mask.Build(tr.Canvas, first), f.Path)
	assert.Equal(t, float32(1), f.Opacity)

	f, err = tr.FrameAt(1, 0)
	require.NoError(t, err)
	assert.Equal(t, mask.Build(tr.Canvas, first), f.Path)
	assert.Equal(t, float32(1), f.Opacity)

	_, err = tr.FrameAt(2, 0)
	assert.Error(t, err)
}
