// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"math"
	"testing"

	"cogentcore.org/spotlight/math32"
	"cogentcore.org/spotlight/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorph(t *testing.T) {
	a := hole(0, 0, 100, 100, 50)
	b := hole(100, 200, 300, 260, 10)

	assert.Equal(t, a, Morph(a, b, 0))
	assert.Equal(t, b, Morph(a, b, 1))
	assert.Equal(t, hole(50, 100, 200, 180, 30), Morph(a, b, 0.5))

	assert.Equal(t, a, Morph(a, b, -2))
	assert.Equal(t, b, Morph(a, b, 7))
	assert.Equal(t, a, Morph(a, b, float32(math.NaN())))
	assert.Equal(t, b, Morph(b, b, 0.3))
}

func TestMorphPath(t *testing.T) {
	canvas := math32.Vec2(390, 844)
	a := CenterHole(canvas)
	b := hole(46, 96, 134, 144, 8)
	assert.Equal(t, Build(canvas, a), MorphPath(canvas, a, b, 0))
	assert.Equal(t, Build(canvas, b), MorphPath(canvas, a, b, 1))
}

// TestMorphShapes checks that a circle morphs smoothly into a
// rounded rectangle, with a radius that never jumps.
func TestMorphShapes(t *testing.T) {
	canvas := math32.Vec2(200, 200)
	circle := Resolve(Region{Size: math32.Vec2(100, 100), Shape: Circle})
	rect := Resolve(Region{Size: math32.Vec2(100, 60), CornerRadius: 8})
	require.Equal(t, hole(0, 0, 100, 100, 50), circle)
	require.Equal(t, hole(0, 0, 100, 60, 8), rect)

	last := circle.Radius + 1
	lastHeight := circle.Size().Y + 1
	for i := 0; i <= 10; i++ {
		h := Morph(circle, rect, float32(i)/10)
		sz := h.Size()
		assert.Less(t, h.Radius, last)
		assert.Less(t, sz.Y, lastHeight)
		assert.LessOrEqual(t, h.Radius, math32.Min(sz.X, sz.Y)/2)
		last = h.Radius
		lastHeight = sz.Y

		p, err := svgpath.Parse(Build(canvas, h))
		require.NoError(t, err)
		assert.Equal(t, topology, p.Topology())
	}
	assert.Equal(t, float32(8), last)
}
