// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"testing"

	"cogentcore.org/spotlight/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hole(x1, y1, x2, y2, r float32) Hole {
	return Hole{TopLeft: math32.Vec2(x1, y1), BottomRight: math32.Vec2(x2, y2), Radius: r}
}

func TestResolveRectangle(t *testing.T) {
	r := Region{Position: math32.Vec2(50, 100), Size: math32.Vec2(80, 40), CornerRadius: 8, Offset: 4}
	assert.Equal(t, hole(46, 96, 134, 144, 8), Resolve(r))

	r.Offset = 0
	assert.Equal(t, hole(50, 100, 130, 140, 8), Resolve(r))

	r.Shape = RectangleAndKeep
	assert.Equal(t, hole(50, 100, 130, 140, 8), Resolve(r))
}

func TestResolveRadiusLimit(t *testing.T) {
	r := Region{Position: math32.Vec2(0, 0), Size: math32.Vec2(10, 4), CornerRadius: 100}
	assert.Equal(t, hole(0, 0, 10, 4, 2), Resolve(r))

	r.CornerRadius = -3
	assert.Equal(t, hole(0, 0, 10, 4, 0), Resolve(r))
}

func TestResolveCircle(t *testing.T) {
	r := Region{Position: math32.Vec2(100, 200), Size: math32.Vec2(60, 20), Shape: Circle, CornerRadius: 3}
	assert.Equal(t, hole(100, 180, 160, 240, 30), Resolve(r))

	r.Offset = 5
	assert.Equal(t, hole(95, 175, 165, 245, 35), Resolve(r))

	r.Shape = CircleAndKeep
	assert.Equal(t, hole(95, 175, 165, 245, 35), Resolve(r))
}

func TestResolveInvalid(t *testing.T) {
	r := Region{Position: math32.Vec2(10, 10), Size: math32.Vec2(-5, 20), Offset: -2}
	assert.Equal(t, hole(10, 10, 10, 30, 0), Resolve(r))

	inf := math32.Vec2(math32.Infinity, 3)
	h := Resolve(Region{Position: inf, Size: math32.Vec2(4, 4)})
	assert.Equal(t, hole(0, 3, 4, 7, 0), h)
}

func TestResolveUnknownShape(t *testing.T) {
	var s Shapes
	require.NoError(t, s.UnmarshalText([]byte("hexagon")))
	assert.Equal(t, ShapeUnknown, s)
	r := Region{Position: math32.Vec2(50, 100), Size: math32.Vec2(80, 40), Shape: s, CornerRadius: 8}
	assert.Equal(t, hole(50, 100, 130, 140, 8), Resolve(r))
}

func TestShapesText(t *testing.T) {
	for _, s := range []Shapes{Rectangle, Circle, RectangleAndKeep, CircleAndKeep} {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var got Shapes
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, s, got)
	}
	var s Shapes = Circle
	require.NoError(t, s.UnmarshalText(nil))
	assert.Equal(t, Rectangle, s)
	require.NoError(t, s.UnmarshalText([]byte(" Circle_And_Keep ")))
	assert.Equal(t, CircleAndKeep, s)
	assert.Equal(t, "Shapes(9)", Shapes(9).String())
}

func TestCenterHole(t *testing.T) {
	h := CenterHole(math32.Vec2(390, 844))
	assert.Equal(t, hole(195, 422, 195, 422, 0), h)
	assert.Equal(t, math32.Vec2(195, 422), h.Center())
	assert.Equal(t, math32.Vector2{}, h.Size())
}
