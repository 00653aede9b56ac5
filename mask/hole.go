// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"log/slog"

	"cogentcore.org/spotlight/math32"
)

// Hole is the canonical control data of a hole: a rounded rectangle.
// A circle is a square whose radius is half its side, so that
// interpolation never depends on the shape of either end.
type Hole struct {

	// TopLeft is the top left corner of the hole.
	TopLeft math32.Vector2

	// BottomRight is the bottom right corner of the hole.
	BottomRight math32.Vector2

	// Radius is the corner radius.
	Radius float32
}

// Size returns the width and height of the hole.
func (h Hole) Size() math32.Vector2 {
	return h.BottomRight.Sub(h.TopLeft)
}

// Center returns the center point of the hole.
func (h Hole) Center() math32.Vector2 {
	return h.TopLeft.Add(h.BottomRight).MulScalar(0.5)
}

// Box returns the bounding box of the hole.
func (h Hole) Box() math32.Box2 {
	return math32.Box2{Min: h.TopLeft, Max: h.BottomRight}
}

// CenterHole returns the zero-area hole at the center of the given canvas
// that a mask starts from before its first transition.
func CenterHole(canvas math32.Vector2) Hole {
	c := canvas.MulScalar(0.5)
	return Hole{TopLeft: c, BottomRight: c}
}

// Resolve returns the [Hole] for the given region. Negative sizes,
// offsets and radii are treated as zero and non-finite coordinates
// as zero. Unknown shapes are logged and resolved as rectangles.
func Resolve(r Region) Hole {
	pos := finite2(r.Position)
	size := finite2(r.Size).Max(math32.Vector2{})
	off := nonNegative(r.Offset)

	switch r.Shape.base() {
	case Circle:
		side := math32.Max(size.X, size.Y) + 2*off
		half := side / 2
		c := pos.Add(size.MulScalar(0.5))
		return Hole{TopLeft: c.SubScalar(half), BottomRight: c.AddScalar(half), Radius: half}
	case Rectangle:
	default:
		slog.Warn("mask.Resolve: unexpected shape, using rectangle", "shape", r.Shape)
	}
	h := Hole{TopLeft: pos.SubScalar(off), BottomRight: pos.Add(size).AddScalar(off)}
	sz := h.Size()
	h.Radius = math32.Min(nonNegative(r.CornerRadius), math32.Min(sz.X, sz.Y)/2)
	return h
}

func nonNegative(x float32) float32 {
	if x > 0 && !math32.IsInf(x, 1) {
		return x
	}
	return 0
}

func finite(x float32) float32 {
	if math32.IsNaN(x) || math32.IsInf(x, 0) {
		return 0
	}
	return x
}

func finite2(v math32.Vector2) math32.Vector2 {
	return math32.Vec2(finite(v.X), finite(v.Y))
}
