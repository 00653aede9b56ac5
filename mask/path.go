// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"strconv"

	"cogentcore.org/spotlight/math32"
)

// FillRule is the SVG fill rule that a mask path must be drawn with.
const FillRule = "evenodd"

// Build returns the SVG path data for a mask covering the given canvas
// size with the given hole cut out of it. The outer rectangle and the
// hole are both drawn clockwise, so the hole is transparent under the
// even-odd [FillRule].
//
// The sequence of commands is the same for every canvas and hole:
//
//	M H V H V Z M H A V A H A V A Z
//
// so that a renderer can update the path by replacing numbers only.
// A hole that is less than 1 unit wide or high is grown to 1 unit from
// its top left corner, and its radius is limited to half its shorter side.
func Build(canvas math32.Vector2, h Hole) string {
	b := make([]byte, 0, 160)
	return string(AppendPath(b, canvas, h))
}

// AppendPath appends the path data of [Build] to b and returns the
// extended buffer.
func AppendPath(b []byte, canvas math32.Vector2, h Hole) []byte {
	w := nonNegative(canvas.X)
	ht := nonNegative(canvas.Y)

	box := math32.Box2{Min: finite2(h.TopLeft), Max: finite2(h.BottomRight)}.Canon()
	x1, y1 := box.Min.X, box.Min.Y
	x2 := math32.Max(box.Max.X, x1+1)
	y2 := math32.Max(box.Max.Y, y1+1)
	r := math32.Min(nonNegative(h.Radius), math32.Min(x2-x1, y2-y1)/2)

	b = append(b, "M0,0H"...)
	b = appendNum(b, w)
	b = append(b, 'V')
	b = appendNum(b, ht)
	b = append(b, "H0V0Z"...)

	b = append(b, 'M')
	b = appendPoint(b, x1+r, y1)
	b = append(b, 'H')
	b = appendNum(b, x2-r)
	b = appendArc(b, r, x2, y1+r)
	b = append(b, 'V')
	b = appendNum(b, y2-r)
	b = appendArc(b, r, x2-r, y2)
	b = append(b, 'H')
	b = appendNum(b, x1+r)
	b = appendArc(b, r, x1, y2-r)
	b = append(b, 'V')
	b = appendNum(b, y1+r)
	b = appendArc(b, r, x1+r, y1)
	b = append(b, 'Z')
	return b
}

// appendArc appends a clockwise quarter circle arc of radius r to (x, y).
func appendArc(b []byte, r, x, y float32) []byte {
	b = append(b, 'A')
	b = appendPoint(b, r, r)
	b = append(b, " 0 0 1 "...)
	return appendPoint(b, x, y)
}

func appendPoint(b []byte, x, y float32) []byte {
	b = appendNum(b, x)
	b = append(b, ',')
	return appendNum(b, y)
}

// appendNum appends the shortest representation of v, writing
// negative zero and non-finite values as 0.
func appendNum(b []byte, v float32) []byte {
	if v == 0 || math32.IsNaN(v) || math32.IsInf(v, 0) {
		return append(b, '0')
	}
	return strconv.AppendFloat(b, float64(v), 'f', -1, 32)
}
