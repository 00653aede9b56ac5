// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"cogentcore.org/spotlight/math32"
)

// Morph returns the hole at the given progress between the previous and
// target holes. Progress is clamped to [0, 1] (NaN is 0) and is expected to
// already be eased. Corners and radius are interpolated linearly, with no
// regard to the shapes the holes were resolved from. If the holes are equal,
// or progress is 1, target is returned as is.
func Morph(previous, target Hole, progress float32) Hole {
	if previous == target {
		return target
	}
	p := math32.ClampNaN(progress, 0, 1)
	switch p {
	case 0:
		return previous
	case 1:
		return target
	}
	return Hole{
		TopLeft:     previous.TopLeft.Lerp(target.TopLeft, p),
		BottomRight: previous.BottomRight.Lerp(target.BottomRight, p),
		Radius:      math32.Lerp(previous.Radius, target.Radius, p),
	}
}

// MorphPath returns the mask path [Build]s for the canvas with
// the hole [Morph]ed to the given progress.
func MorphPath(canvas math32.Vector2, previous, target Hole, progress float32) string {
	return Build(canvas, Morph(previous, target, progress))
}
