// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"fmt"
	"strings"

	"cogentcore.org/spotlight/math32"
)

// Shapes are the supported shapes of a highlighted region.
// Every shape resolves to the same [Hole] representation.
type Shapes int32

const (
	// Rectangle is a rectangle with optional rounded corners.
	Rectangle Shapes = iota

	// Circle is the smallest circle whose bounding square covers the region.
	Circle

	// RectangleAndKeep is a [Rectangle] for steps that keep the
	// highlighted element visible after the step.
	RectangleAndKeep

	// CircleAndKeep is a [Circle] for steps that keep the
	// highlighted element visible after the step.
	CircleAndKeep

	// ShapeUnknown is any unrecognized shape name. It is
	// resolved as a [Rectangle].
	ShapeUnknown

	shapesN
)

var shapeNames = [shapesN]string{"rectangle", "circle", "rectangle_and_keep", "circle_and_keep", "unknown"}

// String returns the name of the shape.
func (s Shapes) String() string {
	if s < 0 || s >= shapesN {
		return fmt.Sprintf("Shapes(%d)", int32(s))
	}
	return shapeNames[s]
}

// MarshalText implements [encoding.TextMarshaler].
func (s Shapes) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler]. An empty name is
// a [Rectangle] and an unrecognized name is [ShapeUnknown]; neither is
// an error, since an overlay must always render something.
func (s *Shapes) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	if name == "" {
		*s = Rectangle
		return nil
	}
	for i, n := range shapeNames[:ShapeUnknown] {
		if n == name {
			*s = Shapes(i)
			return nil
		}
	}
	*s = ShapeUnknown
	return nil
}

// base returns the canonical shape that s is drawn as.
func (s Shapes) base() Shapes {
	switch s {
	case Circle, CircleAndKeep:
		return Circle
	case Rectangle, RectangleAndKeep:
		return Rectangle
	}
	return ShapeUnknown
}

// Region describes the region of the interface to highlight.
// It is replaced as a whole whenever the highlighted region changes.
type Region struct {

	// Position is the top left corner of the region, in canvas coordinates.
	Position math32.Vector2

	// Size is the width and height of the region.
	Size math32.Vector2

	// Shape is the shape of the hole.
	Shape Shapes

	// CornerRadius is the corner radius of a [Rectangle] hole.
	CornerRadius float32

	// Offset expands the hole outward by a fixed margin on all sides.
	// If it is zero, the configured [Config.MaskOffset] is used.
	Offset float32
}

// String returns a compact description of the region for logging.
func (r Region) String() string {
	return fmt.Sprintf("%s at %v size %v", r.Shape, r.Position, r.Size)
}
