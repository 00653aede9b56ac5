// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"fmt"
	"strings"

	"cogentcore.org/spotlight/math32"
)

// EasingFunc maps linear time progress in [0, 1] to eased progress.
// It must return 0 for 0 and 1 for 1.
type EasingFunc func(t float32) float32

// Easings are the named easing curves that can be selected in
// configuration files.
type Easings int32

const (
	// EasingLinear is [Linear].
	EasingLinear Easings = iota

	// EasingEase is the standard ease curve, cubic-bezier(0.42, 0, 1, 1).
	EasingEase

	// EasingInQuad is [InQuad].
	EasingInQuad

	// EasingOutQuad is [OutQuad].
	EasingOutQuad

	// EasingInOutQuad is [InOutQuad].
	EasingInOutQuad

	// EasingInCubic is [InCubic].
	EasingInCubic

	// EasingOutCubic is [OutCubic].
	EasingOutCubic

	// EasingInOutCubic is [InOutCubic].
	EasingInOutCubic

	// EasingInOutSine is [InOutSine].
	EasingInOutSine

	// EasingBounce is [Bounce].
	EasingBounce

	easingsN
)

var easingNames = [easingsN]string{"linear", "ease", "in-quad", "out-quad", "in-out-quad",
	"in-cubic", "out-cubic", "in-out-cubic", "in-out-sine", "bounce"}

var ease = CubicBezier(0.42, 0, 1, 1)

// Func returns the [EasingFunc] for the easing.
func (e Easings) Func() EasingFunc {
	switch e {
	case EasingEase:
		return ease
	case EasingInQuad:
		return InQuad
	case EasingOutQuad:
		return OutQuad
	case EasingInOutQuad:
		return InOutQuad
	case EasingInCubic:
		return InCubic
	case EasingOutCubic:
		return OutCubic
	case EasingInOutCubic:
		return InOutCubic
	case EasingInOutSine:
		return InOutSine
	case EasingBounce:
		return Bounce
	}
	return Linear
}

// String returns the name of the easing.
func (e Easings) String() string {
	if e < 0 || e >= easingsN {
		return fmt.Sprintf("Easings(%d)", int32(e))
	}
	return easingNames[e]
}

// MarshalText implements [encoding.TextMarshaler].
func (e Easings) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Names are matched case-insensitively, and underscores may be
// used instead of dashes.
func (e *Easings) UnmarshalText(text []byte) error {
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(string(text))), "_", "-")
	for i, n := range easingNames {
		if n == s {
			*e = Easings(i)
			return nil
		}
	}
	return fmt.Errorf("anim.Easings: unknown easing %q", string(text))
}

// Linear is the identity easing.
func Linear(t float32) float32 { return t }

// InQuad accelerates from zero velocity.
func InQuad(t float32) float32 { return t * t }

// OutQuad decelerates to zero velocity.
func OutQuad(t float32) float32 { return t * (2 - t) }

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t float32) float32 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// InCubic accelerates from zero velocity.
func InCubic(t float32) float32 { return t * t * t }

// OutCubic decelerates to zero velocity.
func OutCubic(t float32) float32 {
	t--
	return t*t*t + 1
}

// InOutCubic accelerates until halfway, then decelerates.
func InOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	t = 2*t - 2
	return 1 + t*t*t/2
}

// InOutSine follows half a cosine wave.
func InOutSine(t float32) float32 {
	return (1 - math32.Cos(math32.Pi*t)) / 2
}

// Bounce bounces against the target a few times before settling.
func Bounce(t float32) float32 {
	const n, d = 7.5625, 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

// CubicBezier returns an [EasingFunc] for the CSS cubic-bezier curve with
// control points (x1, y1) and (x2, y2); x1 and x2 must be in [0, 1].
func CubicBezier(x1, y1, x2, y2 float32) EasingFunc {
	// polynomial coefficients for x(s) and y(s)
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float32) float32 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float32) float32 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float32) float32 { return (3*ax*s+2*bx)*s + cx }

	return func(t float32) float32 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		// Newton-Raphson, falling back to bisection
		s := t
		for range 8 {
			dx := sampleX(s) - t
			if math32.Abs(dx) < 1e-6 {
				return sampleY(s)
			}
			d := slopeX(s)
			if math32.Abs(d) < 1e-6 {
				break
			}
			s -= dx / d
		}
		lo, hi := float32(0), float32(1)
		s = t
		for range 32 {
			x := sampleX(s)
			if math32.Abs(x-t) < 1e-6 {
				break
			}
			if x < t {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return sampleY(s)
	}
}
