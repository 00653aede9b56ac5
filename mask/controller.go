// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"image/color"
	"log/slog"

	"cogentcore.org/spotlight/anim"
	"cogentcore.org/spotlight/math32"
)

// Shape is the rendered vector shape of a mask. The [Controller] updates
// it directly on every animation frame, outside of the regular render
// of the host (see [Controller.Frame]), so that a transition does not
// pay for a full update of the surrounding view on every frame.
type Shape interface {

	// SetPath sets the SVG path data of the shape.
	SetPath(d string)

	// SetOpacity sets the opacity of the shape.
	SetOpacity(opacity float32)
}

// Frame is the regular render output of a [Controller].
type Frame struct {

	// Canvas is the size of the rendering surface.
	Canvas math32.Vector2

	// Path is the mask path data, to be filled with the even-odd [FillRule].
	Path string

	// Opacity is the opacity of the whole mask.
	Opacity float32

	// Fill is the backdrop color.
	Fill color.RGBA
}

// States are the states of a [Controller].
type States int32

const (
	// Resting is when no transition is running.
	Resting States = iota

	// Transitioning is when the hole is animating toward a new target.
	Transitioning
)

// String returns the name of the state.
func (s States) String() string {
	if s == Transitioning {
		return "transitioning"
	}
	return "resting"
}

// Controller animates the hole of a mask from one highlighted region to
// the next. It owns two registers advanced by an [anim.Driver]: the
// transition progress, and the opacity used to fade the mask in on its
// first appearance.
//
// A Controller is not safe for concurrent use: it must only be used from
// the goroutine that ticks its driver (see [anim.Driver.Post]).
type Controller struct {

	// Config is the configuration. It is read at the start of each
	// transition; use [Controller.SetConfig] to change it.
	Config Config

	driver *anim.Driver
	shape  Shape
	fill   color.RGBA

	progress   *anim.Value
	opacity    *anim.Value
	progressID anim.ListenerID
	opacityID  anim.ListenerID

	canvas    math32.Vector2
	hasCanvas bool

	region    Region
	hasRegion bool

	// previous is the committed baseline, only changed when a transition
	// completes (or is retargeted, unless RetargetFromBaseline).
	previous Hole
	target   Hole

	// started is set once the first transition starts. The initial
	// centered baseline follows the canvas until then, or until the
	// canvas is first known if a transition started before that.
	started bool
	closed  bool
}

// NewController returns a new [Controller] driven by the given driver and
// updating the given shape, which may be nil if the host only renders
// [Controller.Frame]s. It subscribes to the progress and opacity registers
// until [Controller.Close] is called.
func NewController(cfg Config, driver *anim.Driver, shape Shape) *Controller {
	c := &Controller{
		Config:   cfg,
		driver:   driver,
		shape:    shape,
		fill:     cfg.Backdrop(),
		progress: anim.NewValue(0),
		opacity:  anim.NewValue(0),
	}
	c.progressID = c.progress.AddListener(func(float32) { c.pushPath() })
	c.opacityID = c.opacity.AddListener(func(o float32) {
		if c.shape != nil {
			c.shape.SetOpacity(o)
		}
	})
	return c
}

// SetConfig sets the configuration. If a region is targeted and it
// resolves to a different hole under the new configuration, a
// transition to that hole is started.
func (c *Controller) SetConfig(cfg Config) {
	c.Config = cfg
	c.fill = cfg.Backdrop()
	if c.closed || !c.hasRegion {
		return
	}
	if target := c.Config.Resolve(c.region); target != c.target {
		slog.Debug("mask.Controller: configuration changed the target", "region", c.region)
		c.transition(target)
	}
}

// SetTarget starts a transition to the given region, unless it resolves
// to the hole already targeted. The progress register is advanced to 1
// over the configured duration and, if the mask has not started fading
// in yet, so is the opacity register; the two complete independently.
// When the progress completes, the target becomes the new baseline and
// the progress register is reset to 0.
func (c *Controller) SetTarget(r Region) {
	if c.closed {
		return
	}
	target := c.Config.Resolve(r)
	same := c.hasRegion && target == c.target
	c.region = r
	c.hasRegion = true
	if same {
		return
	}
	slog.Debug("mask.Controller: new target", "region", r, "state", c.State())
	c.transition(target)
}

// transition starts a transition to the given hole.
func (c *Controller) transition(target Hole) {
	c.started = true
	if c.progress.IsAnimating() && !c.Config.RetargetFromBaseline {
		c.previous = c.Hole()
		c.target = target
		c.progress.SetValue(0)
	} else {
		c.target = target
		c.pushPath()
	}

	timing := c.Config.timing()
	c.driver.Start(c.progress, timing, c.progressDone)
	if c.opacity.Value() != 1 && !c.opacity.IsAnimating() {
		c.driver.Start(c.opacity, timing, nil)
	}
}

// progressDone commits a naturally completed transition.
func (c *Controller) progressDone(r anim.Result) {
	if !r.Finished || c.closed {
		return
	}
	c.previous = Morph(c.previous, c.target, 1)
	if c.progress.Value() == 1 {
		c.progress.SetValue(0)
	}
}

// SetCanvas sets the size of the rendering surface and immediately
// rebuilds the path at the current progress, without affecting any
// running transition. Negative sizes are treated as zero.
func (c *Controller) SetCanvas(size math32.Vector2) {
	if c.closed {
		return
	}
	c.canvas = finite2(size).Max(math32.Vector2{})
	if !c.started || !c.hasCanvas {
		c.previous = CenterHole(c.canvas)
		if !c.started {
			c.target = c.previous
		}
	}
	c.hasCanvas = true
	c.pushPath()
}

// pushPath sends the current path to the shape, once the canvas is known.
func (c *Controller) pushPath() {
	if c.shape == nil || !c.hasCanvas || c.closed {
		return
	}
	c.shape.SetPath(c.Path())
}

// Hole returns the hole currently shown.
func (c *Controller) Hole() Hole {
	return Morph(c.previous, c.target, c.progress.Value())
}

// Path returns the mask path currently shown.
func (c *Controller) Path() string {
	return Build(c.canvas, c.Hole())
}

// Frame returns the regular render output. It returns false until the
// canvas size is known, in which case nothing should be rendered.
func (c *Controller) Frame() (Frame, bool) {
	if !c.hasCanvas {
		return Frame{}, false
	}
	return Frame{Canvas: c.canvas, Path: c.Path(), Opacity: c.opacity.Value(), Fill: c.fill}, true
}

// State returns whether a transition is running.
func (c *Controller) State() States {
	if c.progress.IsAnimating() {
		return Transitioning
	}
	return Resting
}

// Previous returns the committed baseline hole.
func (c *Controller) Previous() Hole {
	return c.previous
}

// Target returns the hole of the current target region.
func (c *Controller) Target() Hole {
	return c.target
}

// Progress returns the value of the progress register.
func (c *Controller) Progress() float32 {
	return c.progress.Value()
}

// Opacity returns the value of the opacity register.
func (c *Controller) Opacity() float32 {
	return c.opacity.Value()
}

// Canvas returns the canvas size and whether it is known.
func (c *Controller) Canvas() (math32.Vector2, bool) {
	return c.canvas, c.hasCanvas
}

// Close stops any running animation and releases the register
// subscriptions. It is safe to call more than once.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.progress.Stop()
	c.opacity.Stop()
	c.progress.RemoveListener(c.progressID)
	c.opacity.RemoveListener(c.opacityID)
}
