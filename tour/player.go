// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tour

import (
	"log/slog"
	"time"

	"cogentcore.org/spotlight/anim"
	"cogentcore.org/spotlight/mask"
)

// Player plays a [Tour] through a [mask.Controller]. Like the controller,
// it must only be used from the goroutine that ticks the driver.
type Player struct {

	// Tour is the tour being played.
	Tour *Tour

	// Controller is the mask controller driven by the player.
	Controller *mask.Controller

	index int
}

// NewPlayer returns a new [Player] for the given tour, with a new
// [mask.Controller] on the given driver and shape (which may be nil).
// The canvas is set to the tour canvas and the first step is started.
func NewPlayer(t *Tour, drv *anim.Driver, shape mask.Shape) *Player {
	p := &Player{Tour: t, Controller: mask.NewController(t.Config, drv, shape)}
	p.Controller.SetCanvas(t.Canvas)
	p.Goto(0)
	return p
}

// Index returns the index of the current step.
func (p *Player) Index() int {
	return p.index
}

// Step returns the current step, or nil if the tour has no steps.
func (p *Player) Step() *Step {
	if p.index < 0 || p.index >= len(p.Tour.Steps) {
		return nil
	}
	return &p.Tour.Steps[p.index]
}

// Goto moves to the step at the given index, clamped to the valid range,
// and returns whether the index was in range.
func (p *Player) Goto(i int) bool {
	n := len(p.Tour.Steps)
	if n == 0 {
		return false
	}
	ok := i >= 0 && i < n
	p.index = min(max(i, 0), n-1)
	st := p.Step()
	slog.Debug("tour.Player: step", "index", p.index, "step", st.String())
	p.Controller.SetTarget(st.Region())
	return ok
}

// Next moves to the next step, wrapping around to the first step.
func (p *Player) Next() {
	if n := len(p.Tour.Steps); n > 0 {
		p.Goto((p.index + 1) % n)
	}
}

// Prev moves to the previous step, wrapping around to the last step.
func (p *Player) Prev() {
	if n := len(p.Tour.Steps); n > 0 {
		p.Goto((p.index + n - 1) % n)
	}
}

// SetTour replaces the tour being played, for example after the tour
// file changed. The configuration and canvas are applied immediately and
// the current step index is kept if it is still valid.
func (p *Player) SetTour(t *Tour) {
	p.Tour = t
	p.Controller.SetConfig(t.Config)
	p.Controller.SetCanvas(t.Canvas)
	p.Goto(p.index)
}

// Frames plays the whole tour on its own driver and returns the frames
// rendered every interval: each transition is followed by the given
// hold time at rest.
func Frames(t *Tour, interval, hold time.Duration) []mask.Frame {
	if interval <= 0 {
		interval = time.Second / 30
	}
	drv := anim.NewDriver()
	p := NewPlayer(t, drv, nil)
	var frames []mask.Frame
	capture := func() {
		if f, ok := p.Controller.Frame(); ok {
			frames = append(frames, f)
		}
	}
	for i := range t.Steps {
		if i > 0 {
			p.Goto(i)
		}
		capture()
		for p.Controller.State() == mask.Transitioning {
			drv.Tick(interval)
			capture()
		}
		for h := interval; h <= hold; h += interval {
			drv.Tick(interval)
			capture()
		}
	}
	return frames
}
