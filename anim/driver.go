// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package anim provides a single-threaded, tick-driven animation driver
// that advances [Value] registers toward targets with easing curves.
package anim

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"cogentcore.org/spotlight/base/errors"
	"cogentcore.org/spotlight/math32"
)

// ErrStopped is returned by [Driver.PostWait] once the driver loop has returned.
var ErrStopped = errors.New("anim: driver loop stopped")

// Result is passed to the completion function of an animation.
type Result struct {
	// Finished is true if the animation reached its target value,
	// and false if it was stopped before that.
	Finished bool
}

// Timing describes an animation of a [Value] from its current value
// to a target value over a duration, shaped by an easing function.
type Timing struct {

	// To is the target value.
	To float32

	// Duration is how long it takes to reach the target.
	// A non-positive duration reaches the target on the next tick.
	Duration time.Duration

	// Easing maps linear time progress in [0, 1] to eased progress.
	// If nil, [Linear] is used.
	Easing EasingFunc
}

// animation is one running [Timing] on a [Value].
type animation struct {
	value   *Value
	from    float32
	timing  Timing
	elapsed time.Duration
	done    func(Result)
	ended   bool
}

func (a *animation) end(finished bool) {
	if a.ended {
		return
	}
	a.ended = true
	if a.done != nil {
		a.done(Result{Finished: finished})
	}
}

// Driver advances animations once per tick. It owns no goroutines
// unless [Driver.Run] is called; all animation state is only touched
// from the goroutine calling [Driver.Tick] or running [Driver.Run].
type Driver struct {
	anims  []*animation
	events chan func()

	stopped  chan struct{}
	stopOnce sync.Once
}

// NewDriver returns a new [Driver].
func NewDriver() *Driver {
	return &Driver{events: make(chan func(), 64), stopped: make(chan struct{})}
}

// Start starts animating the given value according to the given timing,
// beginning at the value's current value. Any animation already running
// on the value is stopped first, and its done function is called with
// [Result.Finished] false. The done function, which may be nil, is called
// once when the animation finishes or is stopped.
func (d *Driver) Start(v *Value, t Timing, done func(Result)) {
	v.stop()
	if t.Easing == nil {
		t.Easing = Linear
	}
	a := &animation{value: v, from: v.value, timing: t, done: done}
	v.running = a
	d.anims = append(d.anims, a)
}

// Running returns the number of animations that are currently running.
func (d *Driver) Running() int {
	n := 0
	for _, a := range d.anims {
		if !a.ended {
			n++
		}
	}
	return n
}

// Tick advances every running animation by the given elapsed time.
// Values are updated (and their listeners notified) first, and then
// the done functions of the animations that reached their target are
// called, in the order the animations were started.
func (d *Driver) Tick(dt time.Duration) {
	var finished []*animation
	for _, a := range slices.Clone(d.anims) {
		if a.ended {
			continue
		}
		a.elapsed += dt
		frac := float32(1)
		if a.timing.Duration > 0 {
			frac = math32.Clamp(float32(a.elapsed)/float32(a.timing.Duration), 0, 1)
		}
		val := a.timing.To
		if frac < 1 {
			val = math32.Lerp(a.from, a.timing.To, a.timing.Easing(frac))
		}
		a.value.set(val)
		if frac >= 1 {
			finished = append(finished, a)
		}
	}
	for _, a := range finished {
		if a.value.running == a {
			a.value.running = nil
		}
	}
	d.anims = slices.DeleteFunc(d.anims, func(a *animation) bool {
		return a.ended || slices.Contains(finished, a)
	})
	for _, a := range finished {
		a.end(true)
	}
}

// Post queues the given function to be run on the driver loop
// started by [Driver.Run]. It is safe to call from any goroutine,
// and is the only way other goroutines should interact with values
// and controllers driven by a running driver.
func (d *Driver) Post(f func()) {
	d.events <- f
}

// PostWait runs the given function on the driver loop and waits for it
// to return. It returns early with the context error if the context is
// done first, or with [ErrStopped] if the loop has returned, in which
// case the function may not run at all.
func (d *Driver) PostWait(ctx context.Context, f func()) error {
	done := make(chan struct{})
	g := func() {
		defer close(done)
		f()
	}
	select {
	case d.events <- g:
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stopped:
		return ErrStopped
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stopped:
		select {
		case <-done:
			return nil
		default:
			return ErrStopped
		}
	}
}

// Stopped returns a channel that is closed once [Driver.Run] has returned.
func (d *Driver) Stopped() <-chan struct{} {
	return d.stopped
}

// Run runs the driver loop, ticking all animations at the given
// interval and running posted functions in between ticks, until the
// context is done. It returns the context error. A driver loop can only
// be run once.
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	defer d.stopOnce.Do(func() { close(d.stopped) })
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	slog.Debug("anim.Driver: running", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case f := <-d.events:
			f()
		case now := <-ticker.C:
			d.Tick(now.Sub(last))
			last = now
		}
	}
}
