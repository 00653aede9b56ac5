// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverLinear(t *testing.T) {
	d := NewDriver()
	v := NewValue(0)
	var done []Result
	d.Start(v, Timing{To: 1, Duration: 100 * time.Millisecond}, func(r Result) { done = append(done, r) })
	assert.Equal(t, 1, d.Running())

	d.Tick(25 * time.Millisecond)
	assert.InDelta(t, 0.25, v.Value(), 1e-6)
	d.Tick(50 * time.Millisecond)
	assert.InDelta(t, 0.75, v.Value(), 1e-6)
	assert.Empty(t, done)

	d.Tick(50 * time.Millisecond)
	assert.Equal(t, float32(1), v.Value())
	assert.Equal(t, []Result{{Finished: true}}, done)
	assert.Equal(t, 0, d.Running())
	assert.False(t, v.IsAnimating())

	d.Tick(50 * time.Millisecond)
	assert.Len(t, done, 1)
}

func TestDriverFromCurrentValue(t *testing.T) {
	d := NewDriver()
	v := NewValue(0.5)
	d.Start(v, Timing{To: 1, Duration: 100 * time.Millisecond, Easing: InQuad}, nil)
	d.Tick(50 * time.Millisecond)
	assert.InDelta(t, 0.5+0.5*0.25, v.Value(), 1e-6)
}

func TestDriverRestartStopsPrevious(t *testing.T) {
	d := NewDriver()
	v := NewValue(0)
	var first, second []Result
	d.Start(v, Timing{To: 1, Duration: 100 * time.Millisecond}, func(r Result) { first = append(first, r) })
	d.Tick(50 * time.Millisecond)
	d.Start(v, Timing{To: 1, Duration: 100 * time.Millisecond}, func(r Result) { second = append(second, r) })
	assert.Equal(t, []Result{{Finished: false}}, first)
	assert.Equal(t, 1, d.Running())

	d.Tick(50 * time.Millisecond)
	assert.InDelta(t, 0.75, v.Value(), 1e-6)
	d.Tick(50 * time.Millisecond)
	assert.Equal(t, []Result{{Finished: true}}, second)
	assert.Len(t, first, 1)
}

func TestDriverIndependentCompletion(t *testing.T) {
	d := NewDriver()
	a, b := NewValue(0), NewValue(0)
	var order []string
	d.Start(a, Timing{To: 1, Duration: 10 * time.Millisecond}, func(Result) { order = append(order, "a") })
	d.Start(b, Timing{To: 1, Duration: 30 * time.Millisecond}, func(Result) { order = append(order, "b") })
	d.Tick(20 * time.Millisecond)
	assert.Equal(t, []string{"a"}, order)
	assert.Equal(t, float32(1), a.Value())
	d.Tick(20 * time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestDriverZeroDuration(t *testing.T) {
	d := NewDriver()
	v := NewValue(0)
	finished := false
	d.Start(v, Timing{To: 1}, func(r Result) { finished = r.Finished })
	assert.Equal(t, float32(0), v.Value())
	d.Tick(0)
	assert.True(t, finished)
	assert.Equal(t, float32(1), v.Value())
}

func TestDriverStartFromDone(t *testing.T) {
	d := NewDriver()
	v := NewValue(0)
	runs := 0
	var again func(Result)
	again = func(r Result) {
		runs++
		if runs < 3 {
			v.SetValue(0)
			d.Start(v, Timing{To: 1, Duration: time.Millisecond}, again)
		}
	}
	d.Start(v, Timing{To: 1, Duration: time.Millisecond}, again)
	for range 5 {
		d.Tick(time.Millisecond)
	}
	assert.Equal(t, 3, runs)
	assert.Equal(t, 0, d.Running())
}

func TestDriverRun(t *testing.T) {
	d := NewDriver()
	v := NewValue(0)
	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})
	d.Post(func() {
		d.Start(v, Timing{To: 1, Duration: 20 * time.Millisecond}, func(r Result) {
			if r.Finished {
				close(finished)
			}
		})
	})
	errc := make(chan error, 1)
	go func() { errc <- d.Run(ctx, time.Millisecond) }()
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("animation did not finish")
	}
	cancel()
	require.ErrorIs(t, <-errc, context.Canceled)
	assert.Equal(t, float32(1), v.Value())
}

func TestDriverPostWait(t *testing.T) {
	d := NewDriver()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- d.Run(ctx, time.Millisecond) }()

	ran := false
	require.NoError(t, d.PostWait(context.Background(), func() { ran = true }))
	assert.True(t, ran)

	cancel()
	require.ErrorIs(t, <-errc, context.Canceled)
	<-d.Stopped()
	// the queue is filled so that posting would block without the loop
	for range 64 {
		d.Post(func() {})
	}
	assert.ErrorIs(t, d.PostWait(context.Background(), func() {}), ErrStopped)

	short, stop := context.WithTimeout(context.Background(), time.Millisecond)
	defer stop()
	assert.Error(t, d.PostWait(short, func() {}))
}
