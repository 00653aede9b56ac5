// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueListeners(t *testing.T) {
	v := NewValue(0)
	var got []float32
	id := v.AddListener(func(x float32) { got = append(got, x) })
	other := v.AddListener(func(x float32) {})
	assert.Equal(t, 2, v.NumListeners())

	v.SetValue(0.5)
	v.SetValue(1)
	assert.Equal(t, []float32{0.5, 1}, got)
	assert.Equal(t, float32(1), v.Value())

	v.RemoveListener(id)
	v.RemoveListener(id)
	v.SetValue(0)
	assert.Equal(t, []float32{0.5, 1}, got)
	assert.Equal(t, 1, v.NumListeners())
	v.RemoveListener(other)
	assert.Equal(t, 0, v.NumListeners())
}

func TestSetValueStopsAnimation(t *testing.T) {
	d := NewDriver()
	v := NewValue(0)
	var res []Result
	d.Start(v, Timing{To: 1, Duration: 100}, func(r Result) { res = append(res, r) })
	assert.True(t, v.IsAnimating())
	v.SetValue(0.25)
	assert.False(t, v.IsAnimating())
	assert.Equal(t, []Result{{Finished: false}}, res)
	d.Tick(1000)
	assert.Equal(t, float32(0.25), v.Value())
	assert.Equal(t, 0, d.Running())
}

func TestValueStop(t *testing.T) {
	d := NewDriver()
	v := NewValue(0)
	calls := 0
	v.AddListener(func(float32) { calls++ })
	var res Result
	d.Start(v, Timing{To: 1, Duration: 100}, func(r Result) { res = r })
	d.Tick(50)
	assert.Equal(t, 1, calls)
	v.Stop()
	assert.False(t, res.Finished)
	assert.Equal(t, 1, calls)
	assert.InDelta(t, 0.5, v.Value(), 1e-6)
	v.Stop()
}
