// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package anim

import "slices"

// ListenerID identifies a listener added with [Value.AddListener].
type ListenerID int

type listener struct {
	id ListenerID
	f  func(v float32)
}

// Value is a scalar register that is advanced over time by a [Driver].
// Readers observe it through [Value.Value] and listeners; only the
// driver (and [Value.SetValue]) write it. A Value is not safe for
// concurrent use; all access must happen on the driver loop.
type Value struct {
	value     float32
	listeners []listener
	nextID    ListenerID

	// running is the animation currently driving this value, if any.
	running *animation
}

// NewValue returns a new [Value] with the given initial value.
func NewValue(v float32) *Value {
	return &Value{value: v}
}

// Value returns the current value.
func (v *Value) Value() float32 {
	return v.value
}

// IsAnimating returns whether an animation is currently driving the value.
func (v *Value) IsAnimating() bool {
	return v.running != nil
}

// SetValue stops any running animation on the value, which completes
// with [Result.Finished] false, and then sets the value and notifies
// the listeners.
func (v *Value) SetValue(x float32) {
	v.stop()
	v.set(x)
}

// Stop stops any running animation on the value, which completes
// with [Result.Finished] false, leaving the value unchanged.
func (v *Value) Stop() {
	v.stop()
}

// AddListener adds a function that is called with the new value
// every time the value changes. It returns an id for [Value.RemoveListener].
func (v *Value) AddListener(f func(v float32)) ListenerID {
	v.nextID++
	v.listeners = append(v.listeners, listener{id: v.nextID, f: f})
	return v.nextID
}

// RemoveListener removes the listener with the given id.
// Removing an unknown id is a no-op.
func (v *Value) RemoveListener(id ListenerID) {
	v.listeners = slices.DeleteFunc(v.listeners, func(l listener) bool {
		return l.id == id
	})
}

// NumListeners returns the number of registered listeners.
func (v *Value) NumListeners() int {
	return len(v.listeners)
}

// set sets the value and notifies the listeners.
func (v *Value) set(x float32) {
	v.value = x
	for _, l := range slices.Clone(v.listeners) {
		l.f(x)
	}
}

// stop stops the running animation, if any.
func (v *Value) stop() {
	if a := v.running; a != nil {
		v.running = nil
		a.end(false)
	}
}
