// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"
	"time"

	"cogentcore.org/spotlight/anim"
	"cogentcore.org/spotlight/mask"
	"cogentcore.org/spotlight/tour"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(t *testing.T, w, h int) *terminal {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)

	tm := &terminal{screen: screen, tour: exampleTour(), driver: anim.NewDriver()}
	tm.player = tour.NewPlayer(tm.fitted(), tm.driver, nil)
	return tm
}

func TestTerminalKeys(t *testing.T) {
	tm := newTestTerminal(t, 39, 42)
	canvas, ok := tm.player.Controller.Canvas()
	require.True(t, ok)
	assert.InDelta(t, 39, canvas.X, 1e-3)
	assert.InDelta(t, 84, canvas.Y, 1e-3)

	assert.False(t, tm.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	assert.Equal(t, 1, tm.player.Index())
	assert.False(t, tm.handle(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))
	assert.Equal(t, 0, tm.player.Index())
	assert.False(t, tm.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.Equal(t, 3, tm.player.Index())

	assert.True(t, tm.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, tm.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestTerminalResize(t *testing.T) {
	tm := newTestTerminal(t, 39, 42)
	tm.driver.Tick(time.Second)
	tm.draw()
	assert.NotEqual(t, mask.Frame{}, tm.last)

	tm.screen.SetSize(78, 84)
	assert.False(t, tm.handle(tcell.NewEventResize(78, 84)))
	assert.Equal(t, mask.Frame{}, tm.last)
	canvas, ok := tm.player.Controller.Canvas()
	require.True(t, ok)
	assert.InDelta(t, 78, canvas.X, 1e-3)
	assert.InDelta(t, 168, canvas.Y, 1e-3)

	// the hole is scaled with the canvas
	tm.driver.Tick(time.Second)
	sc := exampleTour().Scaled(0.2, 168.0/844)
	want := sc.Config.Resolve(sc.Steps[0].Region())
	got := tm.player.Controller.Hole()
	assert.InDelta(t, want.TopLeft.X, got.TopLeft.X, 1e-3)
	assert.InDelta(t, want.BottomRight.Y, got.BottomRight.Y, 1e-3)
}
