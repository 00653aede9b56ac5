// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"cogentcore.org/spotlight/anim"
	"cogentcore.org/spotlight/mask"
	"cogentcore.org/spotlight/raster"
	"cogentcore.org/spotlight/tour"
	"github.com/gdamore/tcell/v2"
)

// screenColor is the color of the screen under the mask.
var screenColor = color.RGBA{236, 239, 241, 255}

// terminal plays a tour in a terminal, drawing two pixels per cell
// with upper half block characters.
type terminal struct {
	screen tcell.Screen
	tour   *tour.Tour
	driver *anim.Driver
	player *tour.Player

	// last is the last frame drawn.
	last mask.Frame
}

func runTerm(ctx context.Context, args []string) error {
	fs := newFlags("term")
	if err := fs.Parse(args); err != nil {
		return err
	}
	filename, err := tourArg(fs)
	if err != nil {
		return err
	}
	t, err := tour.Open(filename)
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	tm := &terminal{screen: screen, tour: t, driver: anim.NewDriver()}
	tm.player = tour.NewPlayer(tm.fitted(), tm.driver, nil)
	return tm.run(ctx)
}

// fitted returns the tour scaled to the terminal pixels.
func (tm *terminal) fitted() *tour.Tour {
	w, h := tm.screen.Size()
	return tm.tour.Scaled(float32(w)/tm.tour.Canvas.X, float32(2*h)/tm.tour.Canvas.Y)
}

func (tm *terminal) run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := tm.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()
	tm.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if quit := tm.handle(ev); quit {
				return nil
			}
			tm.draw()
		case now := <-ticker.C:
			tm.driver.Tick(now.Sub(last))
			last = now
			tm.draw()
		}
	}
}

// handle handles the given event and returns whether to quit.
func (tm *terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRight, tcell.KeyEnter:
			tm.player.Next()
		case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
			tm.player.Prev()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ', 'l', 'n':
				tm.player.Next()
			case 'h', 'p':
				tm.player.Prev()
			}
		}
	case *tcell.EventResize:
		tm.player.SetTour(tm.fitted())
		tm.screen.Sync()
		tm.last = mask.Frame{}
	}
	return false
}

// draw draws the current frame if it changed.
func (tm *terminal) draw() {
	f, ok := tm.player.Controller.Frame()
	if !ok || f == tm.last {
		return
	}
	tm.last = f
	img, err := raster.Render(f, &raster.Options{Background: screenColor})
	if err != nil {
		return
	}
	tm.screen.Clear()
	w, h := tm.screen.Size()
	b := img.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			top := pixel(img, b, x, 2*y)
			bottom := pixel(img, b, x, 2*y+1)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			tm.screen.SetContent(x, y, '▀', nil, style)
		}
	}
	if st := tm.player.Step(); st != nil {
		label := fmt.Sprintf(" %d/%d %s ", tm.player.Index()+1, len(tm.tour.Steps), st.String())
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
		x := 0
		for _, r := range label {
			tm.screen.SetContent(x, h-1, r, nil, style)
			x++
		}
	}
	tm.screen.Show()
}

// pixel returns the terminal color of the given pixel.
func pixel(img *image.RGBA, b image.Rectangle, x, y int) tcell.Color {
	if !image.Pt(x, y).In(b) {
		return tcell.NewRGBColor(int32(screenColor.R), int32(screenColor.G), int32(screenColor.B))
	}
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
