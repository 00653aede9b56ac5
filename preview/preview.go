// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package preview serves a live browser preview of a tour: the mask is
// rendered as an SVG path on the page, and every frame of its animation
// is streamed over a WebSocket connection.
package preview

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"cogentcore.org/spotlight/anim"
	"cogentcore.org/spotlight/colors"
	"cogentcore.org/spotlight/mask"
	"cogentcore.org/spotlight/tour"
	"github.com/gorilla/websocket"
)

//go:embed index.html
var indexHTML []byte

// Message is the state of the mask sent to clients on every change.
type Message struct {
	Path    string  `json:"d"`
	Opacity float32 `json:"opacity"`
	Fill    string  `json:"fill"`
	Width   float32 `json:"width"`
	Height  float32 `json:"height"`
	Step    int     `json:"step"`
	Name    string  `json:"name"`
}

// Server serves the preview of a tour. It is the [mask.Shape] of the
// mask controller of its player, so every animation frame is sent to
// the clients as soon as the driver produces it.
type Server struct {

	// Interval is the interval between animation ticks.
	Interval time.Duration

	driver   *anim.Driver
	player   *tour.Player
	upgrader websocket.Upgrader

	// path and opacity are only accessed on the driver loop.
	path    string
	opacity float32

	mu      sync.Mutex
	clients map[*client]struct{}
}

// client is one connected WebSocket client.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// New returns a new [Server] for the given tour.
func New(t *tour.Tour) *Server {
	s := &Server{
		Interval: 16 * time.Millisecond,
		driver:   anim.NewDriver(),
		clients:  map[*client]struct{}{},
	}
	s.player = tour.NewPlayer(t, s.driver, s)
	return s
}

// SetPath implements [mask.Shape].
func (s *Server) SetPath(d string) {
	s.path = d
	s.broadcast()
}

// SetOpacity implements [mask.Shape].
func (s *Server) SetOpacity(opacity float32) {
	s.opacity = opacity
	s.broadcast()
}

// message returns the current message. It must be called on the driver loop.
func (s *Server) message() Message {
	m := Message{Path: s.path, Opacity: s.opacity}
	if s.player == nil {
		return m
	}
	if f, ok := s.player.Controller.Frame(); ok {
		m.Fill = colors.AsHex(f.Fill)
		m.Width, m.Height = f.Canvas.X, f.Canvas.Y
	}
	m.Step = s.player.Index()
	if st := s.player.Step(); st != nil {
		m.Name = st.String()
	}
	return m
}

// broadcast sends the current message to every client.
// It must be called on the driver loop.
func (s *Server) broadcast() {
	if s.player == nil {
		return
	}
	b, err := json.Marshal(s.message())
	if err != nil {
		slog.Error("preview: could not encode message", "err", err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		c.queue(b)
	}
}

// queue queues the message for sending. Every message carries the
// whole state, so if the client is too slow to keep up the oldest
// queued message is dropped to make room for the latest one.
// It must be called with the server lock held.
func (c *client) queue(b []byte) {
	for {
		select {
		case c.send <- b:
			return
		default:
		}
		select {
		case <-c.send:
		default:
		}
	}
}

// Do runs the given function on the driver loop and waits for it to
// return. It returns an error without waiting if the context is done
// or the driver loop (see [Server.Loop]) has returned.
func (s *Server) Do(ctx context.Context, f func(p *tour.Player)) error {
	return s.driver.PostWait(ctx, func() { f(s.player) })
}

// SetTour replaces the tour, for example after the tour file changed.
func (s *Server) SetTour(t *tour.Tour) {
	s.driver.Post(func() {
		s.player.SetTour(t)
		s.broadcast()
	})
}

// Loop runs the driver loop until the context is done.
func (s *Server) Loop(ctx context.Context) error {
	return s.driver.Run(ctx, s.Interval)
}

// Handler returns the HTTP handler of the preview:
//
//	GET /           the preview page
//	GET /ws         the frame stream, which accepts "next", "prev" and "goto N"
//	GET /frame.svg  the current frame as a standalone SVG document
//	POST /next      moves to the next step
//	POST /prev      moves to the previous step
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	mux.HandleFunc("GET /ws", s.serveWS)
	mux.HandleFunc("GET /frame.svg", func(w http.ResponseWriter, r *http.Request) {
		var f mask.Frame
		var ok bool
		if err := s.Do(r.Context(), func(p *tour.Player) { f, ok = p.Controller.Frame() }); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		if !ok {
			http.Error(w, "canvas size not known", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "image/svg+xml")
		mask.WriteSVG(w, f)
	})
	mux.HandleFunc("POST /next", s.step((*tour.Player).Next))
	mux.HandleFunc("POST /prev", s.step((*tour.Player).Prev))
	return mux
}

// step returns a handler running the given player method.
func (s *Server) step(f func(p *tour.Player)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Do(r.Context(), f); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("preview: could not upgrade connection", "err", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 64)}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	slog.Info("preview: client connected", "remote", r.RemoteAddr)

	s.driver.Post(func() {
		b, err := json.Marshal(s.message())
		if err != nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.clients[c]; ok {
			c.queue(b)
		}
	})

	go c.writeLoop()
	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		close(c.send)
		s.mu.Unlock()
		slog.Info("preview: client disconnected", "remote", r.RemoteAddr)
	}()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("preview: read error", "err", err)
			}
			return
		}
		if err := s.command(string(msg)); err != nil {
			slog.Warn("preview: invalid command", "command", string(msg), "err", err)
		}
	}
}

// writeLoop writes queued messages until the send channel is closed.
func (c *client) writeLoop() {
	defer c.conn.Close()
	for b := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
			slog.Debug("preview: write error", "err", err)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// command runs a command sent by a client.
func (s *Server) command(cmd string) error {
	name, arg, _ := strings.Cut(strings.TrimSpace(cmd), " ")
	switch name {
	case "next":
		s.driver.Post(func() { s.player.Next() })
	case "prev":
		s.driver.Post(func() { s.player.Prev() })
	case "goto":
		i, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return fmt.Errorf("invalid step index: %w", err)
		}
		s.driver.Post(func() { s.player.Goto(i) })
	default:
		return fmt.Errorf("unknown command %q", name)
	}
	return nil
}

// ListenAndServe serves the preview on the given address until the
// context is done. If filename is not empty, the tour is reloaded
// whenever that file changes.
func (s *Server) ListenAndServe(ctx context.Context, addr, filename string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	go s.Loop(ctx)
	if filename != "" {
		go func() {
			if err := tour.Watch(ctx, filename, s.SetTour); err != nil {
				slog.Error("preview: could not watch tour", "err", err)
			}
		}()
	}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdown)
	}()
	slog.Info("preview: serving", "addr", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
