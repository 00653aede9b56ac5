// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record,
// with the level name colored through termenv when [UseColor] is on
// and the output supports it.
type Handler struct {
	opts    slog.HandlerOptions
	out     *termenv.Output
	mu      *sync.Mutex
	pre     []byte // preformatted attributes from WithAttrs
	groups  []string
	noColor bool
}

// NewHandler returns a new [Handler] writing to w.
// If opts is nil, the default options are used.
func NewHandler(w io.Writer, opts *slog.HandlerOptions) *Handler {
	h := &Handler{
		out: termenv.NewOutput(w),
		mu:  &sync.Mutex{},
	}
	if opts != nil {
		h.opts = *opts
	}
	h.noColor = !UseColor || h.out.Profile == termenv.Ascii
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.opts.Level != nil {
		min = h.opts.Level.Level()
	}
	return level >= min
}

// Handle formats and writes the given record.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var b bytes.Buffer
	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format(time.TimeOnly))
		b.WriteByte(' ')
	}
	b.WriteString(h.level(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)
	b.Write(h.pre)
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, prefix, a)
		return true
	})
	b.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write(b.Bytes())
	return err
}

// level returns the possibly colored level name.
func (h *Handler) level(l slog.Level) string {
	s := l.String()
	if h.noColor {
		return s
	}
	var c termenv.Color
	switch {
	case l >= slog.LevelError:
		c = h.out.Color("1")
	case l >= slog.LevelWarn:
		c = h.out.Color("3")
	case l >= slog.LevelInfo:
		c = h.out.Color("4")
	default:
		c = h.out.Color("8")
	}
	return h.out.String(s).Foreground(c).Bold().String()
}

func writeAttr(b *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(b, key, ga)
		}
		return
	}
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// WithAttrs returns a new handler with the given attributes added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	b := bytes.NewBuffer(append([]byte{}, h.pre...))
	prefix := strings.Join(h.groups, ".")
	for _, a := range attrs {
		writeAttr(b, prefix, a)
	}
	nh.pre = b.Bytes()
	return &nh
}

// WithGroup returns a new handler with the given group appended.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}
