// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	var b bytes.Buffer
	l := slog.New(NewHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}))
	l.Debug("hidden")
	l.Info("mask ready", "width", 390)
	l.With("step", 2).WithGroup("hole").Warn("unexpected shape", "shape", "hexagon")
	out := b.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO mask ready width=390\n")
	assert.Contains(t, out, "WARN unexpected shape step=2 hole.shape=hexagon\n")
}

func TestDefaultLogger(t *testing.T) {
	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}
