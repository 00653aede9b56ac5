// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx implements structured log handling and provides
// global log and print verbosity and color options.
package logx

import (
	"log/slog"
	"os"
)

var (
	// UserLevel is the verbosity [slog.Level] that the user has selected for
	// what logging and printing messages should be shown. Messages at
	// levels at or above this level will be shown. It should typically
	// be set through exec to the end user's preference. The default user
	// verbosity level is [slog.LevelInfo]. If the build tag "debug" is
	// specified, it is [slog.LevelDebug]. If the build tag "release" is
	// specified, it is [slog.LevelWarn].
	UserLevel = defaultUserLevel

	// UseColor is whether to use color in log messages. It is on by default.
	UseColor = true
)

// SetDefaultLogger sets the default logger to be a [Handler] with the
// level set to track [UserLevel]. It is called on startup by the
// spotlight command and should be called again after changing
// [UserLevel] or [UseColor].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &slog.HandlerOptions{Level: UserLevel})))
}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [Debug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
