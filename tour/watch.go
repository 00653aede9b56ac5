// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tour

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch watches the given tour file and calls the given function with
// the reloaded tour every time the file is written or replaced, until
// the context is done. Tours that fail to load are logged and skipped.
// The function is called on the watching goroutine. Watch returns
// nil when the context is done.
func Watch(ctx context.Context, filename string, fn func(t *Tour)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("tour.Watch: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(filename)
	if err != nil {
		return fmt.Errorf("tour.Watch: %w", err)
	}
	// editors often replace files instead of writing them,
	// so the directory is watched
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("tour.Watch: %w", err)
	}
	slog.Debug("tour.Watch: watching", "file", abs)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			t, err := Open(abs)
			if err != nil {
				slog.Error("tour.Watch: could not reload tour", "err", err)
				continue
			}
			slog.Info("tour.Watch: reloaded tour", "file", abs, "steps", len(t.Steps))
			fn(t)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("tour.Watch: watcher error", "err", err)
		}
	}
}
