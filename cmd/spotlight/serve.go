// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"cogentcore.org/spotlight/preview"
	"cogentcore.org/spotlight/tour"
)

func runServe(ctx context.Context, args []string) error {
	fs := newFlags("serve")
	addr := fs.String("addr", "localhost:8080", "address to serve the preview on")
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
	return preview.New(t).ListenAndServe(ctx, *addr, filename)
}
