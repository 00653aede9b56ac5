// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tour

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch(t *testing.T) {
	filename := writeFile(t, "tour.yaml", tourYAML)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tours := make(chan *Tour, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, filename, func(tr *Tour) {
			select {
			case tours <- tr:
			default:
			}
		})
	}()

	changed := tourYAML + `  - name: tabs
    position: {x: 0, y: 780}
    size: {x: 390, y: 64}
`
	// the watcher may not be registered yet, so keep writing until it reports
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case tr := <-tours:
			if len(tr.Steps) != 3 {
				continue
			}
			assert.Equal(t, "tabs", tr.Steps[2].Name)
			cancel()
			assert.NoError(t, <-done)
			return
		case <-tick.C:
			require.NoError(t, os.WriteFile(filename, []byte(changed), 0666))
		case <-ctx.Done():
			t.Fatal("timed out waiting for the tour to reload")
		}
	}
}
