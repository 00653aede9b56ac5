// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name     string
	Duration int
	Offset   float32
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "config.toml")
	in := &testStruct{Name: "intro", Duration: 300, Offset: 4}
	require.NoError(t, Save(in, fn))
	out := &testStruct{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)
}

func TestOpenFilesOverride(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	over := filepath.Join(dir, "over.toml")
	require.NoError(t, Save(&testStruct{Name: "base", Duration: 300}, base))
	b, err := WriteBytes(&struct{ Duration int }{500})
	require.NoError(t, err)
	out := &testStruct{}
	require.NoError(t, ReadBytes(out, b))
	assert.Equal(t, 500, out.Duration)

	require.NoError(t, Save(&struct{ Duration int }{500}, over))
	out = &testStruct{}
	require.NoError(t, OpenFiles(out, base, over))
	assert.Equal(t, "base", out.Name)
	assert.Equal(t, 500, out.Duration)
}

func TestReadError(t *testing.T) {
	out := &testStruct{}
	assert.Error(t, ReadBytes(out, []byte("Name = [")))
	assert.Error(t, Open(out, filepath.Join(t.TempDir(), "missing.toml")))
}
