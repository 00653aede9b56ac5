// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type upper string

func (u *upper) UnmarshalText(b []byte) error {
	*u = upper(strings.ToUpper(string(b)))
	return nil
}

type inner struct {
	Ratio float32 `default:"0.25"`
}

type defaultsTest struct {
	Name    string        `default:"mask"`
	Enabled bool          `default:"true"`
	Count   int           `default:"300"`
	Size    uint8         `default:"7"`
	Wait    time.Duration `default:"150ms"`
	Mode    upper         `default:"linear"`
	Inner   inner
	NoTag   int
	hidden  int `default:"4"`
}

func TestSetFromDefaultTags(t *testing.T) {
	d := &defaultsTest{NoTag: 9}
	assert.NoError(t, SetFromDefaultTags(d))
	assert.Equal(t, "mask", d.Name)
	assert.True(t, d.Enabled)
	assert.Equal(t, 300, d.Count)
	assert.Equal(t, uint8(7), d.Size)
	assert.Equal(t, 150*time.Millisecond, d.Wait)
	assert.Equal(t, upper("LINEAR"), d.Mode)
	assert.Equal(t, float32(0.25), d.Inner.Ratio)
	assert.Equal(t, 9, d.NoTag)
	assert.Equal(t, 0, d.hidden)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	type bad struct {
		Count int `default:"many"`
	}
	err := SetFromDefaultTags(&bad{})
	assert.ErrorContains(t, err, "field Count")
	assert.Error(t, SetFromDefaultTags(3))
	assert.NoError(t, SetFromDefaultTags(nil))
}
