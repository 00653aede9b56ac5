// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mask provides the spotlight mask of a guided tour: a
// translucent backdrop covering a canvas with a single hole cut out
// around the highlighted region.
//
// A [Region] is resolved to a [Hole], a rounded rectangle that also
// represents circles, so that any two holes can be interpolated with
// [Morph]. [Build] turns a hole into SVG path data with a constant
// command sequence, to be filled with the even-odd [FillRule].
// A [Controller] animates the hole from one region to the next using
// an [anim.Driver].
package mask
