// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"cogentcore.org/spotlight/colors"
)

// WriteSVG writes a standalone SVG document rendering the given frame.
func WriteSVG(w io.Writer, f Frame) error {
	var b bytes.Buffer
	wd := string(appendNum(nil, f.Canvas.X))
	ht := string(appendNum(nil, f.Canvas.Y))
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`, wd, ht, wd, ht)
	b.WriteByte('\n')
	fmt.Fprintf(&b, `  <path d="%s" fill="%s" fill-rule="%s" opacity="%s"/>`,
		f.Path, colors.AsHex(f.Fill), FillRule, strconv.FormatFloat(float64(f.Opacity), 'f', -1, 32))
	b.WriteString("\n</svg>\n")
	_, err := w.Write(b.Bytes())
	return err
}

// SVG returns the standalone SVG document of [WriteSVG].
func SVG(f Frame) string {
	var b bytes.Buffer
	WriteSVG(&b, f)
	return b.String()
}
