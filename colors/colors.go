// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides named colors and parsing of CSS color
// strings for the mask backdrop.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"cogentcore.org/spotlight/math32"
)

// Transparent is fully transparent black.
var Transparent = color.RGBA{}

// AsRGBA returns the given color as an RGBA color
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromName returns the color value specified
// by the given CSS standard color name.
func FromName(name string) (color.RGBA, error) {
	c, ok := Map[name]
	if !ok {
		return color.RGBA{}, errors.New("colors.FromName: name not found: " + name)
	}
	return c, nil
}

// FromNRGBA returns the premultiplied color for the given
// non-premultiplied components.
func FromNRGBA(r, g, b, a uint8) color.RGBA {
	return AsRGBA(color.NRGBA{r, g, b, a})
}

// FromString returns a color value from the given string.
// It accepts hex values (#rgb, #rrggbb, #rrggbbaa), standard color
// names, "none", "transparent", rgb(r, g, b) and rgba(r, g, b, a)
// where a is either a 0-1 fraction or a 0-255 value, and the
// clearer-PCT and opaquer-PCT transformations applied to the
// given base color.
func FromString(str string, base color.Color) (color.RGBA, error) {
	lstr := strings.ToLower(strings.TrimSpace(str))
	if len(lstr) == 0 {
		return color.RGBA{}, errors.New("colors.FromString: empty color string")
	}
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgba(") || strings.HasPrefix(lstr, "rgb("):
		return fromRGBFunc(lstr)
	case strings.HasPrefix(lstr, "clearer-"), strings.HasPrefix(lstr, "opaquer-"):
		cmd, pctstr, _ := strings.Cut(lstr, "-")
		pct, err := strconv.ParseFloat(pctstr, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: error getting percent from %q: %w", pctstr, err)
		}
		if base == nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: base color must be provided for %s", cmd)
		}
		if cmd == "clearer" {
			return Clearer(base, float32(pct)), nil
		}
		return Opaquer(base, float32(pct)), nil
	}
	switch lstr {
	case "none", "off", "transparent":
		return Transparent, nil
	}
	return FromName(lstr)
}

func fromRGBFunc(lstr string) (color.RGBA, error) {
	_, args, _ := strings.Cut(lstr, "(")
	args = strings.TrimSuffix(args, ")")
	parts := strings.Split(args, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("colors.FromString: expected 3 or 4 components in %q", lstr)
	}
	var v [4]uint8
	v[3] = 255
	for i, p := range parts {
		p = strings.TrimSpace(p)
		f, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: invalid component %q in %q: %w", p, lstr, err)
		}
		switch {
		case strings.HasSuffix(p, "%"):
			f = f * 255 / 100
		case i == 3 && f <= 1:
			f *= 255
		}
		v[i] = uint8(math32.Clamp(math32.Round(float32(f)), 0, 255))
	}
	return FromNRGBA(v[0], v[1], v[2], v[3]), nil
}

// FromHex parses the given hex color string
// and returns the resulting premultiplied color.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b, a int
	a = 255
	var err error
	switch len(hex) {
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return color.RGBA{}, errors.New("colors.FromHex: could not process: " + hex)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q: %w", hex, err)
	}
	return FromNRGBA(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// string of non-premultiplied values, with the alpha component only
// included when it is not fully opaque.
func AsHex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}

// ApplyOpacity applies the given opacity (0-1) to the given color
// and returns the result. The color stays premultiplied.
func ApplyOpacity(c color.Color, opacity float32) color.RGBA {
	r := AsRGBA(c)
	o := math32.ClampNaN(opacity, 0, 1)
	if o == 1 {
		return r
	}
	scale := func(v uint8) uint8 {
		return uint8(math32.Round(float32(v) * o))
	}
	return color.RGBA{scale(r.R), scale(r.G), scale(r.B), scale(r.A)}
}

// Clearer returns a color that is the given percent (0-100)
// more transparent than the given color.
func Clearer(c color.Color, pct float32) color.RGBA {
	return ApplyOpacity(c, 1-pct/100)
}

// Opaquer returns a color that is the given percent (0-100)
// more opaque than the given color.
func Opaquer(c color.Color, pct float32) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	a := float32(n.A) + (255-float32(n.A))*math32.Clamp(pct, 0, 100)/100
	return FromNRGBA(n.R, n.G, n.B, uint8(math32.Round(a)))
}
