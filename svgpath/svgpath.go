// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgpath parses and flattens the subset of SVG path data
// produced by the mask package: move, line, horizontal, vertical,
// elliptical arc and close commands, in absolute and relative forms.
package svgpath

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Cmds are the supported path commands.
type Cmds byte

const (
	// move pen, abs coords
	CmdM Cmds = 'M'
	// move pen, rel coords
	Cmdm Cmds = 'm'
	// lineto, abs
	CmdL Cmds = 'L'
	// lineto, rel
	Cmdl Cmds = 'l'
	// horizontal lineto, abs
	CmdH Cmds = 'H'
	// horizontal lineto, rel
	Cmdh Cmds = 'h'
	// vertical lineto, abs
	CmdV Cmds = 'V'
	// vertical lineto, rel
	Cmdv Cmds = 'v'
	// elliptical arc, abs
	CmdA Cmds = 'A'
	// elliptical arc, rel
	Cmda Cmds = 'a'
	// close path
	CmdZ Cmds = 'Z'
	// close path
	Cmdz Cmds = 'z'
)

// NArgs returns the number of numbers each instance of the command takes,
// or -1 for an unsupported command.
func (c Cmds) NArgs() int {
	switch c {
	case CmdM, Cmdm, CmdL, Cmdl:
		return 2
	case CmdH, Cmdh, CmdV, Cmdv:
		return 1
	case CmdA, Cmda:
		return 7
	case CmdZ, Cmdz:
		return 0
	}
	return -1
}

// IsRel returns whether the command uses relative coordinates.
func (c Cmds) IsRel() bool {
	return c >= 'a' && c <= 'z'
}

// Abs returns the absolute form of the command.
func (c Cmds) Abs() Cmds {
	if c.IsRel() {
		return c - 'a' + 'A'
	}
	return c
}

// String returns the command letter.
func (c Cmds) String() string {
	return string(rune(c))
}

// Command is one path command with its arguments. Implicitly repeated
// commands are expanded into separate Commands, so Args always has
// exactly [Cmds.NArgs] numbers.
type Command struct {
	Cmd  Cmds
	Args []float32
}

// String returns the command in path data syntax.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Cmd.String())
	for i, a := range c.Args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(float64(a), 'f', -1, 32))
	}
	return b.String()
}

// Path is parsed path data.
type Path []Command

// Topology returns the sequence of command letters of the path,
// which identifies its structure independently of its numbers.
func (p Path) Topology() string {
	b := make([]byte, len(p))
	for i, c := range p {
		b[i] = byte(c.Cmd)
	}
	return string(b)
}

// String returns the path in path data syntax.
func (p Path) String() string {
	s := make([]string, len(p))
	for i, c := range p {
		s[i] = c.String()
	}
	return strings.Join(s, " ")
}

// Parse parses the given path data. Numbers may be separated by
// whitespace, commas, signs, or a second decimal point, and commands may
// be implicitly repeated; a repeated moveto is a lineto.
func Parse(d string) (Path, error) {
	var p Path
	var cur Cmds
	var args []float32
	nargs := 0

	flush := func() error {
		if cur == 0 {
			if len(args) > 0 {
				return fmt.Errorf("svgpath.Parse: number before first command")
			}
			return nil
		}
		if nargs == 0 {
			if len(args) > 0 {
				return fmt.Errorf("svgpath.Parse: command %v takes no numbers, got %d", cur, len(args))
			}
			p = append(p, Command{Cmd: cur})
			return nil
		}
		if len(args) == 0 || len(args)%nargs != 0 {
			return fmt.Errorf("svgpath.Parse: command %v takes a multiple of %d numbers, got %d", cur, nargs, len(args))
		}
		cmd := cur
		for i := 0; i < len(args); i += nargs {
			p = append(p, Command{Cmd: cmd, Args: args[i : i+nargs : i+nargs]})
			switch cmd {
			case CmdM:
				cmd = CmdL
			case Cmdm:
				cmd = Cmdl
			}
		}
		return nil
	}

	i := 0
	for i < len(d) {
		r := rune(d[i])
		switch {
		case unicode.IsSpace(r) || r == ',':
			i++
		case unicode.IsLetter(r) && r != 'e' && r != 'E':
			if err := flush(); err != nil {
				return nil, err
			}
			cur = Cmds(r)
			nargs = cur.NArgs()
			if nargs < 0 {
				return nil, fmt.Errorf("svgpath.Parse: unsupported command %q", r)
			}
			args = nil
			i++
		default:
			n, end, err := scanNumber(d, i)
			if err != nil {
				return nil, err
			}
			args = append(args, n)
			i = end
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return p, nil
}

// scanNumber scans the number starting at d[i] and returns it with the
// index just past it.
func scanNumber(d string, i int) (float32, int, error) {
	st := i
	if i < len(d) && (d[i] == '-' || d[i] == '+') {
		i++
	}
	gotDec := false
	gotExp := false
scan:
	for i < len(d) {
		c := d[i]
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !gotDec && !gotExp:
			gotDec = true
		case (c == 'e' || c == 'E') && !gotExp && i > st:
			gotExp = true
			if i+1 < len(d) && (d[i+1] == '-' || d[i+1] == '+') {
				i++
			}
		default:
			break scan
		}
		i++
	}
	if i == st {
		return 0, i, fmt.Errorf("svgpath.Parse: unexpected character %q at %d", d[i], i)
	}
	v, err := strconv.ParseFloat(d[st:i], 32)
	if err != nil {
		return 0, i, fmt.Errorf("svgpath.Parse: invalid number %q: %w", d[st:i], err)
	}
	return float32(v), i, nil
}
