// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spotlight renders and previews the spotlight mask of guided
// tours described in YAML or TOML files.
//
// Usage:
//
//	spotlight [-v | -vv | -q] <command> [flags] tour.yaml
//
// The commands are:
//
//	init   write an example tour file
//	svg    write one frame as an SVG document
//	png    write one frame as a PNG (or other image) file
//	gif    write the whole tour as an animated GIF
//	serve  serve a live browser preview, reloading the tour when it changes
//	term   play the tour in the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/spotlight/logx"
)

// command is a subcommand of the spotlight tool.
type command struct {
	name  string
	usage string
	run   func(ctx context.Context, args []string) error
}

// commands is set in init: each command looks up its
// usage in it through [newFlags].
var commands []command

func init() {
	commands = []command{
		{"init", "init [file]", runInit},
		{"svg", "svg [-step i] [-progress p] [-o file] tour", runSVG},
		{"png", "png [-step i] [-progress p] [-scale s] [-background color] -o file tour", runPNG},
		{"gif", "gif [-fps n] [-hold duration] [-scale s] [-background color] -o file tour", runGIF},
		{"serve", "serve [-addr address] tour", runServe},
		{"term", "term tour", runTerm},
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("spotlight", flag.ContinueOnError)
	fs.SetOutput(stderr)
	vv := fs.Bool("vv", false, "show debug messages")
	v := fs.Bool("v", false, "show informational messages")
	q := fs.Bool("q", false, "only show errors")
	noColor := fs.Bool("no-color", false, "do not use color in log messages")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: spotlight [-v | -vv | -q] [-no-color] <command> [flags] [args]")
		fmt.Fprintln(stderr, "\ncommands:")
		for _, c := range commands {
			fmt.Fprintln(stderr, "  spotlight", c.usage)
		}
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	logx.UseColor = !*noColor
	logx.SetDefaultLogger()

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}
	name := fs.Arg(0)
	for _, c := range commands {
		if c.name != name {
			continue
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := c.run(ctx, fs.Args()[1:]); err != nil {
			slog.Error(err.Error())
			return 1
		}
		return 0
	}
	fmt.Fprintf(stderr, "spotlight: unknown command %q\n", name)
	fs.Usage()
	return 2
}

// newFlags returns a new flag set for the given command.
func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("spotlight "+name, flag.ContinueOnError)
	for _, c := range commands {
		if c.name == name {
			fs.Usage = func() {
				fmt.Fprintln(fs.Output(), "usage: spotlight", c.usage)
				fs.PrintDefaults()
			}
		}
	}
	return fs
}

// tourArg returns the single tour file argument of a command.
func tourArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		fs.Usage()
		return "", fmt.Errorf("%s: expected one tour file, got %d arguments", fs.Name(), fs.NArg())
	}
	return fs.Arg(0), nil
}
