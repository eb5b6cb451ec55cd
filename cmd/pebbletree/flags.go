// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --depth, --bank, --preset, --print, --format, --verbose, --version, --no-mouse

package main

import (
	"flag"
	"io"
)

type cliArgs struct {
	depth   int
	bank    int
	preset  string
	print   bool
	format  string
	verbose bool
	version bool
	noMouse bool
	scripts []string
}

// parseFlags parses args (without the program name).
func parseFlags(args []string, stderr io.Writer) (cliArgs, error) {
	var a cliArgs
	fs := flag.NewFlagSet("pebbletree", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&a.depth, "depth", 0, "Tree depth, 2-5 (default from config or preset)")
	fs.IntVar(&a.bank, "bank", 0, "Starting pebbles, 1-32 (default from config or preset)")
	fs.StringVar(&a.preset, "preset", "", "Named preset (e.g. sapling, oak, forest)")
	fs.BoolVar(&a.print, "print", false, "Replay move scripts (files or stdin) and print a report")
	fs.StringVar(&a.format, "format", "text", "Print mode output: text or json")
	fs.BoolVar(&a.verbose, "verbose", false, "Debug logging (to ~/.pebbletree/debug.log when interactive)")
	fs.BoolVar(&a.version, "version", false, "Show version and exit")
	fs.BoolVar(&a.noMouse, "no-mouse", false, "Disable mouse capture")

	if err := fs.Parse(args); err != nil {
		return a, err
	}
	a.scripts = fs.Args()
	return a, nil
}
