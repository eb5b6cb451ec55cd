// ABOUTME: CLI entry point for pebbletree with terminal crash recovery
// ABOUTME: Parses flags, loads config and presets, dispatches to interactive or print mode

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	// termfix must be imported before any package that imports bubbletea.
	// It fixes the lipgloss background in its init(), preventing BubbleTea's
	// init from sending OSC 10/11 queries whose replies leak into input.
	_ "github.com/mauromedda/pebbletree/internal/termfix"

	"github.com/mauromedda/pebbletree/internal/config"
	"github.com/mauromedda/pebbletree/internal/keybindings"
	pblog "github.com/mauromedda/pebbletree/internal/log"
	"github.com/mauromedda/pebbletree/internal/mode/interactive/btea"
	"github.com/mauromedda/pebbletree/internal/mode/print"
	"github.com/mauromedda/pebbletree/internal/session"
	"github.com/mauromedda/pebbletree/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	defer terminal.RestoreOnPanic()

	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("pebbletree %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration and dispatches to the selected mode.
func run(args cliArgs) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	interactive := !args.print && terminal.Interactive(os.Stdin, os.Stdout)
	if args.verbose {
		pblog.SetLevel(pblog.LevelDebug)
		if interactive {
			// The TUI owns the screen; debug output goes to a file.
			closeLog, err := pblog.OpenFile(config.LogFile())
			if err != nil {
				return fmt.Errorf("opening debug log: %w", err)
			}
			defer closeLog()
		}
	}

	cfg, err := config.LoadAll(cwd, buildOverrides(args))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	presets, err := config.LoadPresets(config.PresetsFiles(cwd)...)
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}
	depth, bank, err := cfg.GameSize(presets)
	if err != nil {
		return err
	}
	pblog.Debug("config: depth=%d bank=%d preset=%q interactive=%v", depth, bank, cfg.Preset, interactive)

	if !interactive {
		return runPrint(args, depth, bank, os.Stdout)
	}

	return btea.Run(btea.AppDeps{
		Game:      session.New(depth, bank),
		Keys:      keybindings.New(config.GlobalKeybindingsFile(), config.LocalKeybindingsFile(cwd)),
		Presets:   presets,
		LongPress: cfg.LongPress(),
		Mouse:     cfg.MouseEnabled(),
		ShowHints: cfg.ShowHints,
		Version:   version,
	})
}

// runPrint replays the scripts named on the command line, or stdin.
func runPrint(args cliArgs, depth, bank int, out io.Writer) error {
	return print.Run(context.Background(), print.Config{
		OutputFormat: args.format,
		Depth:        depth,
		Bank:         bank,
		Width:        terminal.Width(os.Stdout, 80),
	}, print.Deps{Stdout: out}, args.scripts)
}

// buildOverrides maps CLI flags onto config overrides.
func buildOverrides(args cliArgs) config.Overrides {
	return config.Overrides{
		Depth:   args.depth,
		Bank:    args.bank,
		Preset:  args.preset,
		NoMouse: args.noMouse,
	}
}
