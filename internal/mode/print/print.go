// ABOUTME: Headless print mode: replays move scripts and prints text or JSON reports
// ABOUTME: Scripts run concurrently, one game each; output keeps argument order

package print

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mauromedda/pebbletree/internal/engine"
	pblog "github.com/mauromedda/pebbletree/internal/log"
	"github.com/mauromedda/pebbletree/internal/script"
	"github.com/mauromedda/pebbletree/internal/session"
	"golang.org/x/sync/errgroup"
)

// StdinName labels the script read from standard input.
const StdinName = "-"

// Config configures print mode execution.
type Config struct {
	OutputFormat string // "text" (default), "json"
	Depth        int    // starting size of each game
	Bank         int
	Width        int // text tree width; 0 = 80
}

// Deps provides I/O for print mode.
type Deps struct {
	Stdin  io.Reader
	Stdout io.Writer
	Open   func(name string) (io.ReadCloser, error)
}

// Report is the outcome of one script.
type Report struct {
	Script   string
	Steps    int
	Failures []script.Failure
	ParseErr error
	Moves    int
	Snapshot engine.Snapshot
}

// OK reports whether the script parsed and every expectation held.
func (r Report) OK() bool { return r.ParseErr == nil && len(r.Failures) == 0 }

// Run replays the scripts named in paths (stdin when empty) and writes one
// report per script. It returns an error when any script fails.
func Run(ctx context.Context, cfg Config, deps Deps, paths []string) error {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Open == nil {
		deps.Open = func(name string) (io.ReadCloser, error) { return os.Open(name) }
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}
	f, err := newFormatter(cfg.OutputFormat, cfg.Width)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		paths = []string{StdinName}
	}

	reports, err := replayAll(ctx, cfg, deps, paths)
	if err != nil {
		return err
	}
	if err := f.write(deps.Stdout, reports); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	failed := 0
	for _, r := range reports {
		if !r.OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(reports))
	}
	return nil
}

func replayAll(ctx context.Context, cfg Config, deps Deps, paths []string) ([]Report, error) {
	reports := make([]Report, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := replay(cfg, deps, name)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// replay runs one script. Only I/O errors are returned; parse errors and
// failed expectations are part of the report.
func replay(cfg Config, deps Deps, name string) (Report, error) {
	r := Report{Script: name}

	var src io.Reader = deps.Stdin
	if name != StdinName {
		rc, err := deps.Open(name)
		if err != nil {
			return r, fmt.Errorf("opening script %s: %w", name, err)
		}
		defer rc.Close()
		src = rc
	}

	g := session.New(cfg.Depth, cfg.Bank)
	steps, err := script.Parse(src)
	if err != nil {
		pblog.Debug("print: %s: %v", name, err)
		r.ParseErr = err
		r.Snapshot = g.Snapshot()
		return r, nil
	}

	res := script.Run(g, steps)
	r.Steps = res.Steps
	r.Failures = res.Failures
	r.Moves = g.Moves()
	r.Snapshot = g.Snapshot()
	pblog.Debug("print: %s: %d steps, %d failures", name, r.Steps, len(r.Failures))
	return r, nil
}
