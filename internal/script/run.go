// ABOUTME: Replays parsed steps against a game session and checks expectations
// ABOUTME: Move failures are recorded, not fatal; unchecked failures are reported too

package script

import (
	"fmt"
	"slices"

	"github.com/mauromedda/pebbletree/internal/engine"
	"github.com/mauromedda/pebbletree/internal/session"
)

// Failure is an unmet expectation or an unexpected move error.
type Failure struct {
	Line int
	Msg  string
}

func (f Failure) String() string {
	return fmt.Sprintf("line %d: %s", f.Line, f.Msg)
}

// Result summarizes a replay.
type Result struct {
	Steps    int
	Failures []Failure
}

// OK reports whether every expectation held and every failing move was expected.
func (r Result) OK() bool { return len(r.Failures) == 0 }

// Run executes steps on g.
func Run(g *session.Game, steps []Step) Result {
	var (
		res     Result
		lastErr error
		pending *Step // failing move not yet matched by "expect error"
	)
	flush := func() {
		if pending != nil {
			res.Failures = append(res.Failures, Failure{Line: pending.Line, Msg: lastErr.Error()})
			pending = nil
		}
	}

	for i := range steps {
		st := steps[i]
		res.Steps++

		if st.Cmd == CmdExpect {
			if st.Expect == ExpectError {
				pending = nil
			} else {
				flush()
			}
			if msg := check(g, st, lastErr); msg != "" {
				res.Failures = append(res.Failures, Failure{Line: st.Line, Msg: msg})
			}
			continue
		}

		flush()
		lastErr = apply(g, st)
		if lastErr != nil {
			pending = &steps[i]
		}
	}
	flush()
	return res
}

func apply(g *session.Game, st Step) error {
	switch st.Cmd {
	case CmdPlace:
		return g.Place(st.Args[0])
	case CmdRemove:
		return g.Remove(st.Args[0])
	case CmdTap:
		return g.Tap(st.Args[0])
	case CmdCombine:
		return g.Combine(st.Args[0])
	case CmdUndo:
		return g.Undo()
	case CmdRestart:
		g.Restart(st.Args[0], st.Args[1])
		return nil
	default:
		return fmt.Errorf("unsupported command %q", st.Cmd)
	}
}

// check returns a description of the mismatch, or "" if the expectation holds.
func check(g *session.Game, st Step, lastErr error) string {
	switch st.Expect {
	case ExpectBank:
		if got := g.Bank(); got != st.Args[0] {
			return fmt.Sprintf("bank = %d; want %d", got, st.Args[0])
		}
	case ExpectWon:
		if !g.HasWon() {
			return "root is not pebbled"
		}
	case ExpectNotWon:
		if g.HasWon() {
			return "root is pebbled"
		}
	case ExpectPebbles:
		got := g.Snapshot().Pebbled()
		want := slices.Clone(st.Args)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			return fmt.Sprintf("pebbles = %v; want %v", got, want)
		}
	case ExpectOK:
		if lastErr != nil {
			return fmt.Sprintf("previous move failed: %v", lastErr)
		}
	case ExpectError:
		if lastErr == nil {
			return fmt.Sprintf("previous move succeeded; want %s", st.ErrKind)
		}
		if got := engine.ErrorName(lastErr); got != st.ErrKind {
			return fmt.Sprintf("previous move failed with %s; want %s", got, st.ErrKind)
		}
	}
	return ""
}
