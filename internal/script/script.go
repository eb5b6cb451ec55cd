// ABOUTME: Line-oriented move script parser for headless replay
// ABOUTME: Commands: place/remove/tap/combine N, undo, restart D B, expect ...

package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mauromedda/pebbletree/internal/engine"
)

// Command is the verb of a step.
type Command string

const (
	CmdPlace   Command = "place"
	CmdRemove  Command = "remove"
	CmdTap     Command = "tap"
	CmdCombine Command = "combine"
	CmdUndo    Command = "undo"
	CmdRestart Command = "restart"
	CmdExpect  Command = "expect"
)

// Expectation is the subject of an expect step.
type Expectation string

const (
	ExpectBank    Expectation = "bank"
	ExpectWon     Expectation = "won"
	ExpectNotWon  Expectation = "not-won"
	ExpectPebbles Expectation = "pebbles"
	ExpectError   Expectation = "error"
	ExpectOK      Expectation = "ok"
)

// Step is one parsed line.
type Step struct {
	Line    int
	Cmd     Command
	Args    []int
	Expect  Expectation
	ErrKind string
}

func (s Step) String() string {
	var b strings.Builder
	b.WriteString(string(s.Cmd))
	if s.Expect != "" {
		b.WriteString(" " + string(s.Expect))
	}
	if s.ErrKind != "" {
		b.WriteString(" " + s.ErrKind)
	}
	for _, a := range s.Args {
		fmt.Fprintf(&b, " %d", a)
	}
	return b.String()
}

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Parse reads a script. Blank lines and text after '#' are ignored.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		step, err := parseLine(lineNo, fields)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return steps, nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([]Step, error) {
	return Parse(strings.NewReader(s))
}

func parseLine(lineNo int, fields []string) (Step, error) {
	step := Step{Line: lineNo, Cmd: Command(strings.ToLower(fields[0]))}
	args := fields[1:]

	switch step.Cmd {
	case CmdPlace, CmdRemove, CmdTap, CmdCombine:
		return step, step.ints(args, 1, 1)
	case CmdUndo:
		return step, step.ints(args, 0, 0)
	case CmdRestart:
		return step, step.ints(args, 2, 2)
	case CmdExpect:
		return parseExpect(step, args)
	default:
		return step, &ParseError{Line: lineNo, Msg: fmt.Sprintf("unknown command %q", fields[0])}
	}
}

func parseExpect(step Step, args []string) (Step, error) {
	if len(args) == 0 {
		return step, &ParseError{Line: step.Line, Msg: "expect needs a subject"}
	}
	step.Expect = Expectation(strings.ToLower(args[0]))
	rest := args[1:]

	switch step.Expect {
	case ExpectBank:
		return step, step.ints(rest, 1, 1)
	case ExpectWon, ExpectNotWon, ExpectOK:
		return step, step.ints(rest, 0, 0)
	case ExpectPebbles:
		return step, step.ints(rest, 0, -1)
	case ExpectError:
		if len(rest) != 1 {
			return step, &ParseError{Line: step.Line, Msg: "expect error needs one kind"}
		}
		if _, ok := engine.ErrorByName(rest[0]); !ok {
			return step, &ParseError{
				Line: step.Line,
				Msg:  fmt.Sprintf("unknown error kind %q (known: %s)", rest[0], strings.Join(engine.ErrorNames(), ", ")),
			}
		}
		step.ErrKind = rest[0]
		return step, nil
	default:
		return step, &ParseError{Line: step.Line, Msg: fmt.Sprintf("unknown expectation %q", args[0])}
	}
}

// ints parses args as integers, requiring between lo and hi of them
// (hi < 0 means unbounded).
func (s *Step) ints(args []string, lo, hi int) error {
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		return &ParseError{Line: s.Line, Msg: fmt.Sprintf("%s: wrong number of arguments (%d)", s.Cmd, len(args))}
	}
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return &ParseError{Line: s.Line, Msg: fmt.Sprintf("%s: %q is not a number", s.Cmd, a)}
		}
		s.Args = append(s.Args, n)
	}
	return nil
}
