// ABOUTME: Text and JSON formatters for print mode reports
// ABOUTME: JSON is encoded with easyjson's jwriter, no reflection

package print

import (
	"fmt"
	"io"
	"strings"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jwriter"
	"github.com/mauromedda/pebbletree/internal/engine"
	"github.com/mauromedda/pebbletree/pkg/tui/canvas"
)

// formatter writes the collected reports.
type formatter interface {
	write(w io.Writer, reports []Report) error
}

func newFormatter(format string, width int) (formatter, error) {
	switch format {
	case "text":
		if width <= 0 {
			width = 80
		}
		return textFormatter{width: width}, nil
	case "json":
		return jsonFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}

// textFormatter prints a drawing of the final tree and the failures.
type textFormatter struct {
	width int
}

func (f textFormatter) write(w io.Writer, reports []Report) error {
	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "== %s ==\n", r.Script)
		if r.ParseErr != nil {
			fmt.Fprintf(&b, "parse error: %v\nFAIL\n", r.ParseErr)
			continue
		}
		b.WriteString(drawTree(r.Snapshot, f.width))
		state := "not won"
		if r.Snapshot.Won() {
			state = "won"
		}
		fmt.Fprintf(&b, "bank %d · moves %d · %s\n", r.Snapshot.Bank, r.Moves, state)
		for _, fl := range r.Failures {
			b.WriteString(fl.String() + "\n")
		}
		if r.OK() {
			fmt.Fprintf(&b, "ok (%d steps)\n", r.Steps)
		} else {
			fmt.Fprintf(&b, "FAIL (%d of %d steps)\n", len(r.Failures), r.Steps)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// drawTree renders one row per level with every node centered over its
// subtree.
func drawTree(s engine.Snapshot, width int) string {
	leaves := engine.LeafCount(s.Depth)
	slot := max(5, min(width/leaves, 8))

	var b strings.Builder
	for lvl := 0; lvl < s.Depth; lvl++ {
		first, last := engine.LevelRange(lvl)
		span := (leaves >> lvl) * slot
		var row strings.Builder
		for id := first; id <= last; id++ {
			mark := " "
			if s.Nodes[id].HasPebble {
				mark = "*"
			}
			row.WriteString(canvas.Center(fmt.Sprintf("[%s%2d]", mark, id), span))
		}
		b.WriteString(strings.TrimRight(row.String(), " ") + "\n")
	}
	return b.String()
}

// jsonFormatter writes a single JSON object holding every report.
type jsonFormatter struct{}

func (jsonFormatter) write(w io.Writer, reports []Report) error {
	if _, err := easyjson.MarshalToWriter(reportSet(reports), w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

type reportSet []Report

// MarshalEasyJSON writes {"ok":..,"scripts":[..]}.
func (rs reportSet) MarshalEasyJSON(out *jwriter.Writer) {
	ok := true
	for _, r := range rs {
		ok = ok && r.OK()
	}
	out.RawString(`{"ok":`)
	out.Bool(ok)
	out.RawString(`,"scripts":[`)
	for i, r := range rs {
		if i > 0 {
			out.RawByte(',')
		}
		r.MarshalEasyJSON(out)
	}
	out.RawString("]}")
}

// MarshalEasyJSON writes one report.
func (r Report) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"script":`)
	out.String(r.Script)
	out.RawString(`,"ok":`)
	out.Bool(r.OK())
	out.RawString(`,"steps":`)
	out.Int(r.Steps)
	out.RawString(`,"moves":`)
	out.Int(r.Moves)
	if r.ParseErr != nil {
		out.RawString(`,"parse_error":`)
		out.String(r.ParseErr.Error())
	}
	out.RawString(`,"failures":[`)
	for i, f := range r.Failures {
		if i > 0 {
			out.RawByte(',')
		}
		out.RawString(`{"line":`)
		out.Int(f.Line)
		out.RawString(`,"message":`)
		out.String(f.Msg)
		out.RawByte('}')
	}
	out.RawString(`],"depth":`)
	out.Int(r.Snapshot.Depth)
	out.RawString(`,"bank":`)
	out.Int(r.Snapshot.Bank)
	out.RawString(`,"won":`)
	out.Bool(r.Snapshot.Won())
	out.RawString(`,"nodes":[`)
	for i, n := range r.Snapshot.Nodes {
		if i > 0 {
			out.RawByte(',')
		}
		out.RawString(`{"id":`)
		out.Int(n.ID)
		out.RawString(`,"has_pebble":`)
		out.Bool(n.HasPebble)
		out.RawByte('}')
	}
	out.RawString("]}")
}
