// ABOUTME: Renders a Snapshot as a level-per-row tree with slash edges
// ABOUTME: Pebbled nodes, the cursor and the hinted node get distinct styles

package btea

import (
	"fmt"
	"strings"

	"github.com/mauromedda/pebbletree/internal/engine"
	"github.com/mauromedda/pebbletree/pkg/tui/canvas"
)

// renderTree draws snap using layout l. hint < 0 means no hinted node.
func renderTree(snap engine.Snapshot, l treeLayout, cursor, hint int) string {
	s := Styles()
	var out []string

	for lvl := 0; lvl < snap.Depth; lvl++ {
		first, last := engine.LevelRange(lvl)

		var row canvas.Line
		for id := first; id <= last; id++ {
			row.At(l.start(id), renderNode(snap.Nodes[id], id == cursor, id == hint))
		}
		out = append(out, row.String())

		if lvl == snap.Depth-1 {
			break
		}
		var edges canvas.Line
		for id := first; id <= last; id++ {
			left, right, _ := engine.Children(snap.Depth, id)
			c := l.center(id)
			edges.At((c+l.center(left))/2, s.Edge.Render("/"))
			edges.At((c+l.center(right)+1)/2, s.Edge.Render("\\"))
		}
		out = append(out, edges.String())
	}
	return strings.Join(out, "\n")
}

func renderNode(n engine.Node, cursor, hint bool) string {
	s := Styles()
	mark, st := " ", s.Empty
	if n.HasPebble {
		mark, st = "*", s.Pebbled
	}
	if hint {
		st = st.Inherit(s.HintNode)
	}
	if cursor {
		st = st.Inherit(s.Cursor)
	}
	return st.Render(fmt.Sprintf("[%s%2d]", mark, n.ID))
}
