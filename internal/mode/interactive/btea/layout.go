// ABOUTME: Column geometry for drawing the tree and mapping mouse cells back to nodes
// ABOUTME: Leaves get equal slots; each parent is centered over its subtree

package btea

import "github.com/mauromedda/pebbletree/internal/engine"

const (
	// labelWidth is the width of a rendered node: "[" mark id(2) "]".
	labelWidth = 5
	minSlot    = 5
	maxSlot    = 12
)

// treeLayout places every node of a tree on a grid. Level k is drawn on row
// 2k, with edges on row 2k+1.
type treeLayout struct {
	depth int
	slot  int
}

func newTreeLayout(depth, termWidth int) treeLayout {
	slot := termWidth / engine.LeafCount(depth)
	slot = max(minSlot, min(slot, maxSlot))
	return treeLayout{depth: depth, slot: slot}
}

// width returns the number of columns the tree spans.
func (l treeLayout) width() int {
	return engine.LeafCount(l.depth) * l.slot
}

// rows returns the number of lines the tree occupies, edges included.
func (l treeLayout) rows() int {
	return 2*l.depth - 1
}

// center returns the column at the middle of node id.
func (l treeLayout) center(id int) int {
	lvl := engine.Level(id)
	first, _ := engine.LevelRange(lvl)
	span := (engine.LeafCount(l.depth) >> lvl) * l.slot
	return (id-first)*span + span/2
}

// start returns the first column of node id's label.
func (l treeLayout) start(id int) int {
	return l.center(id) - labelWidth/2
}

// nodeAt maps a cell relative to the top-left of the tree to a node.
func (l treeLayout) nodeAt(x, y int) (int, bool) {
	if y < 0 || y%2 != 0 || y/2 >= l.depth {
		return 0, false
	}
	first, last := engine.LevelRange(y / 2)
	for id := first; id <= last; id++ {
		s := l.start(id)
		if x >= s && x < s+labelWidth {
			return id, true
		}
	}
	return 0, false
}
