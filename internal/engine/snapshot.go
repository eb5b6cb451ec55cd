// ABOUTME: Immutable copy of engine state handed to renderers

package engine

// Snapshot is a point-in-time copy of the puzzle.
type Snapshot struct {
	Depth int
	Nodes []Node
	Bank  int
}

// Pebbled returns the ids holding a pebble, ascending.
func (s Snapshot) Pebbled() []int {
	var ids []int
	for _, n := range s.Nodes {
		if n.HasPebble {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// Won reports whether the root holds a pebble.
func (s Snapshot) Won() bool {
	return len(s.Nodes) > 0 && s.Nodes[0].HasPebble
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Depth != o.Depth || s.Bank != o.Bank || len(s.Nodes) != len(o.Nodes) {
		return false
	}
	for i := range s.Nodes {
		if s.Nodes[i] != o.Nodes[i] {
			return false
		}
	}
	return true
}
