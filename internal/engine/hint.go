// ABOUTME: Solvability and next-move hints computed from the current position
// ABOUTME: Counts placements still needed and walks the cheapest path to the root

package engine

import "fmt"

// MoveKind identifies an engine operation.
type MoveKind int

const (
	MovePlace MoveKind = iota
	MoveRemove
	MoveCombine
)

// String returns the verb used in scripts.
func (k MoveKind) String() string {
	switch k {
	case MovePlace:
		return "place"
	case MoveRemove:
		return "remove"
	case MoveCombine:
		return "combine"
	default:
		return "unknown"
	}
}

// Move is a single suggested operation.
type Move struct {
	Kind MoveKind
	Node int
}

func (m Move) String() string {
	return fmt.Sprintf("%s %d", m.Kind, m.Node)
}

// Apply performs m on the engine.
func (e *Engine) Apply(m Move) error {
	switch m.Kind {
	case MovePlace:
		return e.Place(m.Node)
	case MoveRemove:
		return e.Remove(m.Node)
	case MoveCombine:
		return e.CombineUp(m.Node)
	default:
		return fmt.Errorf("unknown move kind %d", m.Kind)
	}
}

// PebblesNeeded returns how many more placements it takes to pebble the root.
func (e *Engine) PebblesNeeded() int {
	return e.needed(0)
}

func (e *Engine) needed(id int) int {
	if e.pebbled[id] {
		return 0
	}
	l, r, ok := Children(e.depth, id)
	if !ok {
		return 1
	}
	return e.needed(l) + e.needed(r)
}

// stranded returns pebbled nodes below another pebbled node. They cannot
// contribute to a win and are worth returning to the bank.
func (e *Engine) stranded() []int {
	var ids []int
	for id := 1; id < len(e.pebbled); id++ {
		if e.pebbled[id] && e.coveredAbove(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (e *Engine) coveredAbove(id int) bool {
	for p, ok := Parent(id); ok; p, ok = Parent(p) {
		if e.pebbled[p] {
			return true
		}
	}
	return false
}

// Solvable reports whether the root can still be pebbled with the pebbles in
// the bank plus those that can be reclaimed from covered subtrees.
func (e *Engine) Solvable() bool {
	if e.HasWon() {
		return true
	}
	return e.bank+len(e.stranded()) >= e.PebblesNeeded()
}

// Hint returns the next move toward a win. It returns false once the puzzle
// is won or can no longer be won.
func (e *Engine) Hint() (Move, bool) {
	if e.HasWon() || !e.Solvable() {
		return Move{}, false
	}
	id := 0
	for {
		l, r, ok := Children(e.depth, id)
		if !ok {
			if e.bank == 0 {
				return Move{Kind: MoveRemove, Node: e.stranded()[0]}, true
			}
			return Move{Kind: MovePlace, Node: id}, true
		}
		switch {
		case e.pebbled[l] && e.pebbled[r]:
			return Move{Kind: MoveCombine, Node: l}, true
		case !e.pebbled[l]:
			id = l
		default:
			id = r
		}
	}
}
