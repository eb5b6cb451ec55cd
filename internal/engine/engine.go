// ABOUTME: PebbleTreeEngine: tree state, bank counter, and undo stack
// ABOUTME: Place, Remove, CombineUp and Undo validate fully before mutating

package engine

// Configuration bounds. Initialize clamps into these ranges.
const (
	MinDepth = 2
	MaxDepth = 5
	MinBank  = 1
	MaxBank  = 32
)

// Node is one position of the tree.
type Node struct {
	ID        int
	HasPebble bool
}

// Engine owns one puzzle. It is not safe for concurrent use; the host
// dispatches one gesture at a time.
type Engine struct {
	depth   int
	pebbled []bool
	bank    int
	undo    []Action
}

// New returns an engine initialized with the given depth and bank size.
func New(depth, bank int) *Engine {
	e := &Engine{}
	e.Initialize(depth, bank)
	return e
}

// Initialize discards all state and starts a fresh puzzle. Out-of-range
// arguments are clamped.
func (e *Engine) Initialize(depth, bank int) {
	e.depth = clamp(depth, MinDepth, MaxDepth)
	e.pebbled = make([]bool, NodeCount(e.depth))
	e.bank = clamp(bank, MinBank, MaxBank)
	e.undo = nil
}

// Place puts a pebble from the bank on an empty leaf.
func (e *Engine) Place(id int) error {
	const op = "place"
	if !Valid(e.depth, id) {
		return fail(op, id, ErrNodeOutOfRange)
	}
	if !IsLeaf(e.depth, id) {
		return fail(op, id, ErrNotALeaf)
	}
	if e.pebbled[id] {
		return fail(op, id, ErrAlreadyPebbled)
	}
	if e.bank == 0 {
		return fail(op, id, ErrEmptyBank)
	}

	e.pebbled[id] = true
	e.bank--
	e.undo = append(e.undo, Toggle{ID: id, WasPebbled: false})
	return nil
}

// Remove takes the pebble off any pebbled node and returns it to the bank.
func (e *Engine) Remove(id int) error {
	const op = "remove"
	if !Valid(e.depth, id) {
		return fail(op, id, ErrNodeOutOfRange)
	}
	if !e.pebbled[id] {
		return fail(op, id, ErrNoPebbleToRemove)
	}

	e.pebbled[id] = false
	e.bank++
	e.undo = append(e.undo, Toggle{ID: id, WasPebbled: true})
	return nil
}

// CombineUp replaces the pebbles on child and its sibling with one pebble on
// their parent. The bank is unchanged.
func (e *Engine) CombineUp(child int) error {
	const op = "combine"
	if !Valid(e.depth, child) {
		return fail(op, child, ErrNodeOutOfRange)
	}
	parent, ok := Parent(child)
	if !ok {
		return fail(op, child, ErrNoParent)
	}
	sibling, _ := Sibling(child)
	if e.pebbled[parent] {
		return fail(op, child, ErrParentOccupied)
	}
	if !e.pebbled[child] || !e.pebbled[sibling] {
		return fail(op, child, ErrChildrenIncomplete)
	}

	e.pebbled[child] = false
	e.pebbled[sibling] = false
	e.pebbled[parent] = true
	e.undo = append(e.undo, MoveUp{From: child, To: parent})
	return nil
}

// Undo reverts the most recent successful mutation.
func (e *Engine) Undo() error {
	n := len(e.undo)
	if n == 0 {
		return fail("undo", 0, ErrUndoStackEmpty)
	}
	last := e.undo[n-1]
	e.undo = e.undo[:n-1]

	switch a := last.(type) {
	case Toggle:
		e.pebbled[a.ID] = a.WasPebbled
		if a.WasPebbled {
			e.bank--
		} else {
			e.bank++
		}
	case MoveUp:
		sibling, _ := Sibling(a.From)
		e.pebbled[a.From] = true
		e.pebbled[sibling] = true
		e.pebbled[a.To] = false
	}
	return nil
}

// Depth returns the number of levels.
func (e *Engine) Depth() int { return e.depth }

// BankCount returns the pebbles available for placement.
func (e *Engine) BankCount() int { return e.bank }

// IsLeaf reports whether id is a leaf of this tree.
func (e *Engine) IsLeaf(id int) bool { return IsLeaf(e.depth, id) }

// HasPebble reports whether id currently holds a pebble. Out-of-range ids
// hold nothing.
func (e *Engine) HasPebble(id int) bool {
	return Valid(e.depth, id) && e.pebbled[id]
}

// HasWon reports whether the root holds a pebble.
func (e *Engine) HasWon() bool { return e.pebbled[0] }

// UndoDepth returns the number of recorded actions.
func (e *Engine) UndoDepth() int { return len(e.undo) }

// History returns a copy of the undo stack, oldest first.
func (e *Engine) History() []Action {
	out := make([]Action, len(e.undo))
	copy(out, e.undo)
	return out
}

// OnTree returns the number of pebbles currently on the tree.
func (e *Engine) OnTree() int {
	n := 0
	for _, p := range e.pebbled {
		if p {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the full state for rendering.
func (e *Engine) Snapshot() Snapshot {
	nodes := make([]Node, len(e.pebbled))
	for i, p := range e.pebbled {
		nodes[i] = Node{ID: i, HasPebble: p}
	}
	return Snapshot{Depth: e.depth, Nodes: nodes, Bank: e.bank}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
