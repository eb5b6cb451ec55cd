// ABOUTME: Typed failure kinds for engine operations
// ABOUTME: Sentinel errors wrapped in MoveError; name mapping for scripts and reports

package engine

import (
	"errors"
	"fmt"
)

// Failure kinds. Every one is recoverable; state is untouched when returned.
var (
	ErrEmptyBank          = errors.New("pebble bank is empty")
	ErrNotALeaf           = errors.New("pebbles can only be placed on leaves")
	ErrAlreadyPebbled     = errors.New("node already holds a pebble")
	ErrNoPebbleToRemove   = errors.New("node holds no pebble")
	ErrNoParent           = errors.New("the root has no parent")
	ErrParentOccupied     = errors.New("parent already holds a pebble")
	ErrChildrenIncomplete = errors.New("both children must hold pebbles")
	ErrUndoStackEmpty     = errors.New("nothing to undo")
	ErrNodeOutOfRange     = errors.New("node is not in the tree")
)

var errorNames = []struct {
	name string
	err  error
}{
	{"EmptyBank", ErrEmptyBank},
	{"NotALeaf", ErrNotALeaf},
	{"AlreadyPebbled", ErrAlreadyPebbled},
	{"NoPebbleToRemove", ErrNoPebbleToRemove},
	{"NoParent", ErrNoParent},
	{"ParentOccupied", ErrParentOccupied},
	{"ChildrenIncomplete", ErrChildrenIncomplete},
	{"UndoStackEmpty", ErrUndoStackEmpty},
	{"NodeOutOfRange", ErrNodeOutOfRange},
}

// ErrorName returns the kind name of an engine failure ("EmptyBank", ...),
// or "" if err is nil or not an engine failure.
func ErrorName(err error) string {
	if err == nil {
		return ""
	}
	for _, e := range errorNames {
		if errors.Is(err, e.err) {
			return e.name
		}
	}
	return ""
}

// ErrorByName returns the sentinel for a kind name.
func ErrorByName(name string) (error, bool) {
	for _, e := range errorNames {
		if e.name == name {
			return e.err, true
		}
	}
	return nil, false
}

// ErrorNames lists every kind name in declaration order.
func ErrorNames() []string {
	names := make([]string, len(errorNames))
	for i, e := range errorNames {
		names[i] = e.name
	}
	return names
}

// MoveError reports a rejected operation.
type MoveError struct {
	Op   string
	Node int
	Err  error
}

func (e *MoveError) Error() string {
	if e.Op == "undo" {
		return fmt.Sprintf("undo: %v", e.Err)
	}
	return fmt.Sprintf("%s %d: %v", e.Op, e.Node, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }

func fail(op string, node int, err error) error {
	return &MoveError{Op: op, Node: node, Err: err}
}
