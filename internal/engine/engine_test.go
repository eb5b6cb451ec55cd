// ABOUTME: Tests for PebbleTreeEngine operations, failure kinds and undo
// ABOUTME: Includes the depth-2 walkthrough scenarios and snapshot round-trips

package engine

import (
	"errors"
	"testing"
)

func pebbles(e *Engine) []bool {
	snap := e.Snapshot()
	out := make([]bool, len(snap.Nodes))
	for i, n := range snap.Nodes {
		out[i] = n.HasPebble
	}
	return out
}

func assertNodes(t *testing.T, e *Engine, want ...bool) {
	t.Helper()
	got := pebbles(e)
	if len(got) != len(want) {
		t.Fatalf("nodes = %v; want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("nodes = %v; want %v", got, want)
		}
	}
}

func TestInitialize(t *testing.T) {
	t.Parallel()

	for depth := MinDepth; depth <= MaxDepth; depth++ {
		e := New(depth, 8)
		snap := e.Snapshot()
		if len(snap.Nodes) != 1<<depth-1 {
			t.Errorf("depth %d: %d nodes; want %d", depth, len(snap.Nodes), 1<<depth-1)
		}
		leaves := 0
		for _, n := range snap.Nodes {
			if n.HasPebble {
				t.Errorf("depth %d: node %d pebbled after init", depth, n.ID)
			}
			if e.IsLeaf(n.ID) {
				leaves++
			}
		}
		if leaves != 1<<(depth-1) {
			t.Errorf("depth %d: %d leaves; want %d", depth, leaves, 1<<(depth-1))
		}
		if e.UndoDepth() != 0 {
			t.Errorf("depth %d: undo depth %d after init", depth, e.UndoDepth())
		}
	}
}

func TestInitializeClamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		depth, bank         int
		wantDepth, wantBank int
	}{
		{0, 0, MinDepth, MinBank},
		{1, -5, MinDepth, MinBank},
		{9, 100, MaxDepth, MaxBank},
		{3, 7, 3, 7},
	}
	for _, tt := range tests {
		e := New(tt.depth, tt.bank)
		if e.Depth() != tt.wantDepth || e.BankCount() != tt.wantBank {
			t.Errorf("New(%d, %d) = depth %d bank %d; want %d, %d",
				tt.depth, tt.bank, e.Depth(), e.BankCount(), tt.wantDepth, tt.wantBank)
		}
	}
}

func TestInitializeClearsUndo(t *testing.T) {
	t.Parallel()

	e := New(3, 4)
	if err := e.Place(3); err != nil {
		t.Fatal(err)
	}
	e.Initialize(3, 4)
	if !errors.Is(e.Undo(), ErrUndoStackEmpty) {
		t.Error("undo after restart should report empty stack")
	}
	assertNodes(t, e, false, false, false, false, false, false, false)
}

func TestScenarioWin(t *testing.T) {
	t.Parallel()

	e := New(2, 2)

	if err := e.Place(1); err != nil {
		t.Fatalf("Place(1) = %v", err)
	}
	assertNodes(t, e, false, true, false)
	if e.BankCount() != 1 {
		t.Fatalf("bank = %d; want 1", e.BankCount())
	}

	if err := e.Place(2); err != nil {
		t.Fatalf("Place(2) = %v", err)
	}
	assertNodes(t, e, false, true, true)
	if e.BankCount() != 0 {
		t.Fatalf("bank = %d; want 0", e.BankCount())
	}

	if err := e.CombineUp(1); err != nil {
		t.Fatalf("CombineUp(1) = %v", err)
	}
	assertNodes(t, e, true, false, false)
	if e.BankCount() != 0 {
		t.Fatalf("bank = %d; want 0", e.BankCount())
	}
	if !e.HasWon() {
		t.Fatal("HasWon() = false after pebbling root")
	}

	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	assertNodes(t, e, false, true, true)
	if e.BankCount() != 0 {
		t.Fatalf("bank = %d; want 0", e.BankCount())
	}

	if err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	assertNodes(t, e, false, true, false)
	if e.BankCount() != 1 {
		t.Fatalf("bank = %d; want 1", e.BankCount())
	}
}

func TestScenarioEmptyBank(t *testing.T) {
	t.Parallel()

	e := New(2, 1)
	if err := e.Place(1); err != nil {
		t.Fatal(err)
	}
	before := e.Snapshot()

	err := e.Place(2)
	if !errors.Is(err, ErrEmptyBank) {
		t.Fatalf("Place(2) = %v; want ErrEmptyBank", err)
	}
	if !e.Snapshot().Equal(before) {
		t.Error("state changed after rejected placement")
	}
	if e.UndoDepth() != 1 {
		t.Errorf("undo depth = %d; want 1", e.UndoDepth())
	}
}

func TestPlaceFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(e *Engine)
		id    int
		want  error
	}{
		{"internal node", func(*Engine) {}, 1, ErrNotALeaf},
		{"root", func(*Engine) {}, 0, ErrNotALeaf},
		{"already pebbled", func(e *Engine) { _ = e.Place(3) }, 3, ErrAlreadyPebbled},
		{"out of range", func(*Engine) {}, 7, ErrNodeOutOfRange},
		{"negative", func(*Engine) {}, -1, ErrNodeOutOfRange},
		{"leaf check precedes bank check", func(e *Engine) {
			_ = e.Place(3)
		}, 2, ErrNotALeaf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := New(3, 1)
			tt.setup(e)
			before := e.Snapshot()
			if err := e.Place(tt.id); !errors.Is(err, tt.want) {
				t.Fatalf("Place(%d) = %v; want %v", tt.id, err, tt.want)
			}
			if !e.Snapshot().Equal(before) {
				t.Error("state changed after rejected placement")
			}
		})
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	e := New(3, 4)
	if err := e.Remove(3); !errors.Is(err, ErrNoPebbleToRemove) {
		t.Fatalf("Remove(empty) = %v; want ErrNoPebbleToRemove", err)
	}
	_ = e.Place(3)
	_ = e.Place(4)
	_ = e.CombineUp(3)

	// Internal nodes may be cleared too.
	if err := e.Remove(1); err != nil {
		t.Fatalf("Remove(1) = %v", err)
	}
	if e.BankCount() != 3 {
		t.Errorf("bank = %d; want 3", e.BankCount())
	}
	if e.OnTree() != 0 {
		t.Errorf("on tree = %d; want 0", e.OnTree())
	}
}

func TestCombineUpFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		places []int
		child  int
		want   error
	}{
		{"root", nil, 0, ErrNoParent},
		{"root with pebbles", []int{3, 4}, 0, ErrNoParent},
		{"no children", nil, 3, ErrChildrenIncomplete},
		{"sibling missing", []int{3}, 3, ErrChildrenIncomplete},
		{"trigger missing", []int{4}, 3, ErrChildrenIncomplete},
		{"out of range", nil, 99, ErrNodeOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := New(3, 8)
			for _, id := range tt.places {
				if err := e.Place(id); err != nil {
					t.Fatal(err)
				}
			}
			before := e.Snapshot()
			if err := e.CombineUp(tt.child); !errors.Is(err, tt.want) {
				t.Fatalf("CombineUp(%d) = %v; want %v", tt.child, err, tt.want)
			}
			if !e.Snapshot().Equal(before) {
				t.Error("state changed after rejected combine")
			}
		})
	}
}

func TestCombineUpParentOccupiedRegardlessOfChildren(t *testing.T) {
	t.Parallel()

	e := New(3, 8)
	for _, id := range []int{3, 4} {
		_ = e.Place(id)
	}
	_ = e.CombineUp(4)

	// Parent 1 is pebbled; children empty.
	if err := e.CombineUp(3); !errors.Is(err, ErrParentOccupied) {
		t.Fatalf("CombineUp(3) = %v; want ErrParentOccupied", err)
	}
	// Parent 1 is pebbled; children full.
	_ = e.Place(3)
	_ = e.Place(4)
	if err := e.CombineUp(4); !errors.Is(err, ErrParentOccupied) {
		t.Fatalf("CombineUp(4) = %v; want ErrParentOccupied", err)
	}
}

func TestCombineUpClearsBothChildren(t *testing.T) {
	t.Parallel()

	e := New(3, 8)
	_ = e.Place(5)
	_ = e.Place(6)
	if err := e.CombineUp(6); err != nil {
		t.Fatal(err)
	}
	if e.HasPebble(5) || e.HasPebble(6) {
		t.Error("children still pebbled after combine")
	}
	if !e.HasPebble(2) {
		t.Error("parent not pebbled after combine")
	}
	if e.BankCount() != 6 {
		t.Errorf("bank = %d; want 6", e.BankCount())
	}
}

func TestUndoRoundTrips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup []Move
		op    Move
	}{
		{"place", nil, Move{MovePlace, 9}},
		{"remove leaf", []Move{{MovePlace, 9}}, Move{MoveRemove, 9}},
		{"remove internal", []Move{{MovePlace, 7}, {MovePlace, 8}, {MoveCombine, 7}}, Move{MoveRemove, 3}},
		{"combine", []Move{{MovePlace, 13}, {MovePlace, 14}}, Move{MoveCombine, 14}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := New(4, 5)
			for _, m := range tt.setup {
				if err := e.Apply(m); err != nil {
					t.Fatalf("setup %v: %v", m, err)
				}
			}
			before := e.Snapshot()
			if err := e.Apply(tt.op); err != nil {
				t.Fatalf("%v: %v", tt.op, err)
			}
			if err := e.Undo(); err != nil {
				t.Fatal(err)
			}
			if after := e.Snapshot(); !after.Equal(before) {
				t.Errorf("after undo = %+v; want %+v", after, before)
			}
		})
	}
}

func TestUndoToEmptyConservesBank(t *testing.T) {
	t.Parallel()

	e := New(3, 4)
	moves := []Move{
		{MovePlace, 3}, {MovePlace, 4}, {MoveCombine, 3},
		{MovePlace, 5}, {MoveRemove, 5}, {MovePlace, 6},
	}
	for _, m := range moves {
		if err := e.Apply(m); err != nil {
			t.Fatalf("%v: %v", m, err)
		}
	}
	for e.UndoDepth() > 0 {
		if err := e.Undo(); err != nil {
			t.Fatal(err)
		}
	}
	if e.BankCount() != 4 || e.OnTree() != 0 {
		t.Fatalf("bank = %d, on tree = %d; want 4, 0", e.BankCount(), e.OnTree())
	}
	for range 3 {
		if err := e.Undo(); !errors.Is(err, ErrUndoStackEmpty) {
			t.Fatalf("Undo() on empty = %v; want ErrUndoStackEmpty", err)
		}
	}
	if e.BankCount() != 4 {
		t.Errorf("bank = %d after extra undos; want 4", e.BankCount())
	}
}

func TestHistory(t *testing.T) {
	t.Parallel()

	e := New(2, 2)
	_ = e.Place(1)
	_ = e.Place(2)
	_ = e.CombineUp(2)
	_ = e.Remove(0)

	want := []Action{
		Toggle{ID: 1, WasPebbled: false},
		Toggle{ID: 2, WasPebbled: false},
		MoveUp{From: 2, To: 0},
		Toggle{ID: 0, WasPebbled: true},
	}
	got := e.History()
	if len(got) != len(want) {
		t.Fatalf("history = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("history[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

func TestMoveErrorMessage(t *testing.T) {
	t.Parallel()

	e := New(2, 1)
	err := e.Place(0)
	var me *MoveError
	if !errors.As(err, &me) {
		t.Fatalf("error %T is not *MoveError", err)
	}
	if me.Op != "place" || me.Node != 0 {
		t.Errorf("MoveError = %+v", me)
	}
	if got, want := err.Error(), "place 0: pebbles can only be placed on leaves"; got != want {
		t.Errorf("Error() = %q; want %q", got, want)
	}
}

func TestErrorNames(t *testing.T) {
	t.Parallel()

	for _, name := range ErrorNames() {
		sentinel, ok := ErrorByName(name)
		if !ok {
			t.Fatalf("ErrorByName(%q) not found", name)
		}
		wrapped := fail("place", 1, sentinel)
		if got := ErrorName(wrapped); got != name {
			t.Errorf("ErrorName(%v) = %q; want %q", wrapped, got, name)
		}
	}
	if _, ok := ErrorByName("Bogus"); ok {
		t.Error("ErrorByName(Bogus) ok = true")
	}
	if ErrorName(errors.New("other")) != "" {
		t.Error("ErrorName of foreign error should be empty")
	}
}
