// ABOUTME: Tests for the game session: tap toggling, move counting, notifications
// ABOUTME: Subscribers receive a Change after every operation including failures

package session

import (
	"errors"
	"testing"

	"github.com/mauromedda/pebbletree/internal/engine"
)

func TestTapToggles(t *testing.T) {
	t.Parallel()

	g := New(2, 2)
	if err := g.Tap(1); err != nil {
		t.Fatal(err)
	}
	if !g.HasPebble(1) || g.Bank() != 1 {
		t.Fatalf("after tap: pebble=%v bank=%d", g.HasPebble(1), g.Bank())
	}
	if err := g.Tap(1); err != nil {
		t.Fatal(err)
	}
	if g.HasPebble(1) || g.Bank() != 2 {
		t.Fatalf("after second tap: pebble=%v bank=%d", g.HasPebble(1), g.Bank())
	}
}

func TestTapEmptyInternalNode(t *testing.T) {
	t.Parallel()

	g := New(3, 4)
	if err := g.Tap(1); !errors.Is(err, engine.ErrNotALeaf) {
		t.Errorf("Tap(1) = %v; want ErrNotALeaf", err)
	}
}

func TestTapRemovesInternalPebble(t *testing.T) {
	t.Parallel()

	g := New(2, 2)
	_ = g.Place(1)
	_ = g.Place(2)
	_ = g.Combine(1)
	if err := g.Tap(0); err != nil {
		t.Fatal(err)
	}
	if g.HasWon() || g.Bank() != 1 {
		t.Errorf("won=%v bank=%d; want false, 1", g.HasWon(), g.Bank())
	}
}

func TestChangesPublished(t *testing.T) {
	t.Parallel()

	g := New(2, 1)
	var changes []Change
	g.Subscribe(func(c Change) { changes = append(changes, c) })

	_ = g.Place(1)
	_ = g.Place(2)
	_ = g.Undo()
	_ = g.Undo()
	g.Restart(3, 4)

	if len(changes) != 5 {
		t.Fatalf("got %d changes; want 5", len(changes))
	}
	want := []struct {
		op    Op
		bank  int
		moves int
		fail  error
	}{
		{OpPlace, 0, 1, nil},
		{OpPlace, 0, 1, engine.ErrEmptyBank},
		{OpUndo, 1, 1, nil},
		{OpUndo, 1, 1, engine.ErrUndoStackEmpty},
		{OpRestart, 4, 0, nil},
	}
	for i, w := range want {
		c := changes[i]
		if c.Op != w.op || c.Snapshot.Bank != w.bank || c.Moves != w.moves {
			t.Errorf("change[%d] = %s bank=%d moves=%d; want %s bank=%d moves=%d",
				i, c.Op, c.Snapshot.Bank, c.Moves, w.op, w.bank, w.moves)
		}
		if w.fail == nil && c.Err != nil {
			t.Errorf("change[%d] err = %v; want nil", i, c.Err)
		}
		if w.fail != nil && !errors.Is(c.Err, w.fail) {
			t.Errorf("change[%d] err = %v; want %v", i, c.Err, w.fail)
		}
	}
	if changes[4].Snapshot.Depth != 3 {
		t.Errorf("restart depth = %d; want 3", changes[4].Snapshot.Depth)
	}
}

func TestWinNotified(t *testing.T) {
	t.Parallel()

	g := New(2, 2)
	var last Change
	g.Subscribe(func(c Change) { last = c })

	_ = g.Apply(engine.Move{Kind: engine.MovePlace, Node: 1})
	_ = g.Apply(engine.Move{Kind: engine.MovePlace, Node: 2})
	if last.Won {
		t.Fatal("won before combine")
	}
	_ = g.Apply(engine.Move{Kind: engine.MoveCombine, Node: 2})
	if !last.Won || last.Op != OpCombine || last.Moves != 3 {
		t.Errorf("last change = %+v; want won combine after 3 moves", last)
	}
}

func TestCanUndo(t *testing.T) {
	t.Parallel()

	g := New(2, 2)
	if g.CanUndo() {
		t.Error("CanUndo on fresh game")
	}
	_ = g.Place(2)
	if !g.CanUndo() {
		t.Error("CanUndo false after a move")
	}
}
