// ABOUTME: Game session: maps resolved gestures onto the engine and notifies renderers
// ABOUTME: Every operation, successful or not, is published as a Change on the event bus

package session

import (
	"github.com/mauromedda/pebbletree/internal/engine"
	"github.com/mauromedda/pebbletree/internal/eventbus"
	pblog "github.com/mauromedda/pebbletree/internal/log"
)

// Op names an operation requested by the player.
type Op string

const (
	OpPlace   Op = "place"
	OpRemove  Op = "remove"
	OpCombine Op = "combine"
	OpUndo    Op = "undo"
	OpRestart Op = "restart"
)

// Change describes the outcome of one operation. Err is nil on success, and
// Snapshot is taken after the operation either way.
type Change struct {
	Op       Op
	Node     int
	Err      error
	Snapshot engine.Snapshot
	Moves    int
	Won      bool
	Solvable bool
}

// Game owns one engine on behalf of a UI shell.
type Game struct {
	eng   *engine.Engine
	bus   *eventbus.Bus[Change]
	moves int
}

// New starts a game with the given depth and bank size (clamped by the engine).
func New(depth, bank int) *Game {
	return &Game{
		eng: engine.New(depth, bank),
		bus: eventbus.New[Change](),
	}
}

// Subscribe registers a renderer for change notifications.
func (g *Game) Subscribe(h eventbus.Handler[Change]) func() {
	return g.bus.Subscribe(h)
}

// Tap toggles a node: a pebbled node is cleared, anything else gets a
// placement attempt.
func (g *Game) Tap(node int) error {
	if g.eng.HasPebble(node) {
		return g.Remove(node)
	}
	return g.Place(node)
}

// Place puts a bank pebble on a leaf.
func (g *Game) Place(node int) error {
	return g.run(OpPlace, node, g.eng.Place)
}

// Remove returns a pebble to the bank.
func (g *Game) Remove(node int) error {
	return g.run(OpRemove, node, g.eng.Remove)
}

// Combine merges node and its sibling into their parent.
func (g *Game) Combine(node int) error {
	return g.run(OpCombine, node, g.eng.CombineUp)
}

// Undo reverts the last successful move.
func (g *Game) Undo() error {
	return g.run(OpUndo, 0, func(int) error { return g.eng.Undo() })
}

// Restart discards the current game.
func (g *Game) Restart(depth, bank int) {
	g.eng.Initialize(depth, bank)
	g.moves = 0
	g.publish(OpRestart, 0, nil)
}

// Apply performs an engine move.
func (g *Game) Apply(m engine.Move) error {
	switch m.Kind {
	case engine.MoveRemove:
		return g.Remove(m.Node)
	case engine.MoveCombine:
		return g.Combine(m.Node)
	default:
		return g.Place(m.Node)
	}
}

func (g *Game) run(op Op, node int, fn func(int) error) error {
	err := fn(node)
	if err == nil && op != OpUndo {
		g.moves++
	}
	g.publish(op, node, err)
	return err
}

func (g *Game) publish(op Op, node int, err error) {
	c := Change{
		Op:       op,
		Node:     node,
		Err:      err,
		Snapshot: g.eng.Snapshot(),
		Moves:    g.moves,
		Won:      g.eng.HasWon(),
		Solvable: g.eng.Solvable(),
	}
	if err != nil {
		pblog.Debug("session: %s %d rejected: %v", op, node, err)
	} else {
		pblog.Debug("session: %s %d bank=%d won=%v", op, node, c.Snapshot.Bank, c.Won)
	}
	g.bus.Publish(c)
}

// Snapshot returns the current state.
func (g *Game) Snapshot() engine.Snapshot { return g.eng.Snapshot() }

// Depth returns the tree depth.
func (g *Game) Depth() int { return g.eng.Depth() }

// Bank returns the pebbles available.
func (g *Game) Bank() int { return g.eng.BankCount() }

// HasWon reports whether the root is pebbled.
func (g *Game) HasWon() bool { return g.eng.HasWon() }

// HasPebble reports whether node holds a pebble.
func (g *Game) HasPebble(node int) bool { return g.eng.HasPebble(node) }

// IsLeaf reports whether node is a leaf.
func (g *Game) IsLeaf(node int) bool { return g.eng.IsLeaf(node) }

// Solvable reports whether a win is still reachable.
func (g *Game) Solvable() bool { return g.eng.Solvable() }

// Hint suggests the next move.
func (g *Game) Hint() (engine.Move, bool) { return g.eng.Hint() }

// Moves returns the number of successful non-undo operations since restart.
func (g *Game) Moves() int { return g.moves }

// CanUndo reports whether there is anything to undo.
func (g *Game) CanUndo() bool { return g.eng.UndoDepth() > 0 }
