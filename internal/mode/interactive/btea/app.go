// ABOUTME: Root AppModel: renders the tree and maps keys and mouse gestures to session calls
// ABOUTME: Redraws from the session snapshot after every change; errors go to a status line

package btea

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mauromedda/pebbletree/internal/config"
	"github.com/mauromedda/pebbletree/internal/engine"
	"github.com/mauromedda/pebbletree/internal/gesture"
	"github.com/mauromedda/pebbletree/internal/keybindings"
	"github.com/mauromedda/pebbletree/internal/session"
)

const (
	defaultWidth = 80
	// treeTop is the screen row of the root: title, blank line, tree.
	treeTop = 2
)

// shared holds mutable state that must survive AppModel value copies.
// Bubble Tea copies the model on each Update; pointer fields are shared
// across copies. The session handler writes here synchronously from inside
// Update, so no locking is needed.
type shared struct {
	last    session.Change
	hasLast bool
}

// AppModel is the root Bubble Tea model for the puzzle.
type AppModel struct {
	sh *shared // survives value copies

	deps    AppDeps
	game    *session.Game
	keys    *keybindings.Manager
	gesture *gesture.Machine
	md      *MarkdownRenderer
	now     func() time.Time

	width, height int

	cursor   int
	hint     int // -1 when no hint is shown
	note     string
	pressSeq int

	startDepth, startBank int

	// Overlay (nil = no overlay)
	overlay tea.Model
}

// NewAppModel creates an AppModel wired with the given dependencies.
func NewAppModel(deps AppDeps) AppModel {
	if deps.Game == nil {
		deps.Game = session.New(config.DefaultDepth, config.DefaultBank)
	}
	if deps.Keys == nil {
		deps.Keys = keybindings.NewFromBindings(config.NewKeybindings())
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	sh := &shared{}
	deps.Game.Subscribe(func(c session.Change) {
		sh.last = c
		sh.hasLast = true
	})

	return AppModel{
		sh:         sh,
		deps:       deps,
		game:       deps.Game,
		keys:       deps.Keys,
		gesture:    gesture.New(deps.LongPress),
		md:         NewMarkdownRenderer(),
		now:        now,
		cursor:     engine.FirstLeaf(deps.Game.Depth()),
		hint:       -1,
		startDepth: deps.Game.Depth(),
		startBank:  deps.Game.Bank(),
	}
}

// Init sets the terminal title.
func (m AppModel) Init() tea.Cmd {
	return tea.SetWindowTitle("pebbletree")
}

// Update routes messages to the appropriate handler.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.overlay != nil {
			m.overlay, _ = m.overlay.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if m.overlay != nil {
			var cmd tea.Cmd
			m.overlay, cmd = m.overlay.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.overlay != nil {
			return m, nil
		}
		return m.handleMouse(msg)

	case longPressTickMsg:
		if msg.seq != m.pressSeq {
			return m, nil
		}
		m = m.dispatch(m.gesture.Tick(m.now()))
		return m, nil

	case startGameMsg:
		m.overlay = nil
		m = m.restart(msg.Depth, msg.Bank)
		return m, nil

	case closeOverlayMsg:
		m.overlay = nil
		return m, nil
	}
	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	depth := m.game.Depth()

	switch m.keys.ActionFor(msg.String()) {
	case config.ActionQuit:
		return m, tea.Quit

	case config.ActionCursorUp:
		if p, ok := engine.Parent(m.cursor); ok {
			m.cursor = p
		}
	case config.ActionCursorDown:
		if l, _, ok := engine.Children(depth, m.cursor); ok {
			m.cursor = l
		}
	case config.ActionCursorLeft:
		first, last := engine.LevelRange(engine.Level(m.cursor))
		if m.cursor--; m.cursor < first {
			m.cursor = last
		}
	case config.ActionCursorRight:
		first, last := engine.LevelRange(engine.Level(m.cursor))
		if m.cursor++; m.cursor > last {
			m.cursor = first
		}

	case config.ActionToggle:
		m = m.apply(func() error { return m.game.Tap(m.cursor) })
	case config.ActionCombine:
		m = m.apply(func() error { return m.game.Combine(m.cursor) })
	case config.ActionUndo:
		m = m.apply(m.game.Undo)
	case config.ActionRestart:
		m = m.restart(m.startDepth, m.startBank)
	case config.ActionHint:
		m = m.showHint()

	case config.ActionNewGame:
		m.overlay = NewSetupModel(m.startDepth, m.startBank, m.deps.Presets)
	case config.ActionHelp:
		m.overlay = NewHelpModel(m.md, m.keys.FormatAll(), m.viewWidth())
	}
	return m, nil
}

func (m AppModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	node, onNode := m.nodeAtCell(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onNode {
			return m, nil
		}
		m.cursor = node
		if msg.Shift {
			m.gesture.Cancel()
			m = m.apply(func() error { return m.game.Combine(node) })
			return m, nil
		}
		m.gesture.Press(node, m.now())
		m.pressSeq++
		seq := m.pressSeq
		return m, tea.Tick(m.gesture.Threshold(), func(time.Time) tea.Msg {
			return longPressTickMsg{seq: seq}
		})

	case tea.MouseActionRelease:
		if !onNode {
			node = -1
		}
		m = m.dispatch(m.gesture.Release(node, m.now()))
	}
	return m, nil
}

// dispatch turns a resolved gesture into a session call.
func (m AppModel) dispatch(g gesture.Gesture) AppModel {
	switch g.Kind {
	case gesture.Tap:
		m.cursor = g.Node
		return m.apply(func() error { return m.game.Tap(g.Node) })
	case gesture.LongPress:
		m.cursor = g.Node
		return m.apply(func() error { return m.game.Combine(g.Node) })
	}
	return m
}

// apply runs a session operation. The outcome reaches the view through the
// session subscription, so the returned error needs no handling here.
func (m AppModel) apply(op func() error) AppModel {
	_ = op()
	m.note = ""
	m.hint = -1
	return m
}

func (m AppModel) restart(depth, bank int) AppModel {
	m.game.Restart(depth, bank)
	m.startDepth, m.startBank = m.game.Depth(), m.game.Bank()
	m.cursor = engine.FirstLeaf(m.game.Depth())
	m.gesture.Cancel()
	m.note = ""
	m.hint = -1
	return m
}

func (m AppModel) showHint() AppModel {
	mv, ok := m.game.Hint()
	if !ok {
		if m.game.HasWon() {
			m.note = "Already solved."
		} else {
			m.note = "No way to win from here; undo or restart."
		}
		m.hint = -1
		return m
	}
	m.hint = mv.Node
	m.cursor = mv.Node
	m.note = "Hint: " + mv.String()
	return m
}

func (m AppModel) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m AppModel) layout() (treeLayout, int) {
	w := m.viewWidth()
	l := newTreeLayout(m.game.Depth(), w)
	return l, max(0, (w-l.width())/2)
}

// nodeAtCell maps a screen cell to a node.
func (m AppModel) nodeAtCell(x, y int) (int, bool) {
	l, left := m.layout()
	return l.nodeAt(x-left, y-treeTop)
}

// statusLine describes the last change, or the pending note.
func (m AppModel) statusLine() string {
	s := Styles()
	if m.note != "" {
		return s.Accent.Render(m.note)
	}
	if !m.sh.hasLast {
		return s.Muted.Render("Place pebbles on the leaves and combine them up to the root.")
	}
	c := m.sh.last
	switch {
	case c.Err != nil:
		return s.Error.Render("! " + c.Err.Error())
	case c.Won:
		return s.Success.Render(fmt.Sprintf("Root pebbled in %d moves!", c.Moves))
	case c.Op == session.OpRestart:
		return s.Muted.Render(fmt.Sprintf("New game: depth %d, %d pebbles.", c.Snapshot.Depth, c.Snapshot.Bank))
	default:
		return s.Muted.Render(fmt.Sprintf("%s ok", c.Op))
	}
}

// View renders the full screen.
func (m AppModel) View() string {
	w := m.viewWidth()
	if m.overlay != nil {
		box := Styles().Overlay.Render(m.overlay.View())
		if m.height <= 0 {
			return box
		}
		return lipgloss.Place(w, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	s := Styles()
	l, left := m.layout()
	pad := strings.Repeat(" ", left)

	hint := m.hint
	if hint < 0 && m.deps.ShowHints {
		if mv, ok := m.game.Hint(); ok {
			hint = mv.Node
		}
	}

	var b strings.Builder
	title := s.Title.Render("pebbletree")
	if m.deps.Version != "" {
		title += s.Muted.Render(" " + m.deps.Version)
	}
	b.WriteString(title + "\n\n")

	tree := renderTree(m.game.Snapshot(), l, m.cursor, hint)
	for _, line := range strings.Split(tree, "\n") {
		b.WriteString(pad + line + "\n")
	}
	b.WriteString("\n" + m.statusLine() + "\n\n")

	footer := NewFooterModel(m.keys.Label(config.ActionHelp)).
		WithBank(m.game.Bank(), m.startBank).
		WithGame(m.game.Depth(), m.game.Moves(), m.game.CanUndo(), m.game.Solvable(), m.game.HasWon()).
		WithWidth(w)
	b.WriteString(footer.View())
	return b.String()
}
