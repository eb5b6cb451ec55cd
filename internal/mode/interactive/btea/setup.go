// ABOUTME: SetupModel overlay: the new-game form choosing depth and bank size
// ABOUTME: Arrow keys edit, p cycles presets, enter starts, esc cancels

package btea

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mauromedda/pebbletree/internal/config"
	"github.com/mauromedda/pebbletree/internal/engine"
)

const (
	fieldDepth = iota
	fieldBank
	fieldCount
)

// SetupModel edits the parameters of the next game.
type SetupModel struct {
	depth   int
	bank    int
	field   int
	presets []config.Preset
	preset  int // index into presets, -1 when values were edited by hand
}

// NewSetupModel starts the form from the current game's size.
func NewSetupModel(depth, bank int, presets []config.Preset) SetupModel {
	return SetupModel{depth: depth, bank: bank, presets: presets, preset: -1}
}

// Init returns nil.
func (m SetupModel) Init() tea.Cmd { return nil }

// Update handles form keys.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "esc", "q":
		return m, func() tea.Msg { return closeOverlayMsg{} }
	case "enter":
		d, b := m.depth, m.bank
		return m, func() tea.Msg { return startGameMsg{Depth: d, Bank: b} }
	case "tab", "down", "j":
		m.field = (m.field + 1) % fieldCount
	case "shift+tab", "up", "k":
		m.field = (m.field + fieldCount - 1) % fieldCount
	case "left", "h", "-":
		m = m.adjust(-1)
	case "right", "l", "+", "=":
		m = m.adjust(1)
	case "p":
		if len(m.presets) > 0 {
			m.preset = (m.preset + 1) % len(m.presets)
			m.depth = m.presets[m.preset].Depth
			m.bank = m.presets[m.preset].Bank
		}
	}
	return m, nil
}

func (m SetupModel) adjust(delta int) SetupModel {
	switch m.field {
	case fieldDepth:
		m.depth = max(engine.MinDepth, min(engine.MaxDepth, m.depth+delta))
	case fieldBank:
		m.bank = max(engine.MinBank, min(engine.MaxBank, m.bank+delta))
	}
	m.preset = -1
	return m
}

// View renders the form.
func (m SetupModel) View() string {
	s := Styles()
	var b strings.Builder
	b.WriteString(s.Title.Render("New game") + "\n\n")

	rows := []struct {
		label string
		value int
		lo    int
		hi    int
	}{
		{"Depth", m.depth, engine.MinDepth, engine.MaxDepth},
		{"Bank ", m.bank, engine.MinBank, engine.MaxBank},
	}
	for i, r := range rows {
		st, marker := s.Field, "  "
		if i == m.field {
			st, marker = s.FieldOn, "> "
		}
		fmt.Fprintf(&b, "%s%s\n", marker, st.Render(fmt.Sprintf("%s  < %2d >  (%d-%d)", r.label, r.value, r.lo, r.hi)))
	}

	leaves := engine.LeafCount(m.depth)
	b.WriteString("\n")
	if m.preset >= 0 {
		p := m.presets[m.preset]
		b.WriteString(s.Accent.Render("Preset: "+p.Name) + " " + s.Muted.Render(p.Description) + "\n")
	}
	if m.bank < leaves {
		b.WriteString(s.Warning.Render(fmt.Sprintf("%d leaves need %d pebbles; this game cannot be won.", leaves, leaves)) + "\n")
	} else {
		b.WriteString(s.Muted.Render(fmt.Sprintf("%d leaves, %d spare pebbles.", leaves, m.bank-leaves)) + "\n")
	}
	b.WriteString("\n" + s.Muted.Render("←/→ change · ↑/↓ field · p preset · enter start · esc cancel"))
	return b.String()
}
