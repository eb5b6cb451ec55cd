// ABOUTME: FooterModel renders the pebble bank widget and game counters
// ABOUTME: Line 1: bank pebbles + count; line 2: depth, moves, undo, solvability, help key

package btea

import (
	"fmt"
	"strings"

	"github.com/mauromedda/pebbletree/pkg/tui/canvas"
)

// FooterModel is a stateless view over game counters.
type FooterModel struct {
	bank     int
	capacity int
	depth    int
	moves    int
	undo     bool
	solvable bool
	won      bool
	helpKey  string
	width    int
}

// NewFooterModel creates a footer with the help key label shown on line 2.
func NewFooterModel(helpKey string) FooterModel {
	return FooterModel{helpKey: helpKey, solvable: true}
}

// WithBank sets the current and starting bank size.
func (m FooterModel) WithBank(bank, capacity int) FooterModel {
	m.bank, m.capacity = bank, capacity
	return m
}

// WithGame sets the per-game counters.
func (m FooterModel) WithGame(depth, moves int, canUndo, solvable, won bool) FooterModel {
	m.depth, m.moves, m.undo, m.solvable, m.won = depth, moves, canUndo, solvable, won
	return m
}

// WithWidth sets the terminal width used for right alignment.
func (m FooterModel) WithWidth(w int) FooterModel {
	m.width = w
	return m
}

// View renders both footer lines.
func (m FooterModel) View() string {
	s := Styles()

	capacity := max(m.capacity, m.bank)
	bankBar := s.Pebbled.Render(strings.Repeat("o", m.bank)) +
		s.Muted.Render(strings.Repeat(".", capacity-m.bank))
	line1 := fmt.Sprintf("Bank %s %s", bankBar, s.Bold.Render(fmt.Sprintf("%d", m.bank)))

	parts := []string{
		fmt.Sprintf("depth %d", m.depth),
		fmt.Sprintf("moves %d", m.moves),
	}
	if m.undo {
		parts = append(parts, "undo available")
	}
	left := s.Muted.Render(strings.Join(parts, " · "))
	switch {
	case m.won:
		left += "  " + s.Success.Render("solved")
	case !m.solvable:
		left += "  " + s.Warning.Render("not enough pebbles left; undo or restart")
	}
	right := s.Muted.Render(m.helpKey + " help")

	line2 := left
	if pad := m.width - canvas.Width(left) - canvas.Width(right); pad > 0 {
		line2 = left + strings.Repeat(" ", pad) + right
	} else {
		line2 = left + "  " + right
	}
	return line1 + "\n" + line2
}
