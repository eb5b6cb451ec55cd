// ABOUTME: Lipgloss styles for the tree, footer, status line and overlays
// ABOUTME: Two palettes chosen by lipgloss.HasDarkBackground(); built once and cached

package btea

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ThemeStyles holds pre-built lipgloss styles for every visual role.
type ThemeStyles struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Bold     lipgloss.Style
	Edge     lipgloss.Style
	Empty    lipgloss.Style
	Pebbled  lipgloss.Style
	Cursor   lipgloss.Style
	HintNode lipgloss.Style
	Overlay  lipgloss.Style
	Field    lipgloss.Style
	FieldOn  lipgloss.Style
}

var (
	stylesOnce sync.Once
	styles     ThemeStyles
)

// Styles returns the palette for the detected terminal background.
func Styles() ThemeStyles {
	stylesOnce.Do(func() {
		styles = buildStyles(lipgloss.HasDarkBackground())
	})
	return styles
}

func buildStyles(dark bool) ThemeStyles {
	fg := lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	muted := lipgloss.Color("244")
	accent := lipgloss.Color("39")
	pebble := lipgloss.Color("214")
	if !dark {
		accent = lipgloss.Color("26")
		pebble = lipgloss.Color("130")
	}

	return ThemeStyles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Success:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Bold:     lipgloss.NewStyle().Bold(true),
		Edge:     lipgloss.NewStyle().Foreground(muted),
		Empty:    lipgloss.NewStyle().Foreground(fg),
		Pebbled:  lipgloss.NewStyle().Bold(true).Foreground(pebble),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		HintNode: lipgloss.NewStyle().Underline(true),
		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		Field:   lipgloss.NewStyle().Foreground(fg),
		FieldOn: lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}
