// ABOUTME: Pre-sets the lipgloss background before BubbleTea's init() sends OSC queries
// ABOUTME: PEBBLETREE_BACKGROUND=light selects the light palette; anything else is dark

package termfix

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BackgroundEnv names the variable that picks the palette.
const BackgroundEnv = "PEBBLETREE_BACKGROUND"

func init() {
	// BubbleTea's own init() calls lipgloss.HasDarkBackground(); once the
	// background is set explicitly the OSC 10/11 query is skipped, so its
	// reply cannot leak into the input stream.
	//
	// This package must NOT import bubbletea (directly or transitively)
	// so that Go's init order guarantees this runs first.
	lipgloss.SetHasDarkBackground(dark(os.Getenv(BackgroundEnv)))
}

func dark(v string) bool {
	return !strings.EqualFold(strings.TrimSpace(v), "light")
}
