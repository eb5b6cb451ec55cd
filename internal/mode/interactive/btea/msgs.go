// ABOUTME: Custom tea.Msg types for the puzzle TUI
// ABOUTME: Long-press timer ticks and overlay results

package btea

// longPressTickMsg fires once the hold threshold has elapsed for press seq.
type longPressTickMsg struct{ seq int }

// startGameMsg is sent by the setup form when the player confirms.
type startGameMsg struct {
	Depth int
	Bank  int
}

// closeOverlayMsg dismisses the active overlay without side effects.
type closeOverlayMsg struct{}
