// ABOUTME: Dependency injection struct for the Bubble Tea interactive app
// ABOUTME: The session, key map, presets and input tuning come from the CLI layer

package btea

import (
	"time"

	"github.com/mauromedda/pebbletree/internal/config"
	"github.com/mauromedda/pebbletree/internal/keybindings"
	"github.com/mauromedda/pebbletree/internal/session"
)

// AppDeps bundles all dependencies for the Bubble Tea interactive app.
type AppDeps struct {
	Game      *session.Game
	Keys      *keybindings.Manager
	Presets   []config.Preset
	LongPress time.Duration
	Mouse     bool
	ShowHints bool
	Version   string

	// Now is the clock used for gesture timing; nil means time.Now.
	Now func() time.Time
}
