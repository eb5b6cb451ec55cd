// ABOUTME: Keybindings manager with O(1) key-to-action lookup
// ABOUTME: Merges global and local configs over defaults and detects conflicts

package keybindings

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/mauromedda/pebbletree/internal/config"
)

// ConflictInfo describes a binding conflict where multiple actions share a key.
type ConflictInfo struct {
	Key     string
	Actions []config.KeyAction
}

// Manager provides O(1) key-to-action lookup from merged keybindings.
type Manager struct {
	bindings *config.Keybindings
	lookup   map[string]config.KeyAction // "ctrl+z" → ActionUndo
}

// New creates a Manager from global and local keybinding files.
// Local bindings override global ones. Missing files are ignored.
func New(globalPath, localPath string) *Manager {
	kb := config.NewKeybindings()
	for _, path := range []string{globalPath, localPath} {
		if path == "" {
			continue
		}
		if over, err := config.LoadKeybindings(path); err == nil {
			maps.Copy(kb.Bindings, over.Bindings)
		}
	}
	return NewFromBindings(kb)
}

// NewFromBindings creates a Manager from an existing Keybindings instance.
func NewFromBindings(kb *config.Keybindings) *Manager {
	m := &Manager{bindings: kb}
	m.buildLookup()
	return m
}

// ActionFor returns the action bound to a Bubble Tea key string, or "" if
// unbound.
func (m *Manager) ActionFor(key string) config.KeyAction {
	return m.lookup[key]
}

// Keys returns the keys bound to action.
func (m *Manager) Keys(action config.KeyAction) []string {
	return m.bindings.GetBindings(action)
}

// Label returns the first key for action in display form ("space" for " ").
func (m *Manager) Label(action config.KeyAction) string {
	keys := m.Keys(action)
	if len(keys) == 0 {
		return "-"
	}
	return displayKey(keys[0])
}

// Conflicts detects keys bound to multiple actions, sorted by key.
func (m *Manager) Conflicts() []ConflictInfo {
	keyActions := make(map[string][]config.KeyAction)
	for action, keys := range m.bindings.Bindings {
		for _, k := range keys {
			keyActions[k] = append(keyActions[k], action)
		}
	}

	var conflicts []ConflictInfo
	for _, k := range slices.Sorted(maps.Keys(keyActions)) {
		actions := keyActions[k]
		if len(actions) > 1 {
			slices.Sort(actions)
			conflicts = append(conflicts, ConflictInfo{Key: k, Actions: actions})
		}
	}
	return conflicts
}

// FormatAll returns a markdown table of all keybindings for the help overlay.
func (m *Manager) FormatAll() string {
	var b strings.Builder
	b.WriteString("| Action | Keys |\n|---|---|\n")
	for _, info := range config.Actions {
		keys := m.Keys(info.Action)
		if len(keys) == 0 {
			continue
		}
		shown := make([]string, len(keys))
		for i, k := range keys {
			shown[i] = "`" + displayKey(k) + "`"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", info.Label, strings.Join(shown, ", "))
	}
	return b.String()
}

func (m *Manager) buildLookup() {
	m.lookup = make(map[string]config.KeyAction, len(m.bindings.Bindings)*2)
	for action, keys := range m.bindings.Bindings {
		for _, k := range keys {
			m.lookup[k] = action
		}
	}
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
