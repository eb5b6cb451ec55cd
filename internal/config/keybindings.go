// ABOUTME: Puzzle key actions, their default keys, and keybindings.json load/save
// ABOUTME: Key strings use Bubble Tea's KeyMsg.String() format ("up", "ctrl+z", "c")

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// KeyAction names something the player can do from the keyboard.
type KeyAction string

const (
	ActionCursorUp    KeyAction = "cursorUp"
	ActionCursorDown  KeyAction = "cursorDown"
	ActionCursorLeft  KeyAction = "cursorLeft"
	ActionCursorRight KeyAction = "cursorRight"
	ActionToggle      KeyAction = "toggle"
	ActionCombine     KeyAction = "combine"
	ActionUndo        KeyAction = "undo"
	ActionRestart     KeyAction = "restart"
	ActionNewGame     KeyAction = "newGame"
	ActionHint        KeyAction = "hint"
	ActionHelp        KeyAction = "help"
	ActionQuit        KeyAction = "quit"
)

// ActionInfo describes one action in help order.
type ActionInfo struct {
	Action KeyAction
	Label  string
	Keys   []string // defaults
}

// Actions lists every action in the order the help table shows them.
var Actions = []ActionInfo{
	{ActionCursorUp, "Move to parent", []string{"up", "k"}},
	{ActionCursorDown, "Move to left child", []string{"down", "j"}},
	{ActionCursorLeft, "Previous node on level", []string{"left", "h"}},
	{ActionCursorRight, "Next node on level", []string{"right", "l"}},
	{ActionToggle, "Place / remove pebble", []string{"enter", " "}},
	{ActionCombine, "Combine into parent", []string{"c", "shift+up"}},
	{ActionUndo, "Undo", []string{"u", "ctrl+z"}},
	{ActionHint, "Hint", []string{"t"}},
	{ActionRestart, "Restart", []string{"r"}},
	{ActionNewGame, "New game", []string{"n"}},
	{ActionHelp, "Help", []string{"?"}},
	{ActionQuit, "Quit", []string{"q", "ctrl+c"}},
}

func knownAction(a KeyAction) bool {
	for _, info := range Actions {
		if info.Action == a {
			return true
		}
	}
	return false
}

// Keybindings maps actions to the keys that trigger them.
type Keybindings struct {
	Bindings map[KeyAction][]string
}

// NewKeybindings returns the default bindings.
func NewKeybindings() *Keybindings {
	kb := &Keybindings{Bindings: make(map[KeyAction][]string, len(Actions))}
	for _, info := range Actions {
		kb.Bindings[info.Action] = append([]string(nil), info.Keys...)
	}
	return kb
}

// LoadKeybindings loads the bindings listed in a file. Unknown action names
// are ignored; the result holds only the actions the file mentions.
func LoadKeybindings(path string) (*Keybindings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	kb := &Keybindings{Bindings: make(map[KeyAction][]string, len(raw))}
	for name, keys := range raw {
		if a := KeyAction(name); knownAction(a) {
			kb.Bindings[a] = keys
		}
	}
	return kb, nil
}

// SaveKeybindings writes kb as a JSON object keyed by action name.
func (kb *Keybindings) SaveKeybindings(path string) error {
	raw := make(map[string][]string, len(kb.Bindings))
	for a, keys := range kb.Bindings {
		raw[string(a)] = keys
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// GetBindings returns the keys bound to action; nil-safe.
func (kb *Keybindings) GetBindings(action KeyAction) []string {
	if kb == nil {
		return nil
	}
	return kb.Bindings[action]
}
