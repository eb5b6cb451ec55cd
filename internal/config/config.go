// ABOUTME: Settings loading with global + project config deep merge
// ABOUTME: JSON settings; CLI overrides applied last; presets fill unset depth/bank

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Defaults used when neither settings nor a preset choose a value.
const (
	DefaultDepth       = 4
	DefaultBank        = 8
	DefaultLongPressMS = 500
)

// Settings holds the merged configuration.
type Settings struct {
	Depth       int    `json:"depth,omitempty"`
	Bank        int    `json:"bank,omitempty"`
	Preset      string `json:"preset,omitempty"`
	LongPressMS int    `json:"long_press_ms,omitempty"`
	Mouse       *bool  `json:"mouse,omitempty"`
	ShowHints   bool   `json:"show_hints,omitempty"`
}

// Overrides carries CLI flag values; zero values leave settings untouched.
type Overrides struct {
	Depth   int
	Bank    int
	Preset  string
	NoMouse bool
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// LoadAll loads settings and applies CLI overrides on top.
func LoadAll(projectRoot string, o Overrides) (*Settings, error) {
	s, err := Load(projectRoot)
	if err != nil {
		return nil, err
	}
	return s.WithOverrides(o), nil
}

// loadFile reads Settings from a JSON file. Returns zero Settings if the file
// does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Depth != 0 {
		result.Depth = project.Depth
	}
	if project.Bank != 0 {
		result.Bank = project.Bank
	}
	if project.Preset != "" {
		result.Preset = project.Preset
	}
	if project.LongPressMS != 0 {
		result.LongPressMS = project.LongPressMS
	}
	if project.Mouse != nil {
		m := *project.Mouse
		result.Mouse = &m
	}
	if project.ShowHints {
		result.ShowHints = true
	}

	return &result
}

// WithOverrides returns a copy of s with CLI values applied. A preset given
// on the command line replaces depth and bank from config files.
func (s *Settings) WithOverrides(o Overrides) *Settings {
	result := *s
	if o.Preset != "" {
		result.Preset = o.Preset
		result.Depth = 0
		result.Bank = 0
	}
	if o.Depth != 0 {
		result.Depth = o.Depth
	}
	if o.Bank != 0 {
		result.Bank = o.Bank
	}
	if o.NoMouse {
		off := false
		result.Mouse = &off
	}
	return &result
}

// LongPress returns the hold time that turns a click into a combine.
func (s *Settings) LongPress() time.Duration {
	ms := s.LongPressMS
	if ms <= 0 {
		ms = DefaultLongPressMS
	}
	return time.Duration(ms) * time.Millisecond
}

// MouseEnabled reports whether mouse input should be captured.
func (s *Settings) MouseEnabled() bool {
	return s.Mouse == nil || *s.Mouse
}

// GameSize resolves the starting depth and bank: explicit values win, then
// the named preset, then defaults. The engine clamps the result.
func (s *Settings) GameSize(presets []Preset) (depth, bank int, err error) {
	depth, bank = DefaultDepth, DefaultBank
	if s.Preset != "" {
		p, err := FindPreset(presets, s.Preset)
		if err != nil {
			return 0, 0, err
		}
		depth, bank = p.Depth, p.Bank
	}
	if s.Depth != 0 {
		depth = s.Depth
	}
	if s.Bank != 0 {
		bank = s.Bank
	}
	return depth, bank, nil
}
