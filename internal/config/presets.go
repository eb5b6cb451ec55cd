// ABOUTME: Named puzzle presets: built-ins plus user YAML files
// ABOUTME: Names resolve case-insensitively, falling back to the best fuzzy match

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Preset is a named starting configuration.
type Preset struct {
	Name        string `yaml:"name"`
	Depth       int    `yaml:"depth"`
	Bank        int    `yaml:"bank"`
	Description string `yaml:"description,omitempty"`
}

type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// ErrNoPreset is returned when a name matches nothing.
var ErrNoPreset = errors.New("no such preset")

// BuiltinPresets returns the presets shipped with the game.
func BuiltinPresets() []Preset {
	return []Preset{
		{Name: "sapling", Depth: 2, Bank: 2, Description: "Three nodes, two pebbles"},
		{Name: "shrub", Depth: 3, Bank: 5, Description: "One pebble to spare"},
		{Name: "hedge", Depth: 3, Bank: 4, Description: "No pebble to spare"},
		{Name: "orchard", Depth: 4, Bank: 10, Description: "Room for mistakes"},
		{Name: "oak", Depth: 4, Bank: 8, Description: "Exact count"},
		{Name: "forest", Depth: 5, Bank: 20, Description: "Sixteen leaves, some slack"},
		{Name: "sequoia", Depth: 5, Bank: 16, Description: "Sixteen leaves, exact count"},
	}
}

// LoadPresets returns the built-ins overlaid with each existing file in
// order. A file preset with a known name replaces it.
func LoadPresets(paths ...string) ([]Preset, error) {
	presets := BuiltinPresets()
	for _, path := range paths {
		extra, err := loadPresetFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, p := range extra {
			presets = upsertPreset(presets, p)
		}
	}
	return presets, nil
}

func loadPresetFile(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i, p := range f.Presets {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("parsing %s: preset %d has no name", path, i+1)
		}
	}
	return f.Presets, nil
}

func upsertPreset(presets []Preset, p Preset) []Preset {
	key := foldName(p.Name)
	for i := range presets {
		if foldName(presets[i].Name) == key {
			presets[i] = p
			return presets
		}
	}
	return append(presets, p)
}

// FindPreset resolves name against presets: exact (case-folded) first, then
// the highest scoring fuzzy match.
func FindPreset(presets []Preset, name string) (Preset, error) {
	key := foldName(name)
	if key == "" {
		return Preset{}, fmt.Errorf("%w: empty name", ErrNoPreset)
	}

	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = foldName(p.Name)
		if names[i] == key {
			return p, nil
		}
	}

	matches := fuzzy.Find(key, names)
	if len(matches) == 0 {
		return Preset{}, fmt.Errorf("%w: %q", ErrNoPreset, name)
	}
	return presets[matches[0].Index], nil
}

// foldName normalizes a preset name for comparison.
func foldName(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}
