// ABOUTME: Standard filesystem paths for pebbletree configuration and data
// ABOUTME: Resolves ~/.pebbletree/ for global and .pebbletree/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".pebbletree"
	projectDirName = ".pebbletree"
)

// GlobalDir returns the user-global config directory (~/.pebbletree/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.pebbletree/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global settings file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local settings file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

// PresetsFiles returns the preset files in load order; later files win.
func PresetsFiles(projectRoot string) []string {
	return []string{
		filepath.Join(GlobalDir(), "presets.yaml"),
		filepath.Join(ProjectDir(projectRoot), "presets.yaml"),
	}
}

// GlobalKeybindingsFile returns the path to the global keybindings file.
func GlobalKeybindingsFile() string {
	return filepath.Join(GlobalDir(), "keybindings.json")
}

// LocalKeybindingsFile returns the path to the project keybindings file.
func LocalKeybindingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "keybindings.json")
}

// LogFile returns where --verbose logging goes in interactive mode.
func LogFile() string {
	return filepath.Join(GlobalDir(), "debug.log")
}
