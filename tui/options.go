// ABOUTME: TUI configuration and injected dependencies
// ABOUTME: Defines input parameters for running the interactive menu

package tui

import (
	"tubedeck/audio"
	"tubedeck/config"
)

// Options contains configuration for running the TUI
type Options struct {
	InitialQuery string // optional query to run before entering the menu
}

// Dependencies holds all external dependencies for the TUI
// This allows for clean dependency injection and easy testing
type Dependencies struct {
	Settings     config.Settings
	SettingsPath string

	Tools     config.ToolConfig
	ToolsPath string // watched for live reload; empty disables watching

	Registry   *audio.Registry
	Cue        CuePlayer
	Searcher   Searcher
	Player     CommandBuilder
	LocalMedia MediaLister

	Debugf func(format string, args ...interface{})
}
