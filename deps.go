// ABOUTME: Startup checks for the required external tools
// ABOUTME: Missing collaborators are fatal before the menu starts

package main

import (
	"fmt"
	"os/exec"

	"tubedeck/config"
)

// checkDependencies verifies the required external tools are reachable.
// The text-to-speech tool is deliberately not required: without it the
// notification cue simply stays silent.
func checkDependencies(tools config.ToolConfig) error {
	required := []struct {
		name string
		path string
	}{
		{"yt-dlp", tools.YtdlpPath},
		{"mpv", tools.MpvPath},
		{"aplay", tools.AplayPath},
	}

	for _, dep := range required {
		if _, err := exec.LookPath(dep.path); err != nil {
			return fmt.Errorf("required tool %s not found (looked for %q): %w", dep.name, dep.path, err)
		}
	}

	return nil
}
