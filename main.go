// ABOUTME: Entry point for tubedeck, a terminal front-end for video search
// ABOUTME: Handles flags, dependency checks and wiring of the interactive menu

// Package main provides the entry point for tubedeck, an interactive terminal
// front-end that searches a video platform and dispatches playback or download
// to external media tools.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"tubedeck/audio"
	"tubedeck/config"
	"tubedeck/player"
	"tubedeck/search"
	"tubedeck/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	debug := flag.Bool("debug", false, "enable debug logging to tubedeck-debug.log")
	flag.Parse()

	// Any positional arguments form the initial query
	initialQuery := strings.TrimSpace(strings.Join(flag.Args(), " "))

	if *debug {
		if err := SetupDebugLog("tubedeck-debug.log"); err != nil {
			log.Printf("Failed to setup debug log: %v", err)

			return 1
		}
	}

	toolsPath := config.ToolConfigPath()

	tools, err := config.LoadToolConfig(toolsPath)
	if err != nil {
		log.Printf("Warning: %v (using defaults)", err)
	}

	// Write the default config once so users have a file to edit
	if _, err := os.Stat(toolsPath); os.IsNotExist(err) {
		if err := config.SaveToolConfig(toolsPath, tools); err != nil {
			debugf("Failed to write default tool config: %v", err)
		}
	}

	if err := checkDependencies(tools); err != nil {
		fmt.Fprintln(os.Stderr, err)

		return 1
	}

	settingsPath := config.SettingsPath()
	settings := config.LoadSettings(settingsPath)

	devices := audio.Detect(audio.ExecRunner, tools.AplayPath)
	registry := audio.NewRegistry(devices, settings.AudioDeviceIndex)
	// Run with the wrapped index in case the device list shrank
	settings.AudioDeviceIndex = registry.Index()

	cuePath := audio.AssetPath()
	if _, err := exec.LookPath(tools.EspeakPath); err == nil {
		// Text-to-speech is optional; without it the cue stays silent
		if err := audio.EnsureAsset(cuePath, tools.EspeakPath); err != nil {
			debugf("Notification sound unavailable: %v", err)
		}
	}

	cue := audio.NewCue(cuePath, tools.AplayPath, registry.Current)

	deps := tui.Dependencies{
		Settings:     settings,
		SettingsPath: settingsPath,
		Tools:        tools,
		ToolsPath:    toolsPath,
		Registry:     registry,
		Cue:          cue,
		Searcher:     search.NewClient(tools.YtdlpPath, tools.MaxResults, cue),
		Player: &player.Player{
			MpvPath:        tools.MpvPath,
			YtdlpPath:      tools.YtdlpPath,
			MaxVideoHeight: tools.MaxVideoHeight,
			DownloadDir:    tools.DownloadDir,
		},
		LocalMedia: player.LocalMedia,
		Debugf:     debugf,
	}

	if err := tui.Run(tui.Options{InitialQuery: initialQuery}, deps); err != nil {
		if errors.Is(err, tui.ErrNoResults) {
			fmt.Fprintf(os.Stderr, "No results for %q\n", initialQuery)

			return 1
		}

		log.Printf("TUI error: %v", err)

		return 1
	}

	return 0
}
