// ABOUTME: Persisted user settings for site, search mode and audio selection
// ABOUTME: Flat KEY=VALUE file with per-line fail-soft parsing

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Site selects which search endpoint queries go to.
type Site string

// Supported search endpoints.
const (
	SiteYouTube Site = "youtube"
	SiteMusic   Site = "music"
)

// SearchMode selects what kind of results a search returns.
type SearchMode string

// Supported search modes.
const (
	ModeVideos    SearchMode = "videos"
	ModePlaylists SearchMode = "playlists"
)

// Settings file keys
const (
	keySite        = "SITE"
	keySearchType  = "SEARCH_TYPE"
	keyDeviceIndex = "AUDIO_DEVICE_INDEX"
	keyAudioOnly   = "AUDIO_ONLY_MODE"
)

// Settings holds the handful of scalar preferences persisted between runs
type Settings struct {
	Site             Site
	SearchMode       SearchMode
	AudioDeviceIndex int
	AudioOnly        bool
}

// DefaultSettings returns the compiled-in defaults
func DefaultSettings() Settings {
	return Settings{
		Site:             SiteYouTube,
		SearchMode:       ModeVideos,
		AudioDeviceIndex: 0,
		AudioOnly:        false,
	}
}

// SettingsPath returns the settings file path
// First tries current directory, then falls back to ~/.config/tubedeck/settings.conf
func SettingsPath() string {
	// First try current directory
	if _, err := os.Stat("./tubedeck.conf"); err == nil {
		return "./tubedeck.conf"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./tubedeck.conf"
	}

	return filepath.Join(home, ".config", "tubedeck", "settings.conf")
}

// LoadSettings reads settings from a flat KEY=VALUE file.
// Loading never fails: a missing file, an unparseable line, an unknown key or
// an out-of-range value all leave the corresponding default in place.
func LoadSettings(path string) Settings {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return settings
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		switch key {
		case keySite:
			if value == string(SiteYouTube) || value == string(SiteMusic) {
				settings.Site = Site(value)
			}
		case keySearchType:
			if value == string(ModeVideos) || value == string(ModePlaylists) {
				settings.SearchMode = SearchMode(value)
			}
		case keyDeviceIndex:
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				settings.AudioDeviceIndex = n
			}
		case keyAudioOnly:
			if b, err := strconv.ParseBool(value); err == nil {
				settings.AudioOnly = b
			}
		}
		// Unknown keys are ignored
	}

	return settings
}

// SaveSettings overwrites the settings file with all four keys.
// Truncate-and-rewrite is fine for a single-user CLI.
func SaveSettings(path string, settings Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s=%s\n", keySite, settings.Site)
	fmt.Fprintf(&b, "%s=%s\n", keySearchType, settings.SearchMode)
	fmt.Fprintf(&b, "%s=%d\n", keyDeviceIndex, settings.AudioDeviceIndex)
	fmt.Fprintf(&b, "%s=%t\n", keyAudioOnly, settings.AudioOnly)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
