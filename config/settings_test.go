// ABOUTME: Tests for settings load/save functionality
// ABOUTME: Validates fail-soft parsing and default fallback behavior

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSettingsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "settings.conf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Site != SiteYouTube {
		t.Errorf("Expected default site %q, got %q", SiteYouTube, settings.Site)
	}

	if settings.SearchMode != ModeVideos {
		t.Errorf("Expected default search mode %q, got %q", ModeVideos, settings.SearchMode)
	}

	if settings.AudioDeviceIndex != 0 {
		t.Errorf("Expected default device index 0, got %d", settings.AudioDeviceIndex)
	}

	if settings.AudioOnly {
		t.Error("Expected audio-only to default to false")
	}
}

func TestLoadNonExistentSettings(t *testing.T) {
	settings := LoadSettings("/nonexistent/path/settings.conf")

	if settings != DefaultSettings() {
		t.Errorf("Expected defaults for missing file, got %+v", settings)
	}
}

func TestLoadPartialSettings(t *testing.T) {
	path := writeSettingsFile(t, "AUDIO_ONLY_MODE=true\n")

	settings := LoadSettings(path)

	if !settings.AudioOnly {
		t.Error("Expected audio-only true from file")
	}

	// Missing keys keep defaults
	if settings.Site != SiteYouTube {
		t.Errorf("Expected default site, got %q", settings.Site)
	}

	if settings.SearchMode != ModeVideos {
		t.Errorf("Expected default search mode, got %q", settings.SearchMode)
	}

	if settings.AudioDeviceIndex != 0 {
		t.Errorf("Expected default device index, got %d", settings.AudioDeviceIndex)
	}
}

func TestLoadMalformedLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no separator", "SITE music\n"},
		{"empty file", ""},
		{"blank lines", "\n\n\n"},
		{"unknown key", "COLOR_SCHEME=dark\n"},
		{"bad integer", "AUDIO_DEVICE_INDEX=banana\n"},
		{"negative index", "AUDIO_DEVICE_INDEX=-3\n"},
		{"bad bool", "AUDIO_ONLY_MODE=maybe\n"},
		{"out of range enum", "SITE=vimeo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettingsFile(t, tt.content)

			settings := LoadSettings(path)

			if settings != DefaultSettings() {
				t.Errorf("Expected defaults, got %+v", settings)
			}
		})
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.conf")

	settings := Settings{
		Site:             SiteMusic,
		SearchMode:       ModePlaylists,
		AudioDeviceIndex: 2,
		AudioOnly:        true,
	}

	if err := SaveSettings(path, settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	loaded := LoadSettings(path)
	if loaded != settings {
		t.Errorf("Roundtrip mismatch: got %+v, want %+v", loaded, settings)
	}
}

func TestToggleScenario(t *testing.T) {
	// File contains only AUDIO_ONLY_MODE=true; after load everything else
	// is default. Toggling audio-only and saving writes all four keys.
	path := writeSettingsFile(t, "AUDIO_ONLY_MODE=true\n")

	settings := LoadSettings(path)
	if !settings.AudioOnly {
		t.Fatal("Expected audio-only true after load")
	}

	settings.AudioOnly = !settings.AudioOnly

	if err := SaveSettings(path, settings); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	content := string(data)
	for _, want := range []string{
		"SITE=youtube\n",
		"SEARCH_TYPE=videos\n",
		"AUDIO_DEVICE_INDEX=0\n",
		"AUDIO_ONLY_MODE=false\n",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Saved file missing line %q, content:\n%s", want, content)
		}
	}
}
