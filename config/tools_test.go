// ABOUTME: Tests for tool configuration load/save functionality
// ABOUTME: Validates TOML parsing and default config fallback behavior

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultToolConfig(t *testing.T) {
	cfg := DefaultToolConfig()

	if cfg.YtdlpPath != "yt-dlp" {
		t.Errorf("Expected YtdlpPath yt-dlp, got %q", cfg.YtdlpPath)
	}

	if cfg.ResultsPerPage != 15 {
		t.Errorf("Expected ResultsPerPage 15, got %d", cfg.ResultsPerPage)
	}
}

func TestSaveAndLoadToolConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tubedeck.toml")

	cfg := DefaultToolConfig()
	cfg.MpvPath = "/usr/local/bin/mpv"
	cfg.MaxVideoHeight = 720

	if err := SaveToolConfig(path, cfg); err != nil {
		t.Fatalf("SaveToolConfig failed: %v", err)
	}

	loaded, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("LoadToolConfig failed: %v", err)
	}

	if loaded != cfg {
		t.Errorf("Roundtrip mismatch: got %+v, want %+v", loaded, cfg)
	}
}

func TestLoadNonExistentToolConfig(t *testing.T) {
	// Loading non-existent file should return defaults without error
	cfg, err := LoadToolConfig("/nonexistent/path/tubedeck.toml")
	if err != nil {
		t.Errorf("Expected no error for non-existent file, got: %v", err)
	}

	if cfg != DefaultToolConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadPartialToolConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tubedeck.toml")
	if err := os.WriteFile(path, []byte("results_per_page = 10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("LoadToolConfig failed: %v", err)
	}

	if cfg.ResultsPerPage != 10 {
		t.Errorf("Expected ResultsPerPage 10, got %d", cfg.ResultsPerPage)
	}

	// Unmentioned fields are backfilled with defaults
	if cfg.MpvPath != "mpv" {
		t.Errorf("Expected default MpvPath, got %q", cfg.MpvPath)
	}

	if cfg.MaxResults != 60 {
		t.Errorf("Expected default MaxResults, got %d", cfg.MaxResults)
	}
}

func TestLoadInvalidToolConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tubedeck.toml")
	if err := os.WriteFile(path, []byte("not valid toml ["), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadToolConfig(path)
	if err == nil {
		t.Error("Expected error for invalid TOML")
	}

	if cfg != DefaultToolConfig() {
		t.Errorf("Expected defaults on parse error, got %+v", cfg)
	}
}
