// ABOUTME: External tool configuration loaded from a TOML file
// ABOUTME: Handles tool paths and layout tunables with fallback to defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ToolConfig holds paths to the external collaborators and layout tunables
type ToolConfig struct {
	YtdlpPath  string `toml:"ytdlp_path"`
	MpvPath    string `toml:"mpv_path"`
	AplayPath  string `toml:"aplay_path"`
	EspeakPath string `toml:"espeak_path"`

	ResultsPerPage int `toml:"results_per_page"`
	MaxResults     int `toml:"max_results"`
	MaxVideoHeight int `toml:"max_video_height"`

	DownloadDir string `toml:"download_dir"`
}

// DefaultToolConfig returns the default tool configuration
func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		YtdlpPath:      "yt-dlp",
		MpvPath:        "mpv",
		AplayPath:      "aplay",
		EspeakPath:     "espeak",
		ResultsPerPage: 15,
		MaxResults:     60,
		MaxVideoHeight: 1080,
		DownloadDir:    ".",
	}
}

// ToolConfigPath returns the tool config file path
// First tries current directory, then falls back to ~/.config/tubedeck/tubedeck.toml
func ToolConfigPath() string {
	// First try current directory
	if _, err := os.Stat("./tubedeck.toml"); err == nil {
		return "./tubedeck.toml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "./tubedeck.toml"
	}

	return filepath.Join(home, ".config", "tubedeck", "tubedeck.toml")
}

// LoadToolConfig loads tool configuration from a TOML file
// If the file doesn't exist or fails to load, returns default config
func LoadToolConfig(path string) (ToolConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// File doesn't exist, return defaults
			return DefaultToolConfig(), nil
		}
		return DefaultToolConfig(), fmt.Errorf("failed to read config file: %w", err)
	}

	var config ToolConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultToolConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	return fillToolDefaults(config), nil
}

// SaveToolConfig saves tool configuration to a TOML file
func SaveToolConfig(path string, config ToolConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			fmt.Printf("Warning: failed to close config file: %v\n", err)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// fillToolDefaults backfills zero-valued fields so a partial TOML file
// keeps compiled-in defaults for everything it doesn't mention
func fillToolDefaults(config ToolConfig) ToolConfig {
	defaults := DefaultToolConfig()

	if config.YtdlpPath == "" {
		config.YtdlpPath = defaults.YtdlpPath
	}

	if config.MpvPath == "" {
		config.MpvPath = defaults.MpvPath
	}

	if config.AplayPath == "" {
		config.AplayPath = defaults.AplayPath
	}

	if config.EspeakPath == "" {
		config.EspeakPath = defaults.EspeakPath
	}

	if config.ResultsPerPage < 1 {
		config.ResultsPerPage = defaults.ResultsPerPage
	}

	if config.MaxResults < 1 {
		config.MaxResults = defaults.MaxResults
	}

	if config.MaxVideoHeight < 1 {
		config.MaxVideoHeight = defaults.MaxVideoHeight
	}

	if config.DownloadDir == "" {
		config.DownloadDir = defaults.DownloadDir
	}

	return config
}
