// ABOUTME: Audible notification cue played on search completion and page clamp
// ABOUTME: Generates the asset once via text-to-speech, plays it through aplay

package audio

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// cueText is spoken into the generated notification asset
const cueText = "ready"

// Cue plays the short notification sound through the selected audio device
type Cue struct {
	assetPath string
	aplayPath string
	device    func() string
}

// NewCue creates a cue player. The device func supplies the current output
// device label at play time so cycling takes effect immediately.
func NewCue(assetPath, aplayPath string, device func() string) *Cue {
	return &Cue{
		assetPath: assetPath,
		aplayPath: aplayPath,
		device:    device,
	}
}

// Play fires the cue without blocking the caller. Playback failure is
// deliberately invisible: a missing asset or busy sink must never disturb
// the menu loop.
func (c *Cue) Play() {
	var args []string
	if dev := c.device(); dev != DefaultLabel {
		args = append(args, "-D", dev)
	}

	args = append(args, c.assetPath)

	cmd := exec.Command(c.aplayPath, args...)
	if err := cmd.Start(); err != nil {
		return
	}

	// Reap the process in the background
	go func() { _ = cmd.Wait() }()
}

// AssetPath returns the default location of the notification asset
func AssetPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./cue.wav"
	}

	return filepath.Join(home, ".config", "tubedeck", "cue.wav")
}

// EnsureAsset generates the notification sound via the text-to-speech tool
// if it doesn't exist yet. Called once at startup.
func EnsureAsset(assetPath, espeakPath string) error {
	if _, err := os.Stat(assetPath); err == nil {
		return nil
	}

	dir := filepath.Dir(assetPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create asset directory: %w", err)
	}

	if err := exec.Command(espeakPath, "-w", assetPath, cueText).Run(); err != nil {
		return fmt.Errorf("failed to generate notification sound: %w", err)
	}

	return nil
}
