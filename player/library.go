// ABOUTME: Local media discovery for shuffle playback of downloaded files
// ABOUTME: Probes audio files with tag metadata to skip non-media strays

package player

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

var videoExts = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".webm": true,
}

// LocalMedia lists previously downloaded media in dir, matching the file type
// the audio-only flag selects. Audio candidates are additionally probed with
// a metadata read so stray files merely named .mp3 are skipped. Returns nil
// when the directory can't be read.
func LocalMedia(dir string, audioOnly bool) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var paths []string

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		path := filepath.Join(dir, entry.Name())

		if audioOnly {
			if ext == ".mp3" && isAudioFile(path) {
				paths = append(paths, path)
			}
		} else if videoExts[ext] {
			paths = append(paths, path)
		}
	}

	return paths
}

// isAudioFile reports whether the file carries readable audio metadata
func isAudioFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	_, err = tag.ReadFrom(f)

	return err == nil
}
