// ABOUTME: Builds mpv playback and yt-dlp download invocations
// ABOUTME: Commands run in the foreground and block the menu loop

package player

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

// Options control a single playback invocation
type Options struct {
	Shuffle     bool   // randomize playback order
	AudioDevice string // explicit sink label, "default" or "" lets mpv pick
	NoVideo     bool   // audio-only playback
}

// Player builds external tool invocations for playback and download
type Player struct {
	MpvPath        string
	YtdlpPath      string
	MaxVideoHeight int    // resolution cap for video downloads
	DownloadDir    string // where downloaded media lands
}

// PlayCommand builds the mpv invocation for the given paths or URLs.
// The returned command is run in the foreground; mpv owns the terminal
// until the user quits it.
func (p *Player) PlayCommand(targets []string, opts Options) *exec.Cmd {
	args := []string{"--no-audio-display"}

	if opts.Shuffle {
		args = append(args, "--shuffle")
	}

	if opts.NoVideo {
		args = append(args, "--no-video")
	}

	if opts.AudioDevice != "" && opts.AudioDevice != "default" {
		args = append(args, "--audio-device=alsa/"+opts.AudioDevice)
	}

	args = append(args, targets...)

	return exec.Command(p.MpvPath, args...)
}

// DownloadCommand builds the yt-dlp invocation for the given URL.
// Audio-only extracts an mp3; otherwise a resolution-capped video stream is
// muxed with the best audio into an mp4.
func (p *Player) DownloadCommand(url string, audioOnly bool) *exec.Cmd {
	output := filepath.Join(p.DownloadDir, "%(title)s.%(ext)s")

	var args []string
	if audioOnly {
		args = []string{"-x", "--audio-format", "mp3"}
	} else {
		args = []string{
			"-f", fmt.Sprintf("bestvideo[height<=?%d]+bestaudio", p.MaxVideoHeight),
			"--merge-output-format", "mp4",
		}
	}

	args = append(args, "-o", output, url)

	return exec.Command(p.YtdlpPath, args...)
}
