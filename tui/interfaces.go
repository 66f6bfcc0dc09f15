// ABOUTME: Interfaces defining dependencies for the TUI package
// ABOUTME: Allows clean separation and easy testing with fakes

package tui

import (
	"context"
	"os/exec"

	"tubedeck/config"
	"tubedeck/player"
	"tubedeck/search"
)

// Searcher issues one search request per query
type Searcher interface {
	Search(ctx context.Context, query string, mode config.SearchMode, site config.Site) []search.Result
}

// CuePlayer plays the audible boundary/completion cue
type CuePlayer interface {
	Play()
}

// CommandBuilder constructs the external playback and download invocations
type CommandBuilder interface {
	PlayCommand(targets []string, opts player.Options) *exec.Cmd
	DownloadCommand(url string, audioOnly bool) *exec.Cmd
}

// MediaLister enumerates previously downloaded local media
type MediaLister func(dir string, audioOnly bool) []string
