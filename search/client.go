// ABOUTME: Search client invoking yt-dlp for flat-playlist video searches
// ABOUTME: Normalizes titles, resolves URLs and filters playlist results

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os/exec"
	"strings"
	"time"

	"tubedeck/config"
)

const (
	defaultTimeout = 2 * time.Minute

	// Titles are truncated to this many codepoints. Rune truncation keeps
	// multi-byte titles valid UTF-8; byte truncation could split a codepoint.
	maxTitleLen = 200

	// Playlist results are recognized by this URL substring. It is a
	// heuristic, not a semantic check: auto-generated RD/UU playlists are
	// deliberately not matched.
	playlistMarker = "list=PL"
)

// Notifier plays the audible cue when a search completes
type Notifier interface {
	Play()
}

// Result is a single search hit
type Result struct {
	Title string
	URL   string
}

// Runner executes the search command and returns its standard output.
// Injectable so tests can substitute canned yt-dlp output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// Client issues searches against the backend via yt-dlp
type Client struct {
	Path       string        // yt-dlp executable
	Timeout    time.Duration // maximum time to wait for yt-dlp
	MaxResults int           // result cap per query
	Notifier   Notifier      // cue played on completion, may be nil
	Run        Runner        // defaults to running the command for real
}

// NewClient creates a search client with the given yt-dlp path and result cap
func NewClient(path string, maxResults int, notifier Notifier) *Client {
	return &Client{
		Path:       path,
		Timeout:    defaultTimeout,
		MaxResults: maxResults,
		Notifier:   notifier,
	}
}

// Search issues one query and returns the normalized results.
// Backend and parse failures are swallowed: the caller must treat an empty
// result set as the only failure signal. The completion cue fires regardless
// of result count, including zero.
func (c *Client) Search(ctx context.Context, query string, mode config.SearchMode, site config.Site) []Result {
	defer func() {
		if c.Notifier != nil {
			c.Notifier.Play()
		}
	}()

	args := []string{
		"--flat-playlist",
		"-J", // JSON output
		"--no-warnings",
		c.queryTarget(query, site),
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	out, err := c.run(ctx, c.Path, args...)
	if err != nil {
		return nil
	}

	results := parseResults(out)
	if mode == config.ModePlaylists {
		results = filterPlaylists(results)
	}

	return results
}

// queryTarget builds the yt-dlp search target for the selected site
func (c *Client) queryTarget(query string, site config.Site) string {
	if site == config.SiteMusic {
		return "https://music.youtube.com/search?q=" + url.QueryEscape(query)
	}

	return fmt.Sprintf("ytsearch%d:%s", c.MaxResults, query)
}

func (c *Client) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}

	return defaultTimeout
}

func (c *Client) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if c.Run != nil {
		return c.Run(ctx, name, args...)
	}

	return exec.CommandContext(ctx, name, args...).Output()
}

// searchPage represents yt-dlp's JSON output for a flat-playlist search
type searchPage struct {
	Entries []searchEntry `json:"entries"`
}

// searchEntry is a single flat-playlist result
type searchEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// parseResults converts yt-dlp JSON output into Results, preserving order.
// Entries without a URL fall back to a watch URL built from the bare id.
func parseResults(data []byte) []Result {
	var page searchPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil
	}

	results := make([]Result, 0, len(page.Entries))
	for _, entry := range page.Entries {
		u := entry.URL
		if u == "" {
			if entry.ID == "" {
				continue
			}
			u = "https://www.youtube.com/watch?v=" + entry.ID
		}

		results = append(results, Result{
			Title: truncateTitle(entry.Title),
			URL:   u,
		})
	}

	return results
}

// truncateTitle caps a title at maxTitleLen codepoints
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= maxTitleLen {
		return title
	}

	return string(runes[:maxTitleLen])
}

// filterPlaylists keeps only entries whose URL carries the playlist marker,
// preserving relative order
func filterPlaylists(results []Result) []Result {
	filtered := make([]Result, 0, len(results))
	for _, r := range results {
		if strings.Contains(r.URL, playlistMarker) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}
