// ABOUTME: Tests for the search client parsing and filtering behavior
// ABOUTME: Uses a fake runner so no external processes are spawned

package search

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tubedeck/config"
)

// countingNotifier records how many times the cue fired
type countingNotifier struct {
	plays int
}

func (n *countingNotifier) Play() { n.plays++ }

func newTestClient(output string, err error) (*Client, *countingNotifier) {
	notifier := &countingNotifier{}
	client := NewClient("yt-dlp", 60, notifier)
	client.Run = func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return []byte(output), err
	}

	return client, notifier
}

func TestSearchParsesEntries(t *testing.T) {
	out := `{"entries": [
		{"id": "abc123", "title": "First video", "url": "https://www.youtube.com/watch?v=abc123"},
		{"id": "def456", "title": "Second video", "url": "https://www.youtube.com/watch?v=def456"}
	]}`

	client, _ := newTestClient(out, nil)
	results := client.Search(context.Background(), "test", config.ModeVideos, config.SiteYouTube)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	if results[0].Title != "First video" {
		t.Errorf("Expected title 'First video', got %q", results[0].Title)
	}

	if results[1].URL != "https://www.youtube.com/watch?v=def456" {
		t.Errorf("Unexpected URL: %q", results[1].URL)
	}
}

func TestSearchURLFallbackFromID(t *testing.T) {
	out := `{"entries": [{"id": "xyz789", "title": "No URL here"}]}`

	client, _ := newTestClient(out, nil)
	results := client.Search(context.Background(), "test", config.ModeVideos, config.SiteYouTube)

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	want := "https://www.youtube.com/watch?v=xyz789"
	if results[0].URL != want {
		t.Errorf("Expected fallback URL %q, got %q", want, results[0].URL)
	}
}

func TestSearchTitleTruncation(t *testing.T) {
	long := strings.Repeat("ü", 250)
	out := `{"entries": [
		{"id": "a", "title": "` + long + `", "url": "https://example.com/a"},
		{"id": "b", "title": "short", "url": "https://example.com/b"}
	]}`

	client, _ := newTestClient(out, nil)
	results := client.Search(context.Background(), "test", config.ModeVideos, config.SiteYouTube)

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	if got := len([]rune(results[0].Title)); got != 200 {
		t.Errorf("Expected truncated title of 200 runes, got %d", got)
	}

	if results[1].Title != "short" {
		t.Errorf("Short title should be unchanged, got %q", results[1].Title)
	}
}

func TestSearchPlaylistFilter(t *testing.T) {
	out := `{"entries": [
		{"id": "a", "title": "pl one", "url": "https://www.youtube.com/playlist?list=PL123"},
		{"id": "b", "title": "video", "url": "https://www.youtube.com/watch?v=abc"},
		{"id": "c", "title": "pl two", "url": "https://www.youtube.com/playlist?list=PL999"},
		{"id": "d", "title": "mix", "url": "https://www.youtube.com/watch?v=x&list=RDx"}
	]}`

	client, _ := newTestClient(out, nil)
	results := client.Search(context.Background(), "test", config.ModePlaylists, config.SiteYouTube)

	if len(results) != 2 {
		t.Fatalf("Expected 2 playlist results, got %d", len(results))
	}

	// Relative order preserved; RD mix playlist is a documented false negative
	if results[0].Title != "pl one" || results[1].Title != "pl two" {
		t.Errorf("Unexpected filter output: %+v", results)
	}
}

func TestSearchSwallowsErrors(t *testing.T) {
	client, notifier := newTestClient("", errors.New("network down"))
	results := client.Search(context.Background(), "test", config.ModeVideos, config.SiteYouTube)

	if len(results) != 0 {
		t.Errorf("Expected empty results on error, got %d", len(results))
	}

	// Cue still fires on failure
	if notifier.plays != 1 {
		t.Errorf("Expected 1 cue play, got %d", notifier.plays)
	}
}

func TestSearchCueFiresOnEmptyResults(t *testing.T) {
	client, notifier := newTestClient(`{"entries": []}`, nil)
	client.Search(context.Background(), "test", config.ModeVideos, config.SiteYouTube)

	if notifier.plays != 1 {
		t.Errorf("Expected 1 cue play on zero results, got %d", notifier.plays)
	}
}

func TestSearchMalformedOutput(t *testing.T) {
	client, _ := newTestClient("not json at all", nil)
	results := client.Search(context.Background(), "test", config.ModeVideos, config.SiteYouTube)

	if len(results) != 0 {
		t.Errorf("Expected empty results on malformed output, got %d", len(results))
	}
}

func TestQueryTargetPerSite(t *testing.T) {
	client, _ := newTestClient("", nil)

	if got := client.queryTarget("some query", config.SiteYouTube); got != "ytsearch60:some query" {
		t.Errorf("Unexpected primary target: %q", got)
	}

	got := client.queryTarget("some query", config.SiteMusic)
	if !strings.HasPrefix(got, "https://music.youtube.com/search?q=") {
		t.Errorf("Unexpected music target: %q", got)
	}

	if !strings.Contains(got, "some+query") {
		t.Errorf("Expected escaped query in music target: %q", got)
	}
}
