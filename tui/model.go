// ABOUTME: Terminal UI model and core state management
// ABOUTME: Bubble Tea model implementation for result paging and dispatch

// Package tui provides the interactive menu for searching, paging and
// dispatching playback or download to external media tools.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"tubedeck/audio"
	"tubedeck/config"
	"tubedeck/search"
)

// ErrNoResults is returned by Run when the initial query yields nothing and
// the user declines to retry
var ErrNoResults = errors.New("initial query yielded no results")

// Navigation and interaction constants
const (
	statusMessageDuration = 5 * time.Second // How long to show transient status messages
	queryCharLimit        = 200
	minTitleWidth         = 20
)

// uiMode is the input mode the menu is currently in
type uiMode int

const (
	modeBrowse uiMode = iota // navigating results
	modeSearch               // typing a new query
	modeRetry                // empty search, retry-or-cancel prompt
)

// Messages

// searchDoneMsg carries the outcome of a search command
type searchDoneMsg struct {
	query   string
	results []search.Result
}

// execDoneMsg signals that a foreground subprocess returned
type execDoneMsg struct {
	err error
}

// configChangedMsg signals that the tool config file was written
type configChangedMsg struct{}

// model holds the TUI state
type model struct {
	opts Options
	deps Dependencies

	// Process-wide state
	settings config.Settings
	tools    config.ToolConfig
	registry *audio.Registry

	// Result list and menu position
	query   string
	results []search.Result
	page    int
	cursor  int

	// Search lifecycle
	pendingQuery string // query being searched or offered for retry
	searching    bool
	initial      bool // set while a command-line query is still unresolved

	// UI state
	mode         uiMode
	input        textinput.Model
	watcher      *fsnotify.Watcher
	width        int
	height       int
	statusMsg    string
	statusMsgAge time.Time
	quitting     bool
	aborted      bool
}

// Key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	Play        key.Binding
	Download    key.Binding
	Shuffle     key.Binding
	ToggleMode  key.Binding
	CycleDevice key.Binding
	NewSearch   key.Binding
	ToggleAudio key.Binding
	ToggleSite  key.Binding
	Quit        key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "cursor up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "cursor down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("left", "pgup"),
		key.WithHelp("←/pgup", "previous page"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("right", "pgdown"),
		key.WithHelp("→/pgdn", "next page"),
	),
	Play: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "play"),
	),
	Download: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "download"),
	),
	Shuffle: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "shuffle local"),
	),
	ToggleMode: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "videos/playlists"),
	),
	CycleDevice: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "audio device"),
	),
	NewSearch: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "new search"),
	),
	ToggleAudio: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "audio-only"),
	),
	ToggleSite: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "site"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
)

// Run starts the interactive menu with injected dependencies
func Run(opts Options, deps Dependencies) error {
	m := initModel(opts, deps)

	// Watch the tool config file for live reload, if it exists
	if deps.ToolsPath != "" {
		if _, err := os.Stat(deps.ToolsPath); err == nil {
			watcher, err := fsnotify.NewWatcher()
			if err == nil {
				if err := watcher.Add(deps.ToolsPath); err != nil {
					_ = watcher.Close()
				} else {
					m.watcher = watcher
				}
			}
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()

	if m.watcher != nil {
		_ = m.watcher.Close()
	}

	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if fm, ok := finalModel.(model); ok && fm.aborted {
		return ErrNoResults
	}

	return nil
}

// initModel creates the initial model with injected dependencies
func initModel(opts Options, deps Dependencies) model {
	if deps.Debugf == nil {
		deps.Debugf = func(string, ...interface{}) {}
	}

	input := textinput.New()
	input.Placeholder = "search query"
	input.CharLimit = queryCharLimit
	input.Width = 40

	m := model{
		opts:     opts,
		deps:     deps,
		settings: deps.Settings,
		tools:    deps.Tools,
		registry: deps.Registry,
		mode:     modeBrowse,
		input:    input,
		// Only a fruitless command-line query is an abnormal exit;
		// interactive dead ends quit normally
		initial: opts.InitialQuery != "",
	}

	if opts.InitialQuery != "" {
		m.pendingQuery = opts.InitialQuery
		m.searching = true
	}

	return m
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen, textinput.Blink}

	if m.watcher != nil {
		cmds = append(cmds, waitForConfigChange(m.watcher))
	}

	if m.searching {
		cmds = append(cmds, searchCmd(m.deps, m.settings, m.pendingQuery))
	}

	return tea.Batch(cmds...)
}

// ========== Helpers ==========

// searchCmd runs one search in the background and reports the outcome
func searchCmd(deps Dependencies, settings config.Settings, query string) tea.Cmd {
	return func() tea.Msg {
		results := deps.Searcher.Search(context.Background(), query, settings.SearchMode, settings.Site)

		return searchDoneMsg{query: query, results: results}
	}
}

// waitForConfigChange returns a command that waits for tool config writes
func waitForConfigChange(watcher *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				// Only react to write events
				if event.Op&fsnotify.Write == fsnotify.Write {
					// Debounce: wait a bit for the write to complete
					time.Sleep(100 * time.Millisecond)
					return configChangedMsg{}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// perPage returns the number of result rows per page
func (m model) perPage() int {
	if m.tools.ResultsPerPage < 1 {
		return config.DefaultToolConfig().ResultsPerPage
	}

	return m.tools.ResultsPerPage
}

// maxPages returns the number of pages for the current result list, never 0
func (m model) maxPages() int {
	if len(m.results) == 0 {
		return 1
	}

	pp := m.perPage()

	return (len(m.results) + pp - 1) / pp
}

// absIndex returns the absolute index of the highlighted row
func (m model) absIndex() int {
	return m.page*m.perPage() + m.cursor
}

// selected resolves the highlighted row to a result.
// Returns false when the cursor sits past the end of the list; actions on
// such a selection are silently ignored.
func (m model) selected() (search.Result, bool) {
	i := m.absIndex()
	if i < 0 || i >= len(m.results) {
		return search.Result{}, false
	}

	return m.results[i], true
}

// setStatusMsg sets a transient status message with current timestamp
func (m *model) setStatusMsg(msg string) {
	m.statusMsg = msg
	m.statusMsgAge = time.Now()
}

// saveSettings persists the settings after a mutation
func (m *model) saveSettings() {
	if err := config.SaveSettings(m.deps.SettingsPath, m.settings); err != nil {
		m.deps.Debugf("[TUI] Failed to save settings: %v", err)
		m.setStatusMsg("Failed to save settings")
	}
}

// clampPosition pulls page and cursor back into range after the result list
// or the page size changed
func (m *model) clampPosition() {
	if m.page >= m.maxPages() {
		m.page = m.maxPages() - 1
	}

	if m.page < 0 {
		m.page = 0
	}

	if m.cursor >= m.perPage() {
		m.cursor = m.perPage() - 1
	}

	if m.cursor < 0 {
		m.cursor = 0
	}
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return s[:maxLen]
	}

	return s[:maxLen-3] + "..."
}
