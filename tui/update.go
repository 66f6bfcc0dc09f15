// ABOUTME: Event handling and state updates for the TUI
// ABOUTME: Implements the Bubble Tea Update() function and command dispatch

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tubedeck/config"
	"tubedeck/player"
)

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case searchDoneMsg:
		return m.handleSearchDone(msg)

	case execDoneMsg:
		// Subprocess failure is invisible to the menu; just redraw
		if msg.err != nil {
			m.deps.Debugf("[TUI] Subprocess returned error: %v", msg.err)
		}

		return m, nil

	case configChangedMsg:
		return m.handleConfigChanged()

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.handleSearchInputKey(msg)
		case modeRetry:
			return m.handleRetryKey(msg)
		default:
			return m.handleBrowseKey(msg)
		}
	}

	return m, nil
}

// handleSearchDone applies a finished search.
// Empty results leave the prior list, query and menu position untouched and
// prompt for retry; non-empty results replace the list and reset to (0,0).
func (m model) handleSearchDone(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	m.searching = false

	if len(msg.results) == 0 {
		m.pendingQuery = msg.query
		m.mode = modeRetry
		m.deps.Debugf("[TUI] Search %q yielded no results", msg.query)

		return m, nil
	}

	m.query = msg.query
	m.results = msg.results
	m.page = 0
	m.cursor = 0
	m.mode = modeBrowse
	m.initial = false
	m.setStatusMsg("")
	m.deps.Debugf("[TUI] Search %q yielded %d results", msg.query, len(msg.results))

	return m, nil
}

// handleConfigChanged reloads the tool config after an external write
func (m model) handleConfigChanged() (tea.Model, tea.Cmd) {
	cfg, err := config.LoadToolConfig(m.deps.ToolsPath)
	if err != nil {
		m.deps.Debugf("[TUI] Failed to reload tool config: %v", err)
	} else {
		m.tools = cfg
		m.clampPosition()
		m.setStatusMsg("Configuration reloaded")
	}

	return m, waitForConfigChange(m.watcher)
}

// handleSearchInputKey routes keys while the user types a query
func (m model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.input.Blur()

		return m, nil

	case tea.KeyEnter:
		query := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		m.mode = modeBrowse

		if query == "" {
			return m, nil
		}

		m.pendingQuery = query
		m.searching = true

		return m, searchCmd(m.deps, m.settings, query)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// handleRetryKey routes keys in the retry-or-cancel prompt.
// Declining with no prior results terminates (exit path for a fruitless
// initial query); declining with prior results returns to them untouched.
func (m model) handleRetryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.mode = modeBrowse
		m.searching = true

		return m, searchCmd(m.deps, m.settings, m.pendingQuery)

	case "n", "esc", "q":
		if len(m.results) == 0 {
			m.aborted = m.initial
			m.quitting = true
			m.saveSettings()

			return m, tea.Quit
		}

		m.mode = modeBrowse

		return m, nil
	}

	return m, nil
}

// handleBrowseKey dispatches navigation and command keys
func (m model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m.handleQuitKey()

	case key.Matches(msg, keys.Up):
		m.handleCursorUp()

	case key.Matches(msg, keys.Down):
		m.handleCursorDown()

	case key.Matches(msg, keys.PageUp):
		m.handlePageUp()

	case key.Matches(msg, keys.PageDown):
		m.handlePageDown()

	case key.Matches(msg, keys.Play):
		return m, m.handlePlay()

	case key.Matches(msg, keys.Download):
		return m, m.handleDownload()

	case key.Matches(msg, keys.Shuffle):
		return m, m.handleShuffle()

	case key.Matches(msg, keys.ToggleMode):
		m.handleToggleMode()

	case key.Matches(msg, keys.CycleDevice):
		m.handleCycleDevice()

	case key.Matches(msg, keys.NewSearch):
		return m.handleNewSearch()

	case key.Matches(msg, keys.ToggleAudio):
		m.handleToggleAudio()

	case key.Matches(msg, keys.ToggleSite):
		m.handleToggleSite()
	}

	// Unrecognized keys are ignored
	return m, nil
}

// handleQuitKey persists settings and quits
func (m *model) handleQuitKey() (model, tea.Cmd) {
	m.quitting = true
	m.saveSettings()

	return *m, tea.Quit
}

// handleCursorUp wraps the cursor within the page, never crossing pages
func (m *model) handleCursorUp() {
	pp := m.perPage()
	m.cursor = (m.cursor - 1 + pp) % pp
}

// handleCursorDown wraps the cursor within the page, never crossing pages
func (m *model) handleCursorDown() {
	m.cursor = (m.cursor + 1) % m.perPage()
}

// handlePageUp clamps at the first page; a boundary hit sounds the cue
func (m *model) handlePageUp() {
	if m.page > 0 {
		m.page--
	} else {
		m.deps.Cue.Play()
	}
}

// handlePageDown clamps at the last page; a boundary hit sounds the cue
func (m *model) handlePageDown() {
	if m.page < m.maxPages()-1 {
		m.page++
	} else {
		m.deps.Cue.Play()
	}
}

// handlePlay hands the selected URL to the playback engine, foreground
func (m *model) handlePlay() tea.Cmd {
	result, ok := m.selected()
	if !ok {
		return nil
	}

	cmd := m.deps.Player.PlayCommand([]string{result.URL}, player.Options{
		AudioDevice: m.registry.Current(),
		NoVideo:     m.settings.AudioOnly,
	})

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return execDoneMsg{err: err}
	})
}

// handleDownload hands the selected URL to the download tool, foreground
func (m *model) handleDownload() tea.Cmd {
	result, ok := m.selected()
	if !ok {
		return nil
	}

	m.setStatusMsg("Downloading: " + truncate(result.Title, 60))

	cmd := m.deps.Player.DownloadCommand(result.URL, m.settings.AudioOnly)

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return execDoneMsg{err: err}
	})
}

// handleShuffle plays previously downloaded local media in shuffle mode
func (m *model) handleShuffle() tea.Cmd {
	files := m.deps.LocalMedia(m.tools.DownloadDir, m.settings.AudioOnly)
	if len(files) == 0 {
		m.setStatusMsg("No downloaded media to shuffle")

		return nil
	}

	cmd := m.deps.Player.PlayCommand(files, player.Options{
		Shuffle:     true,
		AudioDevice: m.registry.Current(),
		NoVideo:     m.settings.AudioOnly,
	})

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return execDoneMsg{err: err}
	})
}

// handleToggleMode flips between video and playlist searches
func (m *model) handleToggleMode() {
	if m.settings.SearchMode == config.ModeVideos {
		m.settings.SearchMode = config.ModePlaylists
	} else {
		m.settings.SearchMode = config.ModeVideos
	}

	m.saveSettings()
	m.setStatusMsg("Search mode: " + string(m.settings.SearchMode))
}

// handleCycleDevice advances the audio device, wrapping
func (m *model) handleCycleDevice() {
	m.settings.AudioDeviceIndex = m.registry.Cycle()
	m.saveSettings()
	m.setStatusMsg("Audio device: " + m.registry.Current())
}

// handleNewSearch opens the query input, keeping the current result list as
// fallback should the new search come up empty
func (m model) handleNewSearch() (tea.Model, tea.Cmd) {
	m.mode = modeSearch
	m.input.SetValue("")
	m.input.Focus()
	m.saveSettings()

	return m, textinput.Blink
}

// handleToggleAudio flips the audio-only flag
func (m *model) handleToggleAudio() {
	m.settings.AudioOnly = !m.settings.AudioOnly
	m.saveSettings()

	if m.settings.AudioOnly {
		m.setStatusMsg("Audio-only: on")
	} else {
		m.setStatusMsg("Audio-only: off")
	}
}

// handleToggleSite flips between the two fixed search endpoints
func (m *model) handleToggleSite() {
	if m.settings.Site == config.SiteYouTube {
		m.settings.Site = config.SiteMusic
	} else {
		m.settings.Site = config.SiteYouTube
	}

	m.saveSettings()
	m.setStatusMsg("Site: " + string(m.settings.Site))
}
