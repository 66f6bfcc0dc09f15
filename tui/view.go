// ABOUTME: Rendering and display functions for the TUI
// ABOUTME: Implements the Bubble Tea View() function and all render helpers

package tui

import (
	"fmt"
	"strings"
	"time"
)

// View renders the full screen; Bubble Tea clears and reprints on every change
func (m model) View() string {
	if m.quitting {
		return "Saving settings and exiting...\n"
	}

	var body string

	switch {
	case m.mode == modeSearch:
		body = m.renderSearchInput()
	case m.mode == modeRetry:
		body = m.renderRetryPrompt()
	case m.searching:
		body = "\n  Searching...\n"
	default:
		body = m.renderResults()
	}

	return m.renderHeader() + "\n" + body + "\n" + m.renderStatus() + "\n" + m.renderHelp()
}

// renderHeader shows site, query, mode, device, audio-only flag and paging
func (m model) renderHeader() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tubedeck") + "\n")

	audioOnly := "off"
	if m.settings.AudioOnly {
		audioOnly = "on"
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"Site: %s | Mode: %s | Audio: %s | Audio-only: %s",
		m.settings.Site,
		m.settings.SearchMode,
		m.registry.Current(),
		audioOnly,
	)) + "\n")

	query := m.query
	if query == "" {
		query = "(none)"
	}

	b.WriteString(headerStyle.Render("Query: "+truncate(query, 60)) + "\n")

	if len(m.results) > 0 {
		first := m.page*m.perPage() + 1
		last := min(first+m.perPage()-1, len(m.results))
		b.WriteString(headerStyle.Render(fmt.Sprintf(
			"Page %d/%d (%d-%d of %d)",
			m.page+1,
			m.maxPages(),
			first,
			last,
			len(m.results),
		)))
	} else {
		b.WriteString(headerStyle.Render("No results"))
	}

	return b.String()
}

// renderResults lists the rows of the current page, highlighting the cursor
func (m model) renderResults() string {
	if len(m.results) == 0 {
		return "\n  Press s to search.\n"
	}

	titleWidth := m.width - 6
	if titleWidth < minTitleWidth {
		titleWidth = minTitleWidth
	}

	start := m.page * m.perPage()
	end := min(start+m.perPage(), len(m.results))

	var b strings.Builder
	b.WriteString("\n")

	for i := start; i < end; i++ {
		line := fmt.Sprintf("%4d  %s", i+1, truncate(m.results[i].Title, titleWidth))

		if i-start == m.cursor {
			line = cursorStyle.Render(line)
		}

		b.WriteString(line + "\n")
	}

	return b.String()
}

// renderSearchInput shows the query prompt
func (m model) renderSearchInput() string {
	return "\n  " + promptStyle.Render("Search:") + " " + m.input.View() + "\n\n  " +
		helpStyle.Render("enter: search | esc: cancel") + "\n"
}

// renderRetryPrompt shows the empty-search prompt
func (m model) renderRetryPrompt() string {
	cancel := "[n] back"
	if len(m.results) == 0 {
		cancel = "[n] quit"
	}

	return "\n  " + promptStyle.Render(fmt.Sprintf("No results for %q.", m.pendingQuery)) +
		"\n\n  [y] retry  " + cancel + "\n"
}

// renderStatus renders the status bar
func (m model) renderStatus() string {
	// Show transient status message if recent
	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		return statusStyle.Width(m.width).Render(m.statusMsg)
	}

	status := fmt.Sprintf("%d results | Page %d/%d | Device: %s",
		len(m.results),
		m.page+1,
		m.maxPages(),
		m.registry.Current(),
	)

	return statusStyle.Width(m.width).Render(status)
}

// renderHelp renders the help text
func (m model) renderHelp() string {
	return helpStyle.Render(" ↑/↓: cursor | ←/→: page | enter: play | d: download | l: shuffle | s: search | p: mode | tab: site | c: device | v: audio-only | q: quit")
}
