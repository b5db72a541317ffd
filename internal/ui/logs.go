package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/fandom/internal/logtail"
)

const logLineLimit = 400

// readLogsCmd tails our own log file off the event loop.
func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, logLineLimit)
		return logLinesMsg{lines: lines, err: err}
	}
}

// handleLogsKey processes keyboard input while the logs overlay is open.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.logSearching {
		return m.handleLogSearchKey(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Escape) && m.logQuery != nil:
		m.clearLogSearch()
		return m, nil
	case key.Matches(msg, m.keys.Logs), key.Matches(msg, m.keys.Escape):
		m.showLogs = false
		return m, nil
	case key.Matches(msg, m.keys.Search):
		cmd := m.startLogSearch()
		return m, cmd
	case key.Matches(msg, m.keys.NextMatch):
		m.stepLogMatch(1)
	case key.Matches(msg, m.keys.PrevMatch):
		m.stepLogMatch(-1)
	case key.Matches(msg, m.keys.LogFilter):
		m.cycleLogComponent()
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ScrollUp):
		m.logViewport.LineUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.logViewport.LineDown(1)
	case key.Matches(msg, m.keys.PageUpLogs):
		m.logViewport.HalfViewUp()
	case key.Matches(msg, m.keys.PageDownLogs):
		m.logViewport.HalfViewDown()
	}
	return m, nil
}

// updateLogViewport sizes the viewport and refreshes its content, keeping
// the view pinned to the newest line when it was already at the bottom.
func (m *Model) updateLogViewport() {
	width := max(m.width-4, 10)
	height := max(m.height-5, 3)
	if m.logViewport.Width == 0 {
		m.logViewport = viewport.New(width, height)
	}
	m.logViewport.Width = width
	m.logViewport.Height = height

	follow := m.logQuery == nil && (m.logViewport.AtBottom() || m.logViewport.TotalLineCount() == 0)
	m.logViewport.SetContent(m.renderLogContent())
	if follow {
		m.logViewport.GotoBottom()
	}
}

// logPalette maps log parts onto the active theme.
func (m Model) logPalette() logtail.Palette {
	styles := m.theme.Styles()
	return logtail.Palette{
		Time:  styles.FaintText,
		Debug: styles.InfoText.Bold(true),
		Info:  styles.SuccessText,
		Warn:  styles.WarningText.Bold(true),
		Error: styles.DangerText,
		Key:   styles.MutedText,
		Value: styles.Text,
		Plain: styles.Text,
	}
}

// renderLogContent renders the colorized log lines.
func (m Model) renderLogContent() string {
	styles := m.theme.Styles()
	if m.logErr != nil {
		return styles.DangerText.Render("Cannot read log: " + m.logErr.Error())
	}
	lines := m.visibleLogLines()
	if len(lines) == 0 {
		if m.logComponent != "" {
			return styles.MutedText.Render("No entries for component " + m.logComponent)
		}
		return styles.MutedText.Render("No log entries")
	}
	colored := logtail.ColorizeLines(lines, m.logPalette())
	return strings.Join(m.highlightLogLines(lines, colored), "\n")
}

// renderLogs renders the log overlay.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()
	title := styles.AccentText.Bold(true).Render("Log") + " " +
		styles.MutedText.Render(truncateMiddle(m.logFile, max(m.width-12, 10)))

	box := styles.Overlay.
		Padding(0, 1).
		Width(m.width - 2).
		Render(m.logViewport.View())

	percent := int(m.logViewport.ScrollPercent() * 100)
	status := styles.FaintText.Render(fmt.Sprintf("%d lines  %d%%  ", len(m.visibleLogLines()), percent))
	if extra := m.logSearchStatus(); extra != "" {
		status += extra + "  "
	}
	status += styles.MutedText.Render(m.logsHint())

	if m.logSearching {
		return lipgloss.JoinVertical(lipgloss.Left, title, box, m.logSearch.View(), status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, box, status)
}
