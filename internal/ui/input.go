package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/fandom/internal/selection"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showLogs {
		return m.handleLogsKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Logs):
		m.showLogs = true
		m.updateLogViewport()
		return m, readLogsCmd(m.logFile)

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.PageLanding):
		cmd := m.switchPage(PageLanding)
		return m, cmd

	case key.Matches(msg, m.keys.PageList):
		cmd := m.switchPage(PageList)
		return m, cmd

	case key.Matches(msg, m.keys.PageMy):
		cmd := m.switchPage(PageMy)
		return m, cmd

	case key.Matches(msg, m.keys.Tab):
		if m.page != PageLanding {
			m.section = 1 - m.section
		}
		return m, nil
	}

	// Page-specific keys
	switch m.page {
	case PageList:
		return m.handleListKey(msg)
	case PageMy:
		return m.handleMyKey(msg)
	default:
		if key.Matches(msg, m.keys.Enter) {
			cmd := m.switchPage(PageList)
			return m, cmd
		}
	}
	return m, nil
}

// handleListKey processes keys on the donations/chart page.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Retry) {
		req, ok := m.donations.retry()
		return m, m.donationCmd(req, ok)
	}

	if m.section == sectionChart {
		switch {
		case key.Matches(msg, m.keys.CycleGender):
			next := selection.Male
			if m.chartGender == selection.Male {
				next = selection.Female
			}
			cmd := m.setChart(next, m.config.ChartPageSize)
			return m, cmd
		case key.Matches(msg, m.keys.MoreChart):
			if !m.chart.HasMore {
				return m, nil
			}
			cmd := m.setChart(m.chartGender, m.chartSize+chartGrowBy)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		req, ok := m.donations.prev()
		return m, m.donationCmd(req, ok)
	case key.Matches(msg, m.keys.Next):
		req, ok := m.donations.next()
		return m, m.donationCmd(req, ok)
	case key.Matches(msg, m.keys.Up):
		req, ok := m.donations.moveCursor(-1)
		return m, m.donationCmd(req, ok)
	case key.Matches(msg, m.keys.Down):
		req, ok := m.donations.moveCursor(1)
		return m, m.donationCmd(req, ok)
	}
	return m, nil
}

// handleMyKey processes keys on the interest management page.
func (m Model) handleMyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		cmd := m.switchPage(PageList)
		return m, cmd
	case key.Matches(msg, m.keys.Retry):
		req, ok := m.picker.retry()
		return m, m.idolCmd(req, ok)
	}

	if m.section == sectionInterested {
		return m.handleInterestedKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		req, ok := m.picker.prev()
		return m, m.idolCmd(req, ok)

	case key.Matches(msg, m.keys.Next):
		req, ok := m.picker.next()
		return m, m.idolCmd(req, ok)

	case key.Matches(msg, m.keys.Up):
		req, ok := m.picker.moveCursor(-1)
		return m, m.idolCmd(req, ok)

	case key.Matches(msg, m.keys.Down):
		req, ok := m.picker.moveCursor(1)
		return m, m.idolCmd(req, ok)

	case key.Matches(msg, m.keys.ToggleCheck):
		if idol, ok := m.picker.current(); ok {
			m.pool.Toggle(idol)
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleGender):
		m.pool.SetFilter(m.pool.Filter().Next())
		m.savePrefs()
		req, ok := m.picker.resetPage()
		return m, m.idolCmd(req, ok)

	case key.Matches(msg, m.keys.Commit):
		cmd := m.commitChecked()
		return m, cmd
	}
	return m, nil
}

// commitChecked moves checked idols into the interested set and tops the
// picker up by as many records as left the view.
func (m *Model) commitChecked() tea.Cmd {
	added := m.pool.Commit()
	if len(added) == 0 {
		return nil
	}
	m.notice = fmt.Sprintf("Added %d idol%s", len(added), ternary(len(added) == 1, "", "s"))
	log.With("component", "ui").Info("committed interested idols", "count", len(added), "total", len(m.pool.Selected()))

	req, ok := m.picker.loadMore(len(added))
	if !ok {
		req, ok = m.picker.sync()
	} else {
		m.picker.sync()
	}
	return m.idolCmd(req, ok)
}

// handleInterestedKey processes keys for the "my interested idols" strip.
func (m Model) handleInterestedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	selected := m.pool.Selected()
	switch {
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Prev):
		if m.interestedCursor > 0 {
			m.interestedCursor--
		}
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Next):
		if m.interestedCursor < len(selected)-1 {
			m.interestedCursor++
		}
	case key.Matches(msg, m.keys.Remove):
		if m.interestedCursor < 0 || m.interestedCursor >= len(selected) {
			return m, nil
		}
		idol := selected[m.interestedCursor]
		m.pool.Remove(idol.ID)
		m.notice = fmt.Sprintf("Removed %s", idol.Label())
		if m.interestedCursor >= len(selected)-1 && m.interestedCursor > 0 {
			m.interestedCursor--
		}
		req, ok := m.picker.sync()
		return m, m.idolCmd(req, ok)
	}
	return m, nil
}

// handleMouse turns pointer drags into carousel paging on narrow and medium
// layouts.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showLogs {
		var cmd tea.Cmd
		m.logViewport, cmd = m.logViewport.Update(msg)
		return m, cmd
	}
	if m.showHelp {
		return m, nil
	}

	switch m.page {
	case PageList:
		c := m.donations
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				c.dragBegin(msg.X, m.cardWidth(c.win.PerPage()))
			}
		case tea.MouseActionMotion:
			req, ok := c.dragMove(msg.X)
			return m, m.donationCmd(req, ok)
		case tea.MouseActionRelease:
			c.dragEnd()
		}
	case PageMy:
		c := m.picker
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				c.dragBegin(msg.X, m.cardWidth(c.win.PerPage()))
			}
		case tea.MouseActionMotion:
			req, ok := c.dragMove(msg.X)
			return m, m.idolCmd(req, ok)
		case tea.MouseActionRelease:
			c.dragEnd()
		}
	}
	return m, nil
}
