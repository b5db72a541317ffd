package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/fandom/internal/logtail"
)

func newLogSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.CharLimit = 120
	ti.Width = 40
	return ti
}

func (m *Model) startLogSearch() tea.Cmd {
	m.logSearching = true
	m.logSearch.SetValue(m.logQueryText)
	m.logSearch.CursorEnd()
	return m.logSearch.Focus()
}

// handleLogSearchKey feeds the search prompt until enter or esc.
func (m Model) handleLogSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.performLogSearch()
		return m, nil
	case tea.KeyEsc:
		m.logSearching = false
		m.logSearch.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.logSearch, cmd = m.logSearch.Update(msg)
	return m, cmd
}

// performLogSearch compiles the prompt as a case-insensitive pattern and
// jumps to the first match. An empty prompt clears the search.
func (m *Model) performLogSearch() {
	m.logSearching = false
	m.logSearch.Blur()

	text := strings.TrimSpace(m.logSearch.Value())
	if text == "" {
		m.clearLogSearch()
		return
	}
	re, err := regexp.Compile("(?i)" + text)
	if err != nil {
		re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(text))
	}
	m.logQuery = re
	m.logQueryText = text
	m.logMatch = 0
	m.findLogMatches()
	m.updateLogViewport()
	m.scrollToLogMatch()
}

func (m *Model) clearLogSearch() {
	m.logQuery = nil
	m.logQueryText = ""
	m.logMatches = nil
	m.logMatch = 0
	m.updateLogViewport()
}

func (m *Model) findLogMatches() {
	m.logMatches = m.logMatches[:0]
	if m.logQuery == nil {
		return
	}
	for i, line := range m.visibleLogLines() {
		if m.logQuery.MatchString(line) {
			m.logMatches = append(m.logMatches, i)
		}
	}
	if m.logMatch >= len(m.logMatches) {
		m.logMatch = 0
	}
}

func (m *Model) stepLogMatch(delta int) {
	n := len(m.logMatches)
	if n == 0 {
		return
	}
	m.logMatch = (m.logMatch + delta + n) % n
	m.updateLogViewport()
	m.scrollToLogMatch()
}

func (m *Model) scrollToLogMatch() {
	if len(m.logMatches) == 0 {
		return
	}
	m.logViewport.SetYOffset(m.logMatches[m.logMatch])
}

// cycleLogComponent steps the component filter through every component seen
// in the log, then back to showing all lines.
func (m *Model) cycleLogComponent() {
	components := logComponents(m.logLines)
	next := ""
	if m.logComponent == "" {
		if len(components) > 0 {
			next = components[0]
		}
	} else {
		for i, c := range components {
			if c == m.logComponent && i+1 < len(components) {
				next = components[i+1]
				break
			}
		}
	}
	m.logComponent = next
	m.findLogMatches()
	m.updateLogViewport()
}

// visibleLogLines applies the component filter. Continuation lines follow the
// entry they belong to.
func (m Model) visibleLogLines() []string {
	if m.logComponent == "" {
		return m.logLines
	}
	var out []string
	keep := false
	for _, line := range m.logLines {
		if entry, ok := logtail.Parse(line); ok {
			keep = entry.Field("component") == m.logComponent
		}
		if keep {
			out = append(out, line)
		}
	}
	return out
}

func logComponents(lines []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, line := range lines {
		entry, ok := logtail.Parse(line)
		if !ok {
			continue
		}
		c := entry.Field("component")
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// highlightLogLines replaces colorized matching lines with the raw text and
// the matched spans highlighted, the current match more strongly.
func (m Model) highlightLogLines(raw, colored []string) []string {
	if m.logQuery == nil || len(m.logMatches) == 0 {
		return colored
	}
	styles := m.theme.Styles()
	current := m.logMatches[m.logMatch]
	for _, i := range m.logMatches {
		if i >= len(raw) {
			continue
		}
		hl := styles.WarningText.Bold(true)
		if i == current {
			hl = styles.Selected.Padding(0)
		}
		colored[i] = m.logQuery.ReplaceAllStringFunc(raw[i], func(s string) string { return hl.Render(s) })
	}
	return colored
}

// logSearchStatus describes the active search and filter for the status line.
func (m Model) logSearchStatus() string {
	styles := m.theme.Styles()
	var parts []string
	if m.logComponent != "" {
		parts = append(parts, styles.InfoText.Render("component="+m.logComponent))
	}
	if m.logQuery != nil {
		if len(m.logMatches) == 0 {
			parts = append(parts, styles.DangerText.Render("Pattern not found: "+m.logQueryText))
		} else {
			parts = append(parts, styles.AccentText.Render("/"+m.logQueryText)+" "+
				styles.WarningText.Render(fmt.Sprintf("%d/%d", m.logMatch+1, len(m.logMatches))))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) logsHint() string {
	if m.logSearching {
		return "enter search  esc cancel"
	}
	bindings := []key.Binding{m.keys.Escape, m.keys.ScrollUp, m.keys.ScrollDown, m.keys.Search, m.keys.LogFilter}
	if m.logQuery != nil {
		bindings = append(bindings, m.keys.NextMatch, m.keys.PrevMatch)
	}
	var parts []string
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+strings.ToLower(b.Help().Desc))
	}
	return strings.Join(parts, "  ")
}
