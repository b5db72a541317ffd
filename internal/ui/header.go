package ui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/fandom/internal/fandom"
)

// renderHeader renders the logo, page tabs and chart poller status.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	headerBg := lipgloss.Color(m.theme.Surface)
	on := func(s lipgloss.Style) lipgloss.Style { return s.Background(headerBg) }
	gap := on(lipgloss.NewStyle()).Render("  ")

	tabs := []struct {
		page  Page
		label string
	}{
		{PageLanding, "1 Home"},
		{PageList, "2 Donations"},
		{PageMy, "3 My idols"},
	}
	parts := []string{on(styles.Logo).Render("FANDOM-K")}
	for _, tab := range tabs {
		style := on(styles.MutedText)
		if tab.page == m.page {
			style = on(styles.AccentText).Bold(true).Underline(true)
		}
		parts = append(parts, style.Render(tab.label))
	}
	left := strings.Join(parts, gap)

	right := on(styles.FaintText).Render(m.theme.Name)
	if status := m.chartStatus(); status != "" {
		right = status + gap + right
	}

	space := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	line := left + on(lipgloss.NewStyle()).Render(strings.Repeat(" ", space)) + right
	return styles.Header.Width(m.width).Render(line)
}

// chartStatus summarises the poller's health for the header.
func (m Model) chartStatus() string {
	styles := m.theme.Styles()
	bg := lipgloss.Color(m.theme.Surface)
	switch {
	case m.chart.IsOffline():
		return styles.DangerText.Background(bg).Render("API offline") +
			styles.MutedText.Background(bg).Render(" "+m.chart.LastUpdated.Format("15:04:05"))
	case m.chart.LastError != nil:
		return styles.WarningText.Background(bg).Render("Retrying...")
	case !m.chart.LastUpdated.IsZero():
		return styles.FaintText.Background(bg).Render("updated " + m.chart.LastUpdated.Format("15:04:05"))
	}
	return ""
}

// describeError turns a fetch failure into a short user-facing reason.
func describeError(err error) string {
	if err == nil {
		return ""
	}
	var status *fandom.StatusError
	if errors.As(err, &status) {
		if status.Message != "" {
			return fmt.Sprintf("server said %q (HTTP %d)", status.Message, status.Code)
		}
		return fmt.Sprintf("server returned HTTP %d", status.Code)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "request timed out"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "network unreachable"
	}
	return err.Error()
}
