package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/fandom/internal/fandom"
	"github.com/five82/fandom/internal/feed"
	"github.com/five82/fandom/internal/selection"
	"github.com/five82/fandom/internal/window"
)

const minCardWidth = 14

// renderLanding renders the static landing sections.
func (m Model) renderLanding() string {
	styles := m.theme.Styles()
	blocks := []struct{ kicker, title, body string }{
		{"Donations", "Support your idol", "Back the ad campaigns fans are funding right now."},
		{"Monthly chart", "Vote for your idol", "Cast votes and watch this month's ranking move."},
		{"My idols", "Keep track of your favorites", "Collect the idols you follow in one place."},
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Your idol, your stage."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Fandom-K in your terminal"))
	b.WriteString("\n\n")
	for _, blk := range blocks {
		b.WriteString(styles.InfoText.Render(blk.kicker))
		b.WriteString("\n")
		b.WriteString(styles.Text.Bold(true).Render(blk.title))
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(blk.body))
		b.WriteString("\n\n")
	}
	b.WriteString(styles.AccentText.Render("Press enter to get started"))
	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

// renderList renders the donations carousel above the monthly chart.
func (m Model) renderList() string {
	donations := m.renderSection("Donations waiting for support", m.section == sectionDonations, m.renderDonations())
	chart := m.renderSection("This month's chart", m.section == sectionChart, m.renderChart())
	return lipgloss.JoinVertical(lipgloss.Left, donations, "", chart)
}

// renderMy renders the interested strip above the picker.
func (m Model) renderMy() string {
	interested := m.renderSection(
		fmt.Sprintf("My interested idols (%d)", len(m.pool.Selected())),
		m.section == sectionInterested, m.renderInterested())
	picker := m.renderSection("Add interested idols", m.section == sectionPicker, m.renderPicker())
	parts := []string{interested, "", picker}
	if m.notice != "" {
		parts = append(parts, m.theme.Styles().SuccessText.Render(m.notice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderSection(title string, focused bool, body string) string {
	styles := m.theme.Styles()
	frame := styles.Section
	heading := styles.Text.Bold(true)
	if focused {
		frame = styles.SectionFocus
		heading = styles.AccentText.Bold(true)
	}
	return frame.Width(max(m.width-2, 1)).Render(heading.Render(title) + "\n" + body)
}

// cardWidth splits the terminal width between per cards.
func (m Model) cardWidth(per int) int {
	if per < 1 {
		per = 1
	}
	return max((m.width-6)/per, minCardWidth)
}

// renderDonations renders the visible page of donation cards.
func (m Model) renderDonations() string {
	c := m.donations
	st := c.state()
	cards, start := c.visible()
	if empty := m.renderFeedState(len(cards), st.Phase, st.Err, "No donations are open right now"); empty != "" {
		return empty
	}

	width := m.cardWidth(c.win.PerPage())
	now := time.Now()
	rendered := make([]string, 0, len(cards))
	for i, d := range cards {
		rendered = append(rendered, m.renderDonationCard(d, width, start+i == c.cursor && m.section == sectionDonations, now))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return m.withPaging(row, c.win, pagingOf(st))
}

func (m Model) renderDonationCard(d fandom.Donation, width int, focused bool, now time.Time) string {
	styles := m.theme.Styles()
	inner := max(width-4, 4)
	style := styles.Card
	if focused {
		style = styles.CardCursor
	}

	pct := int(d.Progress()*100 + 0.5)
	barWidth := max(inner-5, 1)
	deadline := "closed"
	if days := d.DaysLeft(now); days > 0 {
		deadline = fmt.Sprintf("%d days left", days)
	}

	lines := []string{
		styles.MutedText.Render(truncate(d.Subtitle, inner)),
		styles.Text.Bold(true).Render(truncate(d.Title, inner)),
		styles.AccentText.Render(truncate(d.Idol.Label(), inner)),
		styles.AccentText.Render(progressBar(d.Progress(), barWidth)) + styles.Text.Render(fmt.Sprintf("%4d%%", pct)),
		styles.Text.Render(truncate(formatCredits(d.ReceivedDonations)+" / "+formatCredits(d.TargetDonation), inner)),
		styles.FaintText.Render(deadline),
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderChart renders the monthly ranking from the poller snapshot.
func (m Model) renderChart() string {
	styles := m.theme.Styles()

	var tabs []string
	for _, g := range []selection.Category{selection.Female, selection.Male} {
		tabs = append(tabs, styles.TabStyle(string(g), g == m.chartGender).Render(chartTabLabel(g)))
	}
	header := strings.Join(tabs, " ")

	snap := m.chart
	if !snap.HasChart {
		if snap.LastError != nil {
			return header + "\n" + styles.DangerText.Render("Chart unavailable: "+describeError(snap.LastError))
		}
		return header + "\n" + m.spinner.View() + styles.MutedText.Render(" Loading chart...")
	}
	if len(snap.Idols) == 0 {
		return header + "\n" + styles.MutedText.Render("No votes yet this month")
	}

	columns := 1
	if window.Classify(m.width) == window.Wide {
		columns = 2
	}
	colWidth := max((m.width-4)/columns, 20)
	rows := (len(snap.Idols) + columns - 1) / columns
	cols := make([]string, columns)
	for c := 0; c < columns; c++ {
		var lines []string
		for r := 0; r < rows; r++ {
			i := c*rows + r
			if i >= len(snap.Idols) {
				break
			}
			lines = append(lines, m.renderChartRow(i+1, snap.Idols[i], colWidth))
		}
		cols[c] = lipgloss.NewStyle().Width(colWidth).Render(strings.Join(lines, "\n"))
	}

	body := header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if snap.HasMore {
		body += "\n" + styles.FaintText.Render("m  show more")
	}
	if snap.LastError != nil {
		body += "\n" + styles.WarningText.Render("Refresh failed: "+describeError(snap.LastError))
	}
	return body
}

func chartTabLabel(g selection.Category) string {
	if g == selection.Male {
		return "Boy idols"
	}
	return "Girl idols"
}

func (m Model) renderChartRow(rank int, idol fandom.Idol, width int) string {
	styles := m.theme.Styles()
	votes := formatCredits(idol.TotalVotes) + " votes"
	name := truncate(idol.Label(), max(width-lipgloss.Width(votes)-8, 4))
	rankStyle := styles.AccentText.Bold(true)
	if rank > 3 {
		rankStyle = styles.MutedText
	}
	left := rankStyle.Render(fmt.Sprintf("%3d", rank)) + "  " + styles.Text.Render(name)
	pad := max(width-lipgloss.Width(left)-lipgloss.Width(votes)-2, 1)
	return left + strings.Repeat(" ", pad) + styles.FaintText.Render(votes)
}

// renderInterested renders the committed idols as a single strip.
func (m Model) renderInterested() string {
	styles := m.theme.Styles()
	selected := m.pool.Selected()
	if len(selected) == 0 {
		return styles.MutedText.Render("No interested idols yet. Check some below and press a.")
	}
	parts := make([]string, 0, len(selected))
	for i, idol := range selected {
		label := idol.Label()
		if i == m.interestedCursor && m.section == sectionInterested {
			parts = append(parts, styles.Selected.Render(label))
			continue
		}
		parts = append(parts, styles.Text.Padding(0, 1).Render(label))
	}
	return lipgloss.NewStyle().Width(max(m.width-4, 10)).Render(strings.Join(parts, styles.FaintText.Render("·")))
}

// renderPicker renders the gender tabs and the visible page of idol cards.
func (m Model) renderPicker() string {
	styles := m.theme.Styles()
	var tabs []string
	for _, c := range selection.Categories() {
		tabs = append(tabs, styles.TabStyle(string(c), c == m.pool.Filter()).Render(c.Label()))
	}
	header := strings.Join(tabs, " ")
	if n := m.pool.CheckedLen(); n > 0 {
		header += "  " + styles.SuccessText.Render(fmt.Sprintf("%d checked, press a to add", n))
	}

	c := m.picker
	st := c.state()
	cards, start := c.visible()
	if empty := m.renderFeedState(len(cards), st.Phase, st.Err, "Everyone here is already on your list"); empty != "" {
		return header + "\n" + empty
	}

	// Lay cards out in rows of at most four.
	const perRow = 4
	width := m.cardWidth(min(c.win.PerPage(), perRow))
	rendered := make([]string, 0, len(cards))
	for i, idol := range cards {
		focused := start+i == c.cursor && m.section == sectionPicker
		rendered = append(rendered, m.renderIdolCard(idol, width, focused, m.pool.IsChecked(idol.ID)))
	}

	var rows []string
	for i := 0; i < len(rendered); i += perRow {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i:min(i+perRow, len(rendered))]...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return header + "\n" + m.withPaging(grid, c.win, pagingOf(st))
}

func (m Model) renderIdolCard(idol fandom.Idol, width int, focused, checked bool) string {
	styles := m.theme.Styles()
	inner := max(width-4, 4)
	style := styles.Card
	if focused {
		style = styles.CardCursor
	}
	mark := styles.FaintText.Render("[ ]")
	if checked {
		mark = styles.SuccessText.Render("[✓]")
	}
	lines := []string{
		mark + " " + styles.Text.Bold(true).Render(truncate(idol.Name, inner-4)),
		styles.MutedText.Render(truncate(idol.Group, inner)),
		styles.TabStyle(idol.CategoryKey(), false).UnsetPadding().Render(selection.ParseCategory(idol.CategoryKey()).Label()),
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// renderFeedState returns the placeholder for an empty or failed carousel,
// or "" when there are cards to show.
func (m Model) renderFeedState(cards int, phase feed.Phase, err error, emptyText string) string {
	styles := m.theme.Styles()
	if phase == feed.PhaseFailed {
		retry := styles.DangerText.Render("Couldn't load more: "+describeError(err)) + "\n" +
			styles.AccentText.Render("Press r to retry")
		if cards == 0 {
			return styles.Card.BorderForeground(lipgloss.Color(m.theme.Danger)).Render(retry)
		}
		return ""
	}
	if cards > 0 {
		return ""
	}
	if phase == feed.PhaseLoading || phase == feed.PhaseIdle {
		return m.spinner.View() + styles.MutedText.Render(" Loading...")
	}
	return styles.MutedText.Render(emptyText)
}

// pagingState is the part of a feed's state the paging bar shows.
type pagingState struct {
	Loading  bool
	HasNext  bool
	HasError bool
}

func pagingOf[T feed.Record](st feed.State[T]) pagingState {
	return pagingState{Loading: st.Loading, HasNext: st.HasNext, HasError: st.HasError}
}

// withPaging appends the arrows, page dots and load status below row.
func (m Model) withPaging(row string, win *window.Window, st pagingState) string {
	styles := m.theme.Styles()
	left := ternary(win.CanPrev(), "◀", " ")
	right := ternary(win.CanNext(st.HasNext), "▶", " ")

	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = styles.AccentText.Render("•")
	p.InactiveDot = styles.FaintText.Render("•")
	p.PerPage = win.PerPage()
	p.SetTotalPages(win.Total())
	p.Page = win.Page()

	nav := styles.AccentText.Render(left) + " " + p.View() + " " + styles.AccentText.Render(right)
	switch {
	case st.Loading:
		nav += "  " + m.spinner.View()
	case st.HasError:
		nav += "  " + styles.DangerText.Render("load failed, press r to retry")
	case !st.HasNext:
		nav += "  " + styles.FaintText.Render("end")
	}
	return row + "\n" + nav
}
