package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	Logs       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	Escape     key.Binding

	// Page switching
	Enter       key.Binding
	PageLanding key.Binding
	PageList    key.Binding
	PageMy      key.Binding

	// Carousel navigation
	Prev key.Binding
	Next key.Binding
	Up   key.Binding
	Down key.Binding

	// Actions
	Retry        key.Binding
	ToggleCheck  key.Binding
	Commit       key.Binding
	Remove       key.Binding
	CycleGender  key.Binding
	MoreChart    key.Binding
	ScrollUp     key.Binding
	ScrollDown   key.Binding
	PageUpLogs   key.Binding
	PageDownLogs key.Binding
	Search       key.Binding
	NextMatch    key.Binding
	PrevMatch    key.Binding
	LogFilter    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Toggle logs"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Switch section"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to list"),
		),

		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Get started"),
		),
		PageLanding: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Landing"),
		),
		PageList: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Donations & chart"),
		),
		PageMy: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "My idols"),
		),

		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous page"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next page"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Previous card"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Next card"),
		),

		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Retry failed load"),
		),
		ToggleCheck: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "Check/uncheck idol"),
		),
		Commit: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add checked idols"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "Remove interested idol"),
		),
		CycleGender: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "Switch gender"),
		),
		MoreChart: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "More chart entries"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Scroll down"),
		),
		PageUpLogs: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDownLogs: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search log"),
		),
		NextMatch: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Next match"),
		),
		PrevMatch: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "Previous match"),
		),
		LogFilter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Cycle component"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Pages
		{k.Enter, k.PageLanding, k.PageList, k.PageMy, k.Escape, k.Tab},
		// Carousels
		{k.Prev, k.Next, k.Up, k.Down, k.Retry},
		// Selection and chart
		{k.ToggleCheck, k.Commit, k.Remove, k.CycleGender, k.MoreChart},
		// Log overlay
		{k.Search, k.NextMatch, k.PrevMatch, k.LogFilter, k.PageUpLogs, k.PageDownLogs},
		// General
		{k.Logs, k.CycleTheme, k.Help, k.Quit},
	}
}

// pageHints returns the bindings shown in the command bar for a page.
func (k keyMap) pageHints(p Page, section int) []key.Binding {
	switch p {
	case PageLanding:
		return []key.Binding{k.Enter, k.PageMy, k.Help, k.Quit}
	case PageList:
		if section == sectionChart {
			return []key.Binding{k.Tab, k.CycleGender, k.MoreChart, k.PageMy, k.Help}
		}
		return []key.Binding{k.Tab, k.Prev, k.Next, k.Retry, k.PageMy, k.Help}
	case PageMy:
		if section == sectionInterested {
			return []key.Binding{k.Tab, k.Up, k.Down, k.Remove, k.Escape, k.Help}
		}
		return []key.Binding{k.Tab, k.Prev, k.Next, k.ToggleCheck, k.Commit, k.CycleGender, k.Retry}
	}
	return k.ShortHelp()
}
