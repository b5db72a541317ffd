package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and cards
	SurfaceAlt string // Checked cards, tabs
	FocusBg    string // Focused section

	SelectionBg   string // Cursor card background
	SelectionText string // Cursor card text

	Border      string // Default border
	BorderMuted string // Unfocused sections
	BorderFocus string // Focused section

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Gender tab colors, keyed by category key ("" is all)
	GenderColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		CardCursor: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Padding(0, 1),

		Section: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color(t.BorderMuted)),

		SectionFocus: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color(t.BorderFocus)),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(1, 2),

		genderColors: t.GenderColors,
		background:   t.Background,
		muted:        t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header       lipgloss.Style
	Footer       lipgloss.Style
	Logo         lipgloss.Style
	Selected     lipgloss.Style
	Card         lipgloss.Style
	CardCursor   lipgloss.Style
	Section      lipgloss.Style
	SectionFocus lipgloss.Style
	Overlay      lipgloss.Style

	genderColors map[string]string
	background   string
	muted        string
}

// TabStyle returns the badge style for a gender tab.
func (s Styles) TabStyle(key string, active bool) lipgloss.Style {
	color := s.genderColors[key]
	if color == "" {
		color = s.muted
	}
	if !active {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Padding(0, 1)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Bold(true).
		Padding(0, 1)
}

// Theme definitions

var themes = map[string]Theme{
	"Midnight": midnightTheme(),
	"Coral":    coralTheme(),
	"Mono":     monoTheme(),
}

var themeOrder = []string{"Midnight", "Coral", "Mono"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return midnightTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func midnightTheme() Theme {
	// Dark navy with the site's coral accent
	return Theme{
		Name: "Midnight",

		Background: "#02000e",
		Surface:    "#181d26",
		SurfaceAlt: "#22283a",
		FocusBg:    "#2a3146",

		SelectionBg:   "#2a3146",
		SelectionText: "#ffffff",

		Border:      "#3a4254",
		BorderMuted: "#22283a",
		BorderFocus: "#f96d69",

		Text:    "#ffffff",
		Muted:   "#a3a3a3",
		Faint:   "#67666e",
		Accent:  "#f96d69",
		Success: "#6ee7a8",
		Warning: "#fe5493",
		Danger:  "#ff4d4f",
		Info:    "#86b8ff",

		GenderColors: map[string]string{
			"":       "#a3a3a3",
			"female": "#fe5493",
			"male":   "#86b8ff",
		},
	}
}

func coralTheme() Theme {
	return Theme{
		Name: "Coral",

		Background: "#1b1014",
		Surface:    "#2a171e",
		SurfaceAlt: "#3a1f29",
		FocusBg:    "#4a2633",

		SelectionBg:   "#4a2633",
		SelectionText: "#fff4f1",

		Border:      "#5c3441",
		BorderMuted: "#3a1f29",
		BorderFocus: "#ffb199",

		Text:    "#fff4f1",
		Muted:   "#d9b8b0",
		Faint:   "#8a6c68",
		Accent:  "#ff8a70",
		Success: "#9fe0a7",
		Warning: "#ffd27a",
		Danger:  "#ff5c6c",
		Info:    "#9ecbff",

		GenderColors: map[string]string{
			"":       "#d9b8b0",
			"female": "#ff8a70",
			"male":   "#9ecbff",
		},
	}
}

func monoTheme() Theme {
	// Grayscale for low-color terminals
	return Theme{
		Name: "Mono",

		Background: "#000000",
		Surface:    "#1c1c1c",
		SurfaceAlt: "#262626",
		FocusBg:    "#303030",

		SelectionBg:   "#3a3a3a",
		SelectionText: "#ffffff",

		Border:      "#4e4e4e",
		BorderMuted: "#262626",
		BorderFocus: "#d0d0d0",

		Text:    "#eeeeee",
		Muted:   "#a8a8a8",
		Faint:   "#6c6c6c",
		Accent:  "#ffffff",
		Success: "#d0d0d0",
		Warning: "#bcbcbc",
		Danger:  "#ffffff",
		Info:    "#c6c6c6",

		GenderColors: map[string]string{
			"":       "#a8a8a8",
			"female": "#eeeeee",
			"male":   "#bcbcbc",
		},
	}
}
