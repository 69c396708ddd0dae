package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a named color scheme. Exactly one theme is active at a time;
// switching rebuilds every style in styles.go.
type Theme struct {
	Name string

	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// DefaultTheme is used when the stored theme name is unknown.
const DefaultTheme = "dark-purple"

var themes = []Theme{
	{
		Name:          "light",
		Background:    lipgloss.Color("#FFFFFF"),
		Foreground:    lipgloss.Color("#1A1B26"),
		ForegroundDim: lipgloss.Color("#8A8F98"),
		Primary:       lipgloss.Color("#6C63FF"),
		Secondary:     lipgloss.Color("#2EC4B6"),
		Accent:        lipgloss.Color("#FF6B6B"),
		Success:       lipgloss.Color("#2ECC71"),
		Warning:       lipgloss.Color("#F39C12"),
		Error:         lipgloss.Color("#E74C3C"),
		Border:        lipgloss.Color("#D0D0D8"),
		BorderFocus:   lipgloss.Color("#6C63FF"),
		Selection:     lipgloss.Color("#E4E2FF"),
	},
	{
		Name:          "dark-purple",
		Background:    lipgloss.Color("#1A1B26"),
		Foreground:    lipgloss.Color("#C0CAF5"),
		ForegroundDim: lipgloss.Color("#565F89"),
		Primary:       lipgloss.Color("#9B59B6"),
		Secondary:     lipgloss.Color("#BB9AF7"),
		Accent:        lipgloss.Color("#7AA2F7"),
		Success:       lipgloss.Color("#2ECC71"),
		Warning:       lipgloss.Color("#F39C12"),
		Error:         lipgloss.Color("#E74C3C"),
		Border:        lipgloss.Color("#414868"),
		BorderFocus:   lipgloss.Color("#9B59B6"),
		Selection:     lipgloss.Color("#33467C"),
	},
	{
		Name:          "dark-tactical",
		Background:    lipgloss.Color("#10140F"),
		Foreground:    lipgloss.Color("#C5D1BF"),
		ForegroundDim: lipgloss.Color("#5A6B52"),
		Primary:       lipgloss.Color("#7A9E4F"),
		Secondary:     lipgloss.Color("#A3B86C"),
		Accent:        lipgloss.Color("#D9A441"),
		Success:       lipgloss.Color("#7A9E4F"),
		Warning:       lipgloss.Color("#D9A441"),
		Error:         lipgloss.Color("#C0553D"),
		Border:        lipgloss.Color("#2E3A28"),
		BorderFocus:   lipgloss.Color("#7A9E4F"),
		Selection:     lipgloss.Color("#22301C"),
	},
	{
		Name:          "dark-hacker",
		Background:    lipgloss.Color("#000000"),
		Foreground:    lipgloss.Color("#00FF41"),
		ForegroundDim: lipgloss.Color("#007A1F"),
		Primary:       lipgloss.Color("#00FF41"),
		Secondary:     lipgloss.Color("#39FF14"),
		Accent:        lipgloss.Color("#00D9FF"),
		Success:       lipgloss.Color("#00FF41"),
		Warning:       lipgloss.Color("#FFE600"),
		Error:         lipgloss.Color("#FF0033"),
		Border:        lipgloss.Color("#003B12"),
		BorderFocus:   lipgloss.Color("#00FF41"),
		Selection:     lipgloss.Color("#00290C"),
	},
}

// ThemeNames returns the closed set of theme names in declaration order.
func ThemeNames() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// LookupTheme returns the theme with the given name, falling back to
// DefaultTheme for unknown names.
func LookupTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return LookupTheme(DefaultTheme)
}
