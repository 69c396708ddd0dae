package tui

import "github.com/charmbracelet/lipgloss"

// The active theme and every style derived from it. applyTheme rebuilds the
// whole set; views only ever read these vars.
var theme = LookupTheme(DefaultTheme)

var (
	activeTabStyle    lipgloss.Style
	inactiveTabStyle  lipgloss.Style
	panelStyle        lipgloss.Style
	activePanelStyle  lipgloss.Style
	titleStyle        lipgloss.Style
	subtitleStyle     lipgloss.Style
	accentStyle       lipgloss.Style
	successStyle      lipgloss.Style
	warningStyle      lipgloss.Style
	errorStyle        lipgloss.Style
	mutedStyle        lipgloss.Style
	highlightStyle    lipgloss.Style
	headerStyle       lipgloss.Style
	footerStyle       lipgloss.Style
	selectedItemStyle lipgloss.Style
	normalItemStyle   lipgloss.Style
	badgeStyle        lipgloss.Style
	userMsgStyle      lipgloss.Style
	assistantMsgStyle lipgloss.Style
)

func init() {
	applyTheme(theme)
}

func applyTheme(t Theme) {
	theme = t

	activeTabStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(t.Primary).
		Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
		Foreground(t.ForegroundDim).
		Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Foreground)

	subtitleStyle = lipgloss.NewStyle().
		Foreground(t.ForegroundDim)

	accentStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	successStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	warningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	mutedStyle = lipgloss.NewStyle().
		Foreground(t.ForegroundDim)

	highlightStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	headerStyle = lipgloss.NewStyle().
		Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
		Foreground(t.ForegroundDim).
		Padding(0, 1)

	selectedItemStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	normalItemStyle = lipgloss.NewStyle().
		Foreground(t.Foreground)

	badgeStyle = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Secondary).
		Padding(0, 1)

	userMsgStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	assistantMsgStyle = lipgloss.NewStyle().
		Foreground(t.Foreground)
}

func priorityStyle(p string) lipgloss.Style {
	switch p {
	case "High":
		return errorStyle
	case "Medium":
		return warningStyle
	default:
		return successStyle
	}
}
