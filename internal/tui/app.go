package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zenith/internal/export"
	"zenith/internal/i18n"
	"zenith/internal/store"
	"zenith/internal/tools"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	i18n   *i18n.Store
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	board    boardModel
	timeline timelineModel
	calendar calendarModel
	charts   chartsModel
	docs     docsModel
	teams    teamsModel
	chat     chatModel
	settings settingsModel

	help   help.Model
	status string
}

func NewApp(s *store.Store, tr *i18n.Store, reg *tools.Registry, themeName string) App {
	applyTheme(LookupTheme(themeName))

	h := help.New()
	h.ShowAll = false

	return App{
		store:      s,
		i18n:       tr,
		activeView: viewBoard,
		board:      newBoardModel(s, tr),
		timeline:   newTimelineModel(s, tr),
		calendar:   newCalendarModel(s, tr),
		charts:     newChartsModel(s, tr),
		docs:       newDocsModel(s, tr),
		teams:      newTeamsModel(s, tr),
		chat:       newChatModel(s, tr, reg),
		settings:   newSettingsModel(s, tr),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return a.board.refresh()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.board.setSize(a.width, contentHeight)
		a.timeline.setSize(a.width, contentHeight)
		a.calendar.setSize(a.width, contentHeight)
		a.charts.setSize(a.width, contentHeight)
		a.docs.setSize(a.width, contentHeight)
		a.teams.setSize(a.width, contentHeight)
		a.chat.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (form, search, editor, chat
		// prompt), delegate first.
		if a.isCapturing() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchView(viewBoard)
		case key.Matches(msg, keys.Tab2):
			return a.switchView(viewTimeline)
		case key.Matches(msg, keys.Tab3):
			return a.switchView(viewCalendar)
		case key.Matches(msg, keys.Tab4):
			return a.switchView(viewCharts)
		case key.Matches(msg, keys.Tab5):
			return a.switchView(viewDocs)
		case key.Matches(msg, keys.Tab6):
			return a.switchView(viewTeams)
		case key.Matches(msg, keys.Tab7):
			return a.switchView(viewChat)
		case key.Matches(msg, keys.Tab8):
			return a.switchView(viewSettings)
		case key.Matches(msg, keys.Tab):
			return a.switchView((a.activeView + 1) % viewCount)
		}

	case statusMsg:
		a.status = msg.text
		return a, nil

	case themeChangedMsg:
		a.status = "Theme: " + msg.name
		return a, nil

	case languageChangedMsg:
		a.status = a.i18n.Translate("settings_saved")
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) switchView(v viewState) (tea.Model, tea.Cmd) {
	a.activeView = v
	return a, a.refreshView(v)
}

func (a App) refreshView(v viewState) tea.Cmd {
	switch v {
	case viewBoard:
		return a.board.refresh()
	case viewTimeline:
		return a.timeline.refresh()
	case viewCalendar:
		return a.calendar.refresh()
	case viewCharts:
		return a.charts.refresh()
	case viewDocs:
		return a.docs.refresh()
	case viewTeams:
		return a.teams.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewBoard:
		a.board, cmd = a.board.update(msg)
	case viewTimeline:
		a.timeline, cmd = a.timeline.update(msg)
	case viewCalendar:
		a.calendar, cmd = a.calendar.update(msg)
	case viewCharts:
		a.charts, cmd = a.charts.update(msg)
	case viewDocs:
		a.docs, cmd = a.docs.update(msg)
	case viewTeams:
		a.teams, cmd = a.teams.update(msg)
	case viewChat:
		a.chat, cmd = a.chat.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isCapturing() bool {
	switch a.activeView {
	case viewBoard:
		return a.board.formActive
	case viewDocs:
		return a.docs.formActive || a.docs.searching || a.docs.editing
	case viewTeams:
		return a.teams.formActive
	case viewChat:
		return a.chat.capturing()
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewBoard:
		content = a.board.view()
	case viewTimeline:
		content = a.timeline.view()
	case viewCalendar:
		content = a.calendar.view()
	case viewCharts:
		content = a.charts.view()
	case viewDocs:
		content = a.docs.view()
	case viewTeams:
		content = a.teams.view()
	case viewChat:
		content = a.chat.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, k := range viewKeys {
		name := a.i18n.Translate(k)
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render("zenith")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)
	right := status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

var exportFormats = []string{"Board CSV", "Board JSON", "Documents CSV", "Documents JSON"}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		var err error
		switch format {
		case 0, 1:
			cols, lerr := a.store.ListBoard()
			if lerr != nil {
				return statusMsg{text: fmt.Sprintf("Export error: %v", lerr), isError: true}
			}
			if format == 0 {
				path = filepath.Join(home, fmt.Sprintf("zenith-export-%s.csv", dateStr))
				err = export.BoardToCSV(cols, path)
			} else {
				path = filepath.Join(home, fmt.Sprintf("zenith-export-%s.json", dateStr))
				err = export.BoardToJSON(cols, path)
			}
		default:
			docs, lerr := a.store.ListDocuments()
			if lerr != nil {
				return statusMsg{text: fmt.Sprintf("Export error: %v", lerr), isError: true}
			}
			if format == 2 {
				path = filepath.Join(home, fmt.Sprintf("zenith-docs-%s.csv", dateStr))
				err = export.DocumentsToCSV(docs, path)
			} else {
				path = filepath.Join(home, fmt.Sprintf("zenith-docs-%s.json", dateStr))
				err = export.DocumentsToJSON(docs, path)
			}
		}
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}
