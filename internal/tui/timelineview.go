package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"zenith/internal/i18n"
	"zenith/internal/store"
	"zenith/internal/timeline"
)

type timelineModel struct {
	store  *store.Store
	i18n   *i18n.Store
	width  int
	height int

	anchor   time.Time
	projects []timeline.Project
	cursor   int
}

func newTimelineModel(s *store.Store, tr *i18n.Store) timelineModel {
	now := time.Now()
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return timelineModel{store: s, i18n: tr, anchor: anchor}
}

func (t *timelineModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t timelineModel) refresh() tea.Cmd {
	return func() tea.Msg {
		projects, _ := t.store.ListProjects()
		return timelineDataMsg{projects: projects}
	}
}

func (t timelineModel) taskCount() int {
	n := 0
	for _, p := range t.projects {
		n += len(p.Tasks)
	}
	return n
}

func (t timelineModel) update(msg tea.Msg) (timelineModel, tea.Cmd) {
	switch msg := msg.(type) {
	case timelineDataMsg:
		t.projects = msg.projects
		t.cursor = clamp(t.cursor, 0, max(0, t.taskCount()-1))
		return t, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			t.anchor = t.anchor.AddDate(0, -1, 0)
		case key.Matches(msg, keys.Right):
			t.anchor = t.anchor.AddDate(0, 1, 0)
		case key.Matches(msg, keys.Up):
			if t.cursor > 0 {
				t.cursor--
			}
		case key.Matches(msg, keys.Down):
			if t.cursor < t.taskCount()-1 {
				t.cursor++
			}
		}
	}
	return t, nil
}

func (t timelineModel) view() string {
	w := t.width - 4
	dates := timeline.Dates(t.anchor, timeline.WindowDays)

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(t.i18n.Translate("timeline")),
		"  ",
		highlightStyle.Render(t.anchor.Format("January 2006")),
		"  ",
		mutedStyle.Render("←/→: month"),
	)

	// One terminal cell per day keeps the 30-day window readable; labels
	// every third day.
	gridWidth := len(dates)
	labelWidth := w - gridWidth - 10
	if labelWidth < 16 {
		labelWidth = 16
	}

	var rows []string
	rows = append(rows, header)
	rows = append(rows, "")
	rows = append(rows, t.renderDayHeader(dates, labelWidth))

	idx := 0
	for _, p := range t.projects {
		rows = append(rows, subtitleStyle.Render(p.Name))
		for _, task := range p.Tasks {
			rows = append(rows, t.renderTaskRow(task, dates, labelWidth, idx == t.cursor))
			idx++
		}
	}

	if t.taskCount() == 0 {
		rows = append(rows, mutedStyle.Render("No tasks in this window"))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (t timelineModel) renderDayHeader(dates []time.Time, labelWidth int) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", labelWidth+5))
	for i, d := range dates {
		ch := " "
		if i%3 == 0 {
			ch = dayLabel(d)[:1]
		}
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			sb.WriteString(mutedStyle.Render(ch))
		} else {
			sb.WriteString(subtitleStyle.Render(ch))
		}
	}
	return sb.String()
}

func (t timelineModel) renderTaskRow(task timeline.Task, dates []time.Time, labelWidth int, selected bool) string {
	name := truncate(task.Title, labelWidth-2)
	style := normalItemStyle
	cursor := "  "
	if selected {
		style = selectedItemStyle
		cursor = "> "
	}
	pad := strings.Repeat(" ", max(0, labelWidth-2-xansi.StringWidth(name)))
	label := style.Render(cursor + name + pad)
	progress := mutedStyle.Render(fmt.Sprintf("%3d%% ", task.Progress))

	bar, ok := timeline.Layout(task, dates)
	if !ok {
		return label + progress + mutedStyle.Render(strings.Repeat("·", len(dates)))
	}

	// Scale pixel offsets down to one cell per day.
	startCol := bar.Left / timeline.DayWidth
	days := bar.Width / timeline.DayWidth

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(task.Color))
	var sb strings.Builder
	sb.WriteString(mutedStyle.Render(strings.Repeat("·", startCol)))
	sb.WriteString(barStyle.Render(strings.Repeat("█", days)))
	sb.WriteString(mutedStyle.Render(strings.Repeat("·", max(0, len(dates)-startCol-days))))

	assignees := ""
	if len(task.Assignees) > 0 {
		assignees = "  " + mutedStyle.Render(strings.Join(task.Assignees, " "))
	}
	return label + progress + sb.String() + assignees
}
