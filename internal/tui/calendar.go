package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zenith/internal/i18n"
	"zenith/internal/store"
)

type calendarModel struct {
	store  *store.Store
	i18n   *i18n.Store
	width  int
	height int

	month    time.Time // first of the displayed month
	selected time.Time
	events   []store.Event
}

func newCalendarModel(s *store.Store, tr *i18n.Store) calendarModel {
	now := time.Now()
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return calendarModel{store: s, i18n: tr, month: month, selected: day}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c calendarModel) refresh() tea.Cmd {
	return func() tea.Msg {
		events, _ := c.store.ListEvents()
		return eventsDataMsg{events: events}
	}
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case eventsDataMsg:
		c.events = msg.events
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			c.selected = c.selected.AddDate(0, 0, -1)
		case key.Matches(msg, keys.Right):
			c.selected = c.selected.AddDate(0, 0, 1)
		case key.Matches(msg, keys.Up):
			c.selected = c.selected.AddDate(0, 0, -7)
		case key.Matches(msg, keys.Down):
			c.selected = c.selected.AddDate(0, 0, 7)
		}
		// Keep the grid on the selected day's month.
		c.month = time.Date(c.selected.Year(), c.selected.Month(), 1, 0, 0, 0, 0, c.selected.Location())
	}
	return c, nil
}

func (c calendarModel) eventsOn(day time.Time) []store.Event {
	var out []store.Event
	for _, e := range c.events {
		if e.Day.Year() == day.Year() && e.Day.YearDay() == day.YearDay() {
			out = append(out, e)
		}
	}
	return out
}

func (c calendarModel) view() string {
	w := c.width - 4

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(c.i18n.Translate("calendar")),
		"  ",
		highlightStyle.Render(c.month.Format("January 2006")),
	)

	grid := c.renderGrid()
	dayPanel := c.renderDayEvents(w)

	nav := mutedStyle.Render("  h/j/k/l: move day")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", grid, "", dayPanel, "", nav),
	)
}

func (c calendarModel) renderGrid() string {
	var rows []string
	rows = append(rows, mutedStyle.Render(" Su  Mo  Tu  We  Th  Fr  Sa"))

	first := c.month
	// Pad to the first Sunday on or before the 1st.
	start := first.AddDate(0, 0, -int(first.Weekday()))

	for week := 0; week < 6; week++ {
		var cells []string
		for d := 0; d < 7; d++ {
			day := start.AddDate(0, 0, week*7+d)
			cell := fmt.Sprintf("%3d", day.Day())

			marker := " "
			if len(c.eventsOn(day)) > 0 {
				marker = accentStyle.Render("•")
			}

			switch {
			case day.Equal(c.selected):
				cells = append(cells, selectedItemStyle.Render(cell)+marker)
			case day.Month() != c.month.Month():
				cells = append(cells, mutedStyle.Render(cell)+marker)
			default:
				cells = append(cells, normalItemStyle.Render(cell)+marker)
			}
		}
		rows = append(rows, strings.Join(cells, ""))
		if start.AddDate(0, 0, (week+1)*7).Month() != c.month.Month() &&
			start.AddDate(0, 0, (week+1)*7).After(first.AddDate(0, 1, 0)) {
			break
		}
	}
	return strings.Join(rows, "\n")
}

func (c calendarModel) renderDayEvents(w int) string {
	events := c.eventsOn(c.selected)
	title := subtitleStyle.Render(c.selected.Format("Monday, Jan 02"))

	if len(events) == 0 {
		return title + "\n" + mutedStyle.Render("  No events")
	}

	var rows []string
	rows = append(rows, title)
	for _, e := range events {
		rows = append(rows, fmt.Sprintf("  %s  %s",
			highlightStyle.Render(e.TimeRange), titleStyle.Render(e.Title)))
		if e.Description != "" {
			rows = append(rows, mutedStyle.Render("      "+e.Description))
		}
		if len(e.Attendees) > 0 {
			rows = append(rows, mutedStyle.Render("      "+strings.Join(e.Attendees, ", ")))
		}
	}
	return strings.Join(rows, "\n")
}
