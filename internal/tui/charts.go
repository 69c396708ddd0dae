package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"zenith/internal/board"
	"zenith/internal/i18n"
	"zenith/internal/store"
)

type chartMode int

const (
	chartStatus chartMode = iota
	chartVelocity
)

// velocityPoint is one sprint's planned versus completed count.
type velocityPoint struct {
	Sprint    string
	Planned   float64
	Completed float64
}

// Sample velocity history shown alongside the live status chart.
var velocityData = []velocityPoint{
	{"S1", 20, 18},
	{"S2", 22, 21},
	{"S3", 24, 19},
	{"S4", 21, 21},
	{"S5", 25, 23},
	{"S6", 23, 24},
}

type chartsModel struct {
	store  *store.Store
	i18n   *i18n.Store
	width  int
	height int

	mode    chartMode
	columns []board.Column
	chart   barchart.Model
}

func newChartsModel(s *store.Store, tr *i18n.Store) chartsModel {
	return chartsModel{
		store: s,
		i18n:  tr,
		chart: barchart.New(60, 12),
	}
}

func (c *chartsModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c chartsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		cols, _ := c.store.ListBoard()
		return boardDataMsg{columns: cols}
	}
}

func (c chartsModel) update(msg tea.Msg) (chartsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case boardDataMsg:
		c.columns = msg.columns
		c.buildChart()
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
			if c.mode == chartStatus {
				c.mode = chartVelocity
			} else {
				c.mode = chartStatus
			}
			c.buildChart()
			return c, nil
		}
	}
	return c, nil
}

func (c *chartsModel) buildChart() {
	chartWidth := c.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if c.height > 30 {
		chartHeight = 16
	}

	c.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	switch c.mode {
	case chartVelocity:
		planned := lipgloss.NewStyle().Foreground(theme.Secondary)
		completed := lipgloss.NewStyle().Foreground(theme.Success)
		for _, v := range velocityData {
			bars = append(bars, barchart.BarData{
				Label: v.Sprint,
				Values: []barchart.BarValue{
					{Name: "planned", Value: v.Planned, Style: planned},
					{Name: "completed", Value: v.Completed, Style: completed},
				},
			})
		}
	default:
		// Counts are always derived from the live board.
		style := lipgloss.NewStyle().Foreground(theme.Primary)
		for _, col := range c.columns {
			bars = append(bars, barchart.BarData{
				Label: col.Title,
				Values: []barchart.BarValue{
					{Name: col.ID, Value: float64(col.CardCount()), Style: style},
				},
			})
		}
	}

	c.chart.PushAll(bars)
	c.chart.Draw()
}

func (c chartsModel) view() string {
	w := c.width - 4

	statusTab := inactiveTabStyle.Render("Status")
	velocityTab := inactiveTabStyle.Render("Velocity")
	if c.mode == chartStatus {
		statusTab = activeTabStyle.Render("Status")
	} else {
		velocityTab = activeTabStyle.Render("Velocity")
	}
	modeTabs := lipgloss.JoinHorizontal(lipgloss.Bottom, statusTab, velocityTab)

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render(c.i18n.Translate("charts")), "  ", modeTabs,
	)

	table := c.renderTable()
	nav := mutedStyle.Render("  ←/→: switch chart")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", c.chart.View(), "", table, "", nav),
	)
}

func (c chartsModel) renderTable() string {
	var rows []string
	switch c.mode {
	case chartVelocity:
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-8s %10s %10s", "Sprint", "Planned", "Completed")))
		for _, v := range velocityData {
			rows = append(rows, fmt.Sprintf("  %-8s %10.0f %10.0f", v.Sprint, v.Planned, v.Completed))
		}
	default:
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-16s %8s", "Column", "Cards")))
		for _, col := range c.columns {
			rows = append(rows, fmt.Sprintf("  %-16s %8d", col.Title, col.CardCount()))
		}
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-16s %8d", "Total", board.TotalCards(c.columns))))
	}
	return strings.Join(rows, "\n")
}
