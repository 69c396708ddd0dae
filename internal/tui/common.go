package tui

import (
	"time"

	xansi "github.com/charmbracelet/x/ansi"

	"zenith/internal/board"
	"zenith/internal/store"
	"zenith/internal/timeline"
	"zenith/internal/tools"
)

// viewState represents the currently active view.
type viewState int

const (
	viewBoard viewState = iota
	viewTimeline
	viewCalendar
	viewCharts
	viewDocs
	viewTeams
	viewChat
	viewSettings

	viewCount
)

// viewKeys maps each view to its translation key for the tab header.
var viewKeys = []string{
	"board", "timeline", "calendar", "charts",
	"intelligence", "teams", "assistant", "settings",
}

// --- Messages ---

type boardDataMsg struct {
	columns []board.Column
}

type timelineDataMsg struct {
	projects []timeline.Project
}

type docsDataMsg struct {
	docs    []store.Document
	folders []store.Folder
}

type eventsDataMsg struct {
	events []store.Event
}

type teamsDataMsg struct {
	teams []store.Team
}

type membersDataMsg struct {
	members []store.TeamMember
}

type settingsDataMsg struct {
	settings []store.Setting
}

type chatReplyMsg struct {
	seq  int
	text string
}

type toolResultMsg struct {
	seq    int
	result *tools.Result
	err    error
}

type researchDoneMsg struct {
	seq    int
	query  string
	report string
}

type themeChangedMsg struct {
	name string
}

type languageChangedMsg struct{}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

func dayLabel(t time.Time) string {
	return t.Format("02")
}

// truncate shortens s to at most w display cells, appending an ellipsis.
// Width-aware and rune-safe; multibyte titles are never cut mid-rune.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if xansi.StringWidth(s) <= w {
		return s
	}
	return xansi.Truncate(s, w, "…")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
