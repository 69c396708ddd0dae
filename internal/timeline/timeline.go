// Package timeline computes the horizontal placement of task bars inside a
// visible window of calendar days. Layout is pure arithmetic over the window:
// deterministic given the same task and dates, no clock reads, no mutation.
package timeline

import "time"

// DayWidth is the fixed width of one day column, in pixels.
const DayWidth = 120

// WindowDays is the default number of days in a visible window.
const WindowDays = 30

// Task is a scheduled unit of work with a duration and completion state.
type Task struct {
	ID        int64
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Progress  int // 0..100
	Assignees []string
	Color     string
}

// Project groups an ordered list of tasks under a name.
type Project struct {
	ID    int64
	Name  string
	Tasks []Task
}

// Bar is the placement of a task inside the visible window.
type Bar struct {
	Left  int // pixel offset from the window's left edge
	Width int // pixel width, always > 0
}

// Dates returns n contiguous calendar days starting at anchor.
func Dates(anchor time.Time, n int) []time.Time {
	start := midnight(anchor)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// Layout places the task's bar inside the visible window. The second return
// is false when the task does not intersect the window at all; callers must
// render nothing in that case, not an empty bar.
//
// Start and end dates are matched against the window by calendar day. A task
// whose start precedes the window is clipped to the left edge; one whose end
// follows the window is clipped to the right edge; a task spanning the whole
// window fills it.
func Layout(task Task, dates []time.Time) (Bar, bool) {
	if len(dates) == 0 {
		return Bar{}, false
	}

	startIdx := dayIndex(dates, task.StartDate)
	endIdx := dayIndex(dates, task.EndDate)

	if startIdx == -1 && endIdx == -1 {
		first, last := dates[0], dates[len(dates)-1]
		if task.StartDate.Before(first) && task.EndDate.After(last) {
			return Bar{Left: 0, Width: len(dates) * DayWidth}, true
		}
		return Bar{}, false
	}

	left := 0
	if startIdx != -1 {
		left = startIdx * DayWidth
	}

	var width int
	if endIdx == -1 {
		// Runs past the right edge; extend to the end of the window.
		from := 0
		if startIdx != -1 {
			from = startIdx
		}
		width = (len(dates) - from) * DayWidth
	} else {
		from := 0
		if startIdx != -1 {
			from = startIdx
		}
		// End column is inclusive.
		width = (endIdx - from + 1) * DayWidth
	}

	return Bar{Left: left, Width: width}, true
}

func dayIndex(dates []time.Time, day time.Time) int {
	for i, d := range dates {
		if sameDay(d, day) {
			return i
		}
	}
	return -1
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
