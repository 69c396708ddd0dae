package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"zenith/internal/board"
	"zenith/internal/i18n"
	"zenith/internal/store"
)

type boardModel struct {
	store  *store.Store
	i18n   *i18n.Store
	width  int
	height int

	columns []board.Column
	colIdx  int
	cardIdx int

	// Move mode: the selected card is pending a drop into targetIdx.
	moving    bool
	targetIdx int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formTitle    *string
	formDesc     *string
	formPriority *string
	formDue      *string
	formAssign   *string
}

func newBoardModel(s *store.Store, tr *i18n.Store) boardModel {
	title, desc, prio, due, assign := "", "", string(board.PriorityMedium), "", ""
	return boardModel{
		store:        s,
		i18n:         tr,
		formTitle:    &title,
		formDesc:     &desc,
		formPriority: &prio,
		formDue:      &due,
		formAssign:   &assign,
	}
}

func (b *boardModel) setSize(w, h int) {
	b.width = w
	b.height = h
}

func (b boardModel) refresh() tea.Cmd {
	return func() tea.Msg {
		cols, _ := b.store.ListBoard()
		return boardDataMsg{columns: cols}
	}
}

func (b boardModel) update(msg tea.Msg) (boardModel, tea.Cmd) {
	if b.formActive && b.form != nil {
		return b.updateForm(msg)
	}

	switch msg := msg.(type) {
	case boardDataMsg:
		b.columns = msg.columns
		if b.colIdx >= len(b.columns) {
			b.colIdx = max(0, len(b.columns)-1)
		}
		b.clampCard()
		return b, nil

	case tea.KeyMsg:
		if b.moving {
			return b.updateMove(msg)
		}
		return b.updateBrowse(msg)
	}
	return b, nil
}

func (b boardModel) updateBrowse(msg tea.KeyMsg) (boardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		if b.colIdx > 0 {
			b.colIdx--
			b.clampCard()
		}
	case key.Matches(msg, keys.Right):
		if b.colIdx < len(b.columns)-1 {
			b.colIdx++
			b.clampCard()
		}
	case key.Matches(msg, keys.Up):
		if b.cardIdx > 0 {
			b.cardIdx--
		}
	case key.Matches(msg, keys.Down):
		if b.cardIdx < b.currentCount()-1 {
			b.cardIdx++
		}
	case key.Matches(msg, keys.Move):
		if b.currentCount() > 0 {
			b.moving = true
			b.targetIdx = b.colIdx
		}
	case key.Matches(msg, keys.New):
		return b.showNewCardForm()
	case key.Matches(msg, keys.Delete):
		if b.currentCount() > 0 {
			card := b.columns[b.colIdx].Cards[b.cardIdx]
			b.store.DeleteCard(card.ID)
			return b, b.refresh()
		}
	}
	return b, nil
}

func (b boardModel) updateMove(msg tea.KeyMsg) (boardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Left):
		if b.targetIdx > 0 {
			b.targetIdx--
		}
	case key.Matches(msg, keys.Right):
		if b.targetIdx < len(b.columns)-1 {
			b.targetIdx++
		}
	case key.Matches(msg, keys.Enter):
		b.moving = false
		card := b.columns[b.colIdx].Cards[b.cardIdx]
		from := b.columns[b.colIdx].ID
		to := b.columns[b.targetIdx].ID

		// Optimistic snapshot, then persist. Same-column and stale moves
		// leave both untouched.
		if next, ok := board.Move(b.columns, card.ID, from, to); ok {
			b.columns = next
			b.clampCard()
			if err := b.store.MoveCard(card.ID, from, to); err != nil {
				return b, tea.Batch(b.refresh(), func() tea.Msg {
					return statusMsg{text: fmt.Sprintf("Move error: %v", err), isError: true}
				})
			}
		}
	case key.Matches(msg, keys.Back):
		b.moving = false
	}
	return b, nil
}

func (b boardModel) currentCount() int {
	if b.colIdx >= len(b.columns) {
		return 0
	}
	return b.columns[b.colIdx].CardCount()
}

func (b *boardModel) clampCard() {
	b.cardIdx = clamp(b.cardIdx, 0, max(0, b.currentCount()-1))
}

func (b boardModel) showNewCardForm() (boardModel, tea.Cmd) {
	*b.formTitle = ""
	*b.formDesc = ""
	*b.formPriority = string(board.PriorityMedium)
	*b.formDue = ""
	*b.formAssign = ""

	b.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(b.formTitle),
			huh.NewInput().Title("Description").Value(b.formDesc),
			huh.NewSelect[string]().Title("Priority").
				Options(
					huh.NewOption("Low", string(board.PriorityLow)),
					huh.NewOption("Medium", string(board.PriorityMedium)),
					huh.NewOption("High", string(board.PriorityHigh)),
				).Value(b.formPriority),
			huh.NewInput().Title("Due date (YYYY-MM-DD)").Value(b.formDue),
			huh.NewInput().Title("Assignees (comma-separated)").Value(b.formAssign),
		),
	).WithShowHelp(true).WithShowErrors(true)

	b.formActive = true
	return b, b.form.Init()
}

func (b boardModel) updateForm(msg tea.Msg) (boardModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			b.formActive = false
			b.form = nil
			return b, nil
		}
	}

	form, cmd := b.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		b.form = f
	}

	if b.form.State == huh.StateCompleted {
		b.formActive = false
		title := strings.TrimSpace(*b.formTitle)
		if title == "" {
			return b, func() tea.Msg {
				return statusMsg{text: b.i18n.Translate("titleRequired"), isError: true}
			}
		}

		card := board.Card{
			Title:       title,
			Description: *b.formDesc,
			Priority:    board.Priority(*b.formPriority),
		}
		if due, err := time.Parse("2006-01-02", strings.TrimSpace(*b.formDue)); err == nil {
			card.DueDate = &due
		}
		if a := strings.TrimSpace(*b.formAssign); a != "" {
			for _, name := range strings.Split(a, ",") {
				card.Assignees = append(card.Assignees, strings.TrimSpace(name))
			}
		}

		colID := "todo"
		if b.colIdx < len(b.columns) {
			colID = b.columns[b.colIdx].ID
		}
		if _, err := b.store.CreateCard(colID, card); err != nil {
			return b, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
			}
		}
		return b, b.refresh()
	}

	return b, cmd
}

func (b boardModel) view() string {
	if b.formActive && b.form != nil {
		title := titleStyle.Render("New Card")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", b.form.View())
		return panelStyle.Width(b.width - 4).Render(content)
	}

	if len(b.columns) == 0 {
		return panelStyle.Width(b.width - 4).Render(mutedStyle.Render("Loading board..."))
	}

	colWidth := b.width/len(b.columns) - 2
	if colWidth < 18 {
		colWidth = 18
	}

	var rendered []string
	for i, col := range b.columns {
		rendered = append(rendered, b.renderColumn(col, i, colWidth))
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if b.moving {
		hint := warningStyle.Render("  moving: ←/→ pick column, enter to drop, esc to cancel")
		return lipgloss.JoinVertical(lipgloss.Left, view, hint)
	}
	return view
}

func (b boardModel) renderColumn(col board.Column, idx, w int) string {
	count := subtitleStyle.Render(fmt.Sprintf(" %d", col.CardCount()))
	header := titleStyle.Render(col.Title) + count

	var rows []string
	rows = append(rows, header)
	rows = append(rows, "")

	for i, card := range col.Cards {
		rows = append(rows, b.renderCard(card, idx == b.colIdx && i == b.cardIdx, w-6))
	}
	if col.CardCount() == 0 {
		rows = append(rows, mutedStyle.Render("empty"))
	}

	style := panelStyle
	if idx == b.colIdx || (b.moving && idx == b.targetIdx) {
		style = activePanelStyle
	}
	return style.Width(w).Render(strings.Join(rows, "\n"))
}

func (b boardModel) renderCard(card board.Card, selected bool, w int) string {
	cursor := "  "
	style := normalItemStyle
	if selected {
		cursor = "> "
		style = selectedItemStyle
	}

	title := truncate(card.Title, w-2)

	prio := priorityStyle(string(card.Priority)).Render("●")
	line := style.Render(cursor+title) + " " + prio

	meta := ""
	if card.DueDate != nil {
		meta = card.DueDate.Format("Jan 02")
	}
	if len(card.Assignees) > 0 {
		if meta != "" {
			meta += "  "
		}
		meta += strings.Join(card.Assignees, " ")
	}
	if meta != "" {
		line += "\n" + mutedStyle.Render("    "+meta)
	}
	return line
}
