package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"zenith/internal/i18n"
	"zenith/internal/store"
)

type teamsModel struct {
	store  *store.Store
	i18n   *i18n.Store
	width  int
	height int

	teams        []store.Team
	members      []store.TeamMember
	cursor       int
	memberCursor int
	viewingTeam  bool

	formActive bool
	form       *huh.Form

	formName  *string
	formRole  *string
	formAdmin *bool
}

func newTeamsModel(s *store.Store, tr *i18n.Store) teamsModel {
	name, role, admin := "", "", false
	return teamsModel{
		store:     s,
		i18n:      tr,
		formName:  &name,
		formRole:  &role,
		formAdmin: &admin,
	}
}

func (t *teamsModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t teamsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		teams, _ := t.store.ListTeams()
		return teamsDataMsg{teams: teams}
	}
}

func (t teamsModel) refreshMembers() tea.Cmd {
	if t.cursor >= len(t.teams) {
		return nil
	}
	id := t.teams[t.cursor].ID
	return func() tea.Msg {
		members, _ := t.store.ListMembers(id)
		return membersDataMsg{members: members}
	}
}

func (t teamsModel) update(msg tea.Msg) (teamsModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	switch msg := msg.(type) {
	case teamsDataMsg:
		t.teams = msg.teams
		t.cursor = clamp(t.cursor, 0, max(0, len(t.teams)-1))
		return t, nil

	case membersDataMsg:
		t.members = msg.members
		t.memberCursor = clamp(t.memberCursor, 0, max(0, len(t.members)-1))
		return t, nil

	case tea.KeyMsg:
		if t.viewingTeam {
			return t.updateMemberView(msg)
		}
		return t.updateTeamList(msg)
	}
	return t, nil
}

func (t teamsModel) updateTeamList(msg tea.KeyMsg) (teamsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(msg, keys.Down):
		if t.cursor < len(t.teams)-1 {
			t.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if len(t.teams) > 0 {
			t.viewingTeam = true
			t.memberCursor = 0
			return t, t.refreshMembers()
		}
	}
	return t, nil
}

func (t teamsModel) updateMemberView(msg tea.KeyMsg) (teamsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Back):
		t.viewingTeam = false
	case key.Matches(msg, keys.Up):
		if t.memberCursor > 0 {
			t.memberCursor--
		}
	case key.Matches(msg, keys.Down):
		if t.memberCursor < len(t.members)-1 {
			t.memberCursor++
		}
	case key.Matches(msg, keys.New):
		return t.showAddMemberForm()
	case key.Matches(msg, keys.Delete):
		if len(t.members) > 0 {
			t.store.RemoveMember(t.members[t.memberCursor].ID)
			return t, t.refreshMembers()
		}
	}
	return t, nil
}

func (t teamsModel) showAddMemberForm() (teamsModel, tea.Cmd) {
	*t.formName = ""
	*t.formRole = ""
	*t.formAdmin = false

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(t.formName),
			huh.NewInput().Title("Role").Value(t.formRole),
			huh.NewConfirm().Title("Admin?").Value(t.formAdmin),
		),
	).WithShowHelp(true).WithShowErrors(true)

	t.formActive = true
	return t, t.form.Init()
}

func (t teamsModel) updateForm(msg tea.Msg) (teamsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		if t.cursor < len(t.teams) {
			_, err := t.store.AddMember(t.teams[t.cursor].ID, *t.formName, *t.formRole, *t.formAdmin)
			if err != nil {
				return t, func() tea.Msg {
					return statusMsg{text: t.i18n.Translate("nameRequired"), isError: true}
				}
			}
		}
		return t, t.refreshMembers()
	}
	return t, cmd
}

func (t teamsModel) view() string {
	w := t.width - 4

	if t.formActive && t.form != nil {
		title := titleStyle.Render("New Member")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", t.form.View()),
		)
	}

	if t.viewingTeam {
		return t.renderMemberView(w)
	}
	return t.renderTeamList(w)
}

func (t teamsModel) renderTeamList(w int) string {
	title := titleStyle.Render(t.i18n.Translate("teams"))

	if len(t.teams) == 0 {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", mutedStyle.Render("No teams")),
		)
	}

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for i, team := range t.teams {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(team.Color)).Render("●")
		cursor := "  "
		style := normalItemStyle
		if i == t.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %s", cursor, dot, team.Name)))
		rows = append(rows, mutedStyle.Render("      "+team.Description))
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: members"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (t teamsModel) renderMemberView(w int) string {
	team := t.teams[t.cursor]
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(team.Color)).Render("●")
	title := titleStyle.Render(fmt.Sprintf("%s %s", dot, team.Name))

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	if len(t.members) == 0 {
		rows = append(rows, mutedStyle.Render("No members. Press n to add one."))
	}

	for i, m := range t.members {
		cursor := "  "
		style := normalItemStyle
		if i == t.memberCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		admin := ""
		if m.IsAdmin {
			admin = accentStyle.Render(" admin")
		}
		avatar := badgeStyle.Render(m.Avatar)
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %-22s", cursor, avatar, m.Name))+
			mutedStyle.Render(m.Role)+admin)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: add  d: remove  esc: back"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
