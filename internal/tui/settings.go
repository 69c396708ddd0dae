package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"zenith/internal/i18n"
	"zenith/internal/store"
	"zenith/internal/tools"
)

type settingsModel struct {
	store  *store.Store
	i18n   *i18n.Store
	width  int
	height int

	settings   []store.Setting
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	language  *string
	themeName *string
	serpKey   *string
	googleKey *string
}

func newSettingsModel(s *store.Store, tr *i18n.Store) settingsModel {
	lang, th, serp, google := "", "", "", ""
	return settingsModel{
		store:     s,
		i18n:      tr,
		language:  &lang,
		themeName: &th,
		serpKey:   &serp,
		googleKey: &google,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, _ := s.store.GetAllSettings()
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.language = string(s.i18n.Language())
	*s.themeName = s.getVal("theme", DefaultTheme)
	*s.serpKey = s.getVal(tools.KeySerpAPI, "")
	*s.googleKey = s.getVal(tools.KeyGoogleAPI, "")

	themeOptions := make([]huh.Option[string], len(themes))
	for i, t := range themes {
		themeOptions[i] = huh.NewOption(t.Name, t.Name)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title(s.i18n.Translate("language")).
				Options(
					huh.NewOption(s.i18n.Translate("english"), string(i18n.English)),
					huh.NewOption(s.i18n.Translate("portuguese"), string(i18n.Portuguese)),
				).Value(s.language),
			huh.NewSelect[string]().Title(s.i18n.Translate("theme")).
				Options(themeOptions...).Value(s.themeName),
		),
		huh.NewGroup(
			huh.NewInput().Title("SerpAPI key").Value(s.serpKey),
			huh.NewInput().Title("Google API key").Value(s.googleKey),
		).Title("API"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.apply()
		return s, tea.Batch(s.refresh(),
			func() tea.Msg { return themeChangedMsg{name: *s.themeName} },
			func() tea.Msg { return languageChangedMsg{} },
		)
	}

	return s, cmd
}

// apply takes effect immediately; persistence rides along (the language
// store's persist hook, the settings table for the rest).
func (s settingsModel) apply() {
	s.i18n.SetLanguage(i18n.Language(*s.language))
	s.store.SetSetting("theme", *s.themeName)
	s.store.SetSetting(tools.KeySerpAPI, strings.TrimSpace(*s.serpKey))
	s.store.SetSetting(tools.KeyGoogleAPI, strings.TrimSpace(*s.googleKey))
	applyTheme(LookupTheme(*s.themeName))
}

func (s settingsModel) getVal(k, fallback string) string {
	v, err := s.store.GetSetting(k)
	if err != nil {
		return fallback
	}
	return v
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render(s.i18n.Translate("settings"))
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	title := titleStyle.Render(s.i18n.Translate("settings"))
	hint := mutedStyle.Render("Press enter to edit settings")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	for _, setting := range s.settings {
		label := lipgloss.NewStyle().Width(20).Render(setting.Key)
		value := setting.Value
		if strings.HasSuffix(setting.Key, "_api_key") {
			value = maskKey(value)
		}
		rows = append(rows, "  "+label+" "+highlightStyle.Render(value))
	}

	rows = append(rows, "")
	rows = append(rows, hint)

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func maskKey(v string) string {
	if v == "" {
		return "(not set)"
	}
	if len(v) <= 4 {
		return strings.Repeat("*", len(v))
	}
	return strings.Repeat("*", len(v)-4) + v[len(v)-4:]
}
