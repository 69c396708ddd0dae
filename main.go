package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"zenith/internal/i18n"
	"zenith/internal/store"
	"zenith/internal/tools"
	"zenith/internal/tui"
)

func main() {
	dbPath, err := store.DefaultDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	s, err := store.New(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	lang, _ := s.GetSetting("language")
	translator := i18n.New(i18n.Options{
		Language: i18n.Language(lang),
		Persist: func(code i18n.Language) {
			s.SetSetting("language", string(code))
		},
	})

	themeName, _ := s.GetSetting("theme")
	registry := tools.NewRegistry(s)

	app := tui.NewApp(s, translator, registry, themeName)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
