package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"zenith/internal/i18n"
	"zenith/internal/store"
)

var docTabs = []store.DocTab{store.TabAll, store.TabStarred, store.TabTemplates, store.TabRecent}

var docTabKeys = map[store.DocTab]string{
	store.TabAll:       "all",
	store.TabStarred:   "starred",
	store.TabTemplates: "templates",
	store.TabRecent:    "recent",
}

type docsModel struct {
	store  *store.Store
	i18n   *i18n.Store
	width  int
	height int

	docs     []store.Document
	folders  []store.Folder
	filtered []store.Document
	tabIdx   int
	cursor   int
	selected int64 // selected document ID, 0 = none

	search    textinput.Model
	searching bool

	editing bool
	editor  textarea.Model

	formActive bool
	form       *huh.Form
	formType   string // "document", "folder"
	formTitle  *string
}

func newDocsModel(s *store.Store, tr *i18n.Store) docsModel {
	search := textinput.New()
	search.Placeholder = tr.Translate("searchDocuments")
	search.CharLimit = 120

	editor := textarea.New()
	editor.ShowLineNumbers = false

	title := ""
	return docsModel{
		store:     s,
		i18n:      tr,
		search:    search,
		editor:    editor,
		formTitle: &title,
	}
}

func (d *docsModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.search.Width = min(60, w-10)
	d.editor.SetWidth(w - 10)
	d.editor.SetHeight(max(5, h-12))
}

func (d docsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		docs, _ := d.store.ListDocuments()
		folders, _ := d.store.ListFolders()
		return docsDataMsg{docs: docs, folders: folders}
	}
}

// applyFilter re-derives the visible list; it never caches across edits.
func (d *docsModel) applyFilter() {
	d.filtered = store.FilterDocuments(d.docs, d.search.Value(), docTabs[d.tabIdx], time.Now())
	d.cursor = clamp(d.cursor, 0, max(0, len(d.filtered)-1))
}

func (d docsModel) current() (store.Document, bool) {
	if d.cursor >= len(d.filtered) {
		return store.Document{}, false
	}
	return d.filtered[d.cursor], true
}

func (d docsModel) update(msg tea.Msg) (docsModel, tea.Cmd) {
	if d.formActive && d.form != nil {
		return d.updateForm(msg)
	}
	if d.editing {
		return d.updateEditor(msg)
	}

	switch msg := msg.(type) {
	case docsDataMsg:
		d.docs = msg.docs
		d.folders = msg.folders
		d.applyFilter()
		// Reselect by ID so creation and refresh keep the selection stable.
		if d.selected != 0 {
			for i, doc := range d.filtered {
				if doc.ID == d.selected {
					d.cursor = i
					break
				}
			}
		}
		return d, nil

	case tea.KeyMsg:
		if d.searching {
			return d.updateSearch(msg)
		}
		return d.updateBrowse(msg)
	}
	return d, nil
}

func (d docsModel) updateSearch(msg tea.KeyMsg) (docsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		d.searching = false
		d.search.Blur()
		return d, nil
	case "enter":
		d.searching = false
		d.search.Blur()
		d.applyFilter()
		return d, nil
	}
	var cmd tea.Cmd
	d.search, cmd = d.search.Update(msg)
	d.applyFilter()
	return d, cmd
}

func (d docsModel) updateBrowse(msg tea.KeyMsg) (docsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Search):
		d.searching = true
		return d, d.search.Focus()

	case msg.String() == "t":
		d.tabIdx = (d.tabIdx + 1) % len(docTabs)
		d.applyFilter()

	case key.Matches(msg, keys.Up):
		if d.cursor > 0 {
			d.cursor--
		}
		if doc, ok := d.current(); ok {
			d.selected = doc.ID
		}

	case key.Matches(msg, keys.Down):
		if d.cursor < len(d.filtered)-1 {
			d.cursor++
		}
		if doc, ok := d.current(); ok {
			d.selected = doc.ID
		}

	case key.Matches(msg, keys.Star):
		if doc, ok := d.current(); ok {
			d.store.ToggleStar(doc.ID)
			return d, d.refresh()
		}

	case key.Matches(msg, keys.Delete):
		if doc, ok := d.current(); ok {
			d.store.DeleteDocument(doc.ID)
			if d.selected == doc.ID {
				d.selected = 0
				d.editor.Reset()
			}
			return d, d.refresh()
		}

	case key.Matches(msg, keys.Edit):
		if doc, ok := d.current(); ok {
			d.selected = doc.ID
			d.editing = true
			d.editor.SetValue(doc.Content)
			return d, d.editor.Focus()
		}

	case key.Matches(msg, keys.Enter):
		// Enter on a template generates a document from it.
		if doc, ok := d.current(); ok {
			d.selected = doc.ID
			if doc.Type == store.DocTemplate {
				generated, err := d.store.CreateFromTemplate(doc.ID, "Usuário Atual")
				if err == nil && generated != nil {
					d.selected = generated.ID
					return d, tea.Batch(d.refresh(), func() tea.Msg {
						return statusMsg{text: d.i18n.Translate("documentCreated")}
					})
				}
			}
		}

	case key.Matches(msg, keys.New):
		return d.showNewDocForm()

	case msg.String() == "f":
		return d.showNewFolderForm()
	}
	return d, nil
}

func (d docsModel) updateEditor(msg tea.Msg) (docsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			d.editing = false
			d.editor.Blur()
			return d, nil
		case "ctrl+s":
			d.editing = false
			d.editor.Blur()
			if err := d.store.SaveDocument(d.selected, d.editor.Value()); err != nil {
				return d, func() tea.Msg {
					return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
				}
			}
			return d, tea.Batch(d.refresh(), func() tea.Msg {
				return statusMsg{text: d.i18n.Translate("documentSaved")}
			})
		}
	}
	var cmd tea.Cmd
	d.editor, cmd = d.editor.Update(msg)
	return d, cmd
}

func (d docsModel) showNewDocForm() (docsModel, tea.Cmd) {
	*d.formTitle = ""
	d.formType = "document"
	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(d.formTitle),
		),
	).WithShowHelp(true).WithShowErrors(true)
	d.formActive = true
	return d, d.form.Init()
}

func (d docsModel) showNewFolderForm() (docsModel, tea.Cmd) {
	*d.formTitle = ""
	d.formType = "folder"
	d.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Folder name").Value(d.formTitle),
		),
	).WithShowHelp(true).WithShowErrors(true)
	d.formActive = true
	return d, d.form.Init()
}

func (d docsModel) updateForm(msg tea.Msg) (docsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			d.formActive = false
			d.form = nil
			return d, nil
		}
	}

	form, cmd := d.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		d.form = f
	}

	if d.form.State == huh.StateCompleted {
		d.formActive = false
		switch d.formType {
		case "folder":
			if _, err := d.store.CreateFolder(*d.formTitle); err != nil {
				return d, func() tea.Msg {
					return statusMsg{text: d.i18n.Translate("nameRequired"), isError: true}
				}
			}
			return d, tea.Batch(d.refresh(), func() tea.Msg {
				return statusMsg{text: d.i18n.Translate("folderCreated")}
			})
		default:
			doc, err := d.store.CreateDocument(*d.formTitle, "Usuário Atual")
			if err != nil {
				return d, func() tea.Msg {
					return statusMsg{text: d.i18n.Translate("titleRequired"), isError: true}
				}
			}
			d.selected = doc.ID
			return d, tea.Batch(d.refresh(), func() tea.Msg {
				return statusMsg{text: d.i18n.Translate("documentCreated")}
			})
		}
	}
	return d, cmd
}

func (d docsModel) view() string {
	w := d.width - 4

	if d.formActive && d.form != nil {
		title := titleStyle.Render(d.i18n.Translate("intelligence"))
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", d.form.View()),
		)
	}

	if d.editing {
		title := titleStyle.Render(d.selectedTitle())
		hint := mutedStyle.Render("ctrl+s: save  esc: cancel")
		return activePanelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", d.editor.View(), "", hint),
		)
	}

	header := d.renderHeader()
	listWidth := min(44, w/2)
	list := d.renderList(listWidth)
	preview := d.renderPreview(w - listWidth - 8)

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, " ", preview)
	hint := mutedStyle.Render("  /: search  t: filter  n: new  f: folder  s: star  e: edit  d: delete  enter: use template")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", hint),
	)
}

func (d docsModel) selectedTitle() string {
	for _, doc := range d.docs {
		if doc.ID == d.selected {
			return doc.Title
		}
	}
	return ""
}

func (d docsModel) renderHeader() string {
	var tabs []string
	for i, tab := range docTabs {
		label := d.i18n.Translate(docTabKeys[tab])
		if i == d.tabIdx {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}

	searchView := d.search.View()
	if d.searching {
		searchView = activePanelStyle.UnsetPadding().UnsetBorderStyle().Render(searchView)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Bottom,
			titleStyle.Render(d.i18n.Translate("intelligence")), "  ",
			lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...),
		),
		searchView,
	)
}

func (d docsModel) renderList(w int) string {
	if len(d.filtered) == 0 {
		return lipgloss.NewStyle().Width(w).Render(mutedStyle.Render("No documents"))
	}

	var rows []string
	for i, doc := range d.filtered {
		cursor := "  "
		style := normalItemStyle
		if i == d.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		star := " "
		if doc.Starred {
			star = warningStyle.Render("★")
		}
		badge := badgeStyle.Render(string(doc.Type))
		title := truncate(doc.Title, w-10)
		rows = append(rows, fmt.Sprintf("%s%s %s", style.Render(cursor+title), star, badge))
		rows = append(rows, mutedStyle.Render("    "+doc.Author+"  "+doc.UpdatedAt.Format("Jan 02")))
	}
	return lipgloss.NewStyle().Width(w).Render(strings.Join(rows, "\n"))
}

func (d docsModel) renderPreview(w int) string {
	doc, ok := d.current()
	if !ok {
		return mutedStyle.Render("Select a document")
	}

	title := titleStyle.Render(doc.Title)
	meta := mutedStyle.Render(fmt.Sprintf("%s · %s · %s", doc.Author, doc.Status, strings.Join(doc.Tags, ", ")))
	body := renderMarkdown(doc.Content, w)
	if body == "" {
		body = mutedStyle.Render("(empty)")
	}

	return lipgloss.NewStyle().Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, meta, "", body),
	)
}
