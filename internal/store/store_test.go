package store

import (
	"testing"
	"time"

	"zenith/internal/board"
	"zenith/internal/timeline"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Should have run migration v1
	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/zenith.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: should succeed and not re-migrate.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

func TestSeedData(t *testing.T) {
	s := newTestStore(t)

	cols, err := s.ListBoard()
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(cols))
	}
	if cols[0].ID != "todo" || cols[3].ID != "done" {
		t.Fatalf("column order wrong: %s .. %s", cols[0].ID, cols[3].ID)
	}
	if board.TotalCards(cols) != 8 {
		t.Fatalf("expected 8 seed cards, got %d", board.TotalCards(cols))
	}

	projects, err := s.ListProjects()
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(projects))
	}
	if len(projects[0].Tasks) != 3 || len(projects[1].Tasks) != 2 {
		t.Fatalf("task counts = %d, %d", len(projects[0].Tasks), len(projects[1].Tasks))
	}

	docs, err := s.ListDocuments()
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 4 {
		t.Fatalf("expected 4 seed documents, got %d", len(docs))
	}

	teams, err := s.ListTeams()
	if err != nil {
		t.Fatal(err)
	}
	if len(teams) != 5 {
		t.Fatalf("expected 5 seed teams, got %d", len(teams))
	}

	events, err := s.ListEvents()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 4 {
		t.Fatalf("expected 4 seed events, got %d", len(events))
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettingsDefaults(t *testing.T) {
	s := newTestStore(t)
	lang, err := s.GetSetting("language")
	if err != nil {
		t.Fatal(err)
	}
	if lang != "en" {
		t.Fatalf("default language = %q", lang)
	}
	theme, _ := s.GetSetting("theme")
	if theme != "dark-purple" {
		t.Fatalf("default theme = %q", theme)
	}
}

func TestSetSettingRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.SetSetting("theme", "dark-hacker"); err != nil {
		t.Fatal(err)
	}
	v, err := s.GetSetting("theme")
	if err != nil {
		t.Fatal(err)
	}
	if v != "dark-hacker" {
		t.Fatalf("theme = %q", v)
	}
}

func TestAPIKeyEmptyWhenUnset(t *testing.T) {
	s := newTestStore(t)
	if got := s.APIKey("serp_api_key"); got != "" {
		t.Fatalf("unset key should be empty, got %q", got)
	}
	s.SetSetting("serp_api_key", "sk-1")
	if got := s.APIKey("serp_api_key"); got != "sk-1" {
		t.Fatalf("APIKey = %q", got)
	}
	if got := s.APIKey("no_such_key"); got != "" {
		t.Fatalf("missing key should be empty, got %q", got)
	}
}

// ============================================================
// Board
// ============================================================

func TestMoveCardPersists(t *testing.T) {
	s := newTestStore(t)
	if err := s.MoveCard("t1", "todo", "done"); err != nil {
		t.Fatal(err)
	}

	cols, _ := s.ListBoard()
	byID := map[string]board.Column{}
	for _, c := range cols {
		byID[c.ID] = c
	}

	for _, card := range byID["todo"].Cards {
		if card.ID == "t1" {
			t.Fatal("t1 should have left todo")
		}
	}
	done := byID["done"].Cards
	if len(done) == 0 || done[len(done)-1].ID != "t1" {
		t.Fatalf("t1 should be last in done, got %v", done)
	}
	if board.TotalCards(cols) != 8 {
		t.Fatalf("total cards changed: %d", board.TotalCards(cols))
	}
}

func TestMoveCardSameColumnNoop(t *testing.T) {
	s := newTestStore(t)
	before, _ := s.ListBoard()
	if err := s.MoveCard("t1", "todo", "todo"); err != nil {
		t.Fatal(err)
	}
	after, _ := s.ListBoard()
	if board.TotalCards(before) != board.TotalCards(after) {
		t.Fatal("same-column move changed the board")
	}
	if after[0].Cards[0].ID != before[0].Cards[0].ID {
		t.Fatal("card order changed")
	}
}

func TestMoveCardStaleSourceNoop(t *testing.T) {
	s := newTestStore(t)
	// t4 is in inprogress; claim it is in todo.
	if err := s.MoveCard("t4", "todo", "done"); err != nil {
		t.Fatal(err)
	}
	cols, _ := s.ListBoard()
	_, colID, ok := board.FindCard(cols, "t4")
	if !ok || colID != "inprogress" {
		t.Fatalf("t4 should still be in inprogress, got %q", colID)
	}
}

func TestCreateCard(t *testing.T) {
	s := newTestStore(t)
	due := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	card, err := s.CreateCard("todo", board.Card{
		Title:     "New card",
		Priority:  board.PriorityLow,
		DueDate:   &due,
		Assignees: []string{"JD", "MJ"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if card.ID == "" {
		t.Fatal("expected generated ID")
	}

	cols, _ := s.ListBoard()
	got, colID, ok := board.FindCard(cols, card.ID)
	if !ok || colID != "todo" {
		t.Fatalf("new card not found in todo")
	}
	// Appended at the end of the column.
	todo := cols[0].Cards
	if todo[len(todo)-1].ID != card.ID {
		t.Fatal("new card should be last in its column")
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("due date round trip failed: %v", got.DueDate)
	}
	if len(got.Assignees) != 2 {
		t.Fatalf("assignees = %v", got.Assignees)
	}
}

// ============================================================
// Documents
// ============================================================

func TestCreateDocumentDefaults(t *testing.T) {
	s := newTestStore(t)
	doc, err := s.CreateDocument("Plano de trabalho", "Ana Silva")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Type != DocNote || doc.Status != StatusDraft {
		t.Fatalf("defaults wrong: %s %s", doc.Type, doc.Status)
	}
	if doc.Content != "" || doc.Starred || len(doc.Tags) != 0 {
		t.Fatalf("new document should be empty: %+v", doc)
	}
	if doc.UpdatedAt.Before(doc.CreatedAt) {
		t.Fatal("UpdatedAt must be >= CreatedAt")
	}
}

func TestCreateDocumentBlankTitle(t *testing.T) {
	s := newTestStore(t)
	before, _ := s.ListDocuments()

	if _, err := s.CreateDocument("   ", "x"); err != ErrBlankTitle {
		t.Fatalf("expected ErrBlankTitle, got %v", err)
	}

	after, _ := s.ListDocuments()
	if len(after) != len(before) {
		t.Fatal("document list changed on validation failure")
	}
}

func TestSaveDocumentStampsUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	doc, _ := s.GetDocument(1)

	if err := s.SaveDocument(doc.ID, "conteúdo novo"); err != nil {
		t.Fatal(err)
	}
	saved, _ := s.GetDocument(doc.ID)
	if saved.Content != "conteúdo novo" {
		t.Fatalf("content = %q", saved.Content)
	}
	if saved.UpdatedAt.Before(doc.UpdatedAt) {
		t.Fatal("UpdatedAt should move forward")
	}
}

func TestToggleStar(t *testing.T) {
	s := newTestStore(t)
	doc, _ := s.GetDocument(2)
	if doc.Starred {
		t.Fatal("doc 2 starts unstarred")
	}
	s.ToggleStar(2)
	doc, _ = s.GetDocument(2)
	if !doc.Starred {
		t.Fatal("star should be set")
	}
	s.ToggleStar(2)
	doc, _ = s.GetDocument(2)
	if doc.Starred {
		t.Fatal("star should be cleared")
	}

	// Unknown ID is a silent no-op.
	if err := s.ToggleStar(999); err != nil {
		t.Fatalf("toggle on missing id: %v", err)
	}
}

func TestDeleteDocument(t *testing.T) {
	s := newTestStore(t)
	if err := s.DeleteDocument(4); err != nil {
		t.Fatal(err)
	}
	docs, _ := s.ListDocuments()
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	if err := s.DeleteDocument(999); err != nil {
		t.Fatalf("delete missing id: %v", err)
	}
}

func TestCreateFromTemplate(t *testing.T) {
	s := newTestStore(t)
	// Seed document 2 is the template.
	doc, err := s.CreateFromTemplate(2, "Usuário Atual")
	if err != nil {
		t.Fatal(err)
	}
	if doc == nil {
		t.Fatal("expected a new document")
	}
	tpl, _ := s.GetDocument(2)
	if doc.Content != tpl.Content {
		t.Fatal("content should be copied from template")
	}
	if len(doc.Tags) != len(tpl.Tags) {
		t.Fatalf("tags should be copied, got %v", doc.Tags)
	}
	if doc.Type != DocNote || doc.Status != StatusDraft {
		t.Fatalf("generated document should be a draft note, got %s/%s", doc.Type, doc.Status)
	}
}

func TestCreateFromTemplateNonTemplate(t *testing.T) {
	s := newTestStore(t)
	before, _ := s.ListDocuments()

	// Document 1 is research, not a template.
	doc, err := s.CreateFromTemplate(1, "x")
	if err != nil || doc != nil {
		t.Fatalf("non-template should be skipped, got %v %v", doc, err)
	}
	doc, err = s.CreateFromTemplate(999, "x")
	if err != nil || doc != nil {
		t.Fatalf("missing template should be skipped, got %v %v", doc, err)
	}

	after, _ := s.ListDocuments()
	if len(after) != len(before) {
		t.Fatal("defensive skips must not create documents")
	}
}

func TestCreateFolderBlankName(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.CreateFolder("  "); err != ErrBlankName {
		t.Fatalf("expected ErrBlankName, got %v", err)
	}
	f, err := s.CreateFolder("Orçamento")
	if err != nil {
		t.Fatal(err)
	}
	if f.ID == 0 {
		t.Fatal("expected folder ID")
	}
}

// ============================================================
// Teams
// ============================================================

func TestAddRemoveMember(t *testing.T) {
	s := newTestStore(t)
	m, err := s.AddMember(1, "Luís Prado", "Estagiário", false)
	if err != nil {
		t.Fatal(err)
	}
	if m.Avatar != "LP" {
		t.Fatalf("avatar = %q", m.Avatar)
	}

	members, _ := s.ListMembers(1)
	if len(members) != 4 {
		t.Fatalf("expected 4 members, got %d", len(members))
	}

	if err := s.RemoveMember(m.ID); err != nil {
		t.Fatal(err)
	}
	members, _ = s.ListMembers(1)
	if len(members) != 3 {
		t.Fatalf("expected 3 members after removal, got %d", len(members))
	}

	if _, err := s.AddMember(1, " ", "x", false); err != ErrBlankName {
		t.Fatalf("expected ErrBlankName, got %v", err)
	}
}

func TestCreateTeam(t *testing.T) {
	s := newTestStore(t)
	tm, err := s.CreateTeam("Jurídico", "Assessoria jurídica", "#E74C3C")
	if err != nil {
		t.Fatal(err)
	}
	if tm.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	teams, _ := s.ListTeams()
	if len(teams) != 6 {
		t.Fatalf("expected 6 teams, got %d", len(teams))
	}

	if _, err := s.CreateTeam("  ", "", ""); err != ErrBlankName {
		t.Fatalf("expected ErrBlankName, got %v", err)
	}
}

// ============================================================
// Timeline and events
// ============================================================

func TestCreateTask(t *testing.T) {
	s := newTestStore(t)
	task := timeline.Task{
		Title:     "Revisão final",
		StartDate: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 5, 9, 0, 0, 0, 0, time.UTC),
		Progress:  25,
		Assignees: []string{"Ana", "Bruno"},
		Color:     "#9B59B6",
	}
	created, err := s.CreateTask(1, task)
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned ID")
	}

	projects, err := s.ListProjects()
	if err != nil {
		t.Fatal(err)
	}
	var found *timeline.Task
	for _, p := range projects {
		if p.ID != 1 {
			continue
		}
		for i := range p.Tasks {
			if p.Tasks[i].ID == created.ID {
				found = &p.Tasks[i]
			}
		}
	}
	if found == nil {
		t.Fatal("created task not listed under project 1")
	}
	if !found.StartDate.Equal(task.StartDate) || !found.EndDate.Equal(task.EndDate) {
		t.Fatalf("dates = %v..%v", found.StartDate, found.EndDate)
	}
	if len(found.Assignees) != 2 || found.Assignees[1] != "Bruno" {
		t.Fatalf("assignees = %v", found.Assignees)
	}
}

func TestCreateEvent(t *testing.T) {
	s := newTestStore(t)
	e, err := s.CreateEvent(Event{
		Title:     "Audiência pública",
		Day:       time.Date(2025, 4, 22, 0, 0, 0, 0, time.UTC),
		TimeRange: "14:00 - 16:00",
		Attendees: []string{"Secretaria", "Imprensa"},
	})
	if err != nil {
		t.Fatal(err)
	}

	events, _ := s.ListEvents()
	var found bool
	for _, got := range events {
		if got.ID != e.ID {
			continue
		}
		found = true
		if got.Day.Month() != time.April || got.Day.Day() != 22 {
			t.Fatalf("day = %v", got.Day)
		}
		if len(got.Attendees) != 2 {
			t.Fatalf("attendees = %v", got.Attendees)
		}
	}
	if !found {
		t.Fatal("created event not listed")
	}

	if _, err := s.CreateEvent(Event{}); err != ErrBlankTitle {
		t.Fatalf("expected ErrBlankTitle, got %v", err)
	}
}

func TestCreateResearchReport(t *testing.T) {
	s := newTestStore(t)
	d, err := s.CreateResearchReport("Pesquisa: transporte", "# Resultados\n\nAnálise.", "Usuário Atual")
	if err != nil {
		t.Fatal(err)
	}
	if d.Type != DocResearch {
		t.Fatalf("type = %q, want research", d.Type)
	}
	if d.Status != StatusDraft {
		t.Fatalf("status = %q, want draft", d.Status)
	}
	if len(d.Tags) != 1 || d.Tags[0] != "pesquisa" {
		t.Fatalf("tags = %v", d.Tags)
	}
	if d.Content == "" {
		t.Fatal("content should carry the report")
	}

	if _, err := s.CreateResearchReport("  ", "body", "x"); err != ErrBlankTitle {
		t.Fatalf("expected ErrBlankTitle, got %v", err)
	}
	docs, _ := s.ListDocuments()
	if len(docs) != 5 {
		t.Fatalf("expected 5 documents, got %d", len(docs))
	}
}
