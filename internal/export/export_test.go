package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"zenith/internal/board"
	"zenith/internal/store"
)

func sampleBoard() []board.Column {
	due := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	return []board.Column{
		{ID: "todo", Title: "To Do", Cards: []board.Card{
			{ID: "t1", Title: "Research competitors", Description: "Analyze top 5",
				Priority: board.PriorityMedium, DueDate: &due,
				Comments: 3, Attachments: 2, Assignees: []string{"JD"}},
			{ID: "t2", Title: "Create wireframes", Priority: board.PriorityHigh,
				Assignees: []string{"AS", "JD"}},
		}},
		{ID: "done", Title: "Done", Cards: []board.Card{
			{ID: "t8", Title: "Project Kickoff", Priority: board.PriorityMedium},
		}},
	}
}

func sampleDocuments() []store.Document {
	now := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	return []store.Document{
		{ID: 1, Title: "Análise do orçamento", Content: "Análise detalhada.",
			Type: store.DocResearch, Status: store.StatusDraft,
			Tags: []string{"orçamento", "finanças"}, Starred: true,
			Author: "Marcela Santos", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Title: `Template "Oficial"`, Content: "Modelo, padrão.",
			Type: store.DocTemplate, Status: store.StatusPublished,
			Author: "Carlos Oliveira", CreatedAt: now, UpdatedAt: now},
	}
}

// ============================================================
// CSV
// ============================================================

func TestBoardToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.csv")

	if err := BoardToCSV(sampleBoard(), path); err != nil {
		t.Fatalf("BoardToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// header + 3 data rows
	if len(records) != 4 {
		t.Fatalf("expected 4 rows (1 header + 3 data), got %d", len(records))
	}

	header := records[0]
	expectedHeader := []string{"ID", "Column", "Title", "Description", "Priority", "Due Date", "Comments", "Attachments", "Assignees"}
	for i, h := range expectedHeader {
		if header[i] != h {
			t.Fatalf("header[%d] = %q, want %q", i, header[i], h)
		}
	}

	row := records[1]
	if row[0] != "t1" {
		t.Fatalf("ID = %q, want t1", row[0])
	}
	if row[1] != "To Do" {
		t.Fatalf("Column = %q, want To Do", row[1])
	}
	if row[4] != "Medium" {
		t.Fatalf("Priority = %q, want Medium", row[4])
	}
	if row[5] != "2025-04-15" {
		t.Fatalf("Due Date = %q, want 2025-04-15", row[5])
	}
	if row[8] != "JD" {
		t.Fatalf("Assignees = %q, want JD", row[8])
	}

	// Card without a due date exports with an empty cell.
	if records[3][5] != "" {
		t.Fatalf("missing due date should be empty, got %q", records[3][5])
	}
	// Multiple assignees joined with semicolons.
	if records[2][8] != "AS;JD" {
		t.Fatalf("Assignees = %q, want AS;JD", records[2][8])
	}
}

func TestBoardToCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	if err := BoardToCSV(nil, path); err != nil {
		t.Fatal(err)
	}

	f, _ := os.Open(path)
	defer f.Close()
	r := csv.NewReader(f)
	records, _ := r.ReadAll()
	if len(records) != 1 {
		t.Fatalf("expected 1 row (header only), got %d", len(records))
	}
}

func TestBoardToCSVBadPath(t *testing.T) {
	if err := BoardToCSV(nil, "/nonexistent/dir/file.csv"); err == nil {
		t.Fatal("expected error for bad path")
	}
}

func TestDocumentsToCSVSpecialCharacters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.csv")

	if err := DocumentsToCSV(sampleDocuments(), path); err != nil {
		t.Fatal(err)
	}

	f, _ := os.Open(path)
	defer f.Close()
	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("CSV should be valid even with special chars: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(records))
	}
	if records[2][1] != `Template "Oficial"` {
		t.Fatalf("title mangled: %q", records[2][1])
	}
	if records[1][4] != "orçamento;finanças" {
		t.Fatalf("tags mangled: %q", records[1][4])
	}
	if records[1][5] != "yes" || records[2][5] != "no" {
		t.Fatalf("starred columns = %q, %q", records[1][5], records[2][5])
	}
}

// ============================================================
// JSON
// ============================================================

func TestBoardToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")

	if err := BoardToJSON(sampleBoard(), path); err != nil {
		t.Fatalf("BoardToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var result jsonExport
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if result.Count != 3 {
		t.Fatalf("count = %d, want 3", result.Count)
	}
	if len(result.Cards) != 3 {
		t.Fatalf("cards = %d, want 3", len(result.Cards))
	}
	if result.ExportedAt == "" {
		t.Fatal("exported_at should not be empty")
	}
	if _, err := time.Parse(time.RFC3339, result.ExportedAt); err != nil {
		t.Fatalf("exported_at is not valid RFC3339: %q", result.ExportedAt)
	}

	c := result.Cards[0]
	if c.ID != "t1" || c.Column != "To Do" {
		t.Fatalf("first card = %+v", c)
	}
	if c.DueDate != "2025-04-15" {
		t.Fatalf("due_date = %q", c.DueDate)
	}

	// Card without a due date omits the field.
	if result.Cards[2].DueDate != "" {
		t.Fatalf("missing due date should be empty, got %q", result.Cards[2].DueDate)
	}
}

func TestDocumentsToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs.json")

	if err := DocumentsToJSON(sampleDocuments(), path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	var result jsonExport
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if result.Count != 2 || len(result.Documents) != 2 {
		t.Fatalf("count = %d, documents = %d", result.Count, len(result.Documents))
	}
	d := result.Documents[0]
	if d.Type != "research" || d.Status != "draft" {
		t.Fatalf("type/status = %q/%q", d.Type, d.Status)
	}
	if !d.Starred {
		t.Fatal("starred lost in export")
	}
	if len(d.Tags) != 2 || d.Tags[0] != "orçamento" {
		t.Fatalf("tags = %v", d.Tags)
	}
}

func TestDocumentsToJSONEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")

	if err := DocumentsToJSON(nil, path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	var result jsonExport
	json.Unmarshal(data, &result)

	if result.Count != 0 {
		t.Fatalf("count = %d, want 0", result.Count)
	}
	if result.Documents != nil {
		t.Fatal("documents should be nil/null for empty export")
	}
}

func TestBoardToJSONPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pretty.json")
	BoardToJSON(nil, path)

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "\n") {
		t.Fatal("JSON should be pretty-printed with newlines")
	}
	if !strings.Contains(string(data), "  ") {
		t.Fatal("JSON should be indented with spaces")
	}
}

func TestBoardToJSONBadPath(t *testing.T) {
	if err := BoardToJSON(nil, "/nonexistent/dir/file.json"); err == nil {
		t.Fatal("expected error for bad path")
	}
}
