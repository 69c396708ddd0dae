package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"zenith/internal/board"
	"zenith/internal/store"
)

type jsonExport struct {
	ExportedAt string     `json:"exported_at"`
	Count      int        `json:"count"`
	Cards      []jsonCard `json:"cards,omitempty"`
	Documents  []jsonDoc  `json:"documents,omitempty"`
}

type jsonCard struct {
	ID          string   `json:"id"`
	Column      string   `json:"column"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"due_date,omitempty"`
	Comments    int      `json:"comments"`
	Attachments int      `json:"attachments"`
	Assignees   []string `json:"assignees,omitempty"`
}

type jsonDoc struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content,omitempty"`
	Type      string   `json:"type"`
	Status    string   `json:"status"`
	Tags      []string `json:"tags,omitempty"`
	Starred   bool     `json:"starred"`
	Author    string   `json:"author"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// BoardToJSON writes every card on the board to path, grouped flat with the
// owning column's title on each card.
func BoardToJSON(cols []board.Column, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      board.TotalCards(cols),
	}

	for _, col := range cols {
		for _, c := range col.Cards {
			due := ""
			if c.DueDate != nil {
				due = c.DueDate.Format("2006-01-02")
			}
			export.Cards = append(export.Cards, jsonCard{
				ID:          c.ID,
				Column:      col.Title,
				Title:       c.Title,
				Description: c.Description,
				Priority:    string(c.Priority),
				DueDate:     due,
				Comments:    c.Comments,
				Attachments: c.Attachments,
				Assignees:   c.Assignees,
			})
		}
	}

	return writeJSON(export, path)
}

// DocumentsToJSON writes the document library to path.
func DocumentsToJSON(docs []store.Document, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(docs),
	}

	for _, d := range docs {
		export.Documents = append(export.Documents, jsonDoc{
			ID:        d.ID,
			Title:     d.Title,
			Content:   d.Content,
			Type:      string(d.Type),
			Status:    string(d.Status),
			Tags:      d.Tags,
			Starred:   d.Starred,
			Author:    d.Author,
			CreatedAt: d.CreatedAt.Local().Format(time.RFC3339),
			UpdatedAt: d.UpdatedAt.Local().Format(time.RFC3339),
		})
	}

	return writeJSON(export, path)
}

func writeJSON(export jsonExport, path string) error {
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
