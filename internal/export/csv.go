package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"zenith/internal/board"
	"zenith/internal/store"
)

// BoardToCSV writes one row per card, in column order.
func BoardToCSV(cols []board.Column, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Column", "Title", "Description", "Priority", "Due Date", "Comments", "Attachments", "Assignees"}); err != nil {
		return err
	}

	for _, col := range cols {
		for _, c := range col.Cards {
			due := ""
			if c.DueDate != nil {
				due = c.DueDate.Format("2006-01-02")
			}
			row := []string{
				c.ID,
				col.Title,
				c.Title,
				c.Description,
				string(c.Priority),
				due,
				fmt.Sprintf("%d", c.Comments),
				fmt.Sprintf("%d", c.Attachments),
				strings.Join(c.Assignees, ";"),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}

// DocumentsToCSV writes one row per document. Content is left out on
// purpose, it does not belong in a tabular export.
func DocumentsToCSV(docs []store.Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"ID", "Title", "Type", "Status", "Tags", "Starred", "Author", "Updated"}); err != nil {
		return err
	}

	for _, d := range docs {
		starred := "no"
		if d.Starred {
			starred = "yes"
		}
		row := []string{
			fmt.Sprintf("%d", d.ID),
			d.Title,
			string(d.Type),
			string(d.Status),
			strings.Join(d.Tags, ";"),
			starred,
			d.Author,
			d.UpdatedAt.Local().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
