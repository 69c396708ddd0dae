package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"zenith/internal/board"
)

const dayFormat = "2006-01-02"

// ListBoard loads all columns with their cards in display order.
func (s *Store) ListBoard() ([]board.Column, error) {
	rows, err := s.db.Query(`SELECT id, title FROM columns ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list columns: %w", err)
	}
	defer rows.Close()

	var cols []board.Column
	index := map[string]int{}
	for rows.Next() {
		var c board.Column
		if err := rows.Scan(&c.ID, &c.Title); err != nil {
			return nil, err
		}
		index[c.ID] = len(cols)
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	cardRows, err := s.db.Query(
		`SELECT id, column_id, title, description, priority, due_date, comments, attachments, assignees
		 FROM cards ORDER BY column_id, position`)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer cardRows.Close()

	for cardRows.Next() {
		var card board.Card
		var columnID, priority, assignees string
		var due sql.NullString
		if err := cardRows.Scan(&card.ID, &columnID, &card.Title, &card.Description,
			&priority, &due, &card.Comments, &card.Attachments, &assignees); err != nil {
			return nil, err
		}
		card.Priority = board.Priority(priority)
		card.Assignees = splitList(assignees)
		if due.Valid {
			if d, err := time.Parse(dayFormat, due.String); err == nil {
				card.DueDate = &d
			}
		}
		if i, ok := index[columnID]; ok {
			cols[i].Cards = append(cols[i].Cards, card)
		}
	}
	return cols, cardRows.Err()
}

// CreateCard appends a new card at the end of the column.
func (s *Store) CreateCard(columnID string, c board.Card) (*board.Card, error) {
	if c.ID == "" {
		c.ID = fmt.Sprintf("c%x", time.Now().UnixNano())
	}
	var due any
	if c.DueDate != nil {
		due = c.DueDate.Format(dayFormat)
	}
	_, err := s.db.Exec(
		`INSERT INTO cards (id, column_id, position, title, description, priority, due_date, comments, attachments, assignees)
		 VALUES (?, ?, (SELECT COALESCE(MAX(position),0)+1 FROM cards WHERE column_id = ?), ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, columnID, columnID, c.Title, c.Description, string(c.Priority), due,
		c.Comments, c.Attachments, joinList(c.Assignees),
	)
	if err != nil {
		return nil, fmt.Errorf("insert card: %w", err)
	}
	return &c, nil
}

// MoveCard persists a cross-column move: the card leaves the source column
// and takes the last position in the target column. Same-column moves and
// moves whose card is not resident in the claimed source are silent no-ops,
// mirroring the board model's semantics for stale drag events.
func (s *Store) MoveCard(cardID, fromID, toID string) error {
	if fromID == toID {
		return nil
	}
	_, err := s.db.Exec(
		`UPDATE cards
		 SET column_id = ?, position = (SELECT COALESCE(MAX(position),0)+1 FROM cards WHERE column_id = ?)
		 WHERE id = ? AND column_id = ?`,
		toID, toID, cardID, fromID,
	)
	if err != nil {
		return fmt.Errorf("move card %s: %w", cardID, err)
	}
	return nil
}

// DeleteCard removes a card; unknown IDs are ignored.
func (s *Store) DeleteCard(cardID string) error {
	_, err := s.db.Exec(`DELETE FROM cards WHERE id = ?`, cardID)
	return err
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

func joinList(v []string) string {
	return strings.Join(v, ",")
}
