// Package board holds the kanban board model: an ordered list of columns,
// each holding an ordered list of cards. Mutations produce a fresh snapshot
// so callers never observe a half-applied move.
package board

import "time"

// Priority of a card.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Card is a unit of work on the board.
type Card struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	Comments    int
	Attachments int
	Assignees   []string
}

// Column is a named, ordered bucket of cards. Slice order is display order.
type Column struct {
	ID    string
	Title string
	Cards []Card
}

// CardCount returns the number of cards in the column. Counts are always
// derived from the card list, never cached.
func (c Column) CardCount() int { return len(c.Cards) }

// TotalCards returns the number of cards across all columns.
func TotalCards(cols []Column) int {
	n := 0
	for _, c := range cols {
		n += len(c.Cards)
	}
	return n
}

// FindCard returns the card with the given ID and the ID of the column it
// lives in.
func FindCard(cols []Column, cardID string) (Card, string, bool) {
	for _, col := range cols {
		for _, card := range col.Cards {
			if card.ID == cardID {
				return card, col.ID, true
			}
		}
	}
	return Card{}, "", false
}

// Move returns a new snapshot of the board with the card moved from the
// source column to the end of the target column, and whether anything moved.
//
// Moves are cross-column only: a same-column move is ignored, as is a move
// whose card is not actually resident in the claimed source column. Both
// arise from stale or inconsistent drag events and are deliberately silent.
func Move(cols []Column, cardID, fromID, toID string) ([]Column, bool) {
	if fromID == toID {
		return cols, false
	}

	var moved Card
	found := false
	for _, col := range cols {
		if col.ID != fromID {
			continue
		}
		for _, card := range col.Cards {
			if card.ID == cardID {
				moved = card
				found = true
				break
			}
		}
	}
	if !found {
		return cols, false
	}

	out := make([]Column, len(cols))
	for i, col := range cols {
		next := col
		switch col.ID {
		case fromID:
			cards := make([]Card, 0, len(col.Cards)-1)
			for _, card := range col.Cards {
				if card.ID != cardID {
					cards = append(cards, card)
				}
			}
			next.Cards = cards
		case toID:
			cards := make([]Card, len(col.Cards), len(col.Cards)+1)
			copy(cards, col.Cards)
			next.Cards = append(cards, moved)
		}
		out[i] = next
	}
	return out, true
}
