package store

import (
	"fmt"
	"time"
)

// ListEvents returns all calendar events in day order.
func (s *Store) ListEvents() ([]Event, error) {
	rows, err := s.db.Query(
		`SELECT id, title, day, time_range, attendees, description FROM events ORDER BY day, id`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var day, attendees string
		if err := rows.Scan(&e.ID, &e.Title, &day, &e.TimeRange, &attendees, &e.Description); err != nil {
			return nil, err
		}
		e.Day, _ = time.Parse(dayFormat, day)
		e.Attendees = splitList(attendees)
		events = append(events, e)
	}
	return events, rows.Err()
}

// CreateEvent adds a calendar event. Blank titles are rejected.
func (s *Store) CreateEvent(e Event) (*Event, error) {
	if e.Title == "" {
		return nil, ErrBlankTitle
	}
	res, err := s.db.Exec(
		`INSERT INTO events (title, day, time_range, attendees, description) VALUES (?, ?, ?, ?, ?)`,
		e.Title, e.Day.Format(dayFormat), e.TimeRange, joinList(e.Attendees), e.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	e.ID, _ = res.LastInsertId()
	return &e, nil
}
