package store

import (
	"fmt"
	"time"

	"zenith/internal/timeline"
)

// ListProjects loads all timeline projects with their tasks in schedule
// order.
func (s *Store) ListProjects() ([]timeline.Project, error) {
	rows, err := s.db.Query(`SELECT id, name FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []timeline.Project
	index := map[int64]int{}
	for rows.Next() {
		var p timeline.Project
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	taskRows, err := s.db.Query(
		`SELECT id, project_id, title, start_date, end_date, progress, assignees, color
		 FROM timeline_tasks ORDER BY project_id, start_date, id`)
	if err != nil {
		return nil, fmt.Errorf("list timeline tasks: %w", err)
	}
	defer taskRows.Close()

	for taskRows.Next() {
		var t timeline.Task
		var projectID int64
		var start, end, assignees string
		if err := taskRows.Scan(&t.ID, &projectID, &t.Title, &start, &end,
			&t.Progress, &assignees, &t.Color); err != nil {
			return nil, err
		}
		t.StartDate, _ = time.Parse(dayFormat, start)
		t.EndDate, _ = time.Parse(dayFormat, end)
		t.Assignees = splitList(assignees)
		if i, ok := index[projectID]; ok {
			projects[i].Tasks = append(projects[i].Tasks, t)
		}
	}
	return projects, taskRows.Err()
}

// CreateTask schedules a new task under the project.
func (s *Store) CreateTask(projectID int64, t timeline.Task) (*timeline.Task, error) {
	res, err := s.db.Exec(
		`INSERT INTO timeline_tasks (project_id, title, start_date, end_date, progress, assignees, color)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		projectID, t.Title, t.StartDate.Format(dayFormat), t.EndDate.Format(dayFormat),
		t.Progress, joinList(t.Assignees), t.Color,
	)
	if err != nil {
		return nil, fmt.Errorf("insert timeline task: %w", err)
	}
	t.ID, _ = res.LastInsertId()
	return &t, nil
}
