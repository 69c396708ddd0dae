package store

import (
	"fmt"
	"strings"
)

func (s *Store) ListTeams() ([]Team, error) {
	rows, err := s.db.Query(`SELECT id, name, description, color FROM teams ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.Color); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *Store) CreateTeam(name, description, color string) (*Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	res, err := s.db.Exec(
		`INSERT INTO teams (name, description, color) VALUES (?, ?, ?)`,
		name, description, color,
	)
	if err != nil {
		return nil, fmt.Errorf("insert team: %w", err)
	}
	id, _ := res.LastInsertId()
	return &Team{ID: id, Name: name, Description: description, Color: color}, nil
}

func (s *Store) ListMembers(teamID int64) ([]TeamMember, error) {
	rows, err := s.db.Query(
		`SELECT id, team_id, name, role, avatar, is_admin FROM team_members WHERE team_id = ? ORDER BY name`,
		teamID,
	)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []TeamMember
	for rows.Next() {
		var m TeamMember
		var isAdmin int
		if err := rows.Scan(&m.ID, &m.TeamID, &m.Name, &m.Role, &m.Avatar, &isAdmin); err != nil {
			return nil, err
		}
		m.IsAdmin = isAdmin == 1
		members = append(members, m)
	}
	return members, rows.Err()
}

// AddMember adds a member to a team. The avatar defaults to the member's
// initials when empty.
func (s *Store) AddMember(teamID int64, name, role string, isAdmin bool) (*TeamMember, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	avatar := initials(name)
	admin := 0
	if isAdmin {
		admin = 1
	}
	res, err := s.db.Exec(
		`INSERT INTO team_members (team_id, name, role, avatar, is_admin) VALUES (?, ?, ?, ?, ?)`,
		teamID, name, role, avatar, admin,
	)
	if err != nil {
		return nil, fmt.Errorf("insert member: %w", err)
	}
	id, _ := res.LastInsertId()
	return &TeamMember{ID: id, TeamID: teamID, Name: name, Role: role, Avatar: avatar, IsAdmin: isAdmin}, nil
}

// RemoveMember deletes a member; unknown IDs are ignored.
func (s *Store) RemoveMember(id int64) error {
	_, err := s.db.Exec(`DELETE FROM team_members WHERE id = ?`, id)
	return err
}

func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		out = append(out, []rune(word)[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}
