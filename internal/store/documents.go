package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors surfaced to the user as non-blocking notifications.
// No state changes when these are returned.
var (
	ErrBlankTitle = errors.New("title is required")
	ErrBlankName  = errors.New("name is required")
)

// CreateDocument appends a new draft note with the given title. Blank or
// whitespace-only titles are rejected with ErrBlankTitle.
func (s *Store) CreateDocument(title, author string) (*Document, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrBlankTitle
	}
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO documents (title, author, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		title, author, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetDocument(id)
}

// CreateResearchReport saves a generated report as a draft research
// document. Blank or whitespace-only titles are rejected with ErrBlankTitle.
func (s *Store) CreateResearchReport(title, content, author string) (*Document, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrBlankTitle
	}
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO documents (title, content, doc_type, status, tags, author, created_at, updated_at)
		 VALUES (?, ?, 'research', 'draft', 'pesquisa', ?, ?, ?)`,
		title, content, author, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert research report: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetDocument(id)
}

// CreateFromTemplate creates a new draft note copying the template's content
// and tags. Returns (nil, nil) when the referenced document is missing or is
// not a template; stale references from the UI are expected, not exceptional.
func (s *Store) CreateFromTemplate(templateID int64, author string) (*Document, error) {
	tpl, err := s.GetDocument(templateID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if tpl.Type != DocTemplate {
		return nil, nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(
		`INSERT INTO documents (title, content, tags, author, folder_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"Novo documento baseado em: "+tpl.Title, tpl.Content, joinList(tpl.Tags),
		author, tpl.FolderID, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert from template: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.GetDocument(id)
}

func (s *Store) GetDocument(id int64) (*Document, error) {
	d := &Document{}
	var docType, status, tags, createdAt, updatedAt string
	var starred int
	var folderID sql.NullInt64
	err := s.db.QueryRow(
		`SELECT id, title, content, doc_type, status, tags, starred, author, folder_id, created_at, updated_at
		 FROM documents WHERE id = ?`, id,
	).Scan(&d.ID, &d.Title, &d.Content, &docType, &status, &tags, &starred,
		&d.Author, &folderID, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get document %d: %w", id, err)
	}
	d.Type = DocumentType(docType)
	d.Status = DocumentStatus(status)
	d.Tags = splitList(tags)
	d.Starred = starred == 1
	if folderID.Valid {
		d.FolderID = &folderID.Int64
	}
	d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	d.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return d, nil
}

func (s *Store) ListDocuments() ([]Document, error) {
	rows, err := s.db.Query(
		`SELECT id, title, content, doc_type, status, tags, starred, author, folder_id, created_at, updated_at
		 FROM documents ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		var docType, status, tags, createdAt, updatedAt string
		var starred int
		var folderID sql.NullInt64
		if err := rows.Scan(&d.ID, &d.Title, &d.Content, &docType, &status, &tags,
			&starred, &d.Author, &folderID, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		d.Type = DocumentType(docType)
		d.Status = DocumentStatus(status)
		d.Tags = splitList(tags)
		d.Starred = starred == 1
		if folderID.Valid {
			d.FolderID = &folderID.Int64
		}
		d.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		d.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// SaveDocument overwrites the document's content and stamps UpdatedAt.
// Content is not validated.
func (s *Store) SaveDocument(id int64, content string) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`UPDATE documents SET content = ?, updated_at = ? WHERE id = ?`,
		content, now, id,
	)
	return err
}

// ToggleStar flips the starred flag; unknown IDs are ignored.
func (s *Store) ToggleStar(id int64) error {
	_, err := s.db.Exec(`UPDATE documents SET starred = 1 - starred WHERE id = ?`, id)
	return err
}

// DeleteDocument removes the document; unknown IDs are ignored. Clearing any
// selection pointing at the document is the caller's responsibility.
func (s *Store) DeleteDocument(id int64) error {
	_, err := s.db.Exec(`DELETE FROM documents WHERE id = ?`, id)
	return err
}

// CreateFolder appends a new top-level folder. Blank names are rejected.
func (s *Store) CreateFolder(name string) (*Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrBlankName
	}
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := s.db.Exec(`INSERT INTO folders (name, created_at) VALUES (?, ?)`, name, now)
	if err != nil {
		return nil, fmt.Errorf("insert folder: %w", err)
	}
	id, _ := res.LastInsertId()

	f := &Folder{ID: id, Name: name}
	f.CreatedAt, _ = time.Parse(time.RFC3339, now)
	return f, nil
}

func (s *Store) ListFolders() ([]Folder, error) {
	rows, err := s.db.Query(`SELECT id, name, parent_id, created_at FROM folders ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []Folder
	for rows.Next() {
		var f Folder
		var parent sql.NullInt64
		var createdAt string
		if err := rows.Scan(&f.ID, &f.Name, &parent, &createdAt); err != nil {
			return nil, err
		}
		if parent.Valid {
			f.ParentID = &parent.Int64
		}
		f.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		folders = append(folders, f)
	}
	return folders, rows.Err()
}
