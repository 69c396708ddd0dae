package store

import "time"

// DocumentType classifies a knowledge-base document.
type DocumentType string

const (
	DocNote     DocumentType = "note"
	DocTemplate DocumentType = "template"
	DocResearch DocumentType = "research"
	DocFAQ      DocumentType = "faq"
)

// DocumentStatus is the publication state of a document.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusPublished DocumentStatus = "published"
)

// Document is a knowledge-base entry.
type Document struct {
	ID        int64
	Title     string
	Content   string
	Type      DocumentType
	Status    DocumentStatus
	Tags      []string
	Starred   bool
	Author    string
	FolderID  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Folder groups documents. Nesting is modeled via ParentID but rendered flat.
type Folder struct {
	ID        int64
	Name      string
	ParentID  *int64
	CreatedAt time.Time
}

// Event is a calendar entry.
type Event struct {
	ID          int64
	Title       string
	Day         time.Time
	TimeRange   string
	Attendees   []string
	Description string
}

type Team struct {
	ID          int64
	Name        string
	Description string
	Color       string
}

type TeamMember struct {
	ID      int64
	TeamID  int64
	Name    string
	Role    string
	Avatar  string
	IsAdmin bool
}

// Setting is one key/value pair from the settings table.
type Setting struct {
	Key   string
	Value string
}
