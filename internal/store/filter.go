package store

import (
	"strings"
	"time"
)

// DocTab selects the documents view's category filter.
type DocTab string

const (
	TabAll       DocTab = "all"
	TabStarred   DocTab = "starred"
	TabTemplates DocTab = "templates"
	TabRecent    DocTab = "recent"
)

// recentWindow bounds the "recent" tab.
const recentWindow = 7 * 24 * time.Hour

// FilterDocuments returns the documents whose title, content or any tag
// contains term (case-insensitive), further narrowed by the tab. It is a
// pure view over the document list; the result is always re-derived, never
// stored.
func FilterDocuments(docs []Document, term string, tab DocTab, now time.Time) []Document {
	needle := strings.ToLower(term)
	var out []Document
	for _, d := range docs {
		if !matchesTerm(d, needle) {
			continue
		}
		switch tab {
		case TabStarred:
			if !d.Starred {
				continue
			}
		case TabTemplates:
			if d.Type != DocTemplate {
				continue
			}
		case TabRecent:
			if d.UpdatedAt.Before(now.Add(-recentWindow)) {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}

func matchesTerm(d Document, needle string) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(d.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Content), needle) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
