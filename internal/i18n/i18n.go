// Package i18n holds the active UI language and the key-to-string
// translation table.
package i18n

import "log"

// Language is a supported locale code.
type Language string

const (
	English    Language = "en"
	Portuguese Language = "pt"
)

// Languages is the closed set of supported locale codes.
var Languages = []Language{English, Portuguese}

// Valid reports whether code is a supported language.
func Valid(code Language) bool {
	for _, l := range Languages {
		if l == code {
			return true
		}
	}
	return false
}

// Table maps translation keys to per-language strings.
type Table map[string]map[Language]string

// Store resolves translation keys for the active language. A single Store is
// built at startup and passed to every consumer; there is no package-level
// mutable state.
type Store struct {
	lang    Language
	table   Table
	warn    func(format string, args ...any)
	persist func(Language)
}

// Options configures a Store.
type Options struct {
	// Language is the initial language; invalid or empty values fall back
	// to English.
	Language Language
	// Warn receives missing-key diagnostics. Defaults to log.Printf.
	Warn func(format string, args ...any)
	// Persist, if set, is called with every accepted language change.
	Persist func(Language)
}

// New builds a Store seeded with the base translation table.
func New(opts Options) *Store {
	lang := opts.Language
	if !Valid(lang) {
		lang = English
	}
	warn := opts.Warn
	if warn == nil {
		warn = log.Printf
	}

	table := make(Table, len(baseTable))
	for k, v := range baseTable {
		table[k] = v
	}

	return &Store{lang: lang, table: table, warn: warn, persist: opts.Persist}
}

// Language returns the active language.
func (s *Store) Language() Language { return s.lang }

// SetLanguage switches the active language and persists the choice.
// Codes outside the supported set are ignored.
func (s *Store) SetLanguage(code Language) {
	if !Valid(code) {
		s.warn("i18n: unsupported language %q ignored", code)
		return
	}
	s.lang = code
	if s.persist != nil {
		s.persist(code)
	}
}

// Translate returns the translation for key in the active language. When the
// key or the language entry is missing it returns the key itself so the UI
// stays functional with incomplete tables; the miss is reported through the
// warn channel only.
func (s *Store) Translate(key string) string {
	if entry, ok := s.table[key]; ok {
		if text, ok := entry[s.lang]; ok {
			return text
		}
	}
	s.warn("i18n: missing translation for key %q (lang %s)", key, s.lang)
	return key
}

// AddTranslations merges new entries into the table. A colliding key is
// replaced wholesale by the incoming entry; keys absent from the incoming
// table are untouched.
func (s *Store) AddTranslations(partial Table) {
	for key, entry := range partial {
		merged := make(map[Language]string, len(entry))
		for lang, text := range entry {
			merged[lang] = text
		}
		s.table[key] = merged
	}
}
