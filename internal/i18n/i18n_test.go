package i18n

import (
	"fmt"
	"testing"
)

func quietStore(lang Language) (*Store, *[]string) {
	var warnings []string
	s := New(Options{
		Language: lang,
		Warn: func(format string, args ...any) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	})
	return s, &warnings
}

func TestTranslateKnownKey(t *testing.T) {
	s, _ := quietStore(English)
	if got := s.Translate("timeline"); got != "Timeline" {
		t.Fatalf("Translate(timeline) = %q", got)
	}

	s.SetLanguage(Portuguese)
	if got := s.Translate("timeline"); got != "Linha do Tempo" {
		t.Fatalf("Translate(timeline) in pt = %q", got)
	}
}

func TestTranslateMissingKeyFallsBack(t *testing.T) {
	for _, lang := range Languages {
		s, warnings := quietStore(lang)
		if got := s.Translate("no-such-key"); got != "no-such-key" {
			t.Fatalf("lang %s: missing key should fall back to the key, got %q", lang, got)
		}
		if len(*warnings) != 1 {
			t.Fatalf("lang %s: expected one warning, got %d", lang, len(*warnings))
		}
	}
}

func TestTranslateMissingLanguageEntry(t *testing.T) {
	s, warnings := quietStore(Portuguese)
	s.AddTranslations(Table{"enOnly": {English: "Only in English"}})

	if got := s.Translate("enOnly"); got != "enOnly" {
		t.Fatalf("missing language entry should fall back to the key, got %q", got)
	}
	if len(*warnings) != 1 {
		t.Fatalf("expected a warning, got %d", len(*warnings))
	}
}

func TestAddTranslationsIsAdditive(t *testing.T) {
	s, _ := quietStore(English)
	before := s.Translate("board")

	s.AddTranslations(Table{
		"budget": {English: "Budget", Portuguese: "Orçamento"},
	})

	if got := s.Translate("budget"); got != "Budget" {
		t.Fatalf("new key should resolve, got %q", got)
	}
	if got := s.Translate("board"); got != before {
		t.Fatalf("pre-existing key changed: %q -> %q", before, got)
	}
}

func TestAddTranslationsReplacesCollidingKey(t *testing.T) {
	s, _ := quietStore(English)
	s.AddTranslations(Table{"board": {English: "Kanban"}})

	if got := s.Translate("board"); got != "Kanban" {
		t.Fatalf("colliding key should take the new entry, got %q", got)
	}

	// The replacement is per key: the old pt value is gone too.
	s.SetLanguage(Portuguese)
	if got := s.Translate("board"); got != "board" {
		t.Fatalf("replaced entry should not keep stale languages, got %q", got)
	}
}

func TestSetLanguageRejectsUnknownCode(t *testing.T) {
	s, _ := quietStore(English)
	s.SetLanguage(Language("fr"))
	if s.Language() != English {
		t.Fatalf("unsupported code should be ignored, lang = %s", s.Language())
	}
}

func TestSetLanguagePersists(t *testing.T) {
	var persisted []Language
	s := New(Options{
		Language: English,
		Warn:     func(string, ...any) {},
		Persist:  func(l Language) { persisted = append(persisted, l) },
	})

	s.SetLanguage(Portuguese)
	s.SetLanguage(Language("xx")) // rejected, must not persist

	if len(persisted) != 1 || persisted[0] != Portuguese {
		t.Fatalf("persist calls = %v", persisted)
	}
}

func TestNewInvalidLanguageFallsBack(t *testing.T) {
	s := New(Options{Language: Language("zz"), Warn: func(string, ...any) {}})
	if s.Language() != English {
		t.Fatalf("invalid initial language should fall back to en, got %s", s.Language())
	}
}
