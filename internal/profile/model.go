package profile

import (
	"encoding/json"
	"strings"
	"time"
)

// LanguageSkill pairs a language with an assessed proficiency.
type LanguageSkill struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// Extracted holds the profile fields derived from CV text by the inference
// capability. Absent scalars are empty strings and an absent language list is
// nil; placeholder values some models emit ("undefined", "null") are
// normalized away before the struct is handed to callers.
type Extracted struct {
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Skills     string          `json:"skills"`
	Experience string          `json:"experience"`
	Languages  []LanguageSkill `json:"languages"`
}

func (e *Extracted) normalize() {
	e.Name = scrubPlaceholder(e.Name)
	e.Email = scrubPlaceholder(e.Email)
	e.Phone = scrubPlaceholder(e.Phone)
	e.Position = scrubPlaceholder(e.Position)
	e.Skills = scrubPlaceholder(e.Skills)
	e.Experience = scrubPlaceholder(e.Experience)

	if e.Languages != nil {
		kept := e.Languages[:0]
		for _, l := range e.Languages {
			l.Language = scrubPlaceholder(l.Language)
			l.Proficiency = scrubPlaceholder(l.Proficiency)
			if l.Language == "" {
				continue
			}
			if l.Proficiency == "" {
				l.Proficiency = "Not specified"
			}
			kept = append(kept, l)
		}
		if len(kept) == 0 {
			e.Languages = nil
		} else {
			e.Languages = kept
		}
	}
}

// HasData reports whether at least one field carries a usable value.
func (e *Extracted) HasData() bool {
	if e == nil {
		return false
	}
	return e.Name != "" || e.Email != "" || e.Phone != "" || e.Position != "" ||
		e.Skills != "" || e.Experience != "" || len(e.Languages) > 0
}

func scrubPlaceholder(s string) string {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "undefined", "null", "n/a", "none":
		return ""
	}
	return trimmed
}

// Record is the persisted profile; at most one exists per user.
type Record struct {
	UserID     string
	SessionID  string
	Name       string
	Email      string
	Phone      string
	Position   string
	Skills     string
	Experience string
	Languages  string
	UpdatedAt  time.Time
}

// MarshalLanguages serializes a language list for storage.
func MarshalLanguages(list []LanguageSkill) string {
	if len(list) == 0 {
		return ""
	}
	data, err := json.Marshal(list)
	if err != nil {
		return ""
	}
	return string(data)
}

// ParseLanguages deserializes a stored language list. Empty or malformed
// input yields nil.
func ParseLanguages(raw string) []LanguageSkill {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var list []LanguageSkill
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	return list
}
