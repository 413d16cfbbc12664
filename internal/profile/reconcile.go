package profile

import (
	"strings"
	"time"
)

// Reconcile merges newly extracted fields over an existing profile record.
// Per field, a non-empty extracted value wins; otherwise the stored value is
// kept; otherwise the field is empty. The identity and session markers always
// come from the authenticated caller; extracted content is untrusted free
// text and must never set ownership fields.
func Reconcile(extracted *Extracted, existing *Record, userID, sessionID string) Record {
	if extracted == nil {
		extracted = &Extracted{}
	}

	var prev Record
	if existing != nil {
		prev = *existing
	}

	rec := Record{
		UserID:     userID,
		SessionID:  sessionID,
		Name:       pick(extracted.Name, prev.Name),
		Email:      pick(extracted.Email, prev.Email),
		Phone:      pick(extracted.Phone, prev.Phone),
		Position:   pick(extracted.Position, prev.Position),
		Skills:     pick(extracted.Skills, prev.Skills),
		Experience: pick(extracted.Experience, prev.Experience),
		UpdatedAt:  time.Now().UTC(),
	}

	if extracted.Languages != nil {
		rec.Languages = MarshalLanguages(extracted.Languages)
	} else {
		rec.Languages = prev.Languages
	}

	return rec
}

func pick(next, prev string) string {
	if strings.TrimSpace(next) != "" {
		return next
	}
	return prev
}
