package documents

import "time"

const (
	KindCV          = "cv"
	KindCoverLetter = "cover-letter"
)

// Document is a parsed upload. Content holds the extracted plain text;
// the staged binary is gone by the time a Document exists.
type Document struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	FileName  string    `json:"fileName"`
	Kind      string    `json:"kind"`
	Content   string    `json:"content"`
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidKind reports whether kind names a supported document type.
func ValidKind(kind string) bool {
	return kind == KindCV || kind == KindCoverLetter
}
