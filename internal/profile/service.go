package profile

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrInvalidInput marks rejected profile edits.
var ErrInvalidInput = errors.New("invalid input")

// Service contains business logic for direct profile access and edits.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Get returns the caller's profile.
func (s *Service) Get(ctx context.Context, userID string) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, ErrInvalidInput
	}
	return s.Repo.GetByUser(ctx, userID)
}

// Update fully replaces the caller's profile. The identity and session
// markers are taken from the arguments, never from the submitted fields.
func (s *Service) Update(ctx context.Context, userID, sessionID string, rec Record) (Record, error) {
	if strings.TrimSpace(userID) == "" {
		return Record{}, ErrInvalidInput
	}
	rec.UserID = userID
	rec.SessionID = sessionID
	rec.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Upsert(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}
