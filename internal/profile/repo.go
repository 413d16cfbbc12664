package profile

import (
	"context"
	"errors"
)

// ErrNotFound indicates no profile exists for the user.
var ErrNotFound = errors.New("profile not found")

// Repo defines persistence operations for profiles.
type Repo interface {
	GetByUser(ctx context.Context, userID string) (Record, error)
	Upsert(ctx context.Context, rec Record) error
}
