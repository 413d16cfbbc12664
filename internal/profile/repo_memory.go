package profile

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Record // userID -> profile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Record)}
}

// Upsert inserts or replaces the profile for rec.UserID.
func (r *MemoryRepo) Upsert(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[rec.UserID] = rec
	return nil
}

// GetByUser returns the profile for a user.
func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[userID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

var _ Repo = (*MemoryRepo)(nil)
