package profile

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or fully replaces the profile keyed on user id.
func (r *PGRepo) Upsert(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO profiles (user_id, session_id, name, email, phone, position, skills, experience, languages, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
ON CONFLICT (user_id) DO UPDATE SET
  session_id = EXCLUDED.session_id,
  name = EXCLUDED.name,
  email = EXCLUDED.email,
  phone = EXCLUDED.phone,
  position = EXCLUDED.position,
  skills = EXCLUDED.skills,
  experience = EXCLUDED.experience,
  languages = EXCLUDED.languages,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		rec.UserID,
		rec.SessionID,
		rec.Name,
		rec.Email,
		rec.Phone,
		rec.Position,
		rec.Skills,
		rec.Experience,
		rec.Languages,
	)
	return err
}

// GetByUser fetches the profile for a user.
func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Record, error) {
	const query = `
SELECT user_id, session_id, name, email, phone, position, skills, experience, languages, updated_at
FROM profiles
WHERE user_id = $1
LIMIT 1`
	var rec Record
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&rec.UserID,
		&rec.SessionID,
		&rec.Name,
		&rec.Email,
		&rec.Phone,
		&rec.Position,
		&rec.Skills,
		&rec.Experience,
		&rec.Languages,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

var _ Repo = (*PGRepo)(nil)
