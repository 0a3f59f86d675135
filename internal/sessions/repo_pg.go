package sessions

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new session.
func (r *PGRepo) Create(ctx context.Context, session Session) error {
	const query = `INSERT INTO sessions (id, email, created_at) VALUES ($1, $2, $3)`
	_, err := r.DB.ExecContext(ctx, query, session.ID, session.Email, session.CreatedAt)
	return err
}

// GetByID returns a session by ID.
func (r *PGRepo) GetByID(ctx context.Context, sessionID string) (Session, error) {
	const query = `SELECT id, email, created_at FROM sessions WHERE id = $1 LIMIT 1`
	var s Session
	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(&s.ID, &s.Email, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	return s, nil
}

var _ Repo = (*PGRepo)(nil)
