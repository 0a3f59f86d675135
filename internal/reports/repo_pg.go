package reports

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGArchiveRepo implements ArchiveRepo using Postgres. Rows are stored as a
// JSONB payload since archived reports are read back whole, never queried by
// column.
type PGArchiveRepo struct {
	DB *sql.DB
}

// Insert stores a report snapshot.
func (r *PGArchiveRepo) Insert(ctx context.Context, snapshot Snapshot) error {
	const query = `
INSERT INTO reports (id, session_id, payload, created_at)
VALUES ($1, $2, $3, $4)`

	payload, err := json.Marshal(snapshot.Rows)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query, snapshot.ID, snapshot.SessionID, payload, snapshot.CreatedAt)
	return err
}

// ListBySession returns every archived snapshot for a session, newest first.
func (r *PGArchiveRepo) ListBySession(ctx context.Context, sessionID string) ([]Snapshot, error) {
	const query = `
SELECT id, session_id, payload, created_at
FROM reports
WHERE session_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var snap Snapshot
		var payload []byte
		if err := rows.Scan(&snap.ID, &snap.SessionID, &payload, &snap.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &snap.Rows); err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

var _ ArchiveRepo = (*PGArchiveRepo)(nil)
