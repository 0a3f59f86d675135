package responses

import (
	"context"
	"database/sql"
	"errors"

	"assessment-backend/internal/scoring"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert inserts or replaces the response for a diagnostic within a session.
func (r *PGRepo) Upsert(ctx context.Context, record Record) error {
	const query = `
INSERT INTO assessment_responses (session_id, diagnostic_id, response_text, ai_score, ai_confidence, evidence_url, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (session_id, diagnostic_id) DO UPDATE
SET response_text = EXCLUDED.response_text,
    ai_score      = EXCLUDED.ai_score,
    ai_confidence = EXCLUDED.ai_confidence,
    evidence_url  = COALESCE(EXCLUDED.evidence_url, assessment_responses.evidence_url),
    updated_at    = EXCLUDED.updated_at`

	var evidence sql.NullString
	if record.EvidenceRef != "" {
		evidence = sql.NullString{String: record.EvidenceRef, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, query,
		record.SessionID,
		record.DiagnosticID,
		record.ResponseText,
		record.Score,
		string(record.Confidence),
		evidence,
		record.UpdatedAt,
	)
	return err
}

// UpdateEvidence records the evidence reference for an existing response.
func (r *PGRepo) UpdateEvidence(ctx context.Context, sessionID, diagnosticID, evidenceRef string) error {
	const query = `
UPDATE assessment_responses
SET evidence_url = $1, updated_at = now()
WHERE session_id = $2 AND diagnostic_id = $3`
	_, err := r.DB.ExecContext(ctx, query, evidenceRef, sessionID, diagnosticID)
	return err
}

// Get returns the response for a diagnostic within a session.
func (r *PGRepo) Get(ctx context.Context, sessionID, diagnosticID string) (Record, error) {
	const query = `
SELECT session_id, diagnostic_id, response_text, ai_score, ai_confidence, evidence_url, updated_at
FROM assessment_responses
WHERE session_id = $1 AND diagnostic_id = $2
LIMIT 1`
	var rec Record
	var confidence string
	var evidence sql.NullString
	err := r.DB.QueryRowContext(ctx, query, sessionID, diagnosticID).Scan(
		&rec.SessionID,
		&rec.DiagnosticID,
		&rec.ResponseText,
		&rec.Score,
		&confidence,
		&evidence,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	rec.Confidence = scoring.Confidence(confidence)
	if evidence.Valid {
		rec.EvidenceRef = evidence.String
	}
	return rec, nil
}

// ListBySession returns every response in a session, ordered by diagnostic ID.
func (r *PGRepo) ListBySession(ctx context.Context, sessionID string) ([]Record, error) {
	const query = `
SELECT session_id, diagnostic_id, response_text, ai_score, ai_confidence, evidence_url, updated_at
FROM assessment_responses
WHERE session_id = $1
ORDER BY diagnostic_id`

	rows, err := r.DB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var confidence string
		var evidence sql.NullString
		if err := rows.Scan(
			&rec.SessionID,
			&rec.DiagnosticID,
			&rec.ResponseText,
			&rec.Score,
			&confidence,
			&evidence,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rec.Confidence = scoring.Confidence(confidence)
		if evidence.Valid {
			rec.EvidenceRef = evidence.String
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
