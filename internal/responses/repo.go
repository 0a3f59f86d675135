package responses

import "context"

// Repo defines persistence operations for response records.
type Repo interface {
	Upsert(ctx context.Context, record Record) error
	UpdateEvidence(ctx context.Context, sessionID, diagnosticID, evidenceRef string) error
	Get(ctx context.Context, sessionID, diagnosticID string) (Record, error)
	ListBySession(ctx context.Context, sessionID string) ([]Record, error)
}
