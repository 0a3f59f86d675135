package reports

import "context"

// ArchiveRepo persists generated report snapshots. Archival is best-effort;
// callers log failures and still return the report.
type ArchiveRepo interface {
	Insert(ctx context.Context, snapshot Snapshot) error
	ListBySession(ctx context.Context, sessionID string) ([]Snapshot, error)
}
