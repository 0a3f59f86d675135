package responses

import (
	"time"

	"assessment-backend/internal/scoring"
)

// Record is the latest response for one diagnostic within a session. Writes
// are upserts with last-write-wins semantics; records are never deleted during
// a session. Score and Confidence are a denormalized cache of the scoring rule
// at write time, kept for display; report generation recomputes them.
type Record struct {
	SessionID    string
	DiagnosticID string
	ResponseText string
	Score        int
	Confidence   scoring.Confidence
	EvidenceRef  string
	UpdatedAt    time.Time
}
