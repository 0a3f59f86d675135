package reports

import "time"

// Row is one report line for a catalog diagnostic. The builder emits exactly
// one row per catalog item in catalog order, whether or not the session
// answered it.
type Row struct {
	DiagnosticID string `json:"diagnosticId"`
	Title        string `json:"title"`
	Response     string `json:"response"`
	Confidence   string `json:"confidence"`
	Score        int    `json:"score"`
	Evidence     string `json:"evidence"`
}

// Report is a built report together with its generation metadata.
type Report struct {
	SessionID   string    `json:"sessionId"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generatedAt"`
	Rows        []Row     `json:"rows"`
}

// Snapshot is an archived report as persisted by the archive repo.
type Snapshot struct {
	ID        string
	SessionID string
	Rows      []Row
	CreatedAt time.Time
}
