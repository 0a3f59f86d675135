package responses

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo. It is the authoritative
// response store for the running process.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]map[string]Record // sessionID -> diagnosticID -> record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]map[string]Record)}
}

// Upsert inserts or replaces the response for a diagnostic within a session.
func (r *MemoryRepo) Upsert(ctx context.Context, record Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byDiag, ok := r.data[record.SessionID]
	if !ok {
		byDiag = make(map[string]Record)
		r.data[record.SessionID] = byDiag
	}
	if prev, ok := byDiag[record.DiagnosticID]; ok && record.EvidenceRef == "" {
		record.EvidenceRef = prev.EvidenceRef
	}
	byDiag[record.DiagnosticID] = record
	return nil
}

// UpdateEvidence records the evidence reference for an existing response, or
// creates a bare record when no response text has been entered yet.
func (r *MemoryRepo) UpdateEvidence(ctx context.Context, sessionID, diagnosticID, evidenceRef string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	byDiag, ok := r.data[sessionID]
	if !ok {
		byDiag = make(map[string]Record)
		r.data[sessionID] = byDiag
	}
	rec := byDiag[diagnosticID]
	rec.SessionID = sessionID
	rec.DiagnosticID = diagnosticID
	rec.EvidenceRef = evidenceRef
	rec.UpdatedAt = time.Now().UTC()
	byDiag[diagnosticID] = rec
	return nil
}

// Get returns the response for a diagnostic within a session.
func (r *MemoryRepo) Get(ctx context.Context, sessionID, diagnosticID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[sessionID][diagnosticID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// ListBySession returns every response in a session, ordered by diagnostic ID.
func (r *MemoryRepo) ListBySession(ctx context.Context, sessionID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	byDiag := r.data[sessionID]
	out := make([]Record, 0, len(byDiag))
	for _, rec := range byDiag {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DiagnosticID < out[j].DiagnosticID
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
