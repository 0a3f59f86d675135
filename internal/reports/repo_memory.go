package reports

import (
	"context"
	"sync"
)

// MemoryArchiveRepo is an in-memory implementation of ArchiveRepo.
type MemoryArchiveRepo struct {
	mu   sync.RWMutex
	data map[string][]Snapshot // sessionID -> snapshots, newest first
}

// NewMemoryArchiveRepo constructs a MemoryArchiveRepo.
func NewMemoryArchiveRepo() *MemoryArchiveRepo {
	return &MemoryArchiveRepo{data: make(map[string][]Snapshot)}
}

// Insert stores a report snapshot.
func (r *MemoryArchiveRepo) Insert(ctx context.Context, snapshot Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[snapshot.SessionID] = append([]Snapshot{snapshot}, r.data[snapshot.SessionID]...)
	return nil
}

// ListBySession returns every archived snapshot for a session, newest first.
func (r *MemoryArchiveRepo) ListBySession(ctx context.Context, sessionID string) ([]Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Snapshot, len(r.data[sessionID]))
	copy(out, r.data[sessionID])
	return out, nil
}

var _ ArchiveRepo = (*MemoryArchiveRepo)(nil)
