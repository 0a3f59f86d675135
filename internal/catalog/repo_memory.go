package catalog

import "context"

// MemoryRepo is an in-memory implementation of Repo, used when no database is
// configured and in tests.
type MemoryRepo struct {
	Items []DiagnosticItem
	Keys  []ResponseKey
	Names []string
}

// NewMemoryRepo constructs a MemoryRepo holding the given items.
func NewMemoryRepo(items ...DiagnosticItem) *MemoryRepo {
	return &MemoryRepo{Items: items}
}

// ListDiagnostics returns the held items.
func (r *MemoryRepo) ListDiagnostics(ctx context.Context) ([]DiagnosticItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]DiagnosticItem, len(r.Items))
	copy(out, r.Items)
	return out, nil
}

// ListResponseKeys returns the held response keys.
func (r *MemoryRepo) ListResponseKeys(ctx context.Context) ([]ResponseKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]ResponseKey, len(r.Keys))
	copy(out, r.Keys)
	return out, nil
}

// ListTags returns the held tag names.
func (r *MemoryRepo) ListTags(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(r.Names))
	copy(out, r.Names)
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
