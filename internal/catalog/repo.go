package catalog

import "context"

// Repo defines read operations against the catalog source.
type Repo interface {
	ListDiagnostics(ctx context.Context) ([]DiagnosticItem, error)
	ListResponseKeys(ctx context.Context) ([]ResponseKey, error)
	ListTags(ctx context.Context) ([]string, error)
}
