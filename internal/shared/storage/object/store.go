package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving evidence files.
// Stored paths are "{diagnosticId}/{filename}" scoped to a session namespace.
type ObjectStore interface {
	Save(ctx context.Context, sessionID string, diagnosticID string, fileName string, r io.Reader) (storedPath string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, sessionID string, storedPath string) (io.ReadCloser, error)
}
