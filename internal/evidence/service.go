package evidence

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/responses"
	"assessment-backend/internal/sessions"
	"assessment-backend/internal/shared/metrics"
	"assessment-backend/internal/shared/storage/object"
	"assessment-backend/internal/shared/telemetry"
)

// Upload describes a stored evidence file.
type Upload struct {
	StoredPath  string
	SizeBytes   int64
	MimeType    string
	TextSnippet string
}

// Service contains business logic for evidence files. A failed store call
// leaves the prior evidence reference untouched.
type Service struct {
	Store     object.ObjectStore
	Responses *responses.Service
	Sessions  *sessions.Service
	Catalog   *catalog.Service
}

// Upload saves the file under "{diagnosticId}/{filename}" in the session's
// namespace, records the stored path as the diagnostic's evidence reference,
// and extracts a text snippet from PDF evidence for reviewer context.
func (s *Service) Upload(ctx context.Context, sessionID, diagnosticID, fileName string, r io.Reader) (Upload, error) {
	if strings.TrimSpace(fileName) == "" {
		return Upload{}, ErrInvalidInput
	}
	if _, err := s.Sessions.Get(ctx, sessionID); err != nil {
		return Upload{}, ErrUnknownSession
	}
	if _, ok := s.Catalog.Get(diagnosticID); !ok {
		return Upload{}, ErrUnknownDiag
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Upload{}, fmt.Errorf("read upload: %w", err)
	}

	storedPath, size, mimeType, err := s.Store.Save(ctx, sessionID, diagnosticID, fileName, bytes.NewReader(data))
	if err != nil {
		metrics.IncEvidenceFailed()
		telemetry.Error("evidence.upload", map[string]any{
			"session_id":    sessionID,
			"diagnostic_id": diagnosticID,
			"file_name":     fileName,
			"error":         err.Error(),
		})
		return Upload{}, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	if err := s.Responses.AttachEvidence(ctx, sessionID, diagnosticID, storedPath); err != nil {
		return Upload{}, err
	}

	upload := Upload{
		StoredPath: storedPath,
		SizeBytes:  size,
		MimeType:   mimeType,
	}

	if mimeType == "application/pdf" {
		text, err := textFromPDF(data)
		if err != nil {
			// Extraction is best-effort; the upload already succeeded.
			telemetry.Error("evidence.extract", map[string]any{
				"session_id":    sessionID,
				"diagnostic_id": diagnosticID,
				"stored_path":   storedPath,
				"error":         err.Error(),
			})
		} else {
			upload.TextSnippet = snippet(text)
		}
	}

	metrics.IncEvidenceUploaded()
	return upload, nil
}

// Open retrieves a previously stored evidence file.
func (s *Service) Open(ctx context.Context, sessionID, storedPath string) (io.ReadCloser, error) {
	return s.Store.Open(ctx, sessionID, storedPath)
}
