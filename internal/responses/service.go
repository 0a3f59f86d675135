package responses

import (
	"context"
	"strings"
	"time"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/scoring"
	"assessment-backend/internal/sessions"
	"assessment-backend/internal/shared/metrics"
	"assessment-backend/internal/shared/telemetry"
)

// Service contains business logic for response records. Local is the
// authoritative store for the session; Remote, when configured, is mirrored
// best-effort on each save and its failures are logged, never surfaced.
type Service struct {
	Local    *MemoryRepo
	Remote   Repo
	Catalog  *catalog.Service
	Sessions *sessions.Service
	Scorer   scoring.Scorer
}

// NewService constructs a Service. remote may be nil.
func NewService(remote Repo, cat *catalog.Service, sess *sessions.Service, scorer scoring.Scorer) *Service {
	if scorer == nil {
		scorer = scoring.KeywordScorer{}
	}
	return &Service{
		Local:    NewMemoryRepo(),
		Remote:   remote,
		Catalog:  cat,
		Sessions: sess,
		Scorer:   scorer,
	}
}

// Record upserts the response for a diagnostic, re-running the scoring rule.
func (s *Service) Record(ctx context.Context, sessionID, diagnosticID, responseText string) (Record, error) {
	if strings.TrimSpace(sessionID) == "" || strings.TrimSpace(diagnosticID) == "" {
		return Record{}, ErrInvalidInput
	}
	if _, err := s.Sessions.Get(ctx, sessionID); err != nil {
		return Record{}, ErrUnknownSession
	}
	if _, ok := s.Catalog.Get(diagnosticID); !ok {
		return Record{}, ErrUnknownDiag
	}

	result := s.Scorer.Score(responseText)
	record := Record{
		SessionID:    sessionID,
		DiagnosticID: diagnosticID,
		ResponseText: responseText,
		Score:        result.Score,
		Confidence:   result.Confidence,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.Local.Upsert(ctx, record); err != nil {
		return Record{}, err
	}
	record, err := s.Local.Get(ctx, sessionID, diagnosticID)
	if err != nil {
		return Record{}, err
	}

	s.mirror(ctx, record)
	metrics.IncResponseRecorded()
	return record, nil
}

// AttachEvidence records an evidence reference against a diagnostic.
func (s *Service) AttachEvidence(ctx context.Context, sessionID, diagnosticID, evidenceRef string) error {
	if err := s.Local.UpdateEvidence(ctx, sessionID, diagnosticID, evidenceRef); err != nil {
		return err
	}
	if s.Remote != nil {
		if err := s.Remote.UpdateEvidence(ctx, sessionID, diagnosticID, evidenceRef); err != nil {
			telemetry.Error("responses.persist_evidence", map[string]any{
				"session_id":    sessionID,
				"diagnostic_id": diagnosticID,
				"error":         err.Error(),
			})
		}
	}
	return nil
}

// Get returns the response for a diagnostic within a session.
func (s *Service) Get(ctx context.Context, sessionID, diagnosticID string) (Record, error) {
	return s.Local.Get(ctx, sessionID, diagnosticID)
}

// List returns every response in a session.
func (s *Service) List(ctx context.Context, sessionID string) ([]Record, error) {
	if _, err := s.Sessions.Get(ctx, sessionID); err != nil {
		return nil, ErrUnknownSession
	}
	return s.Local.ListBySession(ctx, sessionID)
}

func (s *Service) mirror(ctx context.Context, record Record) {
	if s.Remote == nil {
		return
	}
	if err := s.Remote.Upsert(ctx, record); err != nil {
		telemetry.Error("responses.persist", map[string]any{
			"session_id":    record.SessionID,
			"diagnostic_id": record.DiagnosticID,
			"error":         err.Error(),
		})
	}
}
