package reports

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/notify"
	"assessment-backend/internal/responses"
	"assessment-backend/internal/scoring"
	"assessment-backend/internal/sessions"
	"assessment-backend/internal/shared/metrics"
	"assessment-backend/internal/shared/telemetry"
)

// Service builds reports on demand from the catalog and the session's current
// responses. Nothing is cached between calls; every generation re-runs the
// scoring rule so the report always reflects the latest saved state.
type Service struct {
	Catalog   *catalog.Service
	Responses *responses.Service
	Sessions  *sessions.Service
	Scorer    scoring.Scorer
	Archive   ArchiveRepo
	Notifier  notify.Notifier
	Title     string
}

// NewService constructs a Service. archive and notifier may be nil.
func NewService(cat *catalog.Service, resp *responses.Service, sess *sessions.Service, scorer scoring.Scorer, archive ArchiveRepo, notifier notify.Notifier, title string) *Service {
	if scorer == nil {
		scorer = scoring.KeywordScorer{}
	}
	return &Service{
		Catalog:   cat,
		Responses: resp,
		Sessions:  sess,
		Scorer:    scorer,
		Archive:   archive,
		Notifier:  notifier,
		Title:     title,
	}
}

// Generate builds the full report for a session.
func (s *Service) Generate(ctx context.Context, sessionID string) (Report, error) {
	started := time.Now()

	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) || errors.Is(err, sessions.ErrInvalidInput) {
			return Report{}, ErrUnknownSession
		}
		return Report{}, err
	}

	records, err := s.Responses.List(ctx, sessionID)
	if err != nil {
		return Report{}, err
	}

	rows := BuildRows(s.Catalog.Items(), records, s.Scorer)
	report := Report{
		SessionID:   sessionID,
		Title:       s.Title,
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	}

	metrics.IncReportGenerated()
	metrics.ObserveReportDurationMs(float64(time.Since(started).Milliseconds()))

	s.archive(ctx, report)
	s.notifyReady(ctx, session, len(rows))
	return report, nil
}

func (s *Service) archive(ctx context.Context, report Report) {
	if s.Archive == nil {
		return
	}
	snapshot := Snapshot{
		ID:        uuid.NewString(),
		SessionID: report.SessionID,
		Rows:      report.Rows,
		CreatedAt: report.GeneratedAt,
	}
	if err := s.Archive.Insert(ctx, snapshot); err != nil {
		telemetry.Error("reports.archive", map[string]any{
			"session_id": report.SessionID,
			"error":      err.Error(),
		})
	}
}

func (s *Service) notifyReady(ctx context.Context, session sessions.Session, rowCount int) {
	if s.Notifier == nil || session.Email == "" {
		return
	}
	if err := s.Notifier.ReportReady(ctx, session.Email, rowCount); err != nil {
		telemetry.Error("reports.notify", map[string]any{
			"session_id": session.ID,
			"error":      err.Error(),
		})
	}
}
