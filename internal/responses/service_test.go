package responses

import (
	"context"
	"errors"
	"testing"

	"assessment-backend/internal/catalog"
	"assessment-backend/internal/scoring"
	"assessment-backend/internal/sessions"
)

type failingRepo struct{}

func (failingRepo) Upsert(ctx context.Context, record Record) error {
	return errors.New("database unavailable")
}

func (failingRepo) UpdateEvidence(ctx context.Context, sessionID, diagnosticID, evidenceRef string) error {
	return errors.New("database unavailable")
}

func (failingRepo) Get(ctx context.Context, sessionID, diagnosticID string) (Record, error) {
	return Record{}, errors.New("database unavailable")
}

func (failingRepo) ListBySession(ctx context.Context, sessionID string) ([]Record, error) {
	return nil, errors.New("database unavailable")
}

func newTestService(t *testing.T, remote Repo) (*Service, string) {
	t.Helper()
	cat := catalog.NewService(catalog.NewMemoryRepo(), 10)
	cat.Load(context.Background())

	sess := sessions.NewService(nil)
	session, err := sess.Start(context.Background(), "")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	return NewService(remote, cat, sess, scoring.KeywordScorer{}), session.ID
}

func TestRecordComputesScore(t *testing.T) {
	svc, sessionID := newTestService(t, nil)

	record, err := svc.Record(context.Background(), sessionID, "CRI-01", "We keep a full inventory")
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if record.Score != 3 || record.Confidence != scoring.ConfidenceHigh {
		t.Fatalf("unexpected score: %+v", record)
	}
}

func TestRecordUpsertsLatestWriteWins(t *testing.T) {
	svc, sessionID := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.Record(ctx, sessionID, "CRI-01", "Yes"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if _, err := svc.Record(ctx, sessionID, "CRI-01", "We keep a full inventory"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	records, err := svc.List(ctx, sessionID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected single record after upsert, got %d", len(records))
	}
	if records[0].ResponseText != "We keep a full inventory" {
		t.Fatalf("expected latest write, got %q", records[0].ResponseText)
	}
}

func TestRecordSurvivesRemoteFailure(t *testing.T) {
	svc, sessionID := newTestService(t, failingRepo{})
	ctx := context.Background()

	record, err := svc.Record(ctx, sessionID, "CRI-01", "Partial")
	if err != nil {
		t.Fatalf("Record with failing remote: %v", err)
	}
	if record.Score != 1 {
		t.Fatalf("unexpected score %d", record.Score)
	}

	// Local state is authoritative despite the remote failure.
	got, err := svc.Get(ctx, sessionID, "CRI-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ResponseText != "Partial" {
		t.Fatalf("expected local record, got %q", got.ResponseText)
	}
}

func TestAttachEvidencePreservedAcrossUpsert(t *testing.T) {
	svc, sessionID := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.Record(ctx, sessionID, "CRI-01", "Yes"); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := svc.AttachEvidence(ctx, sessionID, "CRI-01", "CRI-01/audit.pdf"); err != nil {
		t.Fatalf("AttachEvidence: %v", err)
	}
	if _, err := svc.Record(ctx, sessionID, "CRI-01", "Updated rationale"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, err := svc.Get(ctx, sessionID, "CRI-01")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.EvidenceRef != "CRI-01/audit.pdf" {
		t.Fatalf("evidence ref lost on upsert: %q", got.EvidenceRef)
	}
}

func TestRecordRejectsUnknownIDs(t *testing.T) {
	svc, sessionID := newTestService(t, nil)
	ctx := context.Background()

	if _, err := svc.Record(ctx, sessionID, "CRI-99", "Yes"); !errors.Is(err, ErrUnknownDiag) {
		t.Fatalf("expected ErrUnknownDiag, got %v", err)
	}
	if _, err := svc.Record(ctx, "missing-session", "CRI-01", "Yes"); !errors.Is(err, ErrUnknownSession) {
		t.Fatalf("expected ErrUnknownSession, got %v", err)
	}
}
