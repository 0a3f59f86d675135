package sessions

import (
	"context"
	"errors"
	"testing"
)

func TestStartAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil)

	session, err := svc.Start(ctx, "  assessor@example.com  ")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if session.ID == "" {
		t.Fatal("expected generated session ID")
	}
	if session.Email != "assessor@example.com" {
		t.Fatalf("expected trimmed email, got %q", session.Email)
	}

	got, err := svc.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != session.ID || got.Email != session.Email {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestGetUnknownSession(t *testing.T) {
	svc := NewService(nil)

	if _, err := svc.Get(context.Background(), "no-such-session"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

type failingRepo struct{}

func (failingRepo) Create(ctx context.Context, session Session) error {
	return errors.New("remote unavailable")
}

func (failingRepo) GetByID(ctx context.Context, sessionID string) (Session, error) {
	return Session{}, errors.New("remote unavailable")
}

func TestStartSurvivesRemoteFailure(t *testing.T) {
	ctx := context.Background()
	svc := NewService(failingRepo{})

	session, err := svc.Start(ctx, "assessor@example.com")
	if err != nil {
		t.Fatalf("expected local create to succeed, got %v", err)
	}
	if _, err := svc.Get(ctx, session.ID); err != nil {
		t.Fatalf("expected session readable locally, got %v", err)
	}
}

func TestStartGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewService(nil)

	first, err := svc.Start(ctx, "")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	second, err := svc.Start(ctx, "")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct IDs, got %q twice", first.ID)
	}
}
