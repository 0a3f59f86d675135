package sessions

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"assessment-backend/internal/shared/telemetry"
)

// Service owns session state. Local is authoritative for the running process;
// Remote, when configured, is mirrored best-effort and its failures are
// logged, never surfaced.
type Service struct {
	Local  *MemoryRepo
	Remote Repo
}

// NewService constructs a Service. remote may be nil.
func NewService(remote Repo) *Service {
	return &Service{Local: NewMemoryRepo(), Remote: remote}
}

// Start creates a new session.
func (s *Service) Start(ctx context.Context, email string) (Session, error) {
	session := Session{
		ID:        uuid.NewString(),
		Email:     strings.TrimSpace(email),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Local.Create(ctx, session); err != nil {
		return Session{}, err
	}
	if s.Remote != nil {
		if err := s.Remote.Create(ctx, session); err != nil {
			telemetry.Error("sessions.persist", map[string]any{
				"session_id": session.ID,
				"error":      err.Error(),
			})
		}
	}
	return session, nil
}

// Get returns a session by ID.
func (s *Service) Get(ctx context.Context, sessionID string) (Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Session{}, ErrInvalidInput
	}
	return s.Local.GetByID(ctx, sessionID)
}
