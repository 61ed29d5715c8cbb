package ports

import (
	"context"

	"tasktrio/internal/core/domain"
)

// SessionJournal records completed timer sessions.
type SessionJournal interface {
	RecordSession(ctx context.Context, session domain.TimerSession) error
	ListSessions(ctx context.Context) ([]domain.TimerSession, error)
	Ping(ctx context.Context) error
}

type TimerService interface {
	Start(ctx context.Context, projectID, actionItemID string) (domain.TimerInfo, error)
	// Stop ends the running session, if any, and returns it. A nil session
	// means the timer was idle.
	Stop(ctx context.Context) (*domain.TimerSession, error)
	Current(ctx context.Context) domain.TimerInfo
	IsActive(ctx context.Context, actionItemID string) bool
	ListSessions(ctx context.Context) ([]domain.TimerSession, error)
}
