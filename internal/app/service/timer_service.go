package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tasktrio/internal/core/domain"
	"tasktrio/internal/core/ports"
)

type TimerOption func(*TimerService)

func WithTimerClock(now func() time.Time) TimerOption {
	return func(s *TimerService) { s.now = now }
}

// TimerService holds the single process-wide timer. Start and Stop run under
// one mutex, so replacing a running timer is never observable half done.
type TimerService struct {
	mu      sync.Mutex
	state   domain.TimerInfo
	store   ports.TreeStore
	journal ports.SessionJournal
	now     func() time.Time
	newID   func() string
}

var _ ports.TimerService = (*TimerService)(nil)

func NewTimerService(store ports.TreeStore, journal ports.SessionJournal, opts ...TimerOption) *TimerService {
	s := &TimerService{
		state:   domain.IdleTimer(),
		store:   store,
		journal: journal,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins timing actionItemID. A timer already running on any item is
// completed first and its minutes are added to that item.
func (s *TimerService) Start(ctx context.Context, projectID, actionItemID string) (domain.TimerInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.FindActionItem(ctx, projectID, actionItemID); err != nil {
		return domain.TimerInfo{}, err
	}

	now := s.now()
	if s.state.IsRunning {
		if _, err := s.complete(ctx, now); err != nil {
			return domain.TimerInfo{}, err
		}
	}

	s.state = domain.RunningTimer(projectID, actionItemID, now)
	zap.L().Info("timer started",
		zap.String("project_id", projectID),
		zap.String("action_item_id", actionItemID),
	)
	return s.state, nil
}

func (s *TimerService) Stop(ctx context.Context) (*domain.TimerSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsRunning {
		return nil, nil
	}

	session, err := s.complete(ctx, s.now())
	if err != nil {
		return nil, err
	}
	s.state = domain.IdleTimer()
	return &session, nil
}

func (s *TimerService) Current(_ context.Context) domain.TimerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *TimerService) IsActive(_ context.Context, actionItemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsRunning && s.state.ActionItemID == actionItemID
}

func (s *TimerService) ListSessions(ctx context.Context) ([]domain.TimerSession, error) {
	return s.journal.ListSessions(ctx)
}

// complete closes the running session: whole elapsed minutes go to the
// tracked item and the session is journaled. The caller resets state.
func (s *TimerService) complete(ctx context.Context, now time.Time) (domain.TimerSession, error) {
	running := s.state
	session := domain.TimerSession{
		ID:           s.newID(),
		ProjectID:    running.ProjectID,
		ActionItemID: running.ActionItemID,
		StartedAt:    running.StartTime,
		StoppedAt:    now,
		Minutes:      running.ElapsedMinutes(now),
		Applied:      true,
	}

	_, err := s.store.AddTimeSpent(ctx, running.ProjectID, running.ActionItemID, session.Minutes)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		session.Applied = false
		zap.L().Warn("timer target no longer exists, elapsed time discarded",
			zap.String("project_id", running.ProjectID),
			zap.String("action_item_id", running.ActionItemID),
			zap.Int("minutes", session.Minutes),
		)
	case errors.Is(err, domain.ErrInvalidTimeSpent):
		session.Applied = false
		zap.L().Warn("elapsed time would exceed the time spent limit, discarded",
			zap.String("project_id", running.ProjectID),
			zap.String("action_item_id", running.ActionItemID),
			zap.Int("minutes", session.Minutes),
		)
	case err != nil:
		return domain.TimerSession{}, err
	}

	if err := s.journal.RecordSession(ctx, session); err != nil {
		zap.L().Error("failed to journal timer session", zap.String("session_id", session.ID), zap.Error(err))
	}

	zap.L().Info("timer stopped",
		zap.String("project_id", running.ProjectID),
		zap.String("action_item_id", running.ActionItemID),
		zap.Int("minutes", session.Minutes),
		zap.Bool("applied", session.Applied),
	)
	return session, nil
}
