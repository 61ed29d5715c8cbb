package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tasktrio/internal/adapter/memory"
	"tasktrio/internal/core/domain"
)

type journalMock struct {
	mock.Mock
}

func (m *journalMock) RecordSession(ctx context.Context, session domain.TimerSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *journalMock) ListSessions(ctx context.Context) ([]domain.TimerSession, error) {
	args := m.Called(ctx)

	var sessions []domain.TimerSession
	if value := args.Get(0); value != nil {
		sessions = value.([]domain.TimerSession)
	}
	return sessions, args.Error(1)
}

func (m *journalMock) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type timerFixture struct {
	store   *memory.TreeStore
	journal *journalMock
	clock   *fakeClock
	timer   *TimerService
	project domain.Project
	taskID  string
	subID   string
	itemA   domain.ActionItem
	itemB   domain.ActionItem
}

func newTimerFixture(t *testing.T) *timerFixture {
	t.Helper()
	ctx := context.Background()

	clock := &fakeClock{now: time.Date(2026, 2, 13, 9, 0, 0, 0, time.UTC)}
	store := memory.NewTreeStore(memory.WithClock(clock.Now))
	journal := new(journalMock)

	project, err := store.CreateProject(ctx, "Launch")
	require.NoError(t, err)
	task, err := store.AddTask(ctx, project.ID, domain.NewItemInput{Name: "Design"})
	require.NoError(t, err)
	subtask, err := store.AddSubtask(ctx, project.ID, task.ID, domain.NewItemInput{Name: "Wireframes"})
	require.NoError(t, err)
	itemA, err := store.AddActionItem(ctx, project.ID, task.ID, subtask.ID, domain.NewItemInput{Name: "Homepage"})
	require.NoError(t, err)
	itemB, err := store.AddActionItem(ctx, project.ID, task.ID, subtask.ID, domain.NewItemInput{Name: "Pricing"})
	require.NoError(t, err)

	return &timerFixture{
		store:   store,
		journal: journal,
		clock:   clock,
		timer:   NewTimerService(store, journal, WithTimerClock(clock.Now)),
		project: project,
		taskID:  task.ID,
		subID:   subtask.ID,
		itemA:   itemA,
		itemB:   itemB,
	}
}

func (f *timerFixture) timeSpent(t *testing.T, itemID string) int {
	t.Helper()
	item, err := f.store.FindActionItem(context.Background(), f.project.ID, itemID)
	require.NoError(t, err)
	return item.TimeSpent
}

func TestTimerService_StartsIdle(t *testing.T) {
	f := newTimerFixture(t)

	require.Equal(t, domain.IdleTimer(), f.timer.Current(context.Background()))
	require.False(t, f.timer.IsActive(context.Background(), f.itemA.ID))
}

func TestTimerService_StartStopAccumulatesWholeMinutes(t *testing.T) {
	f := newTimerFixture(t)
	ctx := context.Background()
	f.journal.On("RecordSession", mock.Anything, mock.Anything).Return(nil).Once()

	info, err := f.timer.Start(ctx, f.project.ID, f.itemA.ID)
	require.NoError(t, err)
	require.True(t, info.IsRunning)
	require.Equal(t, f.clock.Now(), info.StartTime)
	require.True(t, f.timer.IsActive(ctx, f.itemA.ID))

	f.clock.Advance(25*time.Minute + 59*time.Second)

	session, err := f.timer.Stop(ctx)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, 25, session.Minutes)
	require.True(t, session.Applied)
	require.Equal(t, f.itemA.ID, session.ActionItemID)
	require.NotEmpty(t, session.ID)

	require.Equal(t, 25, f.timeSpent(t, f.itemA.ID))
	require.Equal(t, domain.IdleTimer(), f.timer.Current(ctx))
	require.False(t, f.timer.IsActive(ctx, f.itemA.ID))
	f.journal.AssertExpectations(t)
}

func TestTimerService_StartReplacesRunningTimer(t *testing.T) {
	f := newTimerFixture(t)
	ctx := context.Background()
	f.journal.On("RecordSession", mock.Anything, mock.MatchedBy(func(s domain.TimerSession) bool {
		return s.ActionItemID == f.itemA.ID && s.Minutes == 10 && s.Applied
	})).Return(nil).Once()

	_, err := f.timer.Start(ctx, f.project.ID, f.itemA.ID)
	require.NoError(t, err)
	f.clock.Advance(10 * time.Minute)

	info, err := f.timer.Start(ctx, f.project.ID, f.itemB.ID)
	require.NoError(t, err)
	require.Equal(t, f.itemB.ID, info.ActionItemID)

	// At most one item is ever active.
	require.False(t, f.timer.IsActive(ctx, f.itemA.ID))
	require.True(t, f.timer.IsActive(ctx, f.itemB.ID))
	require.Equal(t, 10, f.timeSpent(t, f.itemA.ID))
	require.Zero(t, f.timeSpent(t, f.itemB.ID))
	f.journal.AssertExpectations(t)
}

func TestTimerService_StartUnknownItemKeepsState(t *testing.T) {
	f := newTimerFixture(t)
	ctx := context.Background()

	_, err := f.timer.Start(ctx, f.project.ID, f.itemA.ID)
	require.NoError(t, err)

	_, err = f.timer.Start(ctx, f.project.ID, "missing")
	require.ErrorIs(t, err, domain.ErrActionItemNotFound)
	_, err = f.timer.Start(ctx, "missing", f.itemA.ID)
	require.ErrorIs(t, err, domain.ErrProjectNotFound)

	require.True(t, f.timer.IsActive(ctx, f.itemA.ID))
	f.journal.AssertNotCalled(t, "RecordSession", mock.Anything, mock.Anything)
}

func TestTimerService_StopWhileIdleIsNoop(t *testing.T) {
	f := newTimerFixture(t)

	session, err := f.timer.Stop(context.Background())
	require.NoError(t, err)
	require.Nil(t, session)
	require.Equal(t, domain.IdleTimer(), f.timer.Current(context.Background()))
	f.journal.AssertNotCalled(t, "RecordSession", mock.Anything, mock.Anything)
}

func TestTimerService_StopAfterItemDeletedIsNotApplied(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	f := newTimerFixture(t)
	ctx := context.Background()
	f.journal.On("RecordSession", mock.Anything, mock.MatchedBy(func(s domain.TimerSession) bool {
		return !s.Applied && s.Minutes == 5
	})).Return(nil).Once()

	_, err := f.timer.Start(ctx, f.project.ID, f.itemA.ID)
	require.NoError(t, err)
	require.NoError(t, f.store.DeleteActionItem(ctx, f.project.ID, f.taskID, f.subID, f.itemA.ID))
	f.clock.Advance(5 * time.Minute)

	session, err := f.timer.Stop(ctx)
	require.NoError(t, err)
	require.False(t, session.Applied)
	require.Equal(t, domain.IdleTimer(), f.timer.Current(ctx))
	require.Equal(t, 1, logs.FilterMessage("timer target no longer exists, elapsed time discarded").Len())
	f.journal.AssertExpectations(t)
}

func TestTimerService_StopAtTimeSpentLimitIsNotApplied(t *testing.T) {
	f := newTimerFixture(t)
	ctx := context.Background()
	f.journal.On("RecordSession", mock.Anything, mock.MatchedBy(func(s domain.TimerSession) bool {
		return !s.Applied && s.Minutes == 5
	})).Return(nil).Once()

	limit := domain.MaxTrackedMinutes
	_, err := f.store.UpdateActionItem(ctx, f.project.ID, f.taskID, f.subID, f.itemA.ID,
		domain.ActionItemPatch{TimeSpent: &limit})
	require.NoError(t, err)

	_, err = f.timer.Start(ctx, f.project.ID, f.itemA.ID)
	require.NoError(t, err)
	f.clock.Advance(5 * time.Minute)

	session, err := f.timer.Stop(ctx)
	require.NoError(t, err)
	require.False(t, session.Applied)
	require.Equal(t, limit, f.timeSpent(t, f.itemA.ID))
	require.Equal(t, domain.IdleTimer(), f.timer.Current(ctx))
	f.journal.AssertExpectations(t)
}

func TestTimerService_JournalFailureDoesNotFailStop(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	f := newTimerFixture(t)
	ctx := context.Background()
	f.journal.On("RecordSession", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	_, err := f.timer.Start(ctx, f.project.ID, f.itemA.ID)
	require.NoError(t, err)
	f.clock.Advance(2 * time.Minute)

	session, err := f.timer.Stop(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, session.Minutes)
	require.Equal(t, 2, f.timeSpent(t, f.itemA.ID))
	require.Equal(t, 1, logs.FilterMessage("failed to journal timer session").Len())
}

func TestTimerService_ListSessionsDelegatesToJournal(t *testing.T) {
	f := newTimerFixture(t)
	want := []domain.TimerSession{{ID: "s1", Minutes: 3}}
	f.journal.On("ListSessions", mock.Anything).Return(want, nil).Once()

	got, err := f.timer.ListSessions(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
	f.journal.AssertExpectations(t)
}

func TestTimerService_ConcurrentStartsLeaveOneActive(t *testing.T) {
	f := newTimerFixture(t)
	ctx := context.Background()
	f.journal.On("RecordSession", mock.Anything, mock.Anything).Return(nil)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			itemID := f.itemA.ID
			if i%2 == 1 {
				itemID = f.itemB.ID
			}
			if _, err := f.timer.Start(ctx, f.project.ID, itemID); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	active := 0
	for _, id := range []string{f.itemA.ID, f.itemB.ID} {
		if f.timer.IsActive(ctx, id) {
			active++
		}
	}
	require.Equal(t, 1, active)
	f.journal.AssertNumberOfCalls(t, "RecordSession", 19)
}
