package tests

import (
	"context"

	"tasktrio/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)

	var projects []domain.Project
	if value := args.Get(0); value != nil {
		projects = value.([]domain.Project)
	}
	return projects, args.Error(1)
}

func (m *taskServiceMock) GetProject(ctx context.Context, projectID string) (domain.Project, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *taskServiceMock) CreateProject(ctx context.Context, name string) (domain.Project, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *taskServiceMock) RenameProject(ctx context.Context, projectID, name string) (domain.Project, error) {
	args := m.Called(ctx, projectID, name)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *taskServiceMock) DeleteProject(ctx context.Context, projectID string) error {
	return m.Called(ctx, projectID).Error(0)
}

func (m *taskServiceMock) DuplicateProject(ctx context.Context, projectID string) (domain.Project, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *taskServiceMock) AddTask(ctx context.Context, projectID string, in domain.NewItemInput) (domain.Task, error) {
	args := m.Called(ctx, projectID, in)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, projectID, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	args := m.Called(ctx, projectID, taskID, patch)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return m.Called(ctx, projectID, taskID).Error(0)
}

func (m *taskServiceMock) AddSubtask(ctx context.Context, projectID, taskID string, in domain.NewItemInput) (domain.Subtask, error) {
	args := m.Called(ctx, projectID, taskID, in)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *taskServiceMock) UpdateSubtask(ctx context.Context, projectID, taskID, subtaskID string, patch domain.SubtaskPatch) (domain.Subtask, error) {
	args := m.Called(ctx, projectID, taskID, subtaskID, patch)
	return args.Get(0).(domain.Subtask), args.Error(1)
}

func (m *taskServiceMock) DeleteSubtask(ctx context.Context, projectID, taskID, subtaskID string) error {
	return m.Called(ctx, projectID, taskID, subtaskID).Error(0)
}

func (m *taskServiceMock) AddActionItem(ctx context.Context, projectID, taskID, subtaskID string, in domain.NewItemInput) (domain.ActionItem, error) {
	args := m.Called(ctx, projectID, taskID, subtaskID, in)
	return args.Get(0).(domain.ActionItem), args.Error(1)
}

func (m *taskServiceMock) UpdateActionItem(ctx context.Context, projectID, taskID, subtaskID, actionItemID string, patch domain.ActionItemPatch) (domain.ActionItem, error) {
	args := m.Called(ctx, projectID, taskID, subtaskID, actionItemID, patch)
	return args.Get(0).(domain.ActionItem), args.Error(1)
}

func (m *taskServiceMock) DeleteActionItem(ctx context.Context, projectID, taskID, subtaskID, actionItemID string) error {
	return m.Called(ctx, projectID, taskID, subtaskID, actionItemID).Error(0)
}

func (m *taskServiceMock) ToggleExpanded(ctx context.Context, projectID, taskID string, kind domain.NodeKind, subtaskID string) error {
	return m.Called(ctx, projectID, taskID, kind, subtaskID).Error(0)
}

func (m *taskServiceMock) Locate(ctx context.Context, path domain.NodePath) error {
	return m.Called(ctx, path).Error(0)
}

func (m *taskServiceMock) ListActionItems(ctx context.Context, projectID string) ([]domain.ActionItemRef, error) {
	args := m.Called(ctx, projectID)

	var refs []domain.ActionItemRef
	if value := args.Get(0); value != nil {
		refs = value.([]domain.ActionItemRef)
	}
	return refs, args.Error(1)
}

type timerServiceMock struct {
	mock.Mock
}

func (m *timerServiceMock) Start(ctx context.Context, projectID, actionItemID string) (domain.TimerInfo, error) {
	args := m.Called(ctx, projectID, actionItemID)
	return args.Get(0).(domain.TimerInfo), args.Error(1)
}

func (m *timerServiceMock) Stop(ctx context.Context) (*domain.TimerSession, error) {
	args := m.Called(ctx)

	var session *domain.TimerSession
	if value := args.Get(0); value != nil {
		session = value.(*domain.TimerSession)
	}
	return session, args.Error(1)
}

func (m *timerServiceMock) Current(ctx context.Context) domain.TimerInfo {
	return m.Called(ctx).Get(0).(domain.TimerInfo)
}

func (m *timerServiceMock) IsActive(ctx context.Context, actionItemID string) bool {
	return m.Called(ctx, actionItemID).Bool(0)
}

func (m *timerServiceMock) ListSessions(ctx context.Context) ([]domain.TimerSession, error) {
	args := m.Called(ctx)

	var sessions []domain.TimerSession
	if value := args.Get(0); value != nil {
		sessions = value.([]domain.TimerSession)
	}
	return sessions, args.Error(1)
}

type pingerMock struct {
	mock.Mock
}

func (m *pingerMock) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
