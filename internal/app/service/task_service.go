package service

import (
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"

	"tasktrio/internal/core/domain"
	"tasktrio/internal/core/ports"
)

// TaskService is the boundary in front of the tree store: it normalizes
// names before they reach the store and logs structural changes.
type TaskService struct {
	store ports.TreeStore
}

func NewTaskService(store ports.TreeStore) *TaskService {
	return &TaskService{store: store}
}

var _ ports.TaskTreeService = (*TaskService)(nil)

func (s *TaskService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.store.ListProjects(ctx)
}

func (s *TaskService) GetProject(ctx context.Context, projectID string) (domain.Project, error) {
	return s.store.GetProject(ctx, projectID)
}

func (s *TaskService) CreateProject(ctx context.Context, name string) (domain.Project, error) {
	project, err := s.store.CreateProject(ctx, strings.TrimSpace(name))
	if err != nil {
		return domain.Project{}, err
	}
	zap.L().Info("project created", zap.String("project_id", project.ID))
	return project, nil
}

func (s *TaskService) RenameProject(ctx context.Context, projectID, name string) (domain.Project, error) {
	return s.store.UpdateProject(ctx, projectID, strings.TrimSpace(name))
}

func (s *TaskService) DeleteProject(ctx context.Context, projectID string) error {
	if err := s.store.DeleteProject(ctx, projectID); err != nil {
		return err
	}
	zap.L().Info("project deleted", zap.String("project_id", projectID))
	return nil
}

func (s *TaskService) DuplicateProject(ctx context.Context, projectID string) (domain.Project, error) {
	project, err := s.store.DuplicateProject(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	zap.L().Info("project duplicated",
		zap.String("source_project_id", projectID),
		zap.String("project_id", project.ID),
	)
	return project, nil
}

func (s *TaskService) AddTask(ctx context.Context, projectID string, in domain.NewItemInput) (domain.Task, error) {
	in.Name = strings.TrimSpace(in.Name)
	return s.store.AddTask(ctx, projectID, in)
}

func (s *TaskService) UpdateTask(ctx context.Context, projectID, taskID string, patch domain.TaskPatch) (domain.Task, error) {
	patch.Name = trimmed(patch.Name)
	return s.store.UpdateTask(ctx, projectID, taskID, patch)
}

func (s *TaskService) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return s.store.DeleteTask(ctx, projectID, taskID)
}

func (s *TaskService) AddSubtask(ctx context.Context, projectID, taskID string, in domain.NewItemInput) (domain.Subtask, error) {
	in.Name = strings.TrimSpace(in.Name)
	return s.store.AddSubtask(ctx, projectID, taskID, in)
}

func (s *TaskService) UpdateSubtask(ctx context.Context, projectID, taskID, subtaskID string, patch domain.SubtaskPatch) (domain.Subtask, error) {
	patch.Name = trimmed(patch.Name)
	return s.store.UpdateSubtask(ctx, projectID, taskID, subtaskID, patch)
}

func (s *TaskService) DeleteSubtask(ctx context.Context, projectID, taskID, subtaskID string) error {
	return s.store.DeleteSubtask(ctx, projectID, taskID, subtaskID)
}

func (s *TaskService) AddActionItem(ctx context.Context, projectID, taskID, subtaskID string, in domain.NewItemInput) (domain.ActionItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	return s.store.AddActionItem(ctx, projectID, taskID, subtaskID, in)
}

func (s *TaskService) UpdateActionItem(ctx context.Context, projectID, taskID, subtaskID, actionItemID string, patch domain.ActionItemPatch) (domain.ActionItem, error) {
	patch.Name = trimmed(patch.Name)
	return s.store.UpdateActionItem(ctx, projectID, taskID, subtaskID, actionItemID, patch)
}

func (s *TaskService) DeleteActionItem(ctx context.Context, projectID, taskID, subtaskID, actionItemID string) error {
	return s.store.DeleteActionItem(ctx, projectID, taskID, subtaskID, actionItemID)
}

func (s *TaskService) ToggleExpanded(ctx context.Context, projectID, taskID string, kind domain.NodeKind, subtaskID string) error {
	return s.store.ToggleExpanded(ctx, projectID, taskID, kind, subtaskID)
}

func (s *TaskService) ListActionItems(ctx context.Context, projectID string) ([]domain.ActionItemRef, error) {
	seq, err := s.store.FlattenActionItems(ctx, projectID)
	if err != nil {
		return nil, err
	}
	items := slices.Collect(seq)
	if items == nil {
		items = []domain.ActionItemRef{}
	}
	return items, nil
}

func (s *TaskService) Locate(ctx context.Context, path domain.NodePath) error {
	return s.store.Locate(ctx, path)
}

func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)
	return &v
}
