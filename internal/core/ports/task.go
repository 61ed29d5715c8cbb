package ports

import (
	"context"
	"iter"

	"tasktrio/internal/core/domain"
)

// TreeStore owns every project tree. Implementations serialize all
// mutations and return copies that do not alias stored state.
type TreeStore interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, projectID string) (domain.Project, error)
	CreateProject(ctx context.Context, name string) (domain.Project, error)
	UpdateProject(ctx context.Context, projectID, name string) (domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	DuplicateProject(ctx context.Context, projectID string) (domain.Project, error)

	AddTask(ctx context.Context, projectID string, in domain.NewItemInput) (domain.Task, error)
	UpdateTask(ctx context.Context, projectID, taskID string, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, projectID, taskID string) error

	AddSubtask(ctx context.Context, projectID, taskID string, in domain.NewItemInput) (domain.Subtask, error)
	UpdateSubtask(ctx context.Context, projectID, taskID, subtaskID string, patch domain.SubtaskPatch) (domain.Subtask, error)
	DeleteSubtask(ctx context.Context, projectID, taskID, subtaskID string) error

	AddActionItem(ctx context.Context, projectID, taskID, subtaskID string, in domain.NewItemInput) (domain.ActionItem, error)
	UpdateActionItem(ctx context.Context, projectID, taskID, subtaskID, actionItemID string, patch domain.ActionItemPatch) (domain.ActionItem, error)
	DeleteActionItem(ctx context.Context, projectID, taskID, subtaskID, actionItemID string) error

	ToggleExpanded(ctx context.Context, projectID, taskID string, kind domain.NodeKind, subtaskID string) error
	FlattenActionItems(ctx context.Context, projectID string) (iter.Seq[domain.ActionItemRef], error)

	// Locate returns the not-found error of the first id in path that does not resolve.
	Locate(ctx context.Context, path domain.NodePath) error
	// FindActionItem resolves an action item anywhere under the project.
	FindActionItem(ctx context.Context, projectID, actionItemID string) (domain.ActionItem, error)
	// AddTimeSpent adds minutes to an action item located only by project and item id.
	AddTimeSpent(ctx context.Context, projectID, actionItemID string, minutes int) (domain.ActionItem, error)
}

type TaskTreeService interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, projectID string) (domain.Project, error)
	CreateProject(ctx context.Context, name string) (domain.Project, error)
	RenameProject(ctx context.Context, projectID, name string) (domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	DuplicateProject(ctx context.Context, projectID string) (domain.Project, error)

	AddTask(ctx context.Context, projectID string, in domain.NewItemInput) (domain.Task, error)
	UpdateTask(ctx context.Context, projectID, taskID string, patch domain.TaskPatch) (domain.Task, error)
	DeleteTask(ctx context.Context, projectID, taskID string) error

	AddSubtask(ctx context.Context, projectID, taskID string, in domain.NewItemInput) (domain.Subtask, error)
	UpdateSubtask(ctx context.Context, projectID, taskID, subtaskID string, patch domain.SubtaskPatch) (domain.Subtask, error)
	DeleteSubtask(ctx context.Context, projectID, taskID, subtaskID string) error

	AddActionItem(ctx context.Context, projectID, taskID, subtaskID string, in domain.NewItemInput) (domain.ActionItem, error)
	UpdateActionItem(ctx context.Context, projectID, taskID, subtaskID, actionItemID string, patch domain.ActionItemPatch) (domain.ActionItem, error)
	DeleteActionItem(ctx context.Context, projectID, taskID, subtaskID, actionItemID string) error

	ToggleExpanded(ctx context.Context, projectID, taskID string, kind domain.NodeKind, subtaskID string) error
	ListActionItems(ctx context.Context, projectID string) ([]domain.ActionItemRef, error)
	Locate(ctx context.Context, path domain.NodePath) error
}
