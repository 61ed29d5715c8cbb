package mapper

import (
	"time"

	"tasktrio/internal/adapter/http/dto"
	"tasktrio/internal/core/domain"
)

const dateLayout = "2006-01-02"

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:        project.ID,
		Name:      project.Name,
		Tasks:     make([]dto.TaskItem, 0, len(project.Tasks)),
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
	}
	for _, task := range project.Tasks {
		item.Tasks = append(item.Tasks, ToTaskItem(task))
	}
	return item
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Name:      task.Name,
		Assignee:  copyString(task.Assignee),
		DueDate:   formatDate(task.DueDate),
		Priority:  string(task.Priority),
		Status:    string(task.Status),
		Comments:  task.Comments,
		Expanded:  task.Expanded,
		Subtasks:  make([]dto.SubtaskItem, 0, len(task.Subtasks)),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
	}
	for _, subtask := range task.Subtasks {
		item.Subtasks = append(item.Subtasks, ToSubtaskItem(subtask))
	}
	return item
}

func ToSubtaskItem(subtask domain.Subtask) dto.SubtaskItem {
	item := dto.SubtaskItem{
		ID:          subtask.ID,
		Name:        subtask.Name,
		Assignee:    copyString(subtask.Assignee),
		DueDate:     formatDate(subtask.DueDate),
		Priority:    string(subtask.Priority),
		Status:      string(subtask.Status),
		Comments:    subtask.Comments,
		Expanded:    subtask.Expanded,
		ActionItems: make([]dto.ActionItemItem, 0, len(subtask.ActionItems)),
		CreatedAt:   subtask.CreatedAt.Format(time.RFC3339),
	}
	for _, actionItem := range subtask.ActionItems {
		item.ActionItems = append(item.ActionItems, ToActionItemItem(actionItem))
	}
	return item
}

func ToActionItemItem(actionItem domain.ActionItem) dto.ActionItemItem {
	item := dto.ActionItemItem{
		ID:             actionItem.ID,
		Name:           actionItem.Name,
		Assignee:       copyString(actionItem.Assignee),
		DueDate:        formatDate(actionItem.DueDate),
		Priority:       string(actionItem.Priority),
		Status:         string(actionItem.Status),
		Comments:       actionItem.Comments,
		TimeSpent:      actionItem.TimeSpent,
		TimeSpentLabel: domain.FormatElapsed(actionItem.TimeSpent),
		CreatedAt:      actionItem.CreatedAt.Format(time.RFC3339),
	}
	if actionItem.EstimatedTime != nil {
		item.EstimatedTime = &dto.TimeEstimate{
			Days:    actionItem.EstimatedTime.Days,
			Hours:   actionItem.EstimatedTime.Hours,
			Minutes: actionItem.EstimatedTime.Minutes,
		}
	}
	return item
}

func ToActionItemRefs(refs []domain.ActionItemRef) []dto.ActionItemRef {
	items := make([]dto.ActionItemRef, 0, len(refs))
	for _, ref := range refs {
		items = append(items, dto.ActionItemRef{ID: ref.ID, Name: ref.Name, Path: ref.Path})
	}
	return items
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
