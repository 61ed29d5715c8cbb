package service

import (
	"context"
	"fmt"
	"time"

	"tasktrio/internal/core/domain"
	"tasktrio/internal/core/ports"
)

// SeedDemo creates the "Website Redesign" sample project.
func SeedDemo(ctx context.Context, tree ports.TaskTreeService, now time.Time) (domain.Project, error) {
	project, err := tree.CreateProject(ctx, "Website Redesign")
	if err != nil {
		return domain.Project{}, fmt.Errorf("seed project: %w", err)
	}

	designer, developer := "1", "2"
	dueDate := now.UTC().Truncate(24 * time.Hour)
	task, err := tree.AddTask(ctx, project.ID, domain.NewItemInput{
		Name:     "Design Phase",
		Assignee: &designer,
		DueDate:  &dueDate,
	})
	if err != nil {
		return domain.Project{}, fmt.Errorf("seed task: %w", err)
	}

	subtask, err := tree.AddSubtask(ctx, project.ID, task.ID, domain.NewItemInput{
		Name:     "Wireframes",
		Assignee: &developer,
	})
	if err != nil {
		return domain.Project{}, fmt.Errorf("seed subtask: %w", err)
	}

	if _, err := tree.AddActionItem(ctx, project.ID, task.ID, subtask.ID, domain.NewItemInput{
		Name:     "Create homepage wireframe",
		Assignee: &developer,
	}); err != nil {
		return domain.Project{}, fmt.Errorf("seed action item: %w", err)
	}

	return tree.GetProject(ctx, project.ID)
}
