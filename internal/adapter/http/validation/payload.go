package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"tasktrio/internal/adapter/http/dto"
	"tasktrio/internal/core/domain"
)

var ErrInvalidPayload = fmt.Errorf("invalid payload: %w", domain.ErrValidation)

const dateLayout = "2006-01-02"

// BuildNewItemInput turns a create request into domain input. Fields that
// are present but null where null has no meaning are rejected.
func BuildNewItemInput(req dto.CreateItemRequest, raw map[string]json.RawMessage) (domain.NewItemInput, error) {
	for _, field := range []string{"priority", "status", "comments"} {
		if isExplicitNull(raw, field) {
			return domain.NewItemInput{}, ErrInvalidPayload
		}
	}

	in := domain.NewItemInput{
		Name:     strings.TrimSpace(req.Name),
		Assignee: req.Assignee,
	}
	if req.Priority != nil {
		in.Priority = domain.Priority(*req.Priority)
	}
	if req.Status != nil {
		in.Status = domain.Status(*req.Status)
	}
	if req.Comments != nil {
		in.Comments = *req.Comments
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			return domain.NewItemInput{}, err
		}
		in.DueDate = dueDate
	}

	return in, nil
}

func BuildTaskPatch(req dto.UpdateItemRequest, raw map[string]json.RawMessage) (domain.TaskPatch, error) {
	item, err := buildItemPatch(req.Name, req.Assignee, req.DueDate, req.Priority, req.Status, req.Comments, raw)
	if err != nil {
		return domain.TaskPatch{}, err
	}
	if isExplicitNull(raw, "expanded") {
		return domain.TaskPatch{}, ErrInvalidPayload
	}
	return domain.TaskPatch{ItemPatch: item, Expanded: req.Expanded}, nil
}

func BuildSubtaskPatch(req dto.UpdateItemRequest, raw map[string]json.RawMessage) (domain.SubtaskPatch, error) {
	patch, err := BuildTaskPatch(req, raw)
	if err != nil {
		return domain.SubtaskPatch{}, err
	}
	return domain.SubtaskPatch{ItemPatch: patch.ItemPatch, Expanded: patch.Expanded}, nil
}

func BuildActionItemPatch(req dto.UpdateActionItemRequest, raw map[string]json.RawMessage) (domain.ActionItemPatch, error) {
	item, err := buildItemPatch(req.Name, req.Assignee, req.DueDate, req.Priority, req.Status, req.Comments, raw)
	if err != nil {
		return domain.ActionItemPatch{}, err
	}
	if isExplicitNull(raw, "time_spent") {
		return domain.ActionItemPatch{}, ErrInvalidPayload
	}

	patch := domain.ActionItemPatch{
		ItemPatch:        item,
		EstimatedTimeSet: hasJSONField(raw, "estimated_time"),
		TimeSpent:        req.TimeSpent,
	}
	if req.EstimatedTime != nil {
		patch.EstimatedTime = &domain.TimeEstimate{
			Days:    req.EstimatedTime.Days,
			Hours:   req.EstimatedTime.Hours,
			Minutes: req.EstimatedTime.Minutes,
		}
	}
	return patch, nil
}

func buildItemPatch(name, assignee, dueDate, priority, status, comments *string, raw map[string]json.RawMessage) (domain.ItemPatch, error) {
	for _, field := range []string{"name", "priority", "status", "comments"} {
		if isExplicitNull(raw, field) {
			return domain.ItemPatch{}, ErrInvalidPayload
		}
	}

	patch := domain.ItemPatch{
		Name:        name,
		Assignee:    assignee,
		AssigneeSet: hasJSONField(raw, "assignee"),
		DueDateSet:  hasJSONField(raw, "due_date"),
		Comments:    comments,
	}
	if priority != nil {
		value := domain.Priority(*priority)
		patch.Priority = &value
	}
	if status != nil {
		value := domain.Status(*status)
		patch.Status = &value
	}
	if dueDate != nil {
		parsed, err := parseDate(*dueDate)
		if err != nil {
			return domain.ItemPatch{}, err
		}
		patch.DueDate = parsed
	}

	return patch, nil
}

// BuildToggle validates the kind and requires subtask_id for subtasks.
func BuildToggle(req dto.ToggleExpandedRequest) (domain.NodeKind, string, error) {
	kind := domain.NodeKind(req.Kind)
	if !kind.Valid() {
		return "", "", domain.ErrInvalidKind
	}
	if kind == domain.NodeKindTask {
		return kind, "", nil
	}
	if req.SubtaskID == nil || strings.TrimSpace(*req.SubtaskID) == "" {
		return "", "", ErrInvalidPayload
	}
	return kind, *req.SubtaskID, nil
}

func parseDate(value string) (*time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, ErrInvalidPayload
	}
	return &parsed, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isExplicitNull(raw map[string]json.RawMessage, field string) bool {
	value, ok := raw[field]
	return ok && bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
