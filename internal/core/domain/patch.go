package domain

import (
	"strings"
	"time"
)

// NewItemInput carries the fields accepted when a task, subtask or action
// item is created. Zero values fall back to the level defaults.
type NewItemInput struct {
	Name     string
	Assignee *string
	DueDate  *time.Time
	Priority Priority
	Status   Status
	Comments string
}

func (in NewItemInput) Validate() error {
	if err := ValidateName(in.Name); err != nil {
		return err
	}
	if in.Priority != "" && !in.Priority.Valid() {
		return ErrInvalidPriority
	}
	if in.Status != "" && !in.Status.Valid() {
		return ErrInvalidStatus
	}
	return validateAssignee(in.Assignee)
}

func (in NewItemInput) priority() Priority {
	if in.Priority == "" {
		return PriorityNormal
	}
	return in.Priority
}

func (in NewItemInput) status() Status {
	if in.Status == "" {
		return StatusTodo
	}
	return in.Status
}

// ItemPatch holds the fields shared by every tree level below a project.
// A nil pointer leaves the field untouched; the *Set flags mark nullable
// fields that were explicitly provided, so a nil value with Set clears them.
type ItemPatch struct {
	Name        *string
	Assignee    *string
	AssigneeSet bool
	DueDate     *time.Time
	DueDateSet  bool
	Priority    *Priority
	Status      *Status
	Comments    *string
}

func (p ItemPatch) isEmpty() bool {
	return p.Name == nil && !p.AssigneeSet && !p.DueDateSet &&
		p.Priority == nil && p.Status == nil && p.Comments == nil
}

func (p ItemPatch) validate() error {
	if p.Name != nil {
		if err := ValidateName(*p.Name); err != nil {
			return err
		}
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return ErrInvalidPriority
	}
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.AssigneeSet {
		return validateAssignee(p.Assignee)
	}
	return nil
}

type TaskPatch struct {
	ItemPatch
	Expanded *bool
}

func (p TaskPatch) Validate() error {
	if p.ItemPatch.isEmpty() && p.Expanded == nil {
		return ErrEmptyPatch
	}
	return p.ItemPatch.validate()
}

type SubtaskPatch struct {
	ItemPatch
	Expanded *bool
}

func (p SubtaskPatch) Validate() error {
	if p.ItemPatch.isEmpty() && p.Expanded == nil {
		return ErrEmptyPatch
	}
	return p.ItemPatch.validate()
}

type ActionItemPatch struct {
	ItemPatch
	EstimatedTime    *TimeEstimate
	EstimatedTimeSet bool
	TimeSpent        *int
}

func (p ActionItemPatch) Validate() error {
	if p.ItemPatch.isEmpty() && !p.EstimatedTimeSet && p.TimeSpent == nil {
		return ErrEmptyPatch
	}
	if err := p.ItemPatch.validate(); err != nil {
		return err
	}
	if p.TimeSpent != nil && (*p.TimeSpent < 0 || *p.TimeSpent > MaxTrackedMinutes) {
		return ErrInvalidTimeSpent
	}
	if p.EstimatedTimeSet && p.EstimatedTime != nil &&
		(p.EstimatedTime.negative() || p.EstimatedTime.exceedsLimit()) {
		return ErrInvalidEstimate
	}
	return nil
}

// ValidateName rejects names that are empty once surrounding blanks are removed.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}

func validateAssignee(assignee *string) error {
	if assignee == nil {
		return nil
	}
	if _, ok := LookupUser(*assignee); !ok {
		return ErrUnknownAssignee
	}
	return nil
}

// Apply writes the patch onto t. Callers validate first.
func (p TaskPatch) Apply(t *Task) {
	p.ItemPatch.apply(&t.Name, &t.Assignee, &t.DueDate, &t.Priority, &t.Status, &t.Comments)
	if p.Expanded != nil {
		t.Expanded = *p.Expanded
	}
}

func (p SubtaskPatch) Apply(s *Subtask) {
	p.ItemPatch.apply(&s.Name, &s.Assignee, &s.DueDate, &s.Priority, &s.Status, &s.Comments)
	if p.Expanded != nil {
		s.Expanded = *p.Expanded
	}
}

func (p ActionItemPatch) Apply(a *ActionItem) {
	p.ItemPatch.apply(&a.Name, &a.Assignee, &a.DueDate, &a.Priority, &a.Status, &a.Comments)
	if p.EstimatedTimeSet {
		a.EstimatedTime = nil
		if p.EstimatedTime != nil {
			a.EstimatedTime = NormalizeTimeEstimate(p.EstimatedTime.Days, p.EstimatedTime.Hours, p.EstimatedTime.Minutes)
		}
	}
	if p.TimeSpent != nil {
		a.TimeSpent = *p.TimeSpent
	}
}

func (p ItemPatch) apply(name *string, assignee **string, dueDate **time.Time, priority *Priority, status *Status, comments *string) {
	if p.Name != nil {
		*name = *p.Name
	}
	if p.AssigneeSet {
		*assignee = cloneString(p.Assignee)
	}
	if p.DueDateSet {
		*dueDate = cloneTime(p.DueDate)
	}
	if p.Priority != nil {
		*priority = *p.Priority
	}
	if p.Status != nil {
		*status = *p.Status
	}
	if p.Comments != nil {
		*comments = *p.Comments
	}
}

// NewTask builds a task with the creation defaults applied.
func NewTask(id string, in NewItemInput, now time.Time) Task {
	return Task{
		ID:        id,
		Name:      in.Name,
		Assignee:  cloneString(in.Assignee),
		DueDate:   cloneTime(in.DueDate),
		Priority:  in.priority(),
		Status:    in.status(),
		Comments:  in.Comments,
		Subtasks:  []Subtask{},
		CreatedAt: now,
	}
}

func NewSubtask(id string, in NewItemInput, now time.Time) Subtask {
	return Subtask{
		ID:          id,
		Name:        in.Name,
		Assignee:    cloneString(in.Assignee),
		DueDate:     cloneTime(in.DueDate),
		Priority:    in.priority(),
		Status:      in.status(),
		Comments:    in.Comments,
		ActionItems: []ActionItem{},
		CreatedAt:   now,
	}
}

func NewActionItem(id string, in NewItemInput, now time.Time) ActionItem {
	return ActionItem{
		ID:        id,
		Name:      in.Name,
		Assignee:  cloneString(in.Assignee),
		DueDate:   cloneTime(in.DueDate),
		Priority:  in.priority(),
		Status:    in.status(),
		Comments:  in.Comments,
		CreatedAt: now,
	}
}
