package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrInternal   = errors.New("internal error")
)

var (
	ErrProjectNotFound    = fmt.Errorf("project %w", ErrNotFound)
	ErrTaskNotFound       = fmt.Errorf("task %w", ErrNotFound)
	ErrSubtaskNotFound    = fmt.Errorf("subtask %w", ErrNotFound)
	ErrActionItemNotFound = fmt.Errorf("action item %w", ErrNotFound)
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)

	ErrEmptyName        = fmt.Errorf("name is required: %w", ErrValidation)
	ErrInvalidPriority  = fmt.Errorf("invalid priority: %w", ErrValidation)
	ErrInvalidStatus    = fmt.Errorf("invalid status: %w", ErrValidation)
	ErrInvalidTimeSpent = fmt.Errorf("time spent out of range: %w", ErrValidation)
	ErrInvalidEstimate  = fmt.Errorf("estimated time out of range: %w", ErrValidation)
	ErrUnknownAssignee  = fmt.Errorf("unknown assignee: %w", ErrValidation)
	ErrInvalidKind      = fmt.Errorf("invalid node kind: %w", ErrValidation)
	ErrEmptyPatch       = fmt.Errorf("patch has no fields: %w", ErrValidation)
)
