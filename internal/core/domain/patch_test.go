package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestEnums_Valid(t *testing.T) {
	require.True(t, PriorityUrgent.Valid())
	require.True(t, PriorityNone.Valid())
	require.False(t, Priority("medium").Valid())
	require.True(t, StatusInProgress.Valid())
	require.False(t, Status("Not Started").Valid())
	require.True(t, NodeKindSubtask.Valid())
	require.False(t, NodeKind("actionItem").Valid())
}

func TestNewItemInput_Validate(t *testing.T) {
	require.ErrorIs(t, NewItemInput{Name: "   "}.Validate(), ErrEmptyName)
	require.ErrorIs(t, NewItemInput{Name: "x", Priority: "medium"}.Validate(), ErrInvalidPriority)
	require.ErrorIs(t, NewItemInput{Name: "x", Status: "blocked"}.Validate(), ErrInvalidStatus)
	require.ErrorIs(t, NewItemInput{Name: "x", Assignee: ptr("99")}.Validate(), ErrUnknownAssignee)
	require.ErrorIs(t, NewItemInput{Name: ""}.Validate(), ErrValidation)
	require.NoError(t, NewItemInput{Name: "x", Assignee: ptr("1")}.Validate())
}

func TestNewTask_AppliesDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	task := NewTask("t1", NewItemInput{Name: "Design"}, now)

	require.Equal(t, PriorityNormal, task.Priority)
	require.Equal(t, StatusTodo, task.Status)
	require.False(t, task.Expanded)
	require.NotNil(t, task.Subtasks)
	require.Empty(t, task.Subtasks)
	require.Equal(t, now, task.CreatedAt)

	item := NewActionItem("a1", NewItemInput{Name: "Homepage"}, now)
	require.Nil(t, item.EstimatedTime)
	require.Zero(t, item.TimeSpent)
}

func TestTaskPatch_ValidateRejectsEmptyAndInvalid(t *testing.T) {
	require.ErrorIs(t, TaskPatch{}.Validate(), ErrEmptyPatch)
	require.ErrorIs(t, TaskPatch{ItemPatch: ItemPatch{Name: ptr("")}}.Validate(), ErrEmptyName)
	bad := Priority("medium")
	require.ErrorIs(t, TaskPatch{ItemPatch: ItemPatch{Priority: &bad}}.Validate(), ErrInvalidPriority)
	require.NoError(t, TaskPatch{Expanded: ptr(true)}.Validate())
	// Clearing the assignee is always allowed.
	require.NoError(t, TaskPatch{ItemPatch: ItemPatch{AssigneeSet: true}}.Validate())
}

func TestActionItemPatch_Validate(t *testing.T) {
	require.ErrorIs(t, ActionItemPatch{}.Validate(), ErrEmptyPatch)
	require.ErrorIs(t, ActionItemPatch{TimeSpent: ptr(-1)}.Validate(), ErrInvalidTimeSpent)
	require.ErrorIs(t, ActionItemPatch{
		EstimatedTimeSet: true,
		EstimatedTime:    &TimeEstimate{Minutes: -3},
	}.Validate(), ErrInvalidEstimate)
	require.NoError(t, ActionItemPatch{EstimatedTimeSet: true}.Validate())
}

func TestActionItemPatch_ValidateRejectsOversizedValues(t *testing.T) {
	require.ErrorIs(t, ActionItemPatch{TimeSpent: ptr(math.MaxInt)}.Validate(), ErrInvalidTimeSpent)
	require.ErrorIs(t, ActionItemPatch{TimeSpent: ptr(MaxTrackedMinutes + 1)}.Validate(), ErrInvalidTimeSpent)
	require.NoError(t, ActionItemPatch{TimeSpent: ptr(MaxTrackedMinutes)}.Validate())

	for _, estimate := range []TimeEstimate{
		{Days: math.MaxInt, Hours: 24},
		{Hours: math.MaxInt},
		{Minutes: math.MaxInt},
		{Days: MaxTrackedMinutes / minutesPerDay, Minutes: 1},
	} {
		require.ErrorIs(t, ActionItemPatch{EstimatedTimeSet: true, EstimatedTime: &estimate}.Validate(),
			ErrInvalidEstimate, "%+v", estimate)
	}
	require.NoError(t, ActionItemPatch{
		EstimatedTimeSet: true,
		EstimatedTime:    &TimeEstimate{Days: MaxTrackedMinutes / minutesPerDay},
	}.Validate())
}

func TestTaskPatch_ApplyTouchesOnlyProvidedFields(t *testing.T) {
	due := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	task := Task{
		ID: "t1", Name: "Design", Assignee: ptr("1"), DueDate: &due,
		Priority: PriorityHigh, Status: StatusTodo, Comments: "keep", Expanded: true,
	}
	done := StatusDone
	TaskPatch{ItemPatch: ItemPatch{Status: &done}}.Apply(&task)

	require.Equal(t, StatusDone, task.Status)
	require.Equal(t, "Design", task.Name)
	require.Equal(t, "1", *task.Assignee)
	require.Equal(t, due, *task.DueDate)
	require.Equal(t, PriorityHigh, task.Priority)
	require.Equal(t, "keep", task.Comments)
	require.True(t, task.Expanded)

	TaskPatch{ItemPatch: ItemPatch{AssigneeSet: true, DueDateSet: true}}.Apply(&task)
	require.Nil(t, task.Assignee)
	require.Nil(t, task.DueDate)
}

func TestActionItemPatch_ApplyNormalizesEstimate(t *testing.T) {
	item := ActionItem{TimeSpent: 30}
	ActionItemPatch{
		EstimatedTimeSet: true,
		EstimatedTime:    &TimeEstimate{Hours: 25, Minutes: 75},
	}.Apply(&item)
	require.Equal(t, &TimeEstimate{Days: 1, Hours: 2, Minutes: 15}, item.EstimatedTime)
	require.Equal(t, 30, item.TimeSpent)

	ActionItemPatch{EstimatedTimeSet: true, EstimatedTime: &TimeEstimate{}}.Apply(&item)
	require.Nil(t, item.EstimatedTime)
}

func TestProjectClone_DoesNotAlias(t *testing.T) {
	project := Project{ID: "p", Tasks: []Task{{
		ID: "t", Assignee: ptr("1"),
		Subtasks: []Subtask{{ID: "s", ActionItems: []ActionItem{{ID: "a", EstimatedTime: &TimeEstimate{Hours: 1}}}}},
	}}}
	clone := project.Clone()
	clone.Tasks[0].Name = "changed"
	*clone.Tasks[0].Assignee = "2"
	clone.Tasks[0].Subtasks[0].ActionItems[0].EstimatedTime.Hours = 9

	require.Empty(t, project.Tasks[0].Name)
	require.Equal(t, "1", *project.Tasks[0].Assignee)
	require.Equal(t, 1, project.Tasks[0].Subtasks[0].ActionItems[0].EstimatedTime.Hours)
}

func TestUsers_Lookup(t *testing.T) {
	require.Len(t, Users(), 6)
	user, ok := LookupUser("4")
	require.True(t, ok)
	require.Equal(t, "Amy Chen", user.Name)
	_, ok = LookupUser("42")
	require.False(t, ok)
}

func TestTimerInfo_ElapsedMinutes(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	running := RunningTimer("p", "a", start)
	require.Equal(t, 90, running.ElapsedMinutes(start.Add(90*time.Minute+59*time.Second)))
	require.Zero(t, running.ElapsedMinutes(start.Add(-time.Minute)))
	require.Zero(t, IdleTimer().ElapsedMinutes(start))
}
