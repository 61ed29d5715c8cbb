package domain

import "time"

// Project is the root of a task tree. It owns its tasks exclusively.
type Project struct {
	ID        string
	Name      string
	Tasks     []Task
	CreatedAt time.Time
}

type Task struct {
	ID        string
	Name      string
	Assignee  *string
	DueDate   *time.Time
	Priority  Priority
	Status    Status
	Comments  string
	Expanded  bool
	Subtasks  []Subtask
	CreatedAt time.Time
}

type Subtask struct {
	ID          string
	Name        string
	Assignee    *string
	DueDate     *time.Time
	Priority    Priority
	Status      Status
	Comments    string
	Expanded    bool
	ActionItems []ActionItem
	CreatedAt   time.Time
}

// ActionItem is the leaf of the tree and the only level a timer can track.
type ActionItem struct {
	ID            string
	Name          string
	Assignee      *string
	DueDate       *time.Time
	Priority      Priority
	Status        Status
	Comments      string
	EstimatedTime *TimeEstimate
	TimeSpent     int
	CreatedAt     time.Time
}

// NodePath addresses a node by its ancestry. Trailing ids are left empty
// to address a shallower level.
type NodePath struct {
	ProjectID    string
	TaskID       string
	SubtaskID    string
	ActionItemID string
}

// ActionItemRef is one row of a flattened project.
type ActionItemRef struct {
	ID   string
	Name string
	Path string
}

// Clone returns a deep copy sharing no mutable state with p.
func (p Project) Clone() Project {
	out := p
	if p.Tasks != nil {
		out.Tasks = make([]Task, len(p.Tasks))
		for i, task := range p.Tasks {
			out.Tasks[i] = task.Clone()
		}
	}
	return out
}

func (t Task) Clone() Task {
	out := t
	out.Assignee = cloneString(t.Assignee)
	out.DueDate = cloneTime(t.DueDate)
	if t.Subtasks != nil {
		out.Subtasks = make([]Subtask, len(t.Subtasks))
		for i, subtask := range t.Subtasks {
			out.Subtasks[i] = subtask.Clone()
		}
	}
	return out
}

func (s Subtask) Clone() Subtask {
	out := s
	out.Assignee = cloneString(s.Assignee)
	out.DueDate = cloneTime(s.DueDate)
	if s.ActionItems != nil {
		out.ActionItems = make([]ActionItem, len(s.ActionItems))
		for i, item := range s.ActionItems {
			out.ActionItems[i] = item.Clone()
		}
	}
	return out
}

func (a ActionItem) Clone() ActionItem {
	out := a
	out.Assignee = cloneString(a.Assignee)
	out.DueDate = cloneTime(a.DueDate)
	if a.EstimatedTime != nil {
		estimate := *a.EstimatedTime
		out.EstimatedTime = &estimate
	}
	return out
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}

func cloneTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
