package dto

type ProjectItem struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Tasks     []TaskItem `json:"tasks"`
	CreatedAt string     `json:"created_at"`
}

type TaskItem struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Assignee  *string       `json:"assignee"`
	DueDate   *string       `json:"due_date"`
	Priority  string        `json:"priority"`
	Status    string        `json:"status"`
	Comments  string        `json:"comments"`
	Expanded  bool          `json:"expanded"`
	Subtasks  []SubtaskItem `json:"subtasks"`
	CreatedAt string        `json:"created_at"`
}

type SubtaskItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Assignee    *string          `json:"assignee"`
	DueDate     *string          `json:"due_date"`
	Priority    string           `json:"priority"`
	Status      string           `json:"status"`
	Comments    string           `json:"comments"`
	Expanded    bool             `json:"expanded"`
	ActionItems []ActionItemItem `json:"action_items"`
	CreatedAt   string           `json:"created_at"`
}

type ActionItemItem struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Assignee       *string       `json:"assignee"`
	DueDate        *string       `json:"due_date"`
	Priority       string        `json:"priority"`
	Status         string        `json:"status"`
	Comments       string        `json:"comments"`
	EstimatedTime  *TimeEstimate `json:"estimated_time"`
	TimeSpent      int           `json:"time_spent"`
	TimeSpentLabel string        `json:"time_spent_label"`
	CreatedAt      string        `json:"created_at"`
}

type TimeEstimate struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type ActionItemRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"`
}

type CreateProjectRequest struct {
	Name string `json:"name" binding:"max=255"`
}

type RenameProjectRequest struct {
	Name string `json:"name" binding:"max=255"`
}

// CreateItemRequest creates a task, subtask or action item.
type CreateItemRequest struct {
	Name     string  `json:"name" binding:"max=255"`
	Assignee *string `json:"assignee"`
	DueDate  *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
	Comments *string `json:"comments"`
}

type UpdateItemRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Assignee *string `json:"assignee"`
	DueDate  *string `json:"due_date"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
	Comments *string `json:"comments"`
	Expanded *bool   `json:"expanded"`
}

type UpdateActionItemRequest struct {
	Name          *string       `json:"name" binding:"omitempty,max=255"`
	Assignee      *string       `json:"assignee"`
	DueDate       *string       `json:"due_date"`
	Priority      *string       `json:"priority"`
	Status        *string       `json:"status"`
	Comments      *string       `json:"comments"`
	EstimatedTime *TimeEstimate `json:"estimated_time"`
	TimeSpent     *int          `json:"time_spent"`
}

type ToggleExpandedRequest struct {
	Kind      string  `json:"kind" binding:"required"`
	SubtaskID *string `json:"subtask_id"`
}
