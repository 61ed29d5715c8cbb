package dto

type UserItem struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
}

type TimerItem struct {
	ProjectID      *string `json:"project_id"`
	ActionItemID   *string `json:"action_item_id"`
	StartTime      *string `json:"start_time"`
	IsRunning      bool    `json:"is_running"`
	ElapsedMinutes int     `json:"elapsed_minutes"`
	ElapsedLabel   string  `json:"elapsed_label"`
}

type TimerSessionItem struct {
	ID           string `json:"id"`
	ProjectID    string `json:"project_id"`
	ActionItemID string `json:"action_item_id"`
	StartedAt    string `json:"started_at"`
	StoppedAt    string `json:"stopped_at"`
	Minutes      int    `json:"minutes"`
	Applied      bool   `json:"applied"`
}

type StopTimerResponse struct {
	Timer   TimerItem         `json:"timer"`
	Session *TimerSessionItem `json:"session"`
}

type StartTimerRequest struct {
	ProjectID    string `json:"project_id" binding:"required"`
	ActionItemID string `json:"action_item_id" binding:"required"`
}
