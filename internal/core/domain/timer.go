package domain

import "time"

// TimerInfo is the process-wide timer state. IsRunning implies both ids and
// StartTime are set; when idle every other field is zero.
type TimerInfo struct {
	ProjectID    string
	ActionItemID string
	StartTime    time.Time
	IsRunning    bool
}

func IdleTimer() TimerInfo {
	return TimerInfo{}
}

func RunningTimer(projectID, actionItemID string, start time.Time) TimerInfo {
	return TimerInfo{
		ProjectID:    projectID,
		ActionItemID: actionItemID,
		StartTime:    start,
		IsRunning:    true,
	}
}

// ElapsedMinutes returns the whole minutes between StartTime and now.
func (t TimerInfo) ElapsedMinutes(now time.Time) int {
	if !t.IsRunning || now.Before(t.StartTime) {
		return 0
	}
	return int(now.Sub(t.StartTime) / time.Minute)
}

// TimerSession is a completed interval between a start and the stop or
// replacing start that ended it. Applied is false when the tracked action
// item no longer existed and the minutes could not be added to it.
type TimerSession struct {
	ID           string
	ProjectID    string
	ActionItemID string
	StartedAt    time.Time
	StoppedAt    time.Time
	Minutes      int
	Applied      bool
}
