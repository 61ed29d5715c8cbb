package mapper

import (
	"time"

	"tasktrio/internal/adapter/http/dto"
	"tasktrio/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{ID: user.ID, Name: user.Name, Avatar: copyString(user.Avatar)}
}

// ToTimerItem renders the timer state with elapsed time measured at now.
func ToTimerItem(info domain.TimerInfo, now time.Time) dto.TimerItem {
	if !info.IsRunning {
		return dto.TimerItem{}
	}
	projectID, actionItemID := info.ProjectID, info.ActionItemID
	start := info.StartTime.Format(time.RFC3339)
	elapsed := info.ElapsedMinutes(now)
	return dto.TimerItem{
		ProjectID:      &projectID,
		ActionItemID:   &actionItemID,
		StartTime:      &start,
		IsRunning:      true,
		ElapsedMinutes: elapsed,
		ElapsedLabel:   domain.FormatElapsed(elapsed),
	}
}

func ToTimerSessionItems(sessions []domain.TimerSession) []dto.TimerSessionItem {
	items := make([]dto.TimerSessionItem, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, ToTimerSessionItem(session))
	}
	return items
}

func ToTimerSessionItem(session domain.TimerSession) dto.TimerSessionItem {
	return dto.TimerSessionItem{
		ID:           session.ID,
		ProjectID:    session.ProjectID,
		ActionItemID: session.ActionItemID,
		StartedAt:    session.StartedAt.Format(time.RFC3339),
		StoppedAt:    session.StoppedAt.Format(time.RFC3339),
		Minutes:      session.Minutes,
		Applied:      session.Applied,
	}
}
