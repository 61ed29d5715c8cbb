package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"tasktrio/internal/core/domain"
	"tasktrio/internal/core/ports"
)

const insertSessionQuery = `
INSERT INTO timer_sessions (id, project_id, action_item_id, started_at, stopped_at, minutes, applied)
VALUES (:id, :project_id, :action_item_id, :started_at, :stopped_at, :minutes, :applied);
`

const listSessionsQuery = `
SELECT id, project_id, action_item_id, started_at, stopped_at, minutes, applied
FROM timer_sessions
ORDER BY stopped_at DESC, rowid DESC;
`

type SessionRepository struct {
	db *sqlx.DB
}

// Timestamps are stored as unix milliseconds.
type sessionRow struct {
	ID           string `db:"id"`
	ProjectID    string `db:"project_id"`
	ActionItemID string `db:"action_item_id"`
	StartedAt    int64  `db:"started_at"`
	StoppedAt    int64  `db:"stopped_at"`
	Minutes      int    `db:"minutes"`
	Applied      bool   `db:"applied"`
}

var _ ports.SessionJournal = (*SessionRepository)(nil)

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) RecordSession(ctx context.Context, session domain.TimerSession) error {
	_, err := r.db.NamedExecContext(ctx, insertSessionQuery, sessionRow{
		ID:           session.ID,
		ProjectID:    session.ProjectID,
		ActionItemID: session.ActionItemID,
		StartedAt:    session.StartedAt.UnixMilli(),
		StoppedAt:    session.StoppedAt.UnixMilli(),
		Minutes:      session.Minutes,
		Applied:      session.Applied,
	})
	return err
}

func (r *SessionRepository) ListSessions(ctx context.Context) ([]domain.TimerSession, error) {
	var rows []sessionRow
	if err := r.db.SelectContext(ctx, &rows, listSessionsQuery); err != nil {
		return nil, err
	}

	sessions := make([]domain.TimerSession, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, mapSessionRowToDomain(row))
	}
	return sessions, nil
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	if r.db == nil {
		return domain.ErrInternal
	}
	return r.db.PingContext(ctx)
}

func mapSessionRowToDomain(row sessionRow) domain.TimerSession {
	return domain.TimerSession{
		ID:           row.ID,
		ProjectID:    row.ProjectID,
		ActionItemID: row.ActionItemID,
		StartedAt:    time.UnixMilli(row.StartedAt).UTC(),
		StoppedAt:    time.UnixMilli(row.StoppedAt).UTC(),
		Minutes:      row.Minutes,
		Applied:      row.Applied,
	}
}
