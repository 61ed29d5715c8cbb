package db

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"tasktrio/internal/config"
)

const defaultJournalDSN = ":memory:"

// ErrPersistentDSN is returned for a journal DSN that would write to disk.
var ErrPersistentDSN = errors.New("journal DSN is not in-memory")

const schema = `
CREATE TABLE IF NOT EXISTS timer_sessions (
  id             TEXT    PRIMARY KEY,
  project_id     TEXT    NOT NULL,
  action_item_id TEXT    NOT NULL,
  started_at     INTEGER NOT NULL,
  stopped_at     INTEGER NOT NULL,
  minutes        INTEGER NOT NULL,
  applied        INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_timer_sessions_stopped_at ON timer_sessions (stopped_at);
`

// ConnectDB opens the session journal. Only in-memory databases are
// accepted, so the journal lives exactly as long as the process.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn := conf.JournalDSN
	if dsn == "" {
		dsn = defaultJournalDSN
	}
	if !isInMemoryDSN(dsn) {
		return nil, fmt.Errorf("%w: %q", ErrPersistentDSN, dsn)
	}

	// modernc.org/sqlite registers itself as "sqlite".
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is its own database; pin the pool to one.
	db.SetMaxOpenConns(1)

	if err := Migrate(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// isInMemoryDSN accepts ":memory:", "file::memory:..." and file URIs with
// mode=memory.
func isInMemoryDSN(dsn string) bool {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file::memory:") {
		return true
	}
	if !strings.HasPrefix(dsn, "file:") {
		return false
	}
	_, query, ok := strings.Cut(dsn, "?")
	if !ok {
		return false
	}
	params, err := url.ParseQuery(query)
	if err != nil {
		return false
	}
	return params.Get("mode") == "memory"
}

func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate journal: %w", err)
	}
	return nil
}
