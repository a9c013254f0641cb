package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the conversion_history table on Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, []string{
		`
	CREATE TABLE IF NOT EXISTS conversion_history (
		id TEXT PRIMARY KEY,
		request_id TEXT NOT NULL DEFAULT '',
		workflow TEXT NOT NULL,
		input JSONB NOT NULL,
		output JSONB NOT NULL,
		success BOOLEAN NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_conversion_history_created_at
	ON conversion_history(created_at DESC);
	`,
	})
}

// InitSqliteSchema creates the conversion_history table on SQLite.
// created_at holds fixed-width RFC 3339 text so it sorts lexically.
func InitSqliteSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, []string{
		`
	CREATE TABLE IF NOT EXISTS conversion_history (
		id TEXT PRIMARY KEY,
		request_id TEXT NOT NULL DEFAULT '',
		workflow TEXT NOT NULL,
		input TEXT NOT NULL,
		output TEXT NOT NULL,
		success INTEGER NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_conversion_history_created_at
	ON conversion_history(created_at);
	`,
	})
}

func initSchema(ctx context.Context, db *sql.DB, statements []string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
