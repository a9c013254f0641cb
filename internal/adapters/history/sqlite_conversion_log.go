package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"geoconv-service/internal/domain"
)

const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite backed conversion history.
type SqliteConversionLog struct {
	DB *sql.DB
}

func NewSqliteConversionLog(db *sql.DB) *SqliteConversionLog {
	return &SqliteConversionLog{DB: db}
}

func (s *SqliteConversionLog) Record(ctx context.Context, rec domain.ConversionRecord) error {
	if s.DB == nil {
		return errors.New("conversion history: db is nil")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT OR IGNORE INTO conversion_history (
		id,
		request_id,
		workflow,
		input,
		output,
		success,
		error,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`,
		rec.ID, rec.RequestID, rec.Workflow, rec.Input, rec.Output,
		rec.Success, rec.Error, rec.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert conversion history id=%q: %w", rec.ID, err)
	}
	return nil
}

func (s *SqliteConversionLog) Recent(ctx context.Context, limit int) ([]domain.ConversionRecord, error) {
	if s.DB == nil {
		return nil, errors.New("conversion history: db is nil")
	}
	if limit <= 0 {
		return []domain.ConversionRecord{}, nil
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		id,
		request_id,
		workflow,
		input,
		output,
		success,
		error,
		created_at
	FROM conversion_history
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("get conversion history: query conversion_history table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ConversionRecord, 0, limit)
	for rows.Next() {
		var (
			rec     domain.ConversionRecord
			success int64
			created string
		)
		if err := rows.Scan(
			&rec.ID, &rec.RequestID, &rec.Workflow, &rec.Input, &rec.Output,
			&success, &rec.Error, &created,
		); err != nil {
			return nil, fmt.Errorf("get conversion history: scan rows: %w", err)
		}

		rec.Success = success != 0
		rec.CreatedAt, err = time.Parse(timeLayout, created)
		if err != nil {
			return nil, fmt.Errorf("get conversion history id=%q: parse created_at: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get conversion history: row iteration: %w", err)
	}

	return out, nil
}
