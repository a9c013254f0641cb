package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"geoconv-service/internal/domain"
)

// SQLConversionLog stores conversion history in Postgres.
type SQLConversionLog struct {
	DB *sql.DB
}

func NewSQLConversionLog(db *sql.DB) *SQLConversionLog {
	return &SQLConversionLog{DB: db}
}

func (s *SQLConversionLog) Record(ctx context.Context, rec domain.ConversionRecord) error {
	if s.DB == nil {
		return errors.New("conversion history: db is nil")
	}

	_, err := s.DB.ExecContext(ctx, `
	INSERT INTO conversion_history (
		id, request_id, workflow, input, output, success, error, created_at
	)
	VALUES ($1, $2, $3, $4::jsonb, $5::jsonb, $6, $7, $8)
	ON CONFLICT (id) DO NOTHING;
	`,
		rec.ID, rec.RequestID, rec.Workflow, rec.Input, rec.Output, rec.Success, rec.Error, rec.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert conversion history id=%q: %w", rec.ID, err)
	}
	return nil
}

func (s *SQLConversionLog) Recent(ctx context.Context, limit int) ([]domain.ConversionRecord, error) {
	if s.DB == nil {
		return nil, errors.New("conversion history: db is nil")
	}
	if limit <= 0 {
		return []domain.ConversionRecord{}, nil
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT id, request_id, workflow, input::text, output::text, success, error, created_at
	FROM conversion_history
	ORDER BY created_at DESC, id DESC
	LIMIT $1;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("get conversion history: query conversion_history table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ConversionRecord, 0, limit)
	for rows.Next() {
		var rec domain.ConversionRecord
		if err := rows.Scan(
			&rec.ID, &rec.RequestID, &rec.Workflow, &rec.Input, &rec.Output,
			&rec.Success, &rec.Error, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("get conversion history: scan rows: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get conversion history: row iteration: %w", err)
	}

	return out, nil
}
