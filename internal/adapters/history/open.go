package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"geoconv-service/internal/platform/db"
	"geoconv-service/internal/ports"
)

// Store is an opened conversion history with its backing database.
type Store struct {
	Log ports.ConversionLog
	DB  *sql.DB
}

func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// Open connects the history store for driver ("none", "sqlite" or "postgres")
// and makes sure its schema exists. For "none" it returns a nil Store.
func Open(ctx context.Context, driver, dbPath, databaseURL string) (*Store, error) {
	switch driver {
	case "none", "":
		return nil, nil

	case "sqlite":
		if dbPath != ":memory:" {
			if dir := filepath.Dir(dbPath); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, fmt.Errorf("open history: create %q: %w", dir, err)
				}
			}
		}
		conn, err := db.OpenSQLite(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		if err := InitSqliteSchema(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("open history: %w", err)
		}
		return &Store{Log: NewSqliteConversionLog(conn), DB: conn}, nil

	case "postgres":
		if strings.TrimSpace(databaseURL) == "" {
			return nil, fmt.Errorf("open history: DATABASE_URL is required for postgres")
		}
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, fmt.Errorf("open history: %w", err)
		}
		if err := InitSchema(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("open history: %w", err)
		}
		return &Store{Log: NewSQLConversionLog(conn), DB: conn}, nil
	}

	return nil, fmt.Errorf("open history: unknown driver %q", driver)
}
