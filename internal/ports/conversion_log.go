package ports

import (
	"context"

	"geoconv-service/internal/domain"
)

// Port: a boundary for persisting and listing past conversions.
type ConversionLog interface {
	// Store a single conversion outcome.
	Record(ctx context.Context, rec domain.ConversionRecord) error
	// Return the most recent conversions, newest first.
	Recent(ctx context.Context, limit int) ([]domain.ConversionRecord, error)
}
