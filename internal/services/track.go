package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"geoconv-service/internal/domain"
	"geoconv-service/internal/ports"
)

// ConvertFix converts a receiver fix to Minna geographic and grid coordinates.
// The datum shift runs once and feeds both results.
func (c *Converter) ConvertFix(ctx context.Context, fix domain.Fix) (domain.FixReport, error) {
	m, err := c.geographic(ctx, domain.WGS84Geographic, domain.MinnaGeographic, fix.Position)
	if err != nil {
		return domain.FixReport{}, fmt.Errorf("convert fix: %w", err)
	}
	grid, err := c.minnaGrid(ctx, m)
	if err != nil {
		return domain.FixReport{}, fmt.Errorf("convert fix: %w", err)
	}
	return domain.FixReport{Fix: fix, Minna: domain.NewGeographicResult(m), Grid: grid}, nil
}

// Track reads fixes from src until it is exhausted or ctx is done, converts
// each one and hands the report to emit. A fix that fails to convert is
// logged and skipped; an emit error stops tracking.
func (c *Converter) Track(ctx context.Context, src ports.FixSource, emit func(domain.FixReport) error) (int, error) {
	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, err
		}

		fix, err := src.Next()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("track: read fix: %w", err)
		}

		report, err := c.ConvertFix(ctx, fix)
		if err != nil {
			c.logger.Warn("fix skipped", zap.String("time", fix.Time), zap.Error(err))
			continue
		}

		if err := emit(report); err != nil {
			return count, fmt.Errorf("track: emit: %w", err)
		}
		count++
	}
}
