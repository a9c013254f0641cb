package ports

import (
	"context"

	"geoconv-service/internal/domain"
)

// Source of receiver fixes. Next returns io.EOF when the stream ends.
type FixSource interface {
	Next() (domain.Fix, error)
}

// Contract for delivering converted fixes to downstream consumers.
type FixPublisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Close()
}
