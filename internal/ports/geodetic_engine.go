package ports

import (
	"context"
	"fmt"

	"geoconv-service/internal/domain"
)

// Converts coordinates between one fixed pair of reference systems.
// Geographic axes are (longitude, latitude) in degrees, projected axes are
// (easting, northing) in meters. Implementations must be safe for concurrent use.
type Transformer interface {
	Transform(x, y float64) (float64, float64, error)
}

// Builds transformers for a source/target CRS pair.
// Construction may be expensive; callers are expected to reuse the result.
type TransformerFactory interface {
	NewTransformer(src, dst domain.CRS) (Transformer, error)
}

// Contract for one-shot coordinate transforms between two CRS identifiers.
type GeodeticEngine interface {
	Transform(ctx context.Context, src, dst domain.CRS, x, y float64) (float64, float64, error)
}

// TransformError reports an unknown CRS identifier or an input outside
// the valid domain of a transformation.
type TransformError struct {
	Src domain.CRS
	Dst domain.CRS
	Err error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform %s -> %s: %v", e.Src, e.Dst, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }
