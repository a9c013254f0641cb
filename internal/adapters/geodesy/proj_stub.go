//go:build !proj

package geodesy

import (
	"errors"

	"geoconv-service/internal/domain"
	"geoconv-service/internal/ports"
)

const projAvailable = false

// ProjEngine is unavailable without the proj build tag.
type ProjEngine struct{}

func newProjEngine() (*ProjEngine, error) {
	return nil, errors.New("proj engine: libproj support requires building with -tags proj (install libproj-dev, CGO_ENABLED=1)")
}

func (e *ProjEngine) NewTransformer(src, dst domain.CRS) (ports.Transformer, error) {
	return nil, &ports.TransformError{Src: src, Dst: dst, Err: errors.New("proj engine not compiled in")}
}

func (e *ProjEngine) Close() {}
