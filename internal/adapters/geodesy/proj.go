//go:build proj

package geodesy

import (
	"fmt"
	"sync"

	"github.com/pebbe/proj/v5"

	"geoconv-service/internal/domain"
	"geoconv-service/internal/ports"
)

const projAvailable = true

// ProjEngine implements TransformerFactory on top of libproj.
// Each transformer owns its PROJ context; PROJ objects are not safe for
// concurrent use, so calls on one transformer are serialized.
type ProjEngine struct {
	mu       sync.Mutex
	contexts []*proj.Context
}

func newProjEngine() (*ProjEngine, error) {
	return &ProjEngine{}, nil
}

func (e *ProjEngine) NewTransformer(src, dst domain.CRS) (ports.Transformer, error) {
	srcDef, ok := Lookup(src)
	if !ok {
		return nil, &ports.TransformError{Src: src, Dst: dst, Err: fmt.Errorf("unknown CRS %s", src)}
	}
	dstDef, ok := Lookup(dst)
	if !ok {
		return nil, &ports.TransformError{Src: src, Dst: dst, Err: fmt.Errorf("unknown CRS %s", dst)}
	}

	ctx := proj.NewContext()
	pj, err := ctx.Create(Pipeline(srcDef, dstDef))
	if err != nil {
		ctx.Close()
		return nil, &ports.TransformError{Src: src, Dst: dst, Err: fmt.Errorf("create pipeline: %w", err)}
	}

	e.mu.Lock()
	e.contexts = append(e.contexts, ctx)
	e.mu.Unlock()

	return &projTransformer{src: src, dst: dst, pj: pj}, nil
}

// Close releases every PROJ context created by the engine.
func (e *ProjEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, ctx := range e.contexts {
		ctx.Close()
	}
	e.contexts = nil
}

type projTransformer struct {
	src, dst domain.CRS
	mu       sync.Mutex
	pj       *proj.PJ
}

func (t *projTransformer) Transform(x, y float64) (float64, float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	u, v, _, _, err := t.pj.Trans(proj.Fwd, x, y, 0, 0)
	if err != nil {
		return 0, 0, &ports.TransformError{Src: t.src, Dst: t.dst, Err: err}
	}
	return u, v, nil
}
