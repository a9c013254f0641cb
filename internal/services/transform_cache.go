package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"geoconv-service/internal/domain"
	"geoconv-service/internal/ports"
)

type crsPair struct {
	src, dst domain.CRS
}

func (p crsPair) String() string { return fmt.Sprintf("%d>%d", int(p.src), int(p.dst)) }

// TransformCache implements GeodeticEngine by memoizing transformers per
// (source, target) CRS pair. Entries are immutable once stored; concurrent
// builds of the same pair are collapsed into one. Failed builds are not cached.
type TransformCache struct {
	factory ports.TransformerFactory

	mu      sync.RWMutex
	entries map[crsPair]ports.Transformer
	group   singleflight.Group
}

func NewTransformCache(factory ports.TransformerFactory) *TransformCache {
	return &TransformCache{
		factory: factory,
		entries: make(map[crsPair]ports.Transformer),
	}
}

// Transformer returns the memoized transformer for src -> dst, building it on first use.
func (c *TransformCache) Transformer(src, dst domain.CRS) (ports.Transformer, error) {
	key := crsPair{src: src, dst: dst}

	if t, ok := c.lookup(key); ok {
		return t, nil
	}

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		if t, ok := c.lookup(key); ok {
			return t, nil
		}

		t, err := c.factory.NewTransformer(src, dst)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = t
		c.mu.Unlock()
		return t, nil
	})
	if err != nil {
		var te *ports.TransformError
		if errors.As(err, &te) {
			return nil, err
		}
		return nil, &ports.TransformError{Src: src, Dst: dst, Err: err}
	}

	return v.(ports.Transformer), nil
}

func (c *TransformCache) lookup(key crsPair) (ports.Transformer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.entries[key]
	return t, ok
}

// Transform converts (x, y) from src to dst. Requests run to completion;
// ctx is accepted for the GeodeticEngine contract only.
func (c *TransformCache) Transform(_ context.Context, src, dst domain.CRS, x, y float64) (float64, float64, error) {
	t, err := c.Transformer(src, dst)
	if err != nil {
		return 0, 0, err
	}

	u, v, err := t.Transform(x, y)
	if err != nil {
		var te *ports.TransformError
		if errors.As(err, &te) {
			return 0, 0, err
		}
		return 0, 0, &ports.TransformError{Src: src, Dst: dst, Err: err}
	}
	return u, v, nil
}

// Len reports the number of memoized transformers.
func (c *TransformCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
