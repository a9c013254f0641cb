package geodesy

import (
	"sync"

	"geoconv-service/internal/domain"
	"geoconv-service/internal/ports"
)

// Pair is one (source, target) CRS combination seen by a RecordingEngine.
type Pair struct {
	Src, Dst domain.CRS
}

// RecordingEngine wraps another factory and records every transform call
// in order. Built transformers are counted separately so callers can check
// memoization.
type RecordingEngine struct {
	next ports.TransformerFactory

	mu     sync.Mutex
	calls  []Pair
	builds []Pair
}

func NewRecordingEngine(next ports.TransformerFactory) *RecordingEngine {
	return &RecordingEngine{next: next}
}

func (r *RecordingEngine) NewTransformer(src, dst domain.CRS) (ports.Transformer, error) {
	r.mu.Lock()
	r.builds = append(r.builds, Pair{Src: src, Dst: dst})
	r.mu.Unlock()

	t, err := r.next.NewTransformer(src, dst)
	if err != nil {
		return nil, err
	}
	return &recordingTransformer{owner: r, pair: Pair{Src: src, Dst: dst}, next: t}, nil
}

func (r *RecordingEngine) Close() {}

// Calls returns the transform calls made so far.
func (r *RecordingEngine) Calls() []Pair {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Pair(nil), r.calls...)
}

// Builds returns the transformer constructions requested so far.
func (r *RecordingEngine) Builds() []Pair {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Pair(nil), r.builds...)
}

type recordingTransformer struct {
	owner *RecordingEngine
	pair  Pair
	next  ports.Transformer
}

func (t *recordingTransformer) Transform(x, y float64) (float64, float64, error) {
	t.owner.mu.Lock()
	t.owner.calls = append(t.owner.calls, t.pair)
	t.owner.mu.Unlock()
	return t.next.Transform(x, y)
}
