package goprops_test

import (
	"sync"
	"testing"

	goprops "github.com/reoring/goprops"
)

// recorder is a Sink that keeps every diagnostic it receives.
type recorder struct {
	mu  sync.Mutex
	got []goprops.Diagnostic
}

func (r *recorder) Log(d goprops.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, d)
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.got))
	for i, d := range r.got {
		out[i] = d.Message
	}
	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	r.got = nil
	r.mu.Unlock()
}

// newStore returns an isolated Store with default policy and a recorder.
func newStore(t *testing.T) (*goprops.Store, *recorder) {
	t.Helper()
	rec := &recorder{}
	return goprops.NewStore(goprops.WithSink(rec)), rec
}
