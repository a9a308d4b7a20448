package assist

import (
	"context"
	"sort"
	"sync"
)

// Busy keys for the editor operations.
const (
	KeySummary = "summary"
	KeySkills  = "skills"
)

// ExperienceKey returns the busy key for enhancing one experience entry.
func ExperienceKey(id string) string {
	return "exp-" + id
}

// Busy tracks in-flight assist operations by key. At most one operation runs
// per key; a second trigger for a busy key is ignored.
type Busy struct {
	mu       sync.Mutex
	inFlight map[string]*flight
}

type flight struct {
	cancel context.CancelFunc
}

// NewBusy creates an empty tracker.
func NewBusy() *Busy {
	return &Busy{inFlight: make(map[string]*flight)}
}

// Begin marks key as busy and returns a context that is canceled by Cancel,
// CancelAll or done. ok is false when key is already busy; the caller must then
// not start the operation. done must be called exactly once when ok is true.
func (b *Busy) Begin(ctx context.Context, key string) (context.Context, func(), bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, busy := b.inFlight[key]; busy {
		return ctx, func() {}, false
	}

	ctx, cancel := context.WithCancel(ctx)
	f := &flight{cancel: cancel}
	b.inFlight[key] = f

	done := func() {
		b.mu.Lock()
		if b.inFlight[key] == f {
			delete(b.inFlight, key)
		}
		b.mu.Unlock()
		cancel()
	}
	return ctx, done, true
}

// IsBusy reports whether an operation is running for key.
func (b *Busy) IsBusy(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, busy := b.inFlight[key]
	return busy
}

// Cancel cancels the operation running for key, if any. The key stays busy
// until the operation calls done.
func (b *Busy) Cancel(key string) {
	b.mu.Lock()
	f := b.inFlight[key]
	b.mu.Unlock()
	if f != nil {
		f.cancel()
	}
}

// CancelAll cancels every in-flight operation.
func (b *Busy) CancelAll() {
	b.mu.Lock()
	flights := make([]*flight, 0, len(b.inFlight))
	for _, f := range b.inFlight {
		flights = append(flights, f)
	}
	b.mu.Unlock()
	for _, f := range flights {
		f.cancel()
	}
}

// Active returns the busy keys in sorted order.
func (b *Busy) Active() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]string, 0, len(b.inFlight))
	for k := range b.inFlight {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
