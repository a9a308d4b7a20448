package storage

import (
	"context"
	"sync"
	"time"

	"github.com/jonathan/resume-builder/internal/document"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// saveTimeout bounds a single autosave write.
const saveTimeout = 10 * time.Second

// Autosaver writes the latest document to its snapshot after every change.
// Writes happen on a background goroutine so a slow backend never holds up
// the store. When several changes arrive during a write only the newest is
// saved next.
type Autosaver struct {
	snaps  *Snapshots
	logger *zap.Logger
	cancel func()

	mu      sync.Mutex
	pending *types.Document

	wake chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// Autosave subscribes to store and starts saving. Save failures are logged
// and never reach the editor. Call Close to flush and stop.
func Autosave(store *document.Store, snaps *Snapshots, logger *zap.Logger) *Autosaver {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Autosaver{
		snaps:  snaps,
		logger: logger,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	a.cancel = store.Subscribe(a.enqueue)

	a.wg.Add(1)
	go a.run()
	return a
}

func (a *Autosaver) enqueue(doc types.Document, _ uint64) {
	a.mu.Lock()
	a.pending = &doc
	a.mu.Unlock()

	select {
	case a.wake <- struct{}{}:
	default:
	}
}

func (a *Autosaver) run() {
	defer a.wg.Done()
	for {
		select {
		case <-a.wake:
			a.flush()
		case <-a.done:
			a.flush()
			return
		}
	}
}

func (a *Autosaver) flush() {
	a.mu.Lock()
	doc := a.pending
	a.pending = nil
	a.mu.Unlock()
	if doc == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := a.snaps.Save(ctx, *doc); err != nil {
		a.logger.Warn("autosave failed",
			zap.String("backend", a.snaps.Backend().Name()),
			zap.Error(err),
		)
	}
}

// Close unsubscribes from the store, writes any pending change and waits for
// the background goroutine to exit.
func (a *Autosaver) Close() {
	a.once.Do(func() {
		a.cancel()
		close(a.done)
		a.wg.Wait()
	})
}
