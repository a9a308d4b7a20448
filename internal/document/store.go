package document

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

// Subscriber is notified after every successful replacement, in version order.
// Subscribers may read the store but must not write to it.
type Subscriber func(doc types.Document, version uint64)

// Clearer removes the persisted snapshot when the document is reset.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Store is the single update point of the editor. It holds the current document
// and serializes every replacement; consumers read clones and never observe
// partial edits.
type Store struct {
	writeMu sync.Mutex // serializes Replace/Update including subscriber notification

	stateMu sync.RWMutex
	doc     types.Document
	version uint64

	subMu   sync.Mutex
	subs    []subscription
	nextSub int

	clearer Clearer
}

type subscription struct {
	id int
	fn Subscriber
}

// Option configures a Store.
type Option func(*Store)

// WithClearer sets the snapshot remover used by Reset.
func WithClearer(c Clearer) Option {
	return func(s *Store) {
		s.clearer = c
	}
}

// NewStore creates a store holding initial.
func NewStore(initial types.Document, opts ...Option) *Store {
	s := &Store{doc: initial.Clone()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns a copy of the current document.
func (s *Store) Current() types.Document {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.doc.Clone()
}

// Version returns the number of replacements applied so far.
func (s *Store) Version() uint64 {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.version
}

// Replace makes doc the current document and notifies subscribers.
func (s *Store) Replace(doc types.Document) error {
	_, err := s.Update(ReplaceWith(doc))
	return err
}

// Update computes the next document from the current one and replaces it.
// A failing edit or an invalid result leaves the store unchanged.
func (s *Store) Update(edit Edit) (types.Document, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, err := edit(s.Current())
	if err != nil {
		return s.Current(), err
	}
	if err := next.Validate(); err != nil {
		return s.Current(), &ValidationError{Message: "edit produced an invalid document", Cause: err}
	}

	s.stateMu.Lock()
	s.doc = next.Clone()
	s.version++
	version := s.version
	s.stateMu.Unlock()

	for _, sub := range s.subscribers() {
		sub.fn(next.Clone(), version)
	}
	return next, nil
}

// Subscribe registers fn and returns a function that unregisters it.
func (s *Store) Subscribe(fn Subscriber) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) subscribers() []subscription {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	return append([]subscription(nil), s.subs...)
}

// Reset returns the document to its empty initial state and clears the
// persisted snapshot. It does nothing unless confirmed is true.
func (s *Store) Reset(ctx context.Context, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}
	if err := s.Replace(types.Empty()); err != nil {
		return false, err
	}
	if s.clearer != nil {
		if err := s.clearer.Clear(ctx); err != nil {
			return true, fmt.Errorf("failed to clear snapshot: %w", err)
		}
	}
	return true, nil
}
