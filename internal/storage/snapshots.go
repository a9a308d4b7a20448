package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	"go.uber.org/zap"
)

// Observer receives the outcome of every snapshot operation.
type Observer interface {
	ObserveSnapshot(operation, backend string, err error)
}

// Snapshots loads and saves the document through a Backend.
type Snapshots struct {
	backend  Backend
	logger   *zap.Logger
	observer Observer
}

// SnapshotOption configures Snapshots.
type SnapshotOption func(*Snapshots)

// WithLogger sets the logger used for load warnings.
func WithLogger(l *zap.Logger) SnapshotOption {
	return func(s *Snapshots) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver reports operation outcomes, typically to metrics.
func WithObserver(o Observer) SnapshotOption {
	return func(s *Snapshots) {
		s.observer = o
	}
}

// NewSnapshots wraps backend.
func NewSnapshots(backend Backend, opts ...SnapshotOption) *Snapshots {
	s := &Snapshots{backend: backend, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backend returns the underlying backend.
func (s *Snapshots) Backend() Backend {
	return s.backend
}

// Load reads and decodes the stored snapshot. It returns ErrNotFound when no
// snapshot exists and a *LoadError when one exists but is unusable.
func (s *Snapshots) Load(ctx context.Context) (types.Document, error) {
	data, err := s.backend.Load(ctx)
	s.observe("load", err)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return types.Document{}, ErrNotFound
		}
		return types.Document{}, &LoadError{Backend: s.backend.Name(), Message: "backend read failed", Cause: err}
	}
	doc, err := Decode(data)
	if err != nil {
		return types.Document{}, &LoadError{Backend: s.backend.Name(), Message: "snapshot is not a valid document", Cause: err}
	}
	return doc, nil
}

// LoadOrEmpty returns the stored document, or the empty document when the
// snapshot is absent or cannot be used. It never fails.
func (s *Snapshots) LoadOrEmpty(ctx context.Context) types.Document {
	doc, err := s.Load(ctx)
	if err == nil {
		return doc
	}
	if errors.Is(err, ErrNotFound) {
		s.logger.Debug("no snapshot found, starting empty", zap.String("backend", s.backend.Name()))
	} else {
		s.logger.Warn("ignoring unusable snapshot, starting empty",
			zap.String("backend", s.backend.Name()),
			zap.Error(err),
		)
	}
	return types.Empty()
}

// Save encodes doc and writes it to the backend.
func (s *Snapshots) Save(ctx context.Context, doc types.Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	err = s.backend.Save(ctx, data)
	s.observe("save", err)
	return err
}

// Clear removes the stored snapshot. Snapshots satisfies document.Clearer.
func (s *Snapshots) Clear(ctx context.Context) error {
	err := s.backend.Clear(ctx)
	s.observe("clear", err)
	return err
}

func (s *Snapshots) observe(op string, err error) {
	if s.observer == nil {
		return
	}
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	s.observer.ObserveSnapshot(op, s.backend.Name(), err)
}

// Encode serializes doc in the snapshot format.
func Encode(doc types.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot. The data must match the document schema, and the
// normalized result must pass Document.Validate.
func Decode(data []byte) (types.Document, error) {
	if !json.Valid(data) {
		return types.Document{}, fmt.Errorf("snapshot is not valid JSON")
	}
	if err := schemas.ValidateDocument(data); err != nil {
		return types.Document{}, err
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return types.Document{}, fmt.Errorf("failed to decode document: %w", err)
	}
	doc = doc.Normalize()
	if err := doc.Validate(); err != nil {
		return types.Document{}, err
	}
	return doc, nil
}
