// Package storage persists the resume document as a single JSON snapshot on
// the local filesystem, in PostgreSQL or in an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// SnapshotKey names the stored snapshot in every backend.
const SnapshotKey = "pratResumeData"

// ErrNotFound is returned by Backend.Load when no snapshot has been saved.
var ErrNotFound = errors.New("snapshot not found")

// Backend stores the serialized document.
type Backend interface {
	// Name identifies the backend in logs and metrics.
	Name() string
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	// Clear removes the snapshot. Clearing an absent snapshot is not an error.
	Clear(ctx context.Context) error
}

// LoadError reports a snapshot that exists but cannot be used.
type LoadError struct {
	Backend string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error (%s): %s: %v", e.Backend, e.Message, e.Cause)
	}
	return fmt.Sprintf("load error (%s): %s", e.Backend, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
