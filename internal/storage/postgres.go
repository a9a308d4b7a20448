package storage

import (
	"context"

	"github.com/jonathan/resume-builder/internal/db"
)

// snapshotStore is the part of db.DB used by PostgresBackend.
type snapshotStore interface {
	GetSnapshot(ctx context.Context, key string) (*db.Snapshot, error)
	PutSnapshot(ctx context.Context, key string, content []byte) error
	DeleteSnapshot(ctx context.Context, key string) error
}

// PostgresBackend keeps the snapshot in the resume_snapshots table.
type PostgresBackend struct {
	db  snapshotStore
	key string
}

// NewPostgresBackend returns a backend storing the snapshot through database.
// The caller owns the connection and must have run EnsureSchema.
func NewPostgresBackend(database *db.DB) *PostgresBackend {
	return &PostgresBackend{db: database, key: SnapshotKey}
}

// Name implements Backend.
func (b *PostgresBackend) Name() string { return "postgres" }

// Load implements Backend.
func (b *PostgresBackend) Load(ctx context.Context) ([]byte, error) {
	snap, err := b.db.GetSnapshot(ctx, b.key)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, ErrNotFound
	}
	return snap.Content, nil
}

// Save implements Backend.
func (b *PostgresBackend) Save(ctx context.Context, data []byte) error {
	return b.db.PutSnapshot(ctx, b.key, data)
}

// Clear implements Backend.
func (b *PostgresBackend) Clear(ctx context.Context) error {
	return b.db.DeleteSnapshot(ctx, b.key)
}
