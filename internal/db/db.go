// Package db provides PostgreSQL access for resume snapshots.
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const createSnapshotsTable = `CREATE TABLE IF NOT EXISTS resume_snapshots (
	key        TEXT PRIMARY KEY,
	content    JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the snapshot table if it does not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, createSnapshotsTable); err != nil {
		return fmt.Errorf("failed to create resume_snapshots table: %w", err)
	}
	return nil
}

// Snapshot is one stored document.
type Snapshot struct {
	Key       string
	Content   []byte
	UpdatedAt time.Time
}

// PutSnapshot stores content under key, replacing any previous snapshot.
func (db *DB) PutSnapshot(ctx context.Context, key string, content []byte) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO resume_snapshots (key, content)
		 VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET content = $2, updated_at = NOW()`,
		key, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}

// GetSnapshot retrieves the snapshot stored under key. It returns nil without
// an error when there is none.
func (db *DB) GetSnapshot(ctx context.Context, key string) (*Snapshot, error) {
	s := Snapshot{Key: key}
	err := db.pool.QueryRow(ctx,
		`SELECT content, updated_at FROM resume_snapshots WHERE key = $1`,
		key,
	).Scan(&s.Content, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot %s: %w", key, err)
	}
	return &s, nil
}

// DeleteSnapshot removes the snapshot stored under key. Deleting a missing
// snapshot is not an error.
func (db *DB) DeleteSnapshot(ctx context.Context, key string) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM resume_snapshots WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}
	return nil
}
