package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_InvalidURL(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := Connect(ctx, "://not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestCreateSnapshotsTableStatement(t *testing.T) {
	assert.Contains(t, createSnapshotsTable, "resume_snapshots")
	assert.Contains(t, createSnapshotsTable, "key        TEXT PRIMARY KEY")
	assert.Contains(t, createSnapshotsTable, "JSONB")
}

func TestClose_NilPool(t *testing.T) {
	db := &DB{}
	assert.NotPanics(t, db.Close)
}
