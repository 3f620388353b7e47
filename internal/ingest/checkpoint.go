package ingest

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/chatvault/chatvault/internal/store"
)

// Checkpoints manages ingestion bookkeeping in the archive_state table:
// batch and record counters plus the last applied-batch timestamp. None of
// it drives behavior; it exists so the silent-drop paths stay observable.
type Checkpoints struct {
	db *store.DB
}

// NewCheckpoints creates a checkpoint helper over an open store connection.
func NewCheckpoints(db *store.DB) *Checkpoints {
	return &Checkpoints{db: db}
}

// Set stores a checkpoint value.
func (c *Checkpoints) Set(key, value string) error {
	now := time.Now().UnixMilli()
	_, err := c.db.Exec(`
		INSERT INTO archive_state (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, now)
	return err
}

// Get retrieves a checkpoint value, "" when unset.
func (c *Checkpoints) Get(key string) (string, error) {
	var value string
	err := c.db.QueryRow(`SELECT value FROM archive_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Incr adds delta to an integer checkpoint.
func (c *Checkpoints) Incr(key string, delta int64) error {
	now := time.Now().UnixMilli()
	_, err := c.db.Exec(`
		INSERT INTO archive_state (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = CAST(CAST(archive_state.value AS INTEGER) + ? AS TEXT),
			updated_at = excluded.updated_at`,
		key, strconv.FormatInt(delta, 10), now, delta)
	return err
}

// RecordBatch updates the counters for one applied batch.
func (c *Checkpoints) RecordBatch(records int) error {
	if err := c.Incr("batches_ingested", 1); err != nil {
		return err
	}
	if err := c.Incr("records_ingested", int64(records)); err != nil {
		return err
	}
	return c.Set("last_batch_at", strconv.FormatInt(time.Now().UnixMilli(), 10))
}
