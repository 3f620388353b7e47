package store

import (
	"database/sql"
	"errors"
	"fmt"
	"iter"

	"github.com/chatvault/chatvault/internal/record"
)

// PutBatch compresses and upserts every record in the batch inside a single
// transaction: either the whole batch lands or none of it does. Writes are
// keyed by record id and last-writer-wins, so replaying a batch, or applying
// batches out of order, converges to the same store contents.
func (db *DB) PutBatch(batch record.Batch) error {
	if len(batch) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, rec := range batch {
		payload, err := db.codec.Compress(rec)
		if err != nil {
			return fmt.Errorf("compress record %s: %w", rec.ID, err)
		}
		if _, err := tx.Exec(`
			INSERT INTO records (key, payload)
			VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET payload = excluded.payload`,
			rec.ID, payload); err != nil {
			return fmt.Errorf("upsert record %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

// Count returns the total number of stored entries, valid or not. It never
// touches payloads.
func (db *DB) Count() (int64, error) {
	var n int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// All returns a lazy sequence over every stored entry in key order. Entries
// that fail to decompress or deserialize are reported to OnCorrupt and
// skipped; iteration continues. A query or row error is yielded as the final
// (nil, err) pair. Each call re-opens iteration from the start.
func (db *DB) All() iter.Seq2[*record.SlimRecord, error] {
	return func(yield func(*record.SlimRecord, error) bool) {
		rows, err := db.Query(`SELECT key, payload FROM records ORDER BY key`)
		if err != nil {
			yield(nil, fmt.Errorf("scan records: %w", err))
			return
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var e StoredEntry
			if err := rows.Scan(&e.Key, &e.Payload); err != nil {
				yield(nil, fmt.Errorf("scan record row: %w", err))
				return
			}
			rec, err := db.codec.Decompress(e.Payload)
			if err != nil {
				db.corrupt(e.Key, err)
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("iterate records: %w", err))
		}
	}
}

// FirstValidSample returns the first entry in key order that decodes
// successfully, or nil if the store is empty or entirely corrupt. Corrupt
// entries are skipped, never surfaced as errors.
func (db *DB) FirstValidSample() (*record.SlimRecord, error) {
	for rec, err := range db.All() {
		if err != nil {
			return nil, err
		}
		return rec, nil
	}
	return nil, nil
}

// Get returns the decoded record for a single key, sql.ErrNoRows absent.
// Corruption of the requested entry is surfaced here since the caller asked
// for that specific record.
func (db *DB) Get(key string) (*record.SlimRecord, error) {
	var payload string
	err := db.QueryRow(`SELECT payload FROM records WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", key, err)
	}
	return db.codec.Decompress(payload)
}
