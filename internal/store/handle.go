package store

import (
	"fmt"
	"sync"
)

// Handle is the single shared entry point to the store: a lazily opened,
// cached connection. The first operation to need the store pays the open and
// migration cost; concurrent first uses serialize on the mutex and observe
// the one cached connection. A failed open is returned to its caller and not
// cached, so a later operation retries it.
type Handle struct {
	path string

	// OnCorrupt is copied onto the connection at open time; set it before
	// first use.
	OnCorrupt func(key string, err error)

	mu sync.Mutex
	db *DB
}

// NewHandle creates a handle for the archive database at path. The database
// is not touched until the first DB call.
func NewHandle(path string) *Handle {
	return &Handle{path: path}
}

// DB returns the cached connection, opening and migrating the database on
// first use.
func (h *Handle) DB() (*DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db != nil {
		return h.db, nil
	}

	db, err := Open(h.path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	db.OnCorrupt = h.OnCorrupt
	h.db = db
	return h.db, nil
}

// Close closes the cached connection if one was opened.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.db == nil {
		return nil
	}
	err := h.db.Close()
	h.db = nil
	return err
}
