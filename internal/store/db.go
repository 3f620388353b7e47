package store

import (
	"database/sql"
	"fmt"

	"github.com/chatvault/chatvault/internal/codec"
	_ "github.com/mattn/go-sqlite3"
)

// DB wraps a SQLite database connection for the app-owned archive.db,
// together with the codec used to pack records into their stored payload.
type DB struct {
	*sql.DB

	codec *codec.Codec

	// OnCorrupt is invoked for stored entries that fail to decompress or
	// deserialize during reads. Read paths skip such entries; they never
	// abort iteration. Nil means corrupt entries are skipped quietly.
	OnCorrupt func(key string, err error)
}

// Open creates a new SQLite connection with WAL mode and recommended pragmas.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Verify connection.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	c, err := codec.New()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{DB: db, codec: c}, nil
}

func (db *DB) corrupt(key string, err error) {
	if db.OnCorrupt != nil {
		db.OnCorrupt(key, err)
	}
}
