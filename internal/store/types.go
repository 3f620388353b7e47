package store

// StoredEntry is the persistence wrapper for one record: the primary key is
// the record id and the payload is its compressed serialized form. The store
// never holds two entries with the same key; writes overwrite in place.
type StoredEntry struct {
	Key     string
	Payload string
}
