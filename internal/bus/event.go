package bus

import "time"

// Event represents a domain event published on the bus.
//
// Kinds used across the daemon:
//   - capture.batch: a validated inbound batch (Payload record.Batch)
//   - archive.batch_ingested: a batch landed in the store
//   - archive.status_changed: daemon state transition
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}
