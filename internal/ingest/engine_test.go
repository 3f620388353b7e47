package ingest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/chatvault/chatvault/internal/bus"
	"github.com/chatvault/chatvault/internal/record"
	"github.com/chatvault/chatvault/internal/status"
	"github.com/chatvault/chatvault/internal/store"
	"go.uber.org/zap"
)

func testEngine(t *testing.T) (*Engine, *store.Handle, *bus.Bus, *status.Machine) {
	t.Helper()
	h := store.NewHandle(filepath.Join(t.TempDir(), "archive.db"))
	t.Cleanup(func() { _ = h.Close() })
	b := bus.New()
	m := status.NewMachine(b)
	if err := m.Transition(status.Ready); err != nil {
		t.Fatal(err)
	}
	return NewEngine(h, b, m, zap.NewNop()), h, b, m
}

func mkBatch(ids ...string) record.Batch {
	batch := make(record.Batch, len(ids))
	for _, id := range ids {
		rec := &record.SlimRecord{
			ID: id, GroupID: "g1", Text: "text " + id, CreatedAt: 1700000000,
			SenderID: "u1", SenderName: "Alice",
		}
		batch[rec.Key()] = rec
	}
	return batch
}

func TestIngestBatch(t *testing.T) {
	e, h, b, _ := testEngine(t)

	ch, unsub := b.Subscribe("archive.", 4)
	defer unsub()

	if err := e.IngestBatch(mkBatch("m1", "m2")); err != nil {
		t.Fatalf("IngestBatch() error = %v", err)
	}

	db, err := h.DB()
	if err != nil {
		t.Fatal(err)
	}
	n, err := db.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}

	select {
	case evt := <-ch:
		if evt.Kind != "archive.batch_ingested" {
			t.Errorf("Kind = %q", evt.Kind)
		}
		counts, ok := evt.Payload.(map[string]int)
		if !ok || counts["records"] != 2 {
			t.Errorf("Payload = %v", evt.Payload)
		}
	case <-time.After(time.Second):
		t.Fatal("no ingested event published")
	}
}

// Replaying the same batch must not grow the store.
func TestIngestBatchIdempotent(t *testing.T) {
	e, h, _, _ := testEngine(t)

	batch := mkBatch("m1", "m2")
	for i := 0; i < 3; i++ {
		if err := e.IngestBatch(batch); err != nil {
			t.Fatalf("IngestBatch() #%d error = %v", i+1, err)
		}
	}

	db, _ := h.DB()
	n, err := db.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("Count() = %d, want 2", n)
	}
}

func TestIngestBatchEmpty(t *testing.T) {
	e, _, b, _ := testEngine(t)
	ch, unsub := b.Subscribe("archive.", 4)
	defer unsub()

	if err := e.IngestBatch(record.Batch{}); err != nil {
		t.Fatalf("IngestBatch(empty) error = %v", err)
	}
	select {
	case evt := <-ch:
		t.Errorf("event published for empty batch: %q", evt.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestEngineConsumesBusEvents(t *testing.T) {
	e, h, b, _ := testEngine(t)

	e.Start(context.Background())
	defer e.Stop()

	done, unsub := b.Subscribe("archive.", 4)
	defer unsub()

	b.Publish(bus.Event{
		Kind:      "capture.batch",
		Timestamp: time.Now(),
		Payload:   mkBatch("m1"),
	})

	select {
	case evt := <-done:
		if evt.Kind != "archive.batch_ingested" {
			t.Errorf("Kind = %q", evt.Kind)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("batch never ingested off the bus")
	}

	db, _ := h.DB()
	n, _ := db.Count()
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}
}

func TestEngineIgnoresForeignPayloads(t *testing.T) {
	e, h, b, _ := testEngine(t)
	e.Start(context.Background())
	defer e.Stop()

	b.Publish(bus.Event{Kind: "capture.batch", Payload: "not a batch"})
	b.Publish(bus.Event{Kind: "capture.other", Payload: mkBatch("m1")})

	time.Sleep(100 * time.Millisecond)
	db, err := h.DB()
	if err != nil {
		t.Fatal(err)
	}
	n, _ := db.Count()
	if n != 0 {
		t.Errorf("Count() = %d, want 0", n)
	}
}

func TestCheckpoints(t *testing.T) {
	_, h, _, _ := testEngine(t)
	db, err := h.DB()
	if err != nil {
		t.Fatal(err)
	}
	cp := NewCheckpoints(db)

	if v, err := cp.Get("missing"); err != nil || v != "" {
		t.Errorf("Get(missing) = %q, %v", v, err)
	}

	if err := cp.Set("k", "v1"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cp.Set("k", "v2"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	if v, _ := cp.Get("k"); v != "v2" {
		t.Errorf("Get(k) = %q, want v2", v)
	}

	for i := 0; i < 3; i++ {
		if err := cp.Incr("n", 2); err != nil {
			t.Fatalf("Incr() error = %v", err)
		}
	}
	if v, _ := cp.Get("n"); v != "6" {
		t.Errorf("Get(n) = %q, want 6", v)
	}
}

func TestCheckpointsRecordBatch(t *testing.T) {
	_, h, _, _ := testEngine(t)
	db, err := h.DB()
	if err != nil {
		t.Fatal(err)
	}
	cp := NewCheckpoints(db)

	if err := cp.RecordBatch(5); err != nil {
		t.Fatalf("RecordBatch() error = %v", err)
	}
	if err := cp.RecordBatch(3); err != nil {
		t.Fatalf("RecordBatch() error = %v", err)
	}

	if v, _ := cp.Get("batches_ingested"); v != "2" {
		t.Errorf("batches_ingested = %q, want 2", v)
	}
	if v, _ := cp.Get("records_ingested"); v != "8" {
		t.Errorf("records_ingested = %q, want 8", v)
	}
	if v, _ := cp.Get("last_batch_at"); v == "" {
		t.Error("last_batch_at unset")
	}
}
