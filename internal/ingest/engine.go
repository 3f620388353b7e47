// Package ingest applies captured batches to the compressed store.
package ingest

import (
	"context"
	"time"

	"github.com/chatvault/chatvault/internal/bus"
	"github.com/chatvault/chatvault/internal/record"
	"github.com/chatvault/chatvault/internal/status"
	"github.com/chatvault/chatvault/internal/store"
	"go.uber.org/zap"
)

// Engine subscribes to "capture.*" bus events and writes each batch to the
// store in one transaction. Batch application is idempotent and order
// independent: keys are record ids and writes are last-writer-wins, so
// replays and reorderings converge to the same store contents.
type Engine struct {
	handle  *store.Handle
	bus     *bus.Bus
	machine *status.Machine
	logger  *zap.Logger
	cancel  context.CancelFunc
}

// NewEngine creates a new ingest engine.
func NewEngine(h *store.Handle, b *bus.Bus, m *status.Machine, logger *zap.Logger) *Engine {
	return &Engine{
		handle:  h,
		bus:     b,
		machine: m,
		logger:  logger,
	}
}

// Start subscribes to inbound capture events on the bus.
func (e *Engine) Start(ctx context.Context) {
	ctx, e.cancel = context.WithCancel(ctx)
	ch, unsub := e.bus.Subscribe("capture.", 256)

	go func() {
		defer unsub()
		for {
			select {
			case evt := <-ch:
				e.handleEvent(evt)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the engine.
func (e *Engine) Stop() {
	if e.cancel != nil {
		e.cancel()
	}
}

func (e *Engine) handleEvent(evt bus.Event) {
	if evt.Kind != "capture.batch" {
		return
	}
	batch, ok := evt.Payload.(record.Batch)
	if !ok {
		return
	}
	if err := e.IngestBatch(batch); err != nil {
		e.logger.Error("failed to ingest batch", zap.Error(err), zap.Int("records", len(batch)))
		_ = e.machine.Transition(status.Degraded)
		return
	}
	_ = e.machine.Transition(status.Ready)
}

// IngestBatch writes one batch through the store handle (idempotent).
func (e *Engine) IngestBatch(batch record.Batch) error {
	if len(batch) == 0 {
		return nil
	}

	db, err := e.handle.DB()
	if err != nil {
		return err
	}
	if err := db.PutBatch(batch); err != nil {
		return err
	}

	cp := NewCheckpoints(db)
	if err := cp.RecordBatch(len(batch)); err != nil {
		// Checkpoint bookkeeping is advisory; the batch itself landed.
		e.logger.Warn("failed to update checkpoints", zap.Error(err))
	}

	e.bus.Publish(bus.Event{
		Kind:      "archive.batch_ingested",
		Timestamp: time.Now(),
		Payload: map[string]int{
			"records": len(batch),
		},
	})

	e.logger.Info("batch ingested", zap.Int("records", len(batch)))
	return nil
}
