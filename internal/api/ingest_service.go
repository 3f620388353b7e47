package api

import (
	"context"
	"time"

	archivev1 "github.com/chatvault/chatvault/gen/archive/v1"
	"github.com/chatvault/chatvault/internal/bus"
	"github.com/chatvault/chatvault/internal/record"
	"github.com/chatvault/chatvault/internal/transport"
	"go.uber.org/zap"
)

// IngestService is the receiving half of the batch transport. The socket it
// listens on is the isolation boundary, so everything arriving here is
// treated as adversarial: envelopes failing the type or origin check, and
// entries whose key disagrees with their record id, are dropped silently.
type IngestService struct {
	archivev1.UnimplementedIngestServiceServer

	session string
	bus     *bus.Bus
	logger  *zap.Logger
}

// NewIngestService creates the ingest receiver for a session.
func NewIngestService(session string, b *bus.Bus, logger *zap.Logger) *IngestService {
	return &IngestService{session: session, bus: b, logger: logger}
}

func (s *IngestService) PushBatch(_ context.Context, req *archivev1.PushBatchRequest) (*archivev1.PushBatchResponse, error) {
	if req.GetType() != transport.BatchType || req.GetOrigin() != s.session {
		s.logger.Debug("dropping mistagged batch envelope",
			zap.String("type", req.GetType()),
			zap.String("origin", req.GetOrigin()))
		return &archivev1.PushBatchResponse{Accepted: false}, nil
	}

	batch := make(record.Batch, len(req.GetEntries()))
	for _, entry := range req.GetEntries() {
		if entry.GetRecord() == nil {
			continue
		}
		rec := transport.RecordFromProto(entry.GetRecord())
		if rec.ID == "" || entry.GetKey() != rec.Key() {
			s.logger.Debug("dropping malformed batch entry", zap.String("key", entry.GetKey()))
			continue
		}
		batch[rec.Key()] = rec
	}

	if len(batch) > 0 {
		s.bus.Publish(bus.Event{
			Kind:      "capture.batch",
			Timestamp: time.Now(),
			Payload:   batch,
		})
	}

	return &archivev1.PushBatchResponse{Accepted: true}, nil
}
