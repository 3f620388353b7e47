package transport

import (
	"context"
	"time"

	archivev1 "github.com/chatvault/chatvault/gen/archive/v1"
	"github.com/chatvault/chatvault/internal/record"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const sendTimeout = 10 * time.Second

// Sender is the emitting half of the batch transport. Delivery is
// fire-and-forget: one push per observed response, no acknowledgment
// awaited, failures logged and dropped.
type Sender struct {
	conn   *grpc.ClientConn
	client archivev1.IngestServiceClient
	origin string
	logger *zap.Logger
}

// NewSender dials the archive daemon's Unix domain socket. origin identifies
// this sender to the receiver's origin check (the session name).
func NewSender(socketPath, origin string, logger *zap.Logger) (*Sender, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, err
	}
	return &Sender{
		conn:   conn,
		client: archivev1.NewIngestServiceClient(conn),
		origin: origin,
		logger: logger,
	}, nil
}

// Send pushes a batch on a background goroutine and returns immediately.
// Empty batches are not sent.
func (s *Sender) Send(batch record.Batch) {
	if len(batch) == 0 {
		return
	}
	req := &archivev1.PushBatchRequest{
		Type:    BatchType,
		Origin:  s.origin,
		Entries: BatchToEntries(batch),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()
		resp, err := s.client.PushBatch(ctx, req)
		if err != nil {
			s.logger.Debug("batch push failed", zap.Error(err), zap.Int("entries", len(req.Entries)))
			return
		}
		if !resp.GetAccepted() {
			s.logger.Debug("batch dropped by receiver", zap.Int("entries", len(req.Entries)))
		}
	}()
}

// Close releases the client connection.
func (s *Sender) Close() error {
	return s.conn.Close()
}
