package api

import (
	"context"
	"errors"

	"github.com/google/uuid"

	archivev1 "github.com/chatvault/chatvault/gen/archive/v1"
	"github.com/chatvault/chatvault/internal/bus"
	"github.com/chatvault/chatvault/internal/export"
	"github.com/chatvault/chatvault/internal/status"
	"github.com/chatvault/chatvault/internal/store"
	"github.com/chatvault/chatvault/internal/transport"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// ArchiveService implements the consumer-facing read API: aggregate count,
// first valid sample, export, status, and a live event stream. These are the
// only entry points reading consumers get into the archive.
type ArchiveService struct {
	archivev1.UnimplementedArchiveServiceServer

	session  string
	handle   *store.Handle
	machine  *status.Machine
	exporter *export.Exporter
	bus      *bus.Bus
}

// NewArchiveService creates the read API backed by the store handle.
func NewArchiveService(session string, h *store.Handle, m *status.Machine, e *export.Exporter, b *bus.Bus) *ArchiveService {
	return &ArchiveService{session: session, handle: h, machine: m, exporter: e, bus: b}
}

func (s *ArchiveService) Status(_ context.Context, _ *archivev1.StatusRequest) (*archivev1.StatusResponse, error) {
	db, err := s.handle.DB()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Unavailable, "open store: %v", err)
	}
	total, err := db.Count()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "count records: %v", err)
	}
	return &archivev1.StatusResponse{
		Session:      s.session,
		State:        string(s.machine.Current()),
		TotalRecords: total,
	}, nil
}

func (s *ArchiveService) Count(_ context.Context, _ *archivev1.CountRequest) (*archivev1.CountResponse, error) {
	db, err := s.handle.DB()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Unavailable, "open store: %v", err)
	}
	total, err := db.Count()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "count records: %v", err)
	}
	return &archivev1.CountResponse{Total: total}, nil
}

func (s *ArchiveService) Sample(_ context.Context, _ *archivev1.SampleRequest) (*archivev1.SampleResponse, error) {
	db, err := s.handle.DB()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Unavailable, "open store: %v", err)
	}
	rec, err := db.FirstValidSample()
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "sample records: %v", err)
	}
	if rec == nil {
		return &archivev1.SampleResponse{Found: false}, nil
	}
	return &archivev1.SampleResponse{
		Record: transport.RecordToProto(rec),
		Found:  true,
	}, nil
}

func (s *ArchiveService) Export(_ context.Context, req *archivev1.ExportRequest) (*archivev1.ExportResponse, error) {
	path, n, err := s.exporter.Export(req.GetOutputDir())
	if errors.Is(err, export.ErrNothingToExport) {
		return nil, grpcstatus.Error(codes.FailedPrecondition, "nothing to export")
	}
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "export: %v", err)
	}
	return &archivev1.ExportResponse{Path: path, Records: n}, nil
}

func (s *ArchiveService) WatchEvents(_ *archivev1.WatchEventsRequest, stream archivev1.ArchiveService_WatchEventsServer) error {
	ch, unsub := s.bus.Subscribe("archive.", 256)
	defer unsub()

	for {
		select {
		case evt := <-ch:
			if err := stream.Send(&archivev1.EventEnvelope{
				EventId:          uuid.New().String(),
				Session:          s.session,
				OccurredAtUnixMs: evt.Timestamp.UnixMilli(),
				Kind:             evt.Kind,
			}); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}
