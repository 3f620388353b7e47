package daemon

import (
	"context"

	"github.com/chatvault/chatvault/internal/api"
	"github.com/chatvault/chatvault/internal/bus"
	"github.com/chatvault/chatvault/internal/config"
	"github.com/chatvault/chatvault/internal/export"
	"github.com/chatvault/chatvault/internal/ingest"
	"github.com/chatvault/chatvault/internal/lock"
	"github.com/chatvault/chatvault/internal/logging"
	"github.com/chatvault/chatvault/internal/session"
	"github.com/chatvault/chatvault/internal/status"
	"github.com/chatvault/chatvault/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved session configuration passed to the fx module.
type Params struct {
	SessionName string
	SocketPath  string // optional override for testing; empty = use default
}

// Module returns the fx module for the archive daemon, composing all
// providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideConfig,
			provideBus,
			provideStateMachine,
			provideLock,
			provideStoreHandle,
			provideExporter,
			provideEngine,
			provideIngestService,
			provideArchiveService,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideLogger(p Params) (*zap.Logger, error) {
	return logging.New(session.LogPath(p.SessionName), p.SessionName)
}

func provideConfig() *config.Config {
	cfg, err := config.Load(session.ConfigPath())
	if err != nil {
		return config.Default()
	}
	return cfg
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideStateMachine(b *bus.Bus) *status.Machine {
	return status.NewMachine(b)
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	logger.Info("acquiring session lock", zap.String("session", p.SessionName))
	l, err := lock.Acquire(session.Dir(p.SessionName))
	if err != nil {
		return nil, err
	}
	logger.Info("session lock acquired")
	return l, nil
}

func provideStoreHandle(p Params, logger *zap.Logger) *store.Handle {
	h := store.NewHandle(session.ArchiveDBPath(p.SessionName))
	h.OnCorrupt = func(key string, err error) {
		logger.Warn("skipping corrupt record", zap.String("key", key), zap.Error(err))
	}
	return h
}

func provideExporter(p Params, cfg *config.Config, h *store.Handle, logger *zap.Logger) *export.Exporter {
	return export.New(h, session.ExportDir(p.SessionName), cfg.Export.Prefix, logger)
}

func provideEngine(h *store.Handle, b *bus.Bus, m *status.Machine, logger *zap.Logger) *ingest.Engine {
	return ingest.NewEngine(h, b, m, logger)
}

func provideIngestService(p Params, b *bus.Bus, logger *zap.Logger) *api.IngestService {
	return api.NewIngestService(p.SessionName, b, logger)
}

func provideArchiveService(p Params, h *store.Handle, m *status.Machine, e *export.Exporter, b *bus.Bus) *api.ArchiveService {
	return api.NewArchiveService(p.SessionName, h, m, e, b)
}

func registerLifecycle(lc fx.Lifecycle, srv *Server, lk *lock.Lock, engine *ingest.Engine, h *store.Handle, machine *status.Machine, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Start ingest engine (subscribes to capture.* bus events).
			engine.Start(context.Background())

			// Start gRPC server in background.
			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()

			// The store opens lazily on first use; the daemon is ready
			// as soon as it is listening.
			_ = machine.Transition(status.Ready)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			engine.Stop()
			srv.Stop(ctx)
			if err := h.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			return nil
		},
	})
}
