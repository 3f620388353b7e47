package capture

import (
	"context"

	"github.com/chatvault/chatvault/internal/config"
	"github.com/chatvault/chatvault/internal/logging"
	"github.com/chatvault/chatvault/internal/normalize"
	"github.com/chatvault/chatvault/internal/session"
	"github.com/chatvault/chatvault/internal/transport"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved session configuration for the capture proxy.
type Params struct {
	SessionName string
	SocketPath  string // optional override for testing; empty = use default
}

// Module returns the fx module for the capture proxy.
func Module(p Params) fx.Option {
	return fx.Module("capture",
		fx.Supply(p),
		fx.Provide(
			provideLogger,
			provideConfig,
			provideSender,
			provideInterceptor,
			provideProxy,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideLogger(p Params) (*zap.Logger, error) {
	if err := session.EnsureDir(p.SessionName); err != nil {
		return nil, err
	}
	return logging.New(session.CaptureLogPath(p.SessionName), p.SessionName)
}

func provideConfig() *config.Config {
	cfg, err := config.Load(session.ConfigPath())
	if err != nil {
		return config.Default()
	}
	return cfg
}

func provideSender(p Params, logger *zap.Logger) (*transport.Sender, error) {
	socketPath := p.SocketPath
	if socketPath == "" {
		socketPath = session.SocketPath(p.SessionName)
	}
	return transport.NewSender(socketPath, p.SessionName, logger)
}

func provideInterceptor(sender *transport.Sender, logger *zap.Logger) *Interceptor {
	observer := func(payload []byte, sourceURL string) {
		batch := normalize.Normalize(payload, sourceURL)
		if len(batch) == 0 {
			return
		}
		logger.Debug("observed batch", zap.Int("records", len(batch)), zap.String("url", sourceURL))
		sender.Send(batch)
	}
	return NewInterceptor(nil, observer, logger)
}

func provideProxy(cfg *config.Config, interceptor *Interceptor, logger *zap.Logger) (*Proxy, error) {
	return NewProxy(cfg.Capture.Listen, cfg.Capture.Upstream, interceptor, logger)
}

func registerLifecycle(lc fx.Lifecycle, proxy *Proxy, sender *transport.Sender, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := proxy.Start(); err != nil {
					logger.Error("capture proxy error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := proxy.Stop(ctx); err != nil {
				logger.Warn("error stopping proxy", zap.Error(err))
			}
			if err := sender.Close(); err != nil {
				logger.Warn("error closing sender", zap.Error(err))
			}
			logger.Info("capture proxy stopped")
			return nil
		},
	})
}
