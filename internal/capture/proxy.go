package capture

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Proxy is the local reverse proxy fronting the chat API. Clients point at
// its listen address; every response streams back unmodified while the
// interceptor observes relevant ones.
type Proxy struct {
	srv      *http.Server
	listen   string
	upstream *url.URL
	logger   *zap.Logger
}

// NewProxy builds a reverse proxy to upstream using transport for outbound
// requests.
func NewProxy(listen, upstream string, transport http.RoundTripper, logger *zap.Logger) (*Proxy, error) {
	target, err := url.Parse(upstream)
	if err != nil {
		return nil, fmt.Errorf("parse upstream %q: %w", upstream, err)
	}

	rp := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			pr.Out.Host = target.Host
		},
		Transport: transport,
		ErrorLog:  zap.NewStdLog(logger.Named("proxy")),
	}

	return &Proxy{
		srv: &http.Server{
			Addr:              listen,
			Handler:           rp,
			ReadHeaderTimeout: 10 * time.Second,
		},
		listen:   listen,
		upstream: target,
		logger:   logger,
	}, nil
}

// Start begins serving. Blocks until the server stops.
func (p *Proxy) Start() error {
	ln, err := net.Listen("tcp", p.listen)
	if err != nil {
		return fmt.Errorf("listen %s: %w", p.listen, err)
	}
	p.logger.Info("capture proxy listening",
		zap.String("listen", p.listen),
		zap.String("upstream", p.upstream.String()))
	if err := p.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop shuts the proxy down gracefully.
func (p *Proxy) Stop(ctx context.Context) error {
	p.logger.Info("capture proxy stopping")
	return p.srv.Shutdown(ctx)
}
