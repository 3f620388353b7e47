package capture

import (
	"bytes"
	"io"
	"mime"
	"net/http"

	"go.uber.org/zap"
)

// maxObservedBody bounds the per-response copy kept for observation. Bodies
// larger than this pass through untouched and are not observed.
const maxObservedBody = 4 << 20

// Observer receives the buffered body of a relevant response together with
// the request URL it answered. It runs on its own goroutine, off the
// caller's read path.
type Observer func(payload []byte, sourceURL string)

// Interceptor is an http.RoundTripper that forwards every request to its
// base transport unchanged and, for relevant JSON responses, tees the body
// into a bounded buffer handed to the observer once the caller finishes the
// stream. The caller's response is byte-identical and never delayed; any
// failure on the observation path is swallowed.
type Interceptor struct {
	base     http.RoundTripper
	observer Observer
	logger   *zap.Logger
}

// NewInterceptor wraps base with response observation. A nil base uses
// http.DefaultTransport.
func NewInterceptor(base http.RoundTripper, observer Observer, logger *zap.Logger) *Interceptor {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Interceptor{base: base, observer: observer, logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (t *Interceptor) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil || resp == nil || resp.Body == nil {
		return resp, err
	}
	if !t.shouldObserve(req, resp) {
		return resp, nil
	}

	resp.Body = &teeBody{
		inner:     resp.Body,
		sourceURL: req.URL.String(),
		t:         t,
	}
	return resp, nil
}

func (t *Interceptor) shouldObserve(req *http.Request, resp *http.Response) bool {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false
	}
	if !Relevant(req.URL) {
		return false
	}
	ct, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || ct != "application/json" {
		return false
	}
	return true
}

// observe hands a buffered body to the observer. Panics in the observer must
// never reach the transport's caller.
func (t *Interceptor) observe(payload []byte, sourceURL string) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Warn("observer panic", zap.Any("panic", r), zap.String("url", sourceURL))
		}
	}()
	t.observer(payload, sourceURL)
}

// teeBody duplicates a response body into a bounded buffer while the caller
// reads it. The observer fires exactly once, after EOF or Close, and only if
// the full body fit the buffer.
type teeBody struct {
	inner     io.ReadCloser
	sourceURL string
	t         *Interceptor

	buf       bytes.Buffer
	truncated bool
	sawEOF    bool
	fired     bool
}

func (b *teeBody) Read(p []byte) (int, error) {
	n, err := b.inner.Read(p)
	if n > 0 && !b.truncated {
		if b.buf.Len()+n > maxObservedBody {
			b.truncated = true
			b.buf.Reset()
		} else {
			b.buf.Write(p[:n])
		}
	}
	if err == io.EOF {
		b.sawEOF = true
		b.fire()
	}
	return n, err
}

func (b *teeBody) Close() error {
	err := b.inner.Close()
	// A caller that closes without draining only observed a partial body;
	// nothing useful to parse in that case.
	if b.sawEOF {
		b.fire()
	}
	return err
}

func (b *teeBody) fire() {
	if b.fired || b.truncated || b.buf.Len() == 0 {
		return
	}
	b.fired = true
	payload := append([]byte(nil), b.buf.Bytes()...)
	go b.t.observe(payload, b.sourceURL)
}
