package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/charkit/charkit/errors"
	"github.com/charkit/charkit/logger"
	"github.com/charkit/charkit/observability"
	"github.com/charkit/charkit/security"
	"github.com/charkit/charkit/version"
)

const defaultFetchTimeout = 30 * time.Second

// URLOption customizes a URL source.
type URLOption func(*urlSource)

// WithTimeout sets the total fetch timeout. Defaults to 30s. Ignored
// when a client is supplied via WithHTTPClient.
func WithTimeout(d time.Duration) URLOption {
	return func(s *urlSource) { s.timeout = d }
}

// WithHeader adds a request header sent on every fetch.
func WithHeader(key, value string) URLOption {
	return func(s *urlSource) { s.headers[key] = value }
}

// WithTLS applies TLS settings to the transport. Ignored when a client
// is supplied via WithHTTPClient.
func WithTLS(cfg *security.TLSConfig) URLOption {
	return func(s *urlSource) { s.tls = cfg }
}

// WithHTTPClient replaces the built-in HTTP client entirely.
func WithHTTPClient(c *http.Client) URLOption {
	return func(s *urlSource) { s.client = c }
}

// WithContext attaches a context to every fetch, for cancellation and
// deadlines beyond the per-request timeout.
func WithContext(ctx context.Context) URLOption {
	return func(s *urlSource) { s.ctx = ctx }
}

// URL returns a Source that fetches rawURL with an HTTP GET on each
// Open. The response body becomes the stream, so closing the stream
// releases the connection. URLs with a file scheme are served from the
// local filesystem without a client.
//
// Transport failures are returned as-is. Error status codes are mapped
// onto the shared failure taxonomy: 404 and 410 report the source as
// missing, 401 and 403 as forbidden, 429 and 5xx as unavailable.
func URL(rawURL string, opts ...URLOption) Source {
	s := &urlSource{
		rawURL:  rawURL,
		timeout: defaultFetchTimeout,
		headers: make(map[string]string),
		ctx:     context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type urlSource struct {
	rawURL  string
	timeout time.Duration
	headers map[string]string
	tls     *security.TLSConfig
	client  *http.Client
	ctx     context.Context
}

func (s *urlSource) Origin() string { return s.rawURL }

func (s *urlSource) Open() (io.ReadCloser, error) {
	u, err := url.Parse(s.rawURL)
	if err != nil {
		return nil, errors.InvalidInput("url", fmt.Sprintf("parse %q: %v", s.rawURL, err)).WithCause(err)
	}
	if u.Scheme == "file" {
		return os.Open(u.Path)
	}

	client, err := s.httpClient()
	if err != nil {
		return nil, err
	}

	// The span covers the request and response headers. Body streaming
	// happens after Open returns and is not part of the fetch.
	ctx, span := observability.StartSpan(s.ctx, observability.SpanURLFetch)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrOrigin, s.rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.rawURL, nil)
	if err != nil {
		return nil, errors.InvalidInput("url", fmt.Sprintf("build request for %q: %v", s.rawURL, err)).WithCause(err)
	}
	req.Header.Set("User-Agent", version.UserAgent())
	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	logger.Get("source").Debug("fetching url", logger.Fields("url", s.rawURL))

	resp, err := client.Do(req)
	if err != nil {
		observability.SetSpanError(ctx, err)
		return nil, err
	}
	observability.SetSpanAttribute(ctx, observability.AttrStatus, resp.StatusCode)
	if appErr := classifyStatus(resp.StatusCode, s.rawURL); appErr != nil {
		_ = resp.Body.Close()
		observability.SetSpanError(ctx, appErr)
		return nil, appErr
	}
	return resp.Body, nil
}

// httpClient builds the client on first use so TLS errors surface at
// Open rather than at construction. The built client is reused across
// reopens to keep connection pooling.
func (s *urlSource) httpClient() (*http.Client, error) {
	if s.client != nil {
		return s.client, nil
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if s.tls != nil {
		tlsCfg, err := s.tls.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			transport.TLSClientConfig = tlsCfg
		}
	}

	s.client = &http.Client{
		Transport: transport,
		Timeout:   s.timeout,
	}
	return s.client, nil
}

// classifyStatus converts an HTTP status code into a typed error.
// Returns nil for 2xx status codes.
func classifyStatus(statusCode int, origin string) *errors.AppError {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return errors.PermissionDenied(origin).WithDetail("status", statusCode)
	case statusCode == http.StatusNotFound || statusCode == http.StatusGone:
		return errors.SourceNotFound(origin).WithDetail("status", statusCode)
	case statusCode >= 400 && statusCode < 500 && statusCode != http.StatusTooManyRequests:
		return errors.Validation(fmt.Sprintf("fetch %s: HTTP %d", origin, statusCode)).WithDetail("status", statusCode)
	default:
		return errors.SourceUnavailable(origin).WithDetail("status", statusCode)
	}
}
