package source

import (
	"context"
	"io"
	"time"

	"github.com/charkit/charkit/errors"
	"github.com/charkit/charkit/logger"
	"github.com/charkit/charkit/resilience"
)

// WithRetry wraps src so every Open is retried according to cfg.
//
// When cfg.RetryIf is nil, retries are keyed on the failure taxonomy:
// transient failures (unavailable, connection, timeout) retry, while
// permanent ones (missing source, permission denied, bad charset)
// return immediately. Raw errors from sources that do not classify
// their own failures are classified first, so a missing file stops
// after one attempt even though os.Open reports a plain path error.
func WithRetry(src Source, cfg resilience.RetryConfig) Source {
	s := &retrySource{src: src, cfg: cfg}
	if s.cfg.RetryIf == nil {
		s.cfg.RetryIf = s.retryIf
	}
	if s.cfg.OnRetry == nil {
		s.cfg.OnRetry = s.logRetry
	}
	return s
}

type retrySource struct {
	src Source
	cfg resilience.RetryConfig
}

func (s *retrySource) Open() (io.ReadCloser, error) {
	return resilience.Retry(context.Background(), s.cfg, s.src.Open)
}

func (s *retrySource) Origin() string { return OriginOf(s.src) }

func (s *retrySource) retryIf(err error) bool {
	if !resilience.DefaultRetryIf(err) {
		return false
	}
	return errors.OpenFailed(OriginOf(s.src), err).Retryable
}

func (s *retrySource) logRetry(attempt int, err error, backoff time.Duration) {
	logger.Get("source").Debug("retrying open", logger.Fields(
		logger.FieldOrigin, OriginOf(s.src),
		"attempt", attempt,
		"backoff", backoff.String(),
		logger.FieldError, err.Error(),
	))
}
