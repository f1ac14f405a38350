package source

import (
	"io"

	"github.com/charkit/charkit/resilience"
)

// WithBreaker wraps src so every Open runs through the given circuit
// breaker. Once the breaker opens, Open fails with
// resilience.ErrCircuitOpen without touching the source. Share one
// breaker across sources that hit the same endpoint.
func WithBreaker(src Source, cb *resilience.CircuitBreaker) Source {
	return &breakerSource{src: src, cb: cb}
}

type breakerSource struct {
	src Source
	cb  *resilience.CircuitBreaker
}

func (s *breakerSource) Open() (io.ReadCloser, error) {
	var out io.ReadCloser
	err := s.cb.Execute(func() error {
		var openErr error
		out, openErr = s.src.Open()
		return openErr
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *breakerSource) Origin() string { return OriginOf(s.src) }
