package testutil

import (
	"errors"
	"io"

	"github.com/charkit/charkit/source"
)

// ErrOpenRefused is returned by a FailingSource with no configured error.
var ErrOpenRefused = errors.New("testutil: source refused to open")

// CountingSource wraps a Source and counts Open invocations. Use it to
// assert that construction performs no I/O and that a reader opens its
// source at most once.
type CountingSource struct {
	Wrapped source.Source
	Opens   int
}

// Counting wraps src in a CountingSource.
func Counting(src source.Source) *CountingSource {
	return &CountingSource{Wrapped: src}
}

// Open increments the counter and delegates to the wrapped source.
func (s *CountingSource) Open() (io.ReadCloser, error) {
	s.Opens++
	return s.Wrapped.Open()
}

// Origin reports the wrapped source's origin.
func (s *CountingSource) Origin() string {
	return source.OriginOf(s.Wrapped)
}

// FailingSource fails every Open. Err is returned when set; otherwise
// ErrOpenRefused.
type FailingSource struct {
	Err   error
	Opens int
}

// Open increments the counter and fails.
func (s *FailingSource) Open() (io.ReadCloser, error) {
	s.Opens++
	if s.Err != nil {
		return nil, s.Err
	}
	return nil, ErrOpenRefused
}

// Origin identifies the fixture in error details.
func (s *FailingSource) Origin() string { return "failing" }
