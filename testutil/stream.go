package testutil

import (
	"errors"
	"io"
)

// ErrBroken is returned by a BrokenReader with no configured error.
var ErrBroken = errors.New("testutil: broken stream")

// BrokenReader serves Data and then fails instead of reporting EOF.
// With no Data it fails on the first Read. Err is returned when set;
// otherwise ErrBroken.
type BrokenReader struct {
	Data []byte
	Err  error

	off int
}

// Read copies from Data until it is exhausted, then fails.
func (r *BrokenReader) Read(p []byte) (int, error) {
	if r.off < len(r.Data) {
		n := copy(p, r.Data[r.off:])
		r.off += n
		return n, nil
	}
	if r.Err != nil {
		return 0, r.Err
	}
	return 0, ErrBroken
}

// CloseCounter wraps a reader with a Close that counts invocations and
// returns CloseErr. Use it to assert that a handle was released, and
// how often.
type CloseCounter struct {
	io.Reader
	Closes   int
	CloseErr error
}

// Close increments the counter.
func (c *CloseCounter) Close() error {
	c.Closes++
	return c.CloseErr
}
