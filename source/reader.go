package source

import "io"

// Reader adapts an existing io.Reader into a Source. If r implements
// io.Closer its Close is kept, otherwise Close is a no-op.
//
// The adapter hands out the same underlying reader on every Open, so
// unlike Bytes or File it is single-shot: once the stream is consumed
// a second Open resumes wherever the first left off.
func Reader(r io.Reader) Source {
	return &readerSource{r: r}
}

type readerSource struct {
	r io.Reader
}

func (s *readerSource) Open() (io.ReadCloser, error) {
	if rc, ok := s.r.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(s.r), nil
}

func (s *readerSource) Origin() string { return "reader" }
