package source

import (
	"io"
	"os"
)

// File returns a Source reading from the file at path. The file is
// opened on each Open call, so the source can be consumed repeatedly
// and a missing file surfaces as an open error rather than at
// construction.
func File(path string) Source {
	return &fileSource{path: path}
}

type fileSource struct {
	path string
}

func (s *fileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.path)
}

func (s *fileSource) Origin() string { return s.path }
