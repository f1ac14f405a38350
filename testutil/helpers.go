package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

// THelper provides testing.T integration for stream fixtures.
type THelper struct {
	t *testing.T
}

// T wraps a testing.T to provide helper methods.
//
// Example:
//
//	path := testutil.T(t).TempFile("data.txt", content)
func T(t *testing.T) *THelper {
	return &THelper{t: t}
}

// TempFile writes content to name under the test's temporary directory
// and returns the full path. The file is removed when the test ends.
func (h *THelper) TempFile(name string, content []byte) string {
	h.t.Helper()
	path := filepath.Join(h.t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		h.t.Fatalf("failed to write temp file %s: %v", name, err)
	}
	return path
}

// ReadAll drains r, failing the test on error.
func (h *THelper) ReadAll(r io.Reader) []byte {
	h.t.Helper()
	data, err := io.ReadAll(r)
	if err != nil {
		h.t.Fatalf("failed to drain stream: %v", err)
	}
	return data
}

// CloseOnCleanup closes c when the test ends. Tests that assert close
// counts should close explicitly instead.
func (h *THelper) CloseOnCleanup(c io.Closer) {
	h.t.Cleanup(func() {
		if err := c.Close(); err != nil {
			h.t.Errorf("failed to close during cleanup: %v", err)
		}
	})
}
