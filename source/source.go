package source

import "io"

// Source defines the interface for byte sources.
type Source interface {
	// Open acquires the underlying resource and returns a byte handle.
	// The caller is responsible for closing the returned ReadCloser.
	// Implementations perform no work before Open is called.
	Open() (io.ReadCloser, error)
}

// Func adapts an opener function into a Source.
type Func func() (io.ReadCloser, error)

// Open invokes the wrapped function.
func (f Func) Open() (io.ReadCloser, error) { return f() }

// OriginProvider is optionally implemented by sources that can name
// where their bytes come from (a path, URL, or object key). The origin
// feeds error details and log fields.
type OriginProvider interface {
	Origin() string
}

// OriginOf returns the origin of src, or "source" when src does not
// name one.
func OriginOf(src Source) string {
	if op, ok := src.(OriginProvider); ok {
		return op.Origin()
	}
	return "source"
}
