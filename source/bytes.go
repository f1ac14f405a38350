package source

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/charkit/charkit/charset"
)

// Bytes returns a Source serving the given byte slice. Every Open
// yields a fresh reader over the same backing slice.
func Bytes(b []byte) Source {
	return &bytesSource{data: b}
}

type bytesSource struct {
	data []byte
}

func (s *bytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}

func (s *bytesSource) Origin() string { return "bytes" }

// String returns a Source serving the given string.
func String(s string) Source {
	return &stringSource{text: s}
}

type stringSource struct {
	text string
}

func (s *stringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.text)), nil
}

func (s *stringSource) Origin() string { return "string" }

// Text returns a Source whose bytes are text encoded under enc. The
// encoding runs at Open time, so an unencodable rune surfaces on first
// use. A nil enc encodes as UTF-8. Unsupported runes are substituted,
// matching the usual encoder behavior for lossy charsets.
func Text(text string, enc encoding.Encoding) Source {
	return &textSource{text: text, enc: enc}
}

type textSource struct {
	text string
	enc  encoding.Encoding
}

func (s *textSource) Open() (io.ReadCloser, error) {
	enc := s.enc
	if enc == nil {
		enc = charset.Default()
	}
	encoder := encoding.ReplaceUnsupported(enc.NewEncoder())
	encoded, _, err := transform.Bytes(encoder, []byte(s.text))
	if err != nil {
		return nil, fmt.Errorf("source: encode text as %s: %w", charset.Name(enc), err)
	}
	return io.NopCloser(bytes.NewReader(encoded)), nil
}

func (s *textSource) Origin() string { return "text" }
