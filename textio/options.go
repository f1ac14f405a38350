package textio

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/charkit/charkit/logger"
	"github.com/charkit/charkit/observability"
)

// Option customizes a Reader at construction.
type Option func(*Reader)

// WithCharset selects the decoding charset by name. Names are resolved
// against the IANA index with WHATWG labels as fallback, at first use;
// unknown names fail the first Read or Close with UNSUPPORTED_CHARSET.
func WithCharset(name string) Option {
	return func(r *Reader) { r.charsetName = name }
}

// WithEncoding selects the decoding charset as an encoding value,
// skipping name resolution.
func WithEncoding(enc encoding.Encoding) Option {
	return func(r *Reader) { r.enc = enc }
}

// WithDecoder supplies a pre-built transformer as the decoding
// strategy. The transformer is used verbatim, keeping its
// malformed-input policy. Chain encoding.UTF8Validator to fail on
// malformed UTF-8 instead of substituting U+FFFD.
func WithDecoder(t transform.Transformer) Option {
	return func(r *Reader) { r.decoder = t }
}

// WithBOMOverride lets a leading byte order mark switch decoding to the
// encoding the mark names. Streams without a BOM decode with the
// configured strategy unchanged.
func WithBOMOverride() Option {
	return func(r *Reader) { r.bom = true }
}

// WithLogger routes the reader's lifecycle logs to l instead of the
// package logger.
func WithLogger(l *logger.Logger) Option {
	return func(r *Reader) { r.log = l }
}

// WithMetrics records opens, reads, decoded bytes, and closes on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(r *Reader) { r.metrics = m }
}
