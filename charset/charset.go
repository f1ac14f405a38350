package charset

import (
	"strings"

	htmlcharset "golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/charkit/charkit/errors"
)

// Decode policies. PolicyReplace substitutes U+FFFD for malformed
// input; PolicyStrict fails the read instead, where the encoding
// supports detection (UTF-8).
const (
	PolicyReplace = "replace"
	PolicyStrict  = "strict"
)

// Default returns the encoding used when no charset is specified.
func Default() encoding.Encoding {
	return unicode.UTF8
}

// Resolve returns the encoding registered under name. The IANA index is
// consulted first; WHATWG labels cover loose aliases the index rejects.
// Unknown names return an UNSUPPORTED_CHARSET error.
func Resolve(name string) (encoding.Encoding, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, errors.UnsupportedCharset(name)
	}
	// The index can report a name as known while carrying no encoding
	// for it, so the nil check is load-bearing.
	if enc, err := ianaindex.IANA.Encoding(trimmed); err == nil && enc != nil {
		return enc, nil
	}
	if enc, _ := htmlcharset.Lookup(trimmed); enc != nil {
		return enc, nil
	}
	return nil, errors.UnsupportedCharset(name)
}

// Name returns the canonical IANA name for enc, or "unknown" when the
// index has no entry for it.
func Name(enc encoding.Encoding) string {
	if enc == nil {
		return "unknown"
	}
	if name, err := ianaindex.IANA.Name(enc); err == nil && name != "" {
		return name
	}
	return "unknown"
}

// DecodeTransformer returns the transformer that decodes enc's bytes
// into UTF-8. Under PolicyStrict a UTF-8 stream fails on the first
// malformed sequence; other encodings fall back to their standard
// decoder, which substitutes U+FFFD.
func DecodeTransformer(enc encoding.Encoding, policy string) transform.Transformer {
	if policy == PolicyStrict && enc == unicode.UTF8 {
		return encoding.UTF8Validator
	}
	return enc.NewDecoder()
}

// BOMOverride wraps t so a leading byte order mark switches decoding to
// the encoding the mark names. Without a BOM, t is used unchanged.
func BOMOverride(t transform.Transformer) transform.Transformer {
	return unicode.BOMOverride(t)
}
