package textio

import (
	"io"

	"golang.org/x/text/encoding"

	"github.com/charkit/charkit/charset"
	"github.com/charkit/charkit/source"
)

// FromBytes returns a Reader decoding b.
func FromBytes(b []byte, opts ...Option) *Reader {
	return New(source.Bytes(b), opts...)
}

// FromString returns a Reader decoding s.
func FromString(s string, opts ...Option) *Reader {
	return New(source.String(s), opts...)
}

// FromRunes returns a Reader over rs. The runes are encoded with the
// reader's charset when the stream opens, so text paired with an
// explicit charset round-trips through that charset's bytes. A custom
// decoder receives UTF-8 bytes.
func FromRunes(rs []rune, opts ...Option) *Reader {
	r := New(nil, opts...)
	r.src = source.Text(string(rs), r.encodeEncoding())
	return r
}

// FromFile returns a Reader over the file at path.
func FromFile(path string, opts ...Option) *Reader {
	return New(source.File(path), opts...)
}

// FromURL returns a Reader fetching rawURL. Fetch behavior beyond the
// defaults (headers, TLS, timeouts) is configured by constructing the
// URL source directly and passing it to New.
func FromURL(rawURL string, opts ...Option) *Reader {
	return New(source.URL(rawURL), opts...)
}

// FromReader returns a Reader decoding an already-open stream. The
// stream is adopted, not reopened, so the reader shares its single-use
// nature.
func FromReader(rd io.Reader, opts ...Option) *Reader {
	return New(source.Reader(rd), opts...)
}

// encodeEncoding picks the encoding FromRunes encodes with: the
// explicit encoding, the resolved charset name, or nil for the UTF-8
// default. Resolution failures are left for the decode side to report.
func (r *Reader) encodeEncoding() encoding.Encoding {
	switch {
	case r.enc != nil:
		return r.enc
	case r.charsetName != "":
		if enc, err := charset.Resolve(r.charsetName); err == nil {
			return enc
		}
		return nil
	default:
		return nil
	}
}
