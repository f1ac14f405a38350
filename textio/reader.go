package textio

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/charkit/charkit/charset"
	"github.com/charkit/charkit/errors"
	"github.com/charkit/charkit/lazy"
	"github.com/charkit/charkit/logger"
	"github.com/charkit/charkit/observability"
	"github.com/charkit/charkit/source"
)

var _ io.ReadCloser = (*Reader)(nil)
var _ io.RuneReader = (*Reader)(nil)

// Reader decodes the bytes of a Source into text.
//
// The source is opened on the first Read, ReadRunes, ReadRune, or Close
// call, and at most once. Materialization failures are memoized: every
// later call returns the same error with the same cause.
//
// A Reader is not safe for concurrent use and must not be reused after
// Close.
type Reader struct {
	id  string
	src source.Source

	charsetName string
	enc         encoding.Encoding
	decoder     transform.Transformer
	bom         bool

	log     *logger.Logger
	metrics *observability.Metrics

	cell *lazy.Cell[*pipeline]
}

// pipeline is the materialized decode chain: the raw handle from the
// source, wrapped by the decoding transformer and a rune-capable
// buffer, plus the charset label used in errors, logs, and metrics.
type pipeline struct {
	rc      io.ReadCloser
	decoded *bufio.Reader
	charset string
}

// New returns a Reader over src. Construction records the binding and
// performs no I/O.
func New(src source.Source, opts ...Option) *Reader {
	r := &Reader{id: uuid.NewString(), src: src}
	for _, opt := range opts {
		opt(r)
	}
	r.cell = lazy.New(r.open)
	return r
}

// open materializes the decode pipeline. The memoizing cell runs it at
// most once and replays the result, failures included.
func (r *Reader) open() (*pipeline, error) {
	origin := source.OriginOf(r.src)

	if r.src == nil {
		appErr := errors.InvalidInput("source", "reader has no source")
		r.recordOpenError(origin, appErr)
		return nil, appErr
	}

	// The charset resolves before the source opens so an unknown name
	// never acquires a handle.
	t, name, err := r.strategy()
	if err != nil {
		r.recordOpenError(origin, err)
		return nil, err
	}

	r.logDebug("materializing reader", logger.Fields(
		logger.FieldReaderID, r.id,
		logger.FieldOrigin, origin,
		logger.FieldCharset, name,
	))

	rc, err := r.src.Open()
	if err != nil {
		appErr := errors.OpenFailed(origin, err)
		r.recordOpenError(origin, appErr)
		r.logDebug("reader open failed", logger.Fields(
			logger.FieldReaderID, r.id,
			logger.FieldOrigin, origin,
			logger.FieldError, appErr.Error(),
		))
		return nil, appErr
	}

	if r.metrics != nil {
		r.metrics.RecordOpen(context.Background(), origin, name)
	}

	return &pipeline{
		rc:      rc,
		decoded: bufio.NewReader(transform.NewReader(rc, t)),
		charset: name,
	}, nil
}

// strategy resolves the decoding transformer and its charset label.
func (r *Reader) strategy() (transform.Transformer, string, error) {
	var t transform.Transformer
	var name string
	switch {
	case r.decoder != nil:
		t, name = r.decoder, "custom"
	case r.enc != nil:
		t, name = r.enc.NewDecoder(), charset.Name(r.enc)
	case r.charsetName != "":
		enc, err := charset.Resolve(r.charsetName)
		if err != nil {
			return nil, "", err
		}
		t = enc.NewDecoder()
		if name = charset.Name(enc); name == "unknown" {
			name = r.charsetName
		}
	default:
		def := charset.Default()
		t, name = def.NewDecoder(), charset.Name(def)
	}
	if r.bom {
		t = charset.BOMOverride(t)
	}
	return t, name, nil
}

// Read fills p with decoded text as UTF-8 bytes, opening the source on
// first call. Mid-stream failures are reported as DECODE_FAILED with
// the underlying error as cause.
func (r *Reader) Read(p []byte) (int, error) {
	pl, err := r.cell.Get()
	if err != nil {
		return 0, err
	}
	start := time.Now()
	n, err := pl.decoded.Read(p)
	if r.metrics != nil {
		r.metrics.RecordRead(context.Background(), pl.charset, n, time.Since(start))
	}
	if err != nil && err != io.EOF {
		return n, decodeError(pl.charset, err)
	}
	return n, err
}

// ReadRune returns the next decoded character.
func (r *Reader) ReadRune() (rune, int, error) {
	pl, err := r.cell.Get()
	if err != nil {
		return 0, 0, err
	}
	ch, size, err := pl.decoded.ReadRune()
	if err != nil && err != io.EOF {
		return 0, 0, decodeError(pl.charset, err)
	}
	return ch, size, err
}

// ReadRunes fills p with decoded characters and returns how many were
// written. A partial fill at end of stream returns the count with a nil
// error; the call after that returns 0 and io.EOF. An empty buffer
// reads nothing. Read into a sub-slice to express offset and length.
func (r *Reader) ReadRunes(p []rune) (int, error) {
	pl, err := r.cell.Get()
	if err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	start := time.Now()
	n, decoded := 0, 0
	for n < len(p) {
		ch, size, err := pl.decoded.ReadRune()
		if err == io.EOF {
			if n == 0 {
				return 0, io.EOF
			}
			break
		}
		if err != nil {
			return n, decodeError(pl.charset, err)
		}
		p[n] = ch
		n++
		decoded += size
	}
	if r.metrics != nil {
		r.metrics.RecordRead(context.Background(), pl.charset, decoded, time.Since(start))
	}
	return n, nil
}

// Close releases the underlying handle, opening the source first if the
// reader was never read: acquisition is deferred, not optional. Close
// is forwarded on every call, so a second Close reports whatever the
// handle reports.
func (r *Reader) Close() error {
	pl, err := r.cell.Get()
	if err != nil {
		return err
	}
	r.logDebug("closing reader", logger.Fields(
		logger.FieldReaderID, r.id,
		logger.FieldOrigin, source.OriginOf(r.src),
	))
	if err := pl.rc.Close(); err != nil {
		if appErr, ok := errors.AsAppError(err); ok {
			return appErr
		}
		return errors.CloseFailed(err)
	}
	if r.metrics != nil {
		r.metrics.RecordClose(context.Background(), source.OriginOf(r.src))
	}
	return nil
}

// ID returns the reader's correlation id, as carried in its log fields.
func (r *Reader) ID() string { return r.id }

func (r *Reader) recordOpenError(origin string, err error) {
	if r.metrics == nil {
		return
	}
	code := string(errors.ErrCodeInternal)
	if appErr, ok := errors.AsAppError(err); ok {
		code = string(appErr.Code)
	}
	r.metrics.RecordOpenError(context.Background(), origin, code)
}

func (r *Reader) logDebug(msg string, fields map[string]interface{}) {
	if r.log != nil {
		r.log.Debug(msg, fields)
		return
	}
	logger.Get("textio").Debug(msg, fields)
}

// decodeError maps a mid-stream failure onto the taxonomy, passing
// through errors that already carry a code.
func decodeError(charsetName string, err error) error {
	if appErr, ok := errors.AsAppError(err); ok {
		return appErr
	}
	return errors.DecodeFailed(charsetName, err)
}
