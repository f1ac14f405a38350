// Package textio provides deferred, memoized character readers over
// arbitrary byte sources.
//
// A Reader binds a source.Source to a decoding strategy. Construction
// records that binding and nothing else: the source is opened on the
// first Read, ReadRunes, ReadRune, or Close call, and at most once for
// the reader's lifetime. When materialization fails, the failure is
// memoized and every later call returns the same error.
//
// Decoded text is exposed three ways: Read yields UTF-8 bytes, ReadRune
// yields one character, and ReadRunes fills a rune buffer. Close
// releases the underlying handle; on a never-read reader it opens the
// source first, so the handle's lifecycle is observable either way.
//
// # Quick Start
//
// Reading a latin-1 file as text:
//
//	r := textio.FromFile("legacy.txt", textio.WithCharset("ISO-8859-1"))
//	defer r.Close()
//	text, err := io.ReadAll(r)
//
// Filling a rune buffer:
//
//	buf := make([]rune, 64)
//	n, err := r.ReadRunes(buf)
//
// The decoding strategy is exactly one of a charset name
// (WithCharset), an encoding (WithEncoding), or a pre-built transformer
// (WithDecoder); UTF-8 is used when none is given. The strategy is
// fixed at construction and never second-guessed: no charset detection,
// no fallback after a decode failure. BOM handling is opt-in through
// WithBOMOverride.
//
// A Reader is not safe for concurrent use.
package textio
