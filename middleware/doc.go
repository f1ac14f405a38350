// Package middleware provides net/http middleware for services that
// accept text in arbitrary charsets, plus the usual request plumbing
// (recovery, request IDs, request logging, body size limits).
//
// All middleware share one signature, Middleware, and compose with
// Chain. Gin users adapt them with GinWrap or use the Gin-native
// variants where aborting the chain matters.
//
// # Usage
//
//	handler := middleware.Chain(
//	    middleware.Recovery(log),
//	    middleware.RequestID(),
//	    middleware.RequestLogger(log),
//	    middleware.BodySizeLimit("1MB"),
//	    middleware.CharsetDecoding(&middleware.Config{DefaultCharset: "ISO-8859-1"}),
//	)(mux)
//
// CharsetDecoding replaces the request body with a deferred reader
// that transcodes to UTF-8 on first read, keyed by the Content-Type
// charset parameter. Handlers read plain UTF-8 without knowing what
// the client sent.
package middleware
