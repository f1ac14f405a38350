// Package errors provides unified error handling for charkit packages.
// It implements structured error types with error codes for source
// resolution, charset decoding and stream teardown, HTTP status mapping,
// and retryable detection following RFC 7807 and Google AIP-193.
package errors
