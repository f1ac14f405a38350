package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Source availability errors (retryable)
const (
	// ErrCodeSourceUnavailable indicates the byte source is temporarily unavailable.
	ErrCodeSourceUnavailable ErrorCode = "SOURCE_UNAVAILABLE"
	// ErrCodeConnectionFailed indicates a failed connection to a remote source.
	ErrCodeConnectionFailed ErrorCode = "CONNECTION_FAILED"
	// ErrCodeTimeout indicates opening or reading the source timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Source resolution errors
const (
	// ErrCodeSourceNotFound indicates the byte source does not exist.
	ErrCodeSourceNotFound ErrorCode = "SOURCE_NOT_FOUND"
	// ErrCodePermissionDenied indicates the byte source exists but access was refused.
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"
)

// Decoding errors
const (
	// ErrCodeUnsupportedCharset indicates the requested charset has no registered decoder.
	ErrCodeUnsupportedCharset ErrorCode = "UNSUPPORTED_CHARSET"
	// ErrCodeDecodeFailed indicates the byte stream could not be decoded under the charset.
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"
)

// Teardown errors
const (
	// ErrCodeCloseFailed indicates the underlying stream failed to close.
	ErrCodeCloseFailed ErrorCode = "CLOSE_FAILED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeSourceUnavailable: true,
	ErrCodeConnectionFailed:  true,
	ErrCodeTimeout:           true,
	ErrCodeInternal:          false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
