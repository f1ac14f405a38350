package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
)

// AppError is the unified error type returned by charkit operations.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the recommended HTTP status code for this error.
	HTTPStatus int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Retryable:  IsRetryableCode(code),
	}
}

// Wrap converts any error into an *AppError. A nil error returns nil,
// errors already carrying an AppError in their chain are returned as-is,
// and anything else is wrapped as an internal error.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}

// --- Common Error Constructors ---

// SourceUnavailable creates a new AppError for a byte source that is temporarily unavailable.
func SourceUnavailable(origin string) *AppError {
	return &AppError{
		Code: ErrCodeSourceUnavailable, Message: fmt.Sprintf("The source %s is temporarily unavailable. Please try again.", origin),
		HTTPStatus: http.StatusServiceUnavailable, Retryable: true,
		Details: map[string]any{"origin": origin},
	}
}

// ConnectionFailed creates a new AppError for a failed connection to a remote source.
func ConnectionFailed(origin string) *AppError {
	return &AppError{
		Code: ErrCodeConnectionFailed, Message: fmt.Sprintf("Unable to connect to %s. Please verify the source is reachable.", origin),
		HTTPStatus: http.StatusBadGateway, Retryable: true,
		Details: map[string]any{"origin": origin},
	}
}

// Timeout creates a new AppError for an operation that timed out.
func Timeout(operation string) *AppError {
	return &AppError{
		Code: ErrCodeTimeout, Message: "The operation took too long. Please try again.",
		HTTPStatus: http.StatusGatewayTimeout, Retryable: true,
		Details: map[string]any{"operation": operation},
	}
}

// SourceNotFound creates a new AppError for a byte source that does not exist.
func SourceNotFound(origin string) *AppError {
	return &AppError{
		Code: ErrCodeSourceNotFound, Message: fmt.Sprintf("The source %s was not found.", origin),
		HTTPStatus: http.StatusNotFound, Retryable: false,
		Details: map[string]any{"origin": origin},
	}
}

// PermissionDenied creates a new AppError for a byte source that refused access.
func PermissionDenied(origin string) *AppError {
	return &AppError{
		Code: ErrCodePermissionDenied, Message: fmt.Sprintf("Access to %s was denied.", origin),
		HTTPStatus: http.StatusForbidden, Retryable: false,
		Details: map[string]any{"origin": origin},
	}
}

// UnsupportedCharset creates a new AppError for a charset with no registered decoder.
func UnsupportedCharset(name string) *AppError {
	return &AppError{
		Code: ErrCodeUnsupportedCharset, Message: fmt.Sprintf("The charset %q is not supported.", name),
		HTTPStatus: http.StatusUnsupportedMediaType, Retryable: false,
		Details: map[string]any{"charset": name},
	}
}

// DecodeFailed creates a new AppError for a byte stream that could not be decoded.
func DecodeFailed(charset string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("The stream could not be decoded as %s.", charset),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"charset": charset}, Cause: cause,
	}
}

// CloseFailed creates a new AppError for a stream that failed to close.
func CloseFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeCloseFailed, Message: "The underlying stream failed to close.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// InvalidInput creates a new AppError for invalid input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		HTTPStatus: http.StatusBadRequest, Retryable: false, Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
		HTTPStatus: http.StatusBadRequest, Retryable: false,
	}
}

// MissingField creates a new AppError for a missing required field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		HTTPStatus: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"field": field},
	}
}

// Internal creates a new AppError for an internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred. Please try again or contact support.",
		HTTPStatus: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}

// OpenFailed classifies a raw open error into the matching AppError.
// File-system and network failures map onto the source resolution and
// availability codes; anything unrecognized maps to SOURCE_UNAVAILABLE.
func OpenFailed(origin string, cause error) *AppError {
	if appErr, ok := AsAppError(cause); ok {
		return appErr
	}
	var classified *AppError
	switch {
	case stderrors.Is(cause, fs.ErrNotExist):
		classified = SourceNotFound(origin)
	case stderrors.Is(cause, fs.ErrPermission):
		classified = PermissionDenied(origin)
	case stderrors.Is(cause, os.ErrDeadlineExceeded) || isTimeout(cause):
		classified = Timeout("open " + origin)
	case isNetError(cause):
		classified = ConnectionFailed(origin)
	default:
		classified = SourceUnavailable(origin)
	}
	return classified.WithCause(cause)
}

func isTimeout(err error) bool {
	var netErr net.Error
	return stderrors.As(err, &netErr) && netErr.Timeout()
}

func isNetError(err error) bool {
	var opErr *net.OpError
	if stderrors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	return stderrors.As(err, &dnsErr)
}
