package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeSourceNotFound, "not found", http.StatusNotFound)
	if err.Code != ErrCodeSourceNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeSourceNotFound, err.Code)
	}
	if err.Message != "not found" {
		t.Errorf("expected message 'not found', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, err.HTTPStatus)
	}
	if err.Retryable != false {
		t.Error("SOURCE_NOT_FOUND should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTimeout, "timed out", http.StatusGatewayTimeout)
	if !err.Retryable {
		t.Error("TIMEOUT should be retryable")
	}
}

func TestAppError_SourceNotFound_Success(t *testing.T) {
	err := SourceNotFound("config.yaml")
	if err.Code != ErrCodeSourceNotFound {
		t.Errorf("expected SOURCE_NOT_FOUND, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.HTTPStatus)
	}
	if err.Details["origin"] != "config.yaml" {
		t.Errorf("expected origin=config.yaml, got %v", err.Details["origin"])
	}
	if err.Retryable {
		t.Error("SourceNotFound should not be retryable")
	}
}

func TestAppError_UnsupportedCharset_Success(t *testing.T) {
	err := UnsupportedCharset("EBCDIC")
	if err.Code != ErrCodeUnsupportedCharset {
		t.Errorf("expected UNSUPPORTED_CHARSET, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", err.HTTPStatus)
	}
	if err.Details["charset"] != "EBCDIC" {
		t.Errorf("expected charset=EBCDIC, got %v", err.Details["charset"])
	}
}

func TestAppError_DecodeFailed_Success(t *testing.T) {
	cause := fmt.Errorf("invalid byte 0x9f")
	err := DecodeFailed("Shift_JIS", cause)
	if err.Code != ErrCodeDecodeFailed {
		t.Errorf("expected DECODE_FAILED, got %s", err.Code)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if !strings.Contains(err.Message, "Shift_JIS") {
		t.Errorf("expected message to name the charset, got %q", err.Message)
	}
}

func TestAppError_Internal_Success(t *testing.T) {
	cause := fmt.Errorf("decoder state corrupted")
	err := Internal(cause)
	if err.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.HTTPStatus)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if err.Retryable {
		t.Error("Internal should NOT be retryable by default")
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("charset", "must not be blank")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "charset" {
		t.Errorf("expected field=charset, got %v", err.Details["field"])
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := SourceNotFound("item.txt").WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := SourceNotFound("item.txt").WithDetails(map[string]any{
		"extra": "info",
	})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["origin"] != "item.txt" {
		t.Error("expected original details to be preserved")
	}

	// Test merging into existing details
	err.WithDetails(map[string]any{
		"another": "detail",
	})
	if err.Details["another"] != "detail" {
		t.Error("expected another=detail to be merged")
	}
	if err.Details["extra"] != "info" {
		t.Error("expected extra=info to be preserved after second merge")
	}
}

func TestAppError_WithDetails_Nil(t *testing.T) {
	err := Internal(nil).WithDetails(nil)
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized even with nil input")
	}
}

func TestAppError_WithDetail_Single(t *testing.T) {
	err := Internal(nil).WithDetail("reader_id", "abc")
	if err.Details["reader_id"] != "abc" {
		t.Errorf("expected reader_id=abc in details")
	}

	// Test overwriting
	err.WithDetail("reader_id", "def")
	if err.Details["reader_id"] != "def" {
		t.Errorf("expected reader_id=def after overwrite")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized")
	}
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := SourceNotFound("data.bin")
	s := err.Error()
	if !strings.Contains(s, "SOURCE_NOT_FOUND") {
		t.Errorf("expected error string to contain code, got %q", s)
	}
	if !strings.Contains(s, "not found") {
		t.Errorf("expected error string to contain message, got %q", s)
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Internal(cause)
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	err2 := SourceNotFound("x")
	if err2.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name      string
		err       *AppError
		code      ErrorCode
		status    int
		retryable bool
	}{
		{"SourceUnavailable", SourceUnavailable("feed"), ErrCodeSourceUnavailable, http.StatusServiceUnavailable, true},
		{"ConnectionFailed", ConnectionFailed("https://example.com"), ErrCodeConnectionFailed, http.StatusBadGateway, true},
		{"Timeout", Timeout("open"), ErrCodeTimeout, http.StatusGatewayTimeout, true},
		{"SourceNotFound", SourceNotFound("f.txt"), ErrCodeSourceNotFound, http.StatusNotFound, false},
		{"PermissionDenied", PermissionDenied("f.txt"), ErrCodePermissionDenied, http.StatusForbidden, false},
		{"UnsupportedCharset", UnsupportedCharset("X-BOGUS"), ErrCodeUnsupportedCharset, http.StatusUnsupportedMediaType, false},
		{"DecodeFailed", DecodeFailed("UTF-16", nil), ErrCodeDecodeFailed, http.StatusBadRequest, false},
		{"CloseFailed", CloseFailed(nil), ErrCodeCloseFailed, http.StatusInternalServerError, false},
		{"MissingField", MissingField("charset"), ErrCodeMissingField, http.StatusBadRequest, false},
		{"Validation", Validation("bad input"), ErrCodeInvalidInput, http.StatusBadRequest, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.HTTPStatus != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, tc.err.HTTPStatus)
			}
			if tc.err.Retryable != tc.retryable {
				t.Errorf("expected retryable=%v, got %v", tc.retryable, tc.err.Retryable)
			}
		})
	}
}

func TestErrorCode_IsRetryableCode_Table(t *testing.T) {
	retryable := []ErrorCode{ErrCodeSourceUnavailable, ErrCodeConnectionFailed, ErrCodeTimeout}
	for _, code := range retryable {
		if !IsRetryableCode(code) {
			t.Errorf("expected %s to be retryable", code)
		}
	}

	nonRetryable := []ErrorCode{ErrCodeSourceNotFound, ErrCodePermissionDenied, ErrCodeUnsupportedCharset, ErrCodeDecodeFailed, ErrCodeCloseFailed, ErrCodeInvalidInput, ErrCodeInternal}
	for _, code := range nonRetryable {
		if IsRetryableCode(code) {
			t.Errorf("expected %s to NOT be retryable", code)
		}
	}
}

func TestAppError_OpenFailed_Classification(t *testing.T) {
	tests := []struct {
		name  string
		cause error
		code  ErrorCode
	}{
		{"not exist", &fs.PathError{Op: "open", Path: "missing.txt", Err: fs.ErrNotExist}, ErrCodeSourceNotFound},
		{"permission", &fs.PathError{Op: "open", Path: "secret.txt", Err: fs.ErrPermission}, ErrCodePermissionDenied},
		{"dns timeout", &net.DNSError{Err: "lookup timed out", Name: "example.com", IsTimeout: true}, ErrCodeTimeout},
		{"dial failure", &net.OpError{Op: "dial", Net: "tcp", Err: fmt.Errorf("connection refused")}, ErrCodeConnectionFailed},
		{"unknown", fmt.Errorf("disk gone"), ErrCodeSourceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := OpenFailed("test-origin", tc.cause)
			if err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, err.Code)
			}
			if !stderrors.Is(err, tc.cause) {
				t.Error("expected classified error to wrap the cause")
			}
		})
	}
}

func TestAppError_OpenFailed_Passthrough(t *testing.T) {
	orig := SourceNotFound("s3://bucket/key")
	got := OpenFailed("ignored", fmt.Errorf("opening: %w", orig))
	if got != orig {
		t.Error("OpenFailed should return the original AppError unchanged")
	}
}

func TestAppError_ToResponse_Success(t *testing.T) {
	err := UnsupportedCharset("KOI8-R")
	resp := err.ToResponse()
	if resp.Error.Code != ErrCodeUnsupportedCharset {
		t.Errorf("expected code UNSUPPORTED_CHARSET in response, got %s", resp.Error.Code)
	}
	if resp.Error.Retryable != false {
		t.Error("expected retryable=false in response")
	}
	if resp.Error.Details["charset"] != "KOI8-R" {
		t.Error("expected charset=KOI8-R in response details")
	}
}

func TestAppError_IsAppError_Success(t *testing.T) {
	appErr := SourceNotFound("x")
	if !IsAppError(appErr) {
		t.Error("expected IsAppError to return true for AppError")
	}

	wrapped := fmt.Errorf("wrapped: %w", appErr)
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError to return true for wrapped AppError")
	}

	plain := fmt.Errorf("plain error")
	if IsAppError(plain) {
		t.Error("expected IsAppError to return false for plain error")
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	appErr := Internal(nil)
	wrapped := fmt.Errorf("wrap: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}

	_, ok = AsAppError(fmt.Errorf("not an app error"))
	if ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
}

func TestWrap_NilReturnsNil(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrap_AppErrorPassthrough(t *testing.T) {
	orig := SourceNotFound("item.txt")
	got := Wrap(orig)
	if got != orig {
		t.Error("Wrap should return the original AppError unchanged")
	}
}

func TestWrap_WrappedAppError(t *testing.T) {
	orig := SourceNotFound("item.txt")
	wrapped := fmt.Errorf("outer: %w", orig)
	got := Wrap(wrapped)
	if got.Code != ErrCodeSourceNotFound {
		t.Errorf("expected SOURCE_NOT_FOUND, got %s", got.Code)
	}
}

func TestWrap_PlainError(t *testing.T) {
	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = SourceNotFound("test")
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}

	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		t.Error("stderrors.As should work with AppError")
	}
}
