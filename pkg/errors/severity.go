// Package errors provides severity-aware error types.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Severity indicates error impact level.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ScoringError is a structured error raised while talking to the scoring service.
type ScoringError struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	Severity    Severity `json:"severity"`
	Recoverable bool     `json:"recoverable"`
	Err         error    `json:"-"`
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Code, e.Message)
}

func (e *ScoringError) Unwrap() error {
	return e.Err
}

// Error codes
const (
	ErrCodeInvalidInput    = "INVALID_INPUT"
	ErrCodeTransportFailed = "TRANSPORT_FAILED"
	ErrCodeHTTPStatus      = "HTTP_STATUS"
	ErrCodeDecodeFailed    = "DECODE_FAILED"
	ErrCodeConfigInvalid   = "CONFIG_INVALID"
)

// NewInvalidInputError creates an error for a console value that failed validation.
func NewInvalidInputError(field, value string) *ScoringError {
	return &ScoringError{
		Code:        ErrCodeInvalidInput,
		Message:     fmt.Sprintf("invalid value %q for %s", value, field),
		Severity:    SeverityInfo,
		Recoverable: true,
	}
}

// NewTransportError wraps a network-level failure.
func NewTransportError(url string, err error) *ScoringError {
	return &ScoringError{
		Code:        ErrCodeTransportFailed,
		Message:     fmt.Sprintf("POST %s: %v", url, err),
		Severity:    SeverityError,
		Recoverable: true,
		Err:         err,
	}
}

// NewHTTPStatusError reports a non-2xx reply from the service.
func NewHTTPStatusError(status int, body string) *ScoringError {
	msg := fmt.Sprintf("unexpected status %d", status)
	if body != "" {
		msg = fmt.Sprintf("%s: %s", msg, body)
	}
	return &ScoringError{
		Code:        ErrCodeHTTPStatus,
		Message:     msg,
		Severity:    SeverityError,
		Recoverable: true,
	}
}

// NewDecodeError reports a success reply whose body is not a valid response.
func NewDecodeError(err error) *ScoringError {
	return &ScoringError{
		Code:        ErrCodeDecodeFailed,
		Message:     fmt.Sprintf("malformed response body: %v", err),
		Severity:    SeverityFatal,
		Recoverable: false,
		Err:         err,
	}
}

// NewConfigError reports a missing or invalid setting.
func NewConfigError(setting, reason string) *ScoringError {
	return &ScoringError{
		Code:        ErrCodeConfigInvalid,
		Message:     fmt.Sprintf("%s %s", setting, reason),
		Severity:    SeverityFatal,
		Recoverable: false,
	}
}

// IsRecoverable reports whether err carries a recoverable ScoringError.
func IsRecoverable(err error) bool {
	var se *ScoringError
	if stderrors.As(err, &se) {
		return se.Recoverable
	}
	return false
}

// CodeOf returns the ScoringError code in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var se *ScoringError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}
