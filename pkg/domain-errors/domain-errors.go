package domainerrors

import "errors"

// Code represents a domain error category independent of transport layer.
// These codes describe what went wrong in identity-number terms, not HTTP terms.
type Code string

const (
	// Identity number validity. Each parse and create stage reports exactly one
	// of these, for the first rule the input violates.
	CodeInvalidYear         Code = "invalid_year"
	CodeInvalidMonth        Code = "invalid_month"
	CodeInvalidDay          Code = "invalid_day"
	CodeInvalidSerialNumber Code = "invalid_serial_number"
	CodeInvalidChecksum     Code = "invalid_checksum"
	CodeMalformedInput      Code = "malformed_input"

	// Usage error: the as-of date precedes the date of birth.
	CodeNegativeAge Code = "negative_age"

	CodeNotFound   Code = "not_found"
	CodeBadRequest Code = "bad_request"
	CodeValidation Code = "validation_failed"
	CodeInternal   Code = "internal_error"
)

// Error wraps domain or infrastructure failures with a stable code.
// It is transport-agnostic and can be used across service, handler, and library layers.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap implements error unwrapping for error chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is enables errors.Is() to match errors by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new domain error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Message: msg}
}

// Wrap creates a new domain error wrapping an existing error.
// If the wrapped error is already a domain error, the original code is preserved.
func Wrap(err error, code Code, msg string) error {
	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: msg, Err: err}
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// HasCode checks if an error is a domain error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the code of the first domain error in the chain,
// or CodeInternal when err carries none. A nil error has no code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// IsValidity reports whether code describes malformed or invalid identity
// number input, as opposed to usage or infrastructure failures.
func IsValidity(code Code) bool {
	switch code {
	case CodeInvalidYear, CodeInvalidMonth, CodeInvalidDay,
		CodeInvalidSerialNumber, CodeInvalidChecksum, CodeMalformedInput:
		return true
	default:
		return false
	}
}
