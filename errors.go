package authtoken

import (
	"errors"
	"fmt"
)

// ErrorCode represents token service error categories.
type ErrorCode string

const (
	// ErrCodeInvalidToken covers every non-expiration parse failure:
	// malformed input, unsupported header, signature mismatch. Callers are
	// deliberately not told which one it was.
	ErrCodeInvalidToken ErrorCode = "invalid_token"
	// ErrCodeExpired marks a structurally and cryptographically valid token
	// whose expiration has passed. Kept distinct from ErrCodeInvalidToken so
	// callers can drive a refresh flow instead of a plain rejection.
	ErrCodeExpired ErrorCode = "token_expired"
	// ErrCodeInvalidConfig marks a missing or unusable secret or expiration.
	// Surfaced at construction time, never during a parse call.
	ErrCodeInvalidConfig ErrorCode = "invalid_config"
)

var errorMessages = map[ErrorCode]string{
	ErrCodeInvalidToken:  "Invalid token",
	ErrCodeExpired:       "Token expired",
	ErrCodeInvalidConfig: "Invalid token configuration",
}

// Error wraps token service errors with a stable code and message.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	base := e.Message
	if base == "" {
		base = string(e.Code)
	}
	if e.Err == nil {
		return base
	}
	return fmt.Sprintf("%s: %v", base, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, err error) error {
	msg, ok := errorMessages[code]
	if !ok {
		msg = string(code)
	}
	return &Error{Code: code, Message: msg, Err: err}
}

// CodeOf extracts the ErrorCode from an error returned by this package,
// looking through any wrapping the caller added. It returns an empty code
// when the error did not originate here.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsExpired reports whether err signals an expired but otherwise valid token.
func IsExpired(err error) bool {
	return CodeOf(err) == ErrCodeExpired
}

// IsInvalid reports whether err signals a token that proves nothing.
func IsInvalid(err error) bool {
	return CodeOf(err) == ErrCodeInvalidToken
}
