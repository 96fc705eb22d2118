package httpapi

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the httpapi package.
var (
	ErrNotFound         = errors.New("httpapi: not found")
	ErrMethodNotAllowed = errors.New("httpapi: method not allowed")
	ErrCountryNotFound  = errors.New("httpapi: country not found")
	ErrCheckFailed      = errors.New("httpapi: health check failed")
	ErrNoCountries      = errors.New("httpapi: directory has no countries")
	ErrNoMetadata       = errors.New("httpapi: phone metadata unavailable")
)

// Error is a JSON-rendered API error.
// Err is logged but never sent to the client.
type Error struct {
	Err       error  `json:"-"`
	Message   string `json:"error"`
	ErrorCode string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Code      int    `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status of the error.
func (e *Error) StatusCode() int {
	return e.Code
}

// NewError creates an Error with the given status code and message.
func NewError(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	Value any    // The panic value
	Stack []byte // Stack trace (nil if disabled)
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// AsPanicError extracts the PanicError from an error if present.
func AsPanicError(err error) (*PanicError, bool) {
	var pe *PanicError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func errNotFound(err error) *Error {
	return NewError(http.StatusNotFound, http.StatusText(http.StatusNotFound), err)
}
