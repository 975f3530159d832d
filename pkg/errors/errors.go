// Package errors defines the HTTP-facing error type returned by delivery layers.
package errors

import (
	"fmt"
	"net/http"
)

// Code is a stable, machine-readable error identifier exposed to API clients.
type Code string

const (
	CodeInvalidRequest         Code = "INVALID_REQUEST"
	CodeSuggestionFailed       Code = "SUGGESTION_FAILED"
	CodeVendorResolutionFailed Code = "VENDOR_RESOLUTION_FAILED"
	CodeRateLimited            Code = "RATE_LIMITED"
	CodeInternal               Code = "INTERNAL_ERROR"
)

// HTTPError carries the status, code and client-safe message for an error response.
// Message must never contain raw provider output.
type HTTPError struct {
	Status  int
	Code    Code
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, code Code, message string) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message}
}

var (
	ErrRateLimited = NewHTTPError(http.StatusTooManyRequests, CodeRateLimited, "too many requests")
)
