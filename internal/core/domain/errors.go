package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates a required service or setting is missing.
	ErrNotConfigured = errors.New("not configured")

	// Authentication errors.

	// ErrUnauthenticated indicates an endpoint required a credential but none
	// was available. The API client fails fast on this: no network call is made.
	ErrUnauthenticated = errors.New("not signed in")

	// ErrAuthExpired indicates the credential has expired and refresh failed.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrTokenRefreshFailed indicates a token refresh operation failed.
	ErrTokenRefreshFailed = errors.New("token refresh failed")
)

// NetworkError indicates the request never produced a response:
// timeout, DNS failure, connection refused, or the machine is offline.
type NetworkError struct {
	// Op names the API operation that failed (e.g., "list resumes").
	Op string
	// Err is the underlying transport error.
	Err error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError indicates the server responded with a non-2xx status.
type HTTPError struct {
	// Op names the API operation that failed.
	Op string
	// Status is the HTTP status code.
	Status int
	// Body holds the response body, truncated for display.
	Body string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: server returned status %d", e.Op, e.Status)
}

// IsAuthFailure returns true for 401 and 403 responses.
// Callers use this to redirect to sign-in instead of showing a generic error.
func (e *HTTPError) IsAuthFailure() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// ParseError indicates the response body was not valid JSON
// where JSON was expected.
type ParseError struct {
	// Op names the API operation that failed.
	Op string
	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: invalid response: %v", e.Op, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// AppError indicates the transport succeeded but the response envelope
// carried success=false. The backend reports business failures this way
// even with HTTP 200, so status checks alone are not enough.
type AppError struct {
	// Op names the API operation that failed.
	Op string
	// Message is the human-readable error from the envelope.
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// IsAuthFailure returns true if err is ErrUnauthenticated or an
// HTTPError with a 401/403 status. The CLI redirects to sign-in on these.
func IsAuthFailure(err error) bool {
	if errors.Is(err, ErrUnauthenticated) {
		return true
	}
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.IsAuthFailure()
}
