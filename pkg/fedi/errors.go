package fedi

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is the JSON error payload returned by Mastodon-compatible
// servers, e.g. {"error": "Record not found"} or the OAuth shape
// {"error": "invalid_grant", "error_description": "..."}.
type APIError struct {
	// Message is the server's description (the "error" JSON field).
	Message string `json:"error"                       yaml:"error"`
	// Description carries the longer OAuth-style explanation when present.
	Description string `json:"error_description,omitempty" yaml:"error_description,omitempty"`
	// StatusCode is the HTTP status the payload arrived with. Dispatch fills
	// it in; it is never part of the wire payload.
	StatusCode int `json:"-"                           yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Description != "":
		return fmt.Sprintf("%s: %s", e.Message, e.Description)
	case e.Message != "":
		return e.Message
	default:
		return fmt.Sprintf("server error (status %d)", e.StatusCode)
	}
}

// SetHTTPStatus records the HTTP status code the payload was decoded from.
func (e *APIError) SetHTTPStatus(code int) {
	e.StatusCode = code
}

// HTTPStatusSetter is implemented by error payload types that want the HTTP
// status code of the response recorded alongside the decoded body. Dispatch
// calls it on every decoded error payload that supports it.
type HTTPStatusSetter interface {
	SetHTTPStatus(code int)
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrBaseURLRequired     = errors.New("base URL is required")
	ErrNoHostInURL         = errors.New("no host specified in URL")
	ErrTokenRequired       = errors.New("access token is required")
	ErrNoMoreItems         = errors.New("no more items")
	ErrServerError         = errors.New("server returned an error")
	ErrRequestFailed       = errors.New("request failed")
	ErrUninitializedResult = errors.New("uninitialized result")
)

// IsUnauthorized checks whether err carries an APIError with status 401.
func IsUnauthorized(err error) bool {
	return apiErrorStatus(err) == http.StatusUnauthorized
}

// IsForbidden checks whether err carries an APIError with status 403.
func IsForbidden(err error) bool {
	return apiErrorStatus(err) == http.StatusForbidden
}

// IsNotFound checks whether err carries an APIError with status 404.
func IsNotFound(err error) bool {
	return apiErrorStatus(err) == http.StatusNotFound
}

// IsUnprocessable checks whether err carries an APIError with status 422,
// the status validation failures arrive with.
func IsUnprocessable(err error) bool {
	return apiErrorStatus(err) == http.StatusUnprocessableEntity
}

// IsRateLimited checks whether err carries an APIError with status 429.
// The client does no rate-limit handling of its own; this only helps callers
// recognize the condition.
func IsRateLimited(err error) bool {
	return apiErrorStatus(err) == http.StatusTooManyRequests
}

func apiErrorStatus(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}
