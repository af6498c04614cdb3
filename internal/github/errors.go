package github

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches any APIError with status 404.
var ErrNotFound = errors.New("github: not found")

// ErrInvalidName is returned for an owner, repository or login that cannot
// be used as a single URL path segment.
var ErrInvalidName = errors.New("github: invalid name")

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("github: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("github: %d %s", e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
