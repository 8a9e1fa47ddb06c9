package entities

import (
	"errors"
	"fmt"
)

// ErrVersionsNotFound is wrapped by ParseError when the versions script has
// no array assignment for the configured variable.
var ErrVersionsNotFound = errors.New("versions array not found")

// NetworkError means the versions resource could not be reached at all.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPStatusError means the server answered with a non-success status.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string // status text as sent by the server, e.g. "404 Not Found"
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %s", e.URL, e.Status)
}

// ParseError means the versions array could not be extracted or decoded.
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("error parsing versions: %v", e.Err)
	}
	return fmt.Sprintf("error parsing versions from %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ElementNotFoundError means the dropdown could not be located in a page.
type ElementNotFoundError struct {
	Selector string
	Reason   string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("dropdown element not found: %s %s", e.Selector, e.Reason)
}
