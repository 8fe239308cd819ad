package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrNoToken      = errors.New("signin response carries no token")
)

// ResponseError is returned for every non-2xx response from either backend.
type ResponseError struct {
	StatusCode int
	Status     string
	Message    string
	Body       string
	URL        string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrUnauthorized) match a 401 response.
func (e *ResponseError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// StatusCode returns the HTTP status carried by err, or 0 when err did not
// come from a backend response.
func StatusCode(err error) int {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 from a backend.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
