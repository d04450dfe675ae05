// ABOUTME: Catalog error taxonomy: TransportError, HTTPError, DecodeError
// ABOUTME: All are pointer types for errors.As; transport errors unwrap to the net cause

package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidID is returned by GetProduct for a non-positive id.
var ErrInvalidID = errors.New("catalog: product id must be positive")

// ErrBodyTooLarge is wrapped in a DecodeError when a response exceeds the
// size limit for its kind.
var ErrBodyTooLarge = errors.New("catalog: response body too large")

// ErrEmptyBody is wrapped in a DecodeError when the service answers 2xx with
// an empty or null body (the fake store does this for unknown product ids).
var ErrEmptyBody = errors.New("catalog: empty response body")

// TransportError means the request never produced a complete response:
// DNS, connect, TLS, timeout, cancellation, or a body cut off mid-read.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("catalog: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError means the service answered with a non-2xx status.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("catalog: %s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// DecodeError means the body did not match the expected JSON shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("catalog: decoding %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status carried by err, or 0 if err is not an
// HTTPError.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}
