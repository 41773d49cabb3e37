package rest

import (
	"errors"
	"fmt"
)

// maxErrBodySize caps the amount of response body read when
// building an error for an unexpected status code. This prevents
// unbounded memory usage when a large response arrives with a
// wrong status.
const maxErrBodySize = 4 << 10 // 4KB

var (
	// ErrUnexpectedStatusCode is the sentinel error wrapped by [UnexpectedStatusError].
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	// ErrAuthFailure is joined with [ErrUnexpectedStatusCode] when the server
	// responds with 401 Unauthorized or 403 Forbidden.
	ErrAuthFailure = errors.New("auth failure")
	// ErrDecodeFailed wraps failures decoding a success response body
	// into the destination given via [WithDestination].
	ErrDecodeFailed = errors.New("decoding response body")
	// ErrClosed is returned by [Client.Do] once the session has been released.
	ErrClosed = errors.New("client is closed")
)

// UnexpectedStatusError is returned when the HTTP response status code
// does not match the expected value. Body holds the JSON-decoded
// response body when it parses, otherwise the raw text.
type UnexpectedStatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       any
	Err        error
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%s %s -> %d: %v", e.Method, e.URL, e.StatusCode, e.Body)
}

func (e *UnexpectedStatusError) Unwrap() error {
	return e.Err
}
