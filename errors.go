package palworld

import (
	"github.com/adamwoolhether/palworld/rest"
)

// StatusError is the structured error returned when the server answers
// with a non-2xx status. It carries the method, full URL, status code,
// and the best-effort JSON-decoded response body.
type StatusError = rest.UnexpectedStatusError

var (
	// ErrUnexpectedStatusCode is the sentinel wrapped by every [StatusError].
	ErrUnexpectedStatusCode = rest.ErrUnexpectedStatusCode
	// ErrAuthFailure is additionally wrapped when the server responds
	// with 401 or 403, typically from bad credentials or the REST API
	// being disabled in the server settings.
	ErrAuthFailure = rest.ErrAuthFailure
	// ErrDecode indicates a success response whose body did not match
	// the declared response shape: a server/client contract mismatch,
	// distinct from request validation failures.
	ErrDecode = rest.ErrDecodeFailed
	// ErrClientClosed is returned by every operation once the client's
	// session has been released via Close.
	ErrClientClosed = rest.ErrClosed
)
