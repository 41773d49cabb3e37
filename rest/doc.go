// Package rest provides the low-level HTTP engine used by the typed
// Palworld clients, built on [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := rest.Build(
//		rest.WithBasicAuth("admin", "hunter2"),
//		rest.WithTimeout(25 * time.Second),
//	)
//
// # Making Requests
//
// Construct a [URL] and [Request], then execute with [Client.Do]:
//
//	u := rest.URL("http", "127.0.0.1", "/v1/api/info", rest.WithPort(8212))
//	req, err := rest.Request(ctx, u, http.MethodGet)
//	err = c.Do(req, http.StatusOK, rest.WithDestination(&result))
//
// A response with an unexpected status code is surfaced as an
// [*UnexpectedStatusError] carrying the method, full URL, status code,
// and the best-effort JSON-decoded body.
//
// # Session Lifecycle
//
// The Client owns one underlying transport session. [Client.Close]
// releases pooled connections exactly once; further calls are no-ops,
// and requests issued afterwards fail with [ErrClosed].
package rest
