// Package palworld is a typed client library for the Palworld
// dedicated-server REST API: server metadata, player lists, settings,
// metrics, and a small set of administrative actions.
//
// Two interchangeable client variants share one endpoint catalog and
// behave identically: the blocking [Client], whose operations return
// when the HTTP exchange completes, and the suspending [AsyncClient],
// whose operations return immediately with an awaitable [Call].
//
// # Blocking Client
//
//	c, err := palworld.Build("hunter2")
//	if err != nil { ... }
//	defer c.Close()
//
//	metrics, err := c.GetMetrics(ctx)
//	if err != nil { ... }
//	fmt.Println(metrics.ServerFPS)
//
// # Suspending Client
//
//	a, err := palworld.BuildAsync("hunter2")
//	if err != nil { ... }
//	defer a.Close()
//
//	info := a.GetInfo(ctx)
//	players := a.GetPlayers(ctx)
//	// ... both exchanges are now in flight ...
//	i, err := info.Result()
//	p, err := players.Result()
//
// # Errors
//
// A call returns exactly one of: [FieldErrors] when a request record
// violates its constraints (no network call is made), a transport
// error from [net/http] as-is, a [*StatusError] for a non-2xx status,
// or an error wrapping [ErrDecode] when a success body does not match
// the declared response shape. The library never retries, caches, or
// recovers locally.
//
// # Defaults
//
// Base URL http://127.0.0.1:8212, username "admin" (password required,
// no default), timeouts connect 5s / read 10s / write 10s / pool 10s.
// All are overridable at construction via options.
package palworld
