package palworld

import (
	"context"
)

// Ack is the empty result carried by a [Call] for action-only
// operations; await it with [Call.Err].
type Ack = struct{}

// Call represents an in-flight or completed asynchronous operation.
type Call[T any] struct {
	done   chan struct{}
	val    T
	err    error
	cancel context.CancelFunc
}

// Done returns a channel that is closed when the call completes.
func (c *Call[T]) Done() <-chan struct{} { return c.done }

// Result blocks until the call completes and returns its outcome.
func (c *Call[T]) Result() (T, error) {
	<-c.done
	return c.val, c.err
}

// Err blocks until the call completes and returns its error, if any.
func (c *Call[T]) Err() error {
	<-c.done
	return c.err
}

// Cancel aborts the call's network exchange. It has no effect on a
// completed call.
func (c *Call[T]) Cancel() { c.cancel() }

// AsyncClient is the suspending variant of the Palworld REST API
// client. It exposes the same catalog of operations as [Client], but
// every operation returns immediately with a [Call] that completes
// when the exchange does, so any number of operations can be in flight
// concurrently over one session.
//
// Each call runs as an independent task with its own request and
// response lifecycle; no state is shared between issue and completion.
type AsyncClient struct {
	c *Client
}

// BuildAsync constructs an [AsyncClient]. It accepts exactly the same
// configuration as [Build].
func BuildAsync(password string, optFns ...Option) (*AsyncClient, error) {
	c, err := Build(password, optFns...)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{c: c}, nil
}

// GetInfo fetches the server's identity and version snapshot.
func (a *AsyncClient) GetInfo(ctx context.Context) *Call[*InfoResponse] {
	return dispatch(ctx, a.c.GetInfo)
}

// GetPlayers fetches the roster of currently connected players.
func (a *AsyncClient) GetPlayers(ctx context.Context) *Call[*PlayersResponse] {
	return dispatch(ctx, a.c.GetPlayers)
}

// GetSettings fetches the server's configuration snapshot.
func (a *AsyncClient) GetSettings(ctx context.Context) *Call[*SettingsResponse] {
	return dispatch(ctx, a.c.GetSettings)
}

// GetMetrics fetches the server's live performance snapshot.
func (a *AsyncClient) GetMetrics(ctx context.Context) *Call[*MetricsResponse] {
	return dispatch(ctx, a.c.GetMetrics)
}

// Announce broadcasts a message to all connected players.
func (a *AsyncClient) Announce(ctx context.Context, message string) *Call[Ack] {
	return dispatchAction(ctx, func(ctx context.Context) error {
		return a.c.Announce(ctx, message)
	})
}

// Kick removes the player identified by userID, showing them the
// optional message.
func (a *AsyncClient) Kick(ctx context.Context, userID, message string) *Call[Ack] {
	return dispatchAction(ctx, func(ctx context.Context) error {
		return a.c.Kick(ctx, userID, message)
	})
}

// Ban bans the player identified by userID, showing them the optional message.
func (a *AsyncClient) Ban(ctx context.Context, userID, message string) *Call[Ack] {
	return dispatchAction(ctx, func(ctx context.Context) error {
		return a.c.Ban(ctx, userID, message)
	})
}

// Unban lifts the ban on the player identified by userID.
func (a *AsyncClient) Unban(ctx context.Context, userID string) *Call[Ack] {
	return dispatchAction(ctx, func(ctx context.Context) error {
		return a.c.Unban(ctx, userID)
	})
}

// Save persists the world state.
func (a *AsyncClient) Save(ctx context.Context) *Call[Ack] {
	return dispatchAction(ctx, a.c.Save)
}

// Shutdown schedules a graceful shutdown after waitTime seconds,
// broadcasting the optional message beforehand.
func (a *AsyncClient) Shutdown(ctx context.Context, waitTime int, message string) *Call[Ack] {
	return dispatchAction(ctx, func(ctx context.Context) error {
		return a.c.Shutdown(ctx, waitTime, message)
	})
}

// Stop terminates the server immediately, without saving.
func (a *AsyncClient) Stop(ctx context.Context) *Call[Ack] {
	return dispatchAction(ctx, a.c.Stop)
}

// Close releases the underlying session. It is idempotent; operations
// issued after Close complete with [ErrClientClosed]. Calls already in
// flight are left to finish.
func (a *AsyncClient) Close() {
	a.c.Close()
}

// dispatch runs fn in its own task, tied to a cancelable child of ctx.
func dispatch[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) *Call[T] {
	ctx, cancel := context.WithCancel(ctx)

	call := &Call[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(call.done)
		defer cancel()
		call.val, call.err = fn(ctx)
	}()

	return call
}

func dispatchAction(ctx context.Context, fn func(ctx context.Context) error) *Call[Ack] {
	return dispatch(ctx, func(ctx context.Context) (Ack, error) {
		return Ack{}, fn(ctx)
	})
}
