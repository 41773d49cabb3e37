package palworld

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/palworld/rest"
)

// Client is the blocking variant of the Palworld REST API client. Each
// operation issues exactly one HTTP exchange and blocks the calling
// goroutine until it completes or fails.
//
// The Client owns a single underlying transport session, created by
// [Build] and released by [Client.Close]. It is safe for concurrent
// use by multiple goroutines: every call constructs its own request
// and decodes into its own destination.
type Client struct {
	rc      *rest.Client
	baseURL *url.URL
	headers map[string]string
	logger  *slog.Logger
	tracer  trace.Tracer
}

// Build constructs a blocking [Client]. The password is required and
// has no default; everything else defaults per [DefaultBaseURL],
// [DefaultUsername], and [DefaultTimeouts].
func Build(password string, optFns ...Option) (*Client, error) {
	if password == "" {
		return nil, errors.New("password must not be empty")
	}

	opts := defaultOptions()
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	baseURL, err := url.Parse(opts.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	restOpts := []rest.Option{
		rest.WithBasicAuth(opts.username, password),
		rest.WithTimeout(opts.timeouts.exchange()),
	}
	switch {
	case opts.httpClient != nil:
		restOpts = append(restOpts, rest.WithClient(opts.httpClient))
	case opts.transport != nil:
		restOpts = append(restOpts, rest.WithTransport(opts.transport))
	default:
		restOpts = append(restOpts, rest.WithTransport(opts.timeouts.transport()))
	}
	if opts.userAgent != "" {
		restOpts = append(restOpts, rest.WithUserAgent(opts.userAgent))
	}
	if opts.throttle != nil {
		restOpts = append(restOpts, rest.WithThrottle(opts.throttle.RPS, opts.throttle.Burst))
	}
	if opts.logger != nil {
		restOpts = append(restOpts, rest.WithLogger(opts.logger))
	}

	rc, err := rest.Build(restOpts...)
	if err != nil {
		return nil, fmt.Errorf("building rest client: %w", err)
	}

	logger := opts.logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := opts.tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("palworld")
	}

	return &Client{
		rc:      rc,
		baseURL: baseURL,
		headers: opts.headers,
		logger:  logger,
		tracer:  tracer,
	}, nil
}

// GetInfo returns the server's identity and version snapshot.
func (c *Client) GetInfo(ctx context.Context) (*InfoResponse, error) {
	var info InfoResponse
	if err := c.invoke(ctx, OpGetInfo, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetPlayers returns the roster of currently connected players.
func (c *Client) GetPlayers(ctx context.Context) (*PlayersResponse, error) {
	var players PlayersResponse
	if err := c.invoke(ctx, OpGetPlayers, nil, &players); err != nil {
		return nil, err
	}
	return &players, nil
}

// GetSettings returns the server's configuration snapshot.
func (c *Client) GetSettings(ctx context.Context) (*SettingsResponse, error) {
	var settings SettingsResponse
	if err := c.invoke(ctx, OpGetSettings, nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetMetrics returns the server's live performance snapshot.
func (c *Client) GetMetrics(ctx context.Context) (*MetricsResponse, error) {
	var metrics MetricsResponse
	if err := c.invoke(ctx, OpGetMetrics, nil, &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// Announce broadcasts a message to all connected players.
func (c *Client) Announce(ctx context.Context, message string) error {
	return c.invoke(ctx, OpPostAnnounce, &AnnounceRequest{Message: message}, nil)
}

// Kick removes the player identified by userID, showing them the
// optional message.
func (c *Client) Kick(ctx context.Context, userID, message string) error {
	return c.invoke(ctx, OpPostKick, &KickRequest{UserID: userID, Message: message}, nil)
}

// Ban bans the player identified by userID, showing them the optional message.
func (c *Client) Ban(ctx context.Context, userID, message string) error {
	return c.invoke(ctx, OpPostBan, &BanRequest{UserID: userID, Message: message}, nil)
}

// Unban lifts the ban on the player identified by userID.
func (c *Client) Unban(ctx context.Context, userID string) error {
	return c.invoke(ctx, OpPostUnban, &UnbanRequest{UserID: userID}, nil)
}

// Save persists the world state.
func (c *Client) Save(ctx context.Context) error {
	return c.invoke(ctx, OpPostSave, nil, nil)
}

// Shutdown schedules a graceful shutdown after waitTime seconds,
// broadcasting the optional message beforehand.
func (c *Client) Shutdown(ctx context.Context, waitTime int, message string) error {
	return c.invoke(ctx, OpPostShutdown, &ShutdownRequest{WaitTime: waitTime, Message: message}, nil)
}

// Stop terminates the server immediately, without saving.
func (c *Client) Stop(ctx context.Context) error {
	return c.invoke(ctx, OpPostStop, nil, nil)
}

// Close releases the underlying session. It is idempotent; operations
// issued after Close fail with [ErrClientClosed].
func (c *Client) Close() {
	c.rc.Close()
}

// invoke runs a single catalog operation: request validation and
// construction, one HTTP exchange, status check, and decoding into
// dest (which may be nil for action-only operations).
func (c *Client) invoke(ctx context.Context, op Operation, payload, dest any) error {
	if payload != nil {
		if err := Validate(payload); err != nil {
			return err
		}
	}

	ctx, span := c.tracer.Start(ctx, "palworld."+op.Name)
	span.SetAttributes(
		attribute.String("http.request.method", op.Method),
		attribute.String("url.path", op.Path),
	)
	defer span.End()

	headers := map[string][]string{
		"Accept":       {"application/json"},
		"X-Request-Id": {uuid.NewString()},
	}
	for k, v := range c.headers {
		headers[k] = []string{v}
	}

	reqOpts := []rest.RequestOption{rest.WithHeaders(headers)}
	if payload != nil {
		reqOpts = append(reqOpts, rest.WithPayload(payload))
	}

	req, err := rest.Request(ctx, c.baseURL.JoinPath(op.Path), op.Method, reqOpts...)
	if err != nil {
		return err
	}

	var doOpts []rest.DoOption
	if dest != nil {
		doOpts = append(doOpts, rest.WithDestination(dest))
	}

	if err := c.rc.Do(req, op.SuccessCode, doOpts...); err != nil {
		c.logger.Debug("api call failed", "operation", op.Name, "error", err)
		return err
	}

	if dest != nil {
		if err := Validate(dest); err != nil {
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}
	}

	c.logger.Debug("api call complete", "operation", op.Name, "method", op.Method, "path", op.Path)

	return nil
}
