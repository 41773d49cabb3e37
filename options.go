package palworld

import (
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/palworld/rest/throttle"
)

const (
	// DefaultBaseURL is where a locally hosted server exposes its REST API.
	DefaultBaseURL = "http://127.0.0.1:8212"
	// DefaultUsername is the fixed admin account name used by the server.
	DefaultUsername = "admin"
)

// Timeouts carries the per-phase timeouts applied to every exchange.
//
// Go's transport has no direct pool-acquire deadline; Pool bounds how
// long idle pooled connections are retained, and the overall exchange
// deadline (Connect + Write + Read) is enforced on the http.Client, so
// a call can never outlive the sum of its phases.
type Timeouts struct {
	Connect time.Duration // TCP dial and TLS handshake
	Read    time.Duration // waiting for response headers
	Write   time.Duration // sending the request, bounded via the exchange deadline
	Pool    time.Duration // idle pooled connection retention
}

// DefaultTimeouts returns the documented defaults: connect 5s,
// read 10s, write 10s, pool 10s.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Connect: 5 * time.Second,
		Read:    10 * time.Second,
		Write:   10 * time.Second,
		Pool:    10 * time.Second,
	}
}

// exchange returns the overall per-request deadline.
func (t Timeouts) exchange() time.Duration {
	return t.Connect + t.Write + t.Read
}

// transport builds an *http.Transport enforcing the timeout phases.
func (t Timeouts) transport() *http.Transport {
	dialer := &net.Dialer{Timeout: t.Connect}

	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   t.Connect,
		ResponseHeaderTimeout: t.Read,
		IdleConnTimeout:       t.Pool,
		MaxIdleConnsPerHost:   4,
	}
}

func (t Timeouts) validate() error {
	if t.Connect < 0 || t.Read < 0 || t.Write < 0 || t.Pool < 0 {
		return errors.New("timeouts must not be negative")
	}
	return nil
}

// Option is a functional option for configuring a [Client] via [Build]
// or an [AsyncClient] via [BuildAsync].
type Option func(*options) error

type options struct {
	baseURL    string
	username   string
	timeouts   Timeouts
	headers    map[string]string
	userAgent  string
	httpClient *http.Client
	transport  http.RoundTripper
	throttle   *throttle.Config
	logger     *slog.Logger
	tracer     trace.Tracer
}

func defaultOptions() options {
	return options{
		baseURL:  DefaultBaseURL,
		username: DefaultUsername,
		timeouts: DefaultTimeouts(),
	}
}

// WithBaseURL overrides the default base URL of http://127.0.0.1:8212.
func WithBaseURL(baseURL string) Option {
	return func(o *options) error {
		u, err := url.Parse(baseURL)
		if err != nil {
			return err
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.New("base url scheme must be http or https")
		}
		o.baseURL = baseURL
		return nil
	}
}

// WithUsername overrides the default "admin" Basic Auth username.
func WithUsername(username string) Option {
	return func(o *options) error {
		if username == "" {
			return errors.New("username must not be empty")
		}
		o.username = username
		return nil
	}
}

// WithTimeouts overrides the default per-phase timeouts.
func WithTimeouts(t Timeouts) Option {
	return func(o *options) error {
		if err := t.validate(); err != nil {
			return err
		}
		o.timeouts = t
		return nil
	}
}

// WithHeaders adds default headers sent with every request, on top of
// the fixed Accept: application/json.
func WithHeaders(headers map[string]string) Option {
	return func(o *options) error {
		o.headers = headers
		return nil
	}
}

// WithUserAgent adds a persistent User-Agent header to all outgoing requests.
func WithUserAgent(header string) Option {
	return func(o *options) error {
		o.userAgent = header
		return nil
	}
}

// WithHTTPClient replaces the session's [http.Client] wholesale. The
// caller then owns timeout enforcement; [WithTimeouts] values other
// than the exchange deadline are ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.New("http client must not be nil")
		}
		o.httpClient = hc
		return nil
	}
}

// WithTransport sets a custom [http.RoundTripper] as the base transport,
// replacing the one derived from [Timeouts].
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		o.transport = rt
		return nil
	}
}

// WithThrottle enables token-bucket rate limiting of outbound calls
// with the given requests per second and burst capacity.
func WithThrottle(rps, burst int) Option {
	return func(o *options) error {
		if rps <= 0 || burst <= 0 {
			return throttle.ErrMustNotBeZero
		}
		o.throttle = &throttle.Config{RPS: rps, Burst: burst}
		return nil
	}
}

// WithLogger injects a custom [slog.Logger]; slog.Default() is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithTracer injects an OpenTelemetry tracer; a no-op tracer is used otherwise.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}
