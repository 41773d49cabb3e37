package palworld_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/adamwoolhether/palworld"
)

func newTestAsyncClient(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *palworld.AsyncClient) {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	a, err := palworld.BuildAsync(testPassword, palworld.WithBaseURL(ts.URL))
	if err != nil {
		t.Fatalf("failed to build async client: %v", err)
	}
	t.Cleanup(a.Close)

	return ts, a
}

// apiHandler serves canned bodies for all four query endpoints.
func apiHandler(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/v1/api/info":
		w.Write([]byte(infoBody))
	case "/v1/api/players":
		w.Write([]byte(playersBody))
	case "/v1/api/settings":
		w.Write([]byte(`{"ServerName":"MyServer","ExpRate":1.5}`))
	case "/v1/api/metrics":
		w.Write([]byte(metricsBody))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

// TestAsyncClient_Parity verifies both client variants produce
// structurally identical results for identical responses.
func TestAsyncClient_Parity(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(apiHandler))
	t.Cleanup(ts.Close)

	c, err := palworld.Build(testPassword, palworld.WithBaseURL(ts.URL))
	if err != nil {
		t.Fatalf("failed to build blocking client: %v", err)
	}
	t.Cleanup(c.Close)

	a, err := palworld.BuildAsync(testPassword, palworld.WithBaseURL(ts.URL))
	if err != nil {
		t.Fatalf("failed to build async client: %v", err)
	}
	t.Cleanup(a.Close)

	t.Run("get_info", func(t *testing.T) {
		blocking, err := c.GetInfo(context.Background())
		if err != nil {
			t.Fatalf("blocking: %v", err)
		}
		suspending, err := a.GetInfo(context.Background()).Result()
		if err != nil {
			t.Fatalf("suspending: %v", err)
		}
		if diff := cmp.Diff(blocking, suspending); diff != "" {
			t.Errorf("variants disagree (-blocking +suspending):\n%s", diff)
		}
	})

	t.Run("get_players", func(t *testing.T) {
		blocking, err := c.GetPlayers(context.Background())
		if err != nil {
			t.Fatalf("blocking: %v", err)
		}
		suspending, err := a.GetPlayers(context.Background()).Result()
		if err != nil {
			t.Fatalf("suspending: %v", err)
		}
		if diff := cmp.Diff(blocking, suspending); diff != "" {
			t.Errorf("variants disagree (-blocking +suspending):\n%s", diff)
		}
	})

	t.Run("get_settings", func(t *testing.T) {
		blocking, err := c.GetSettings(context.Background())
		if err != nil {
			t.Fatalf("blocking: %v", err)
		}
		suspending, err := a.GetSettings(context.Background()).Result()
		if err != nil {
			t.Fatalf("suspending: %v", err)
		}
		if diff := cmp.Diff(blocking, suspending); diff != "" {
			t.Errorf("variants disagree (-blocking +suspending):\n%s", diff)
		}
	})

	t.Run("get_metrics", func(t *testing.T) {
		blocking, err := c.GetMetrics(context.Background())
		if err != nil {
			t.Fatalf("blocking: %v", err)
		}
		suspending, err := a.GetMetrics(context.Background()).Result()
		if err != nil {
			t.Fatalf("suspending: %v", err)
		}
		if diff := cmp.Diff(blocking, suspending); diff != "" {
			t.Errorf("variants disagree (-blocking +suspending):\n%s", diff)
		}
	})
}

// TestAsyncClient_ConcurrentInFlight proves multiple operations from
// one client can be outstanding at the same time: the server blocks
// each request until all three have arrived.
func TestAsyncClient_ConcurrentInFlight(t *testing.T) {
	const inFlight = 3

	arrived := make(chan struct{}, inFlight)
	release := make(chan struct{})

	_, a := newTestAsyncClient(t, func(w http.ResponseWriter, r *http.Request) {
		arrived <- struct{}{}
		<-release
		w.Write([]byte(metricsBody))
	})

	calls := make([]*palworld.Call[*palworld.MetricsResponse], inFlight)
	for i := range calls {
		calls[i] = a.GetMetrics(context.Background())
	}

	for i := 0; i < inFlight; i++ {
		select {
		case <-arrived:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for concurrent requests to arrive")
		}
	}
	close(release)

	for i, call := range calls {
		metrics, err := call.Result()
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if metrics.ServerFPS != 60 {
			t.Errorf("call %d: serverfps = %d, want 60", i, metrics.ServerFPS)
		}
	}
}

func TestAsyncClient_ValidationError(t *testing.T) {
	var requests atomic.Int64
	_, a := newTestAsyncClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})

	err := a.Announce(context.Background(), "").Err()
	if !palworld.IsFieldErrors(err) {
		t.Fatalf("expected FieldErrors, got: %v", err)
	}

	if n := requests.Load(); n != 0 {
		t.Errorf("request count = %d, want 0", n)
	}
}

func TestAsyncClient_Actions(t *testing.T) {
	_, a := newTestAsyncClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if err := a.Announce(context.Background(), "maintenance in 5 minutes").Err(); err != nil {
		t.Errorf("announce: %v", err)
	}
	if err := a.Save(context.Background()).Err(); err != nil {
		t.Errorf("save: %v", err)
	}
	if err := a.Shutdown(context.Background(), 300, "restarting").Err(); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestCall_Cancel(t *testing.T) {
	entered := make(chan struct{})

	_, a := newTestAsyncClient(t, func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-r.Context().Done()
	})

	call := a.GetInfo(context.Background())

	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for request to start")
	}

	call.Cancel()

	err := call.Err()
	if err == nil {
		t.Fatal("expected error after cancel")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got: %v", err)
	}
}

func TestCall_Done(t *testing.T) {
	_, a := newTestAsyncClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(infoBody))
	})

	call := a.GetInfo(context.Background())

	select {
	case <-call.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for Done")
	}

	info, err := call.Result()
	if err != nil {
		t.Fatalf("result: %v", err)
	}
	if info.Version != "1.2.3" {
		t.Errorf("version = %q, want 1.2.3", info.Version)
	}
}

func TestAsyncClient_CloseIdempotent(t *testing.T) {
	var requests atomic.Int64
	_, a := newTestAsyncClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})

	a.Close()
	a.Close()

	if err := a.Save(context.Background()).Err(); !errors.Is(err, palworld.ErrClientClosed) {
		t.Fatalf("expected ErrClientClosed, got: %v", err)
	}

	if n := requests.Load(); n != 0 {
		t.Errorf("request count = %d, want 0", n)
	}
}
