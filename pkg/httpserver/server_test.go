package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/httpserver"
)

func startServer(t *testing.T, ctx context.Context, srv *httpserver.Server, started <-chan struct{}) <-chan error {
	t.Helper()
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "ok")
		}))
	}()
	select {
	case <-started:
	case err := <-done:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start")
	}
	return done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not finish")
	}
}

func TestRun_ServesAndStopsOnCancel(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	var stopped atomic.Bool
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(time.Second),
		httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
		httpserver.WithStopHook(func(*slog.Logger) { stopped.Store(true) }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := startServer(t, ctx, srv, started)

	resp, err := http.Get("http://" + srv.Addr())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	waitDone(t, done)
	assert.True(t, stopped.Load())
	assert.NoError(t, srv.Shutdown(context.Background()), "second shutdown is a no-op")
}

func TestRun_ManualShutdownAndRerun(t *testing.T) {
	t.Parallel()

	started := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
	)
	done := startServer(t, context.Background(), srv, started)

	err := srv.Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)
	assert.ErrorIs(t, err, httpserver.ErrStart)

	require.NoError(t, srv.Shutdown(context.Background()))
	waitDone(t, done)
}

func TestRun_StartError(t *testing.T) {
	t.Parallel()

	err := httpserver.New(httpserver.WithAddr(":invalid")).Run(context.Background(), nil)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithReadHeaderTimeout(-time.Second) })
	assert.Panics(t, func() { httpserver.WithWriteTimeout(0) })
	assert.Panics(t, func() { httpserver.WithIdleTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(0) })
	assert.Panics(t, func() { httpserver.WithStartHook(nil) })
	assert.NotPanics(t, func() { httpserver.New(httpserver.WithLogger(nil)) })
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	srv := httpserver.NewFromConfig(httpserver.Config{Addr: "127.0.0.1:9999"})
	assert.Equal(t, "127.0.0.1:9999", srv.Addr())

	srv = httpserver.NewFromConfig(httpserver.Config{})
	assert.Equal(t, ":8080", srv.Addr())
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		checks []func(context.Context) error
		code   int
		body   string
	}{
		{name: "liveness", code: http.StatusOK, body: "ALIVE"},
		{
			name:   "ready",
			checks: []func(context.Context) error{func(context.Context) error { return nil }},
			code:   http.StatusOK,
			body:   "READY",
		},
		{
			name: "not ready",
			checks: []func(context.Context) error{
				func(context.Context) error { return nil },
				func(context.Context) error { return errors.New("redis down") },
			},
			code: http.StatusServiceUnavailable,
			body: "NOT_READY",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tc.checks...)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, tc.body, rec.Body.String())
		})
	}
}
