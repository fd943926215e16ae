package httpserver_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishbay/wishbay/pkg/httpserver"
	"github.com/wishbay/wishbay/pkg/logger"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(time.Second),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, http.NewServeMux()) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestRunFailsOnBadAddr(t *testing.T) {
	t.Parallel()

	srv := httpserver.New(httpserver.WithAddr("256.0.0.1:bad"))
	err := srv.Run(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpserver.ErrStart))
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	log := logger.NewDiscard()

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(log)(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		resp := rec.Result()
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ALIVE", string(body))
	})

	t.Run("readiness all passing", func(t *testing.T) {
		t.Parallel()

		ok := func(context.Context) error { return nil }
		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(log, ok, ok)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Result().StatusCode)
	})

	t.Run("readiness with failure", func(t *testing.T) {
		t.Parallel()

		ok := func(context.Context) error { return nil }
		bad := func(context.Context) error { return errors.New("dependency down") }
		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(log, ok, bad)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		resp := rec.Result()
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "NOT_READY", string(body))
	})
}
