package transport

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/fast-items-service/pkg/config"
)

func TestObservabilityMiddleware(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = CorrelationID(r.Context())
		w.WriteHeader(http.StatusCreated)
	})
	h := ObservabilityMiddleware(next)

	t.Run("propaga correlation id recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items/", nil)
		req.Header.Set(HeaderCorrelationID, "corr-123")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "corr-123", rec.Header().Get(HeaderCorrelationID))
		assert.Equal(t, "corr-123", seenID)
		assert.NotEmpty(t, rec.Header().Get(HeaderLatency))
	})

	t.Run("gera correlation id quando ausente", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/", nil))

		generated := rec.Header().Get(HeaderCorrelationID)
		assert.Len(t, generated, 36)
		assert.Equal(t, generated, seenID)
	})
}

func TestStartHTTPServer_GracefulShutdown(t *testing.T) {
	// Reserva uma porta livre
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	h := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- StartHTTPServer(ctx, config.ServiceDetails{Port: port, Timeout: time.Second}, h)
	}()

	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://127.0.0.1:%d/health", port))
		return err == nil
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("servidor não desligou")
	}
}

func TestStartHTTPServer_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()
	port := l.Addr().(*net.TCPAddr).Port

	err = StartHTTPServer(context.Background(), config.ServiceDetails{Port: port, Timeout: time.Second}, http.NotFoundHandler())
	assert.Error(t, err)
}
