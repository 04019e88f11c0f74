package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/handler"
	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_RequiresHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Defaults().Server, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Defaults()
	handlers, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)

	s, err := NewServer(handlers, cfg.Server, logger.Nop())
	require.NoError(t, err)

	hs := s.(*server).httpServer
	assert.Equal(t, cfg.Server.ReadTimeout, hs.server.ReadTimeout)
	assert.Equal(t, cfg.Server.WriteTimeout, hs.server.WriteTimeout)
	assert.Equal(t, cfg.Server.ShutdownTimeout, hs.shutdownTimeout)
}

func TestServer_ServesUntilContextDone(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	s := newServer(h, config.Server{ShutdownTimeout: time.Second}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, listener) }()

	resp, err := http.Get("http://" + listener.Addr().String() + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestServer_RunFailsOnBusyAddress(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	s := newServer(http.NotFoundHandler(), config.Server{HTTPAddress: listener.Addr().String()}, logger.Nop())

	assert.Error(t, s.Run(context.Background()))
}
