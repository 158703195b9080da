package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akgarhwal/vault/internal/config"
	"github.com/akgarhwal/vault/internal/logger"
)

func TestNewServer_Validation(t *testing.T) {
	handler := http.NotFoundHandler()

	_, err := NewServer(nil, config.Mirror{Address: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandler)

	_, err = NewServer(handler, config.Mirror{}, logger.Nop())
	assert.ErrorIs(t, err, errNoAddress)
}

func TestNewServer_AddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	_, err = NewServer(http.NotFoundHandler(), config.Mirror{Address: busy.Addr().String()}, logger.Nop())
	assert.Error(t, err)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	srv, err := NewServer(handler, config.Mirror{Address: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/ping")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get("http://" + srv.Addr() + "/ping")
	assert.Error(t, err)
}
