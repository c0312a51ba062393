package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestGracefulServer_StartAndCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	port := freePort(t)
	gs := NewGracefulServer(e, logger.NewNopLogger(), "127.0.0.1", port, time.Second)

	cleaned := false
	gs.OnShutdown(func(ctx context.Context) error {
		cleaned = true
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Start(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + gs.address + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, cleaned)
}

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), "", 8765, 0)

	assert.Equal(t, DefaultShutdownTimeout, gs.shutdownTimeout)
	assert.Equal(t, ":8765", gs.address)
}

func TestShutdownManager_Shutdown(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	var results []string

	sm.Register(func(ctx context.Context) error {
		results = append(results, "cache")
		return nil
	})
	sm.Register(nil)
	sm.Register(func(ctx context.Context) error {
		results = append(results, "failing")
		return errors.New("close failed")
	})
	sm.Register(func(ctx context.Context) error {
		results = append(results, "logger")
		return nil
	})

	err := sm.Shutdown(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"cache", "failing", "logger"}, results)
}
