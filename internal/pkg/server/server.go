package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/routefinder/internal/pkg/logger"
)

// DefaultShutdownTimeout bounds the graceful shutdown
const DefaultShutdownTimeout = 10 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	address         string
	shutdownTimeout time.Duration
	cleanup         *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, host string, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		address:         fmt.Sprintf("%s:%d", host, port),
		shutdownTimeout: shutdownTimeout,
		cleanup:         NewShutdownManager(zapLogger),
	}
}

// OnShutdown registers a cleanup function run after the HTTP server stops
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.cleanup.Register(fn)
}

// Start serves until ctx is cancelled or an interrupt/SIGTERM arrives, then shuts down gracefully
func (s *GracefulServer) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.address))
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	case <-ctx.Done():
		s.logger.Info("Context cancelled, stopping server")
	case err := <-errCh:
		s.logger.Error("Failed to start server", logger.Err(err))
		return err
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server and runs the registered cleanup functions
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.cleanup.Shutdown(ctx)
	s.logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager runs cleanup functions in registration order
type ShutdownManager struct {
	logger    *logger.ZapLogger
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{
		logger:    zapLogger,
		functions: make([]func(context.Context) error, 0),
	}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	if fn == nil {
		return
	}
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions, continuing past failures
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(err))
		}
	}
	return nil
}
