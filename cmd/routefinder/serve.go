package main

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/piresc/routefinder/internal/pkg/constants"
	"github.com/piresc/routefinder/internal/pkg/health"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/metrics"
	"github.com/piresc/routefinder/internal/pkg/middleware"
	"github.com/piresc/routefinder/internal/pkg/opener"
	"github.com/piresc/routefinder/internal/pkg/server"
	"github.com/piresc/routefinder/services/routing/handler"
	"github.com/spf13/cobra"
)

var serveOpen bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the route form on localhost",
	Long:  `Start a local web server with the route request form, the planning API, health checks and metrics.`,
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Open the form in the browser once the server is up")
}

func runServe(cmd *cobra.Command, args []string) error {
	configs := loadConfig()
	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.SetGlobalLogger(zapLogger)

	a, err := newApp(configs, zapLogger)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("connectivity", health.NewConnectivityHealthChecker(a.prober, configs.Timeouts.Probe))
	if a.redis != nil {
		healthService.AddChecker("redis", health.NewRedisHealthChecker(a.redis))
	}
	health.RegisterHealthEndpoints(e, configs.App.Name, healthService)
	e.GET("/metrics", metrics.Handler())

	handler.NewHandler(a.planner, constants.Destinations, a.maps.Path()).RegisterRoutes(e)

	gs := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port, a.shutdownTimeout())
	gs.OnShutdown(func(ctx context.Context) error {
		a.Close()
		return nil
	})

	if serveOpen {
		url := fmt.Sprintf("http://%s:%d/", configs.Server.Host, configs.Server.Port)
		if err := opener.URL(url); err != nil {
			zapLogger.Warn("Failed to open browser", logger.String("url", url), logger.Err(err))
		}
	}

	return gs.Start(cmd.Context())
}
