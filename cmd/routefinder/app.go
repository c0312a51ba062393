package main

import (
	"fmt"
	"io"
	"time"

	"github.com/piresc/routefinder/internal/pkg/config"
	"github.com/piresc/routefinder/internal/pkg/constants"
	"github.com/piresc/routefinder/internal/pkg/database"
	httpclient "github.com/piresc/routefinder/internal/pkg/http"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/metrics"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/internal/pkg/netprobe"
	"github.com/piresc/routefinder/services/location/device"
	locationgw "github.com/piresc/routefinder/services/location/gateway"
	locationrepo "github.com/piresc/routefinder/services/location/repository"
	locationuc "github.com/piresc/routefinder/services/location/usecase"
	"github.com/piresc/routefinder/services/mapview"
	"github.com/piresc/routefinder/services/routing"
	routinggw "github.com/piresc/routefinder/services/routing/gateway"
	routingrepo "github.com/piresc/routefinder/services/routing/repository"
	routinguc "github.com/piresc/routefinder/services/routing/usecase"
)

// app holds the wired pipeline shared by the commands
type app struct {
	configs *models.Config
	logger  *logger.ZapLogger
	redis   *database.RedisClient
	prober  *netprobe.Prober
	lastFix *locationrepo.LastFixFile
	maps    *mapview.Builder
	planner *routinguc.PlannerUC
}

func loadConfig() *models.Config {
	return config.InitConfig(configPath)
}

func newLogger(configs *models.Config, console io.Writer) (*logger.ZapLogger, error) {
	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Console:  console,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.SetGlobalLogger(zapLogger)
	return zapLogger, nil
}

func newApp(configs *models.Config, zapLogger *logger.ZapLogger) (*app, error) {
	a := &app{
		configs: configs,
		logger:  zapLogger,
		prober:  netprobe.NewProber(configs.Probe.Address),
		lastFix: locationrepo.NewLastFixFile(configs.Files.LastFixFile),
	}

	// The route cache stays an untyped nil interface when redis is not configured
	var routeCache routing.RouteCacheRepo
	if configs.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Warn("Redis unavailable, caching disabled", logger.Err(err))
		} else {
			a.redis = redisClient
			routeCache = routingrepo.NewRouteCache(redisClient)
		}
	}

	ipClient := httpclient.NewClient(httpclient.Config{
		Name:      metrics.ServiceIPAPI,
		BaseURL:   configs.Services.IPAPIURL,
		Timeout:   configs.Timeouts.IPLookup,
		UserAgent: configs.Services.UserAgent,
	}, zapLogger)
	nominatimClient := httpclient.NewClient(httpclient.Config{
		Name:      metrics.ServiceNominatim,
		BaseURL:   configs.Services.NominatimURL,
		Timeout:   configs.Timeouts.Geocode,
		UserAgent: configs.Services.UserAgent,
	}, zapLogger)
	osrmClient := httpclient.NewClient(httpclient.Config{
		Name:      metrics.ServiceOSRM,
		BaseURL:   configs.Services.OSRMURL,
		Timeout:   configs.Timeouts.Route,
		UserAgent: configs.Services.UserAgent,
	}, zapLogger)

	ipLocator := locationgw.NewIPAPIGW(ipClient, a.prober, configs.Timeouts.Probe, zapLogger)
	geocoder := locationgw.NewGeocoderGW(
		locationgw.NewNominatimGW(nominatimClient, zapLogger),
		locationgw.DefaultGeocodePolicy(configs.Geocode.Attempts, configs.Geocode.Backoff),
		zapLogger,
	)

	launcher, err := device.NewSelfLauncher()
	if err != nil {
		return nil, err
	}
	launcher.ExtraArgs = []string{"--config", configPath}
	deviceLocator := device.NewRequester(
		device.NewFixFile(configs.Files.FixFile),
		launcher,
		a.lastFix,
		device.Config{
			PollInterval:  configs.Device.PollInterval,
			HelperTimeout: configs.Device.HelperTimeout,
			MaxFixAge:     configs.Device.MaxFixAge,
		},
		zapLogger,
	)

	originUC := locationuc.NewOriginUC(deviceLocator, ipLocator, geocoder, a.lastFix, configs.Timeouts.DeviceLocation, zapLogger)

	maps, err := mapview.NewBuilder(configs.Files.MapFile, zapLogger)
	if err != nil {
		return nil, err
	}
	a.maps = maps

	router := routinggw.NewOSRMGW(osrmClient, routeCache, configs.Cache.RouteTTL, zapLogger)
	a.planner = routinguc.NewPlannerUC(originUC, geocoder, router, maps, constants.Destinations, zapLogger)

	return a, nil
}

func (a *app) shutdownTimeout() time.Duration {
	return time.Duration(a.configs.Server.ShutdownTimeout) * time.Second
}

func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("Failed to close redis", logger.Err(err))
		}
	}
	a.logger.Close()
}
