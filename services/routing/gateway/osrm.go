package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	httpclient "github.com/piresc/routefinder/internal/pkg/http"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/metrics"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/services/routing"
)

// ErrMalformedRoute is returned when a route's geometry or totals cannot be used
var ErrMalformedRoute = errors.New("malformed route")

type osrmResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Routes  []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Geometry struct {
		Type        string      `json:"type"`
		Coordinates [][]float64 `json:"coordinates"`
	} `json:"geometry"`
	Distance float64 `json:"distance"`
	Duration float64 `json:"duration"`
}

// OSRMGW talks to an OSRM HTTP server
type OSRMGW struct {
	client   *httpclient.Client
	cache    routing.RouteCacheRepo
	cacheTTL time.Duration
	logger   *logger.ZapLogger
}

// NewOSRMGW creates the route gateway. cache may be nil.
func NewOSRMGW(client *httpclient.Client, cache routing.RouteCacheRepo, cacheTTL time.Duration, l *logger.ZapLogger) *OSRMGW {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &OSRMGW{client: client, cache: cache, cacheTTL: cacheTTL, logger: l}
}

// RoutePath builds /route/v1/<profile>/<lon,lat;lon,lat>
func RoutePath(profile string, origin, destination models.Coordinate) string {
	return fmt.Sprintf("/route/v1/%s/%s,%s;%s,%s", profile,
		formatDegrees(origin.Longitude), formatDegrees(origin.Latitude),
		formatDegrees(destination.Longitude), formatDegrees(destination.Latitude))
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// GetRoute makes a single request for the first route between origin and destination.
// Failures, empty answers and unusable geometry all report false.
func (g *OSRMGW) GetRoute(ctx context.Context, origin, destination models.Coordinate, mode models.TravelMode) (models.RouteResult, bool) {
	profile := models.ProfileForMode(mode)

	if g.cache != nil {
		route, hit, err := g.cache.Get(ctx, profile, origin, destination)
		if err != nil {
			g.logger.Warn("Route cache lookup failed", logger.Err(err))
		} else if hit {
			g.logger.Debug("Route cache hit", logger.String("profile", profile))
			return route, true
		}
	}

	params := url.Values{}
	params.Set("overview", "full")
	params.Set("geometries", "geojson")
	params.Set("annotations", "duration,distance")

	started := time.Now()
	var resp osrmResponse
	if err := g.client.GetJSON(ctx, RoutePath(profile, origin, destination), params, &resp); err != nil {
		g.logger.Error("Route request failed", logger.String("profile", profile), logger.Err(err))
		metrics.ObserveUpstream(metrics.ServiceOSRM, metrics.OutcomeError, started)
		return models.RouteResult{}, false
	}

	// the code field is optional; an explicit non-Ok code means no route
	if (resp.Code != "" && resp.Code != "Ok") || len(resp.Routes) == 0 {
		g.logger.Warn("No route found",
			logger.String("profile", profile),
			logger.String("code", resp.Code),
			logger.String("message", resp.Message))
		metrics.ObserveUpstream(metrics.ServiceOSRM, metrics.OutcomeNotFound, started)
		return models.RouteResult{}, false
	}

	route, err := normalizeRoute(resp.Routes[0])
	if err != nil {
		g.logger.Error("Unusable route in response", logger.Err(err))
		metrics.ObserveUpstream(metrics.ServiceOSRM, metrics.OutcomeError, started)
		return models.RouteResult{}, false
	}
	metrics.ObserveUpstream(metrics.ServiceOSRM, metrics.OutcomeSuccess, started)

	g.logger.Info("Route obtained",
		logger.String("profile", profile),
		logger.Float64("distance_m", route.DistanceMeters),
		logger.Float64("duration_s", route.DurationSeconds),
		logger.Int("points", len(route.Polyline)))

	if g.cache != nil {
		if err := g.cache.Set(ctx, profile, origin, destination, route, g.cacheTTL); err != nil {
			g.logger.Warn("Failed to cache route", logger.Err(err))
		}
	}
	return route, true
}

// normalizeRoute swaps the wire [lon, lat] pairs into Coordinates, keeping their order
func normalizeRoute(r osrmRoute) (models.RouteResult, error) {
	if r.Distance < 0 || r.Duration < 0 {
		return models.RouteResult{}, fmt.Errorf("%w: negative totals", ErrMalformedRoute)
	}
	if len(r.Geometry.Coordinates) == 0 {
		return models.RouteResult{}, fmt.Errorf("%w: empty geometry", ErrMalformedRoute)
	}

	polyline := make([]models.Coordinate, 0, len(r.Geometry.Coordinates))
	for i, pair := range r.Geometry.Coordinates {
		if len(pair) < 2 {
			return models.RouteResult{}, fmt.Errorf("%w: point %d has %d values", ErrMalformedRoute, i, len(pair))
		}
		c, err := models.NewCoordinate(pair[1], pair[0])
		if err != nil {
			return models.RouteResult{}, fmt.Errorf("%w: point %d: %v", ErrMalformedRoute, i, err)
		}
		polyline = append(polyline, c)
	}

	return models.RouteResult{
		Polyline:        polyline,
		DistanceMeters:  r.Distance,
		DurationSeconds: r.Duration,
	}, nil
}
