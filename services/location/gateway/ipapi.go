package gateway

import (
	"context"
	"time"

	httpclient "github.com/piresc/routefinder/internal/pkg/http"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/metrics"
	"github.com/piresc/routefinder/internal/pkg/models"
)

// ConnectivityChecker is satisfied by netprobe.Prober
type ConnectivityChecker interface {
	HasConnectivity(ctx context.Context, timeout time.Duration) bool
}

// ipAPIResponse is the subset of the ip-api.com payload we use
type ipAPIResponse struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	City    string   `json:"city"`
}

// IPAPIGW locates the caller by public IP through ip-api.com
type IPAPIGW struct {
	client       *httpclient.Client
	prober       ConnectivityChecker
	probeTimeout time.Duration
	logger       *logger.ZapLogger
}

// NewIPAPIGW creates the IP geolocation gateway
func NewIPAPIGW(client *httpclient.Client, prober ConnectivityChecker, probeTimeout time.Duration, l *logger.ZapLogger) *IPAPIGW {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &IPAPIGW{
		client:       client,
		prober:       prober,
		probeTimeout: probeTimeout,
		logger:       l,
	}
}

// LocateByIP makes one request to the IP geolocation service.
// No connectivity, transport errors, bad payloads and non-success statuses all report false.
func (g *IPAPIGW) LocateByIP(ctx context.Context) (models.Coordinate, bool) {
	if g.prober != nil && !g.prober.HasConnectivity(ctx, g.probeTimeout) {
		g.logger.Warn("No internet connectivity, skipping IP geolocation")
		metrics.CountUpstream(metrics.ServiceIPAPI, metrics.OutcomeSkipped)
		return models.Coordinate{}, false
	}

	started := time.Now()
	var resp ipAPIResponse
	if err := g.client.GetJSON(ctx, "/json/", nil, &resp); err != nil {
		g.logger.Error("IP geolocation request failed", logger.Err(err))
		metrics.ObserveUpstream(metrics.ServiceIPAPI, metrics.OutcomeError, started)
		return models.Coordinate{}, false
	}

	if resp.Status != "success" || resp.Lat == nil || resp.Lon == nil {
		g.logger.Warn("IP geolocation returned no usable position",
			logger.String("status", resp.Status),
			logger.String("message", resp.Message))
		metrics.ObserveUpstream(metrics.ServiceIPAPI, metrics.OutcomeNotFound, started)
		return models.Coordinate{}, false
	}

	coord, err := models.NewCoordinate(*resp.Lat, *resp.Lon)
	if err != nil {
		g.logger.Error("IP geolocation returned an invalid coordinate", logger.Err(err))
		metrics.ObserveUpstream(metrics.ServiceIPAPI, metrics.OutcomeError, started)
		return models.Coordinate{}, false
	}

	g.logger.Info("Located by IP",
		logger.Coordinate("position", coord.Latitude, coord.Longitude),
		logger.String("city", resp.City))
	metrics.ObserveUpstream(metrics.ServiceIPAPI, metrics.OutcomeSuccess, started)
	return coord, true
}
