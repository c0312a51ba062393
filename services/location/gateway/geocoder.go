package gateway

import (
	"context"
	"strings"
	"time"

	httpclient "github.com/piresc/routefinder/internal/pkg/http"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/internal/pkg/retry"
)

// Default geocoding retry policy
const (
	DefaultGeocodeAttempts = 3
	DefaultGeocodeBackoff  = 2 * time.Second
)

// Searcher performs a single geocoding lookup
type Searcher interface {
	Search(ctx context.Context, query string) (models.Coordinate, bool, error)
}

// GeocoderGW resolves addresses with bounded retry on transient failures
type GeocoderGW struct {
	searcher Searcher
	retrier  *retry.Retrier
	logger   *logger.ZapLogger
}

// DefaultGeocodePolicy retries transient failures with a fixed backoff
func DefaultGeocodePolicy(attempts int, backoff time.Duration) retry.Policy {
	if attempts < 1 {
		attempts = DefaultGeocodeAttempts
	}
	return retry.FixedPolicy(attempts, backoff, httpclient.IsTransient)
}

// NewGeocoderGW creates the geocoder. Queries are never stored; every call goes to the searcher.
func NewGeocoderGW(searcher Searcher, policy retry.Policy, l *logger.ZapLogger) *GeocoderGW {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &GeocoderGW{
		searcher: searcher,
		retrier:  retry.New(policy, l),
		logger:   l,
	}
}

// Geocode resolves address to its first candidate. Not-found, non-transient errors and
// exhausted retries all report false.
func (g *GeocoderGW) Geocode(ctx context.Context, address string) (models.Coordinate, bool) {
	address = strings.TrimSpace(address)
	if address == "" {
		return models.Coordinate{}, false
	}

	var (
		result models.Coordinate
		found  bool
	)
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		coord, ok, err := g.searcher.Search(ctx, address)
		if err != nil {
			return err
		}
		result, found = coord, ok
		return nil
	})
	if err != nil {
		g.logger.Error("Geocoding failed",
			logger.String("address", address),
			logger.Err(err))
		return models.Coordinate{}, false
	}

	if !found {
		g.logger.Info("Address not found", logger.String("address", address))
		return models.Coordinate{}, false
	}

	g.logger.Info("Address geocoded",
		logger.String("address", address),
		logger.Coordinate("position", result.Latitude, result.Longitude))
	return result, true
}
