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
)

// ErrMalformedCandidate is returned when the geocoding service answers with an unparsable candidate
var ErrMalformedCandidate = errors.New("malformed geocoding candidate")

// nominatimPlace is one search candidate; Nominatim encodes lat/lon as strings
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimGW queries an OpenStreetMap Nominatim instance
type NominatimGW struct {
	client *httpclient.Client
	logger *logger.ZapLogger
}

// NewNominatimGW creates the geocoding gateway
func NewNominatimGW(client *httpclient.Client, l *logger.ZapLogger) *NominatimGW {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &NominatimGW{client: client, logger: l}
}

// Search makes a single lookup and returns the first candidate.
// An empty result list is (zero, false, nil); transport failures are returned for the caller's retry policy.
func (g *NominatimGW) Search(ctx context.Context, query string) (models.Coordinate, bool, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	started := time.Now()
	var places []nominatimPlace
	if err := g.client.GetJSON(ctx, "/search", params, &places); err != nil {
		metrics.ObserveUpstream(metrics.ServiceNominatim, metrics.OutcomeError, started)
		return models.Coordinate{}, false, err
	}

	if len(places) == 0 {
		metrics.ObserveUpstream(metrics.ServiceNominatim, metrics.OutcomeNotFound, started)
		return models.Coordinate{}, false, nil
	}

	coord, err := parsePlace(places[0])
	if err != nil {
		metrics.ObserveUpstream(metrics.ServiceNominatim, metrics.OutcomeError, started)
		return models.Coordinate{}, false, err
	}

	g.logger.Debug("Geocoding candidate",
		logger.String("query", query),
		logger.String("display_name", places[0].DisplayName))
	metrics.ObserveUpstream(metrics.ServiceNominatim, metrics.OutcomeSuccess, started)
	return coord, true, nil
}

func parsePlace(p nominatimPlace) (models.Coordinate, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: lat %q", ErrMalformedCandidate, p.Lat)
	}
	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("%w: lon %q", ErrMalformedCandidate, p.Lon)
	}
	return models.NewCoordinate(lat, lon)
}
