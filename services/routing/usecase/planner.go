package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/routefinder/internal/pkg/constants"
	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/internal/utils"
	"github.com/piresc/routefinder/services/location"
	"github.com/piresc/routefinder/services/routing"
)

var (
	ErrEmptyDestination       = errors.New("destination is required")
	ErrDestinationNotGeocoded = errors.New("could not geocode the destination")
	ErrMapArtifact            = errors.New("failed to build the map")
)

// RouteUnavailableNotice is attached to summaries rendered without a route
const RouteUnavailableNotice = "No route could be obtained; showing origin and destination only."

// PlannerUC wires origin resolution, geocoding, routing and map rendering together
type PlannerUC struct {
	origins      location.OriginUC
	geocoder     location.Geocoder
	router       routing.RouteGW
	maps         routing.MapBuilder
	destinations []models.Destination
	logger       *logger.ZapLogger
}

// NewPlannerUC creates the planner. destinations is the predefined catalogue and may be empty.
func NewPlannerUC(
	origins location.OriginUC,
	geocoder location.Geocoder,
	router routing.RouteGW,
	maps routing.MapBuilder,
	destinations []models.Destination,
	l *logger.ZapLogger,
) *PlannerUC {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &PlannerUC{
		origins:      origins,
		geocoder:     geocoder,
		router:       router,
		maps:         maps,
		destinations: destinations,
		logger:       l,
	}
}

// Plan resolves both endpoints, asks for a route and always renders the map once both
// endpoints are known. A missing route is not an error. The request ID is taken from ctx
// when the caller set one.
func (uc *PlannerUC) Plan(ctx context.Context, req models.RouteRequest) (*models.RouteSummary, error) {
	requestID := logger.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := uc.logger.WithRequestID(requestID)

	label := utils.SanitizeString(req.Destination)
	if label == "" {
		return nil, ErrEmptyDestination
	}

	address := label
	if predefined, ok := constants.LookupDestination(uc.destinations, label); ok {
		address = predefined
		log.Debug("Using predefined destination", logger.String("name", label))
	}

	origin, err := uc.origins.ResolveOrigin(ctx, models.OriginRequest{
		UseDeviceLocation: req.UseDeviceLocation,
		ManualOrigin:      utils.SanitizeString(req.Origin),
	})
	if err != nil {
		log.Warn("Origin resolution failed", logger.Err(err))
		return nil, err
	}

	destination, ok := uc.geocoder.Geocode(ctx, address)
	if !ok {
		log.Warn("Destination could not be geocoded", logger.String("destination", label))
		return nil, ErrDestinationNotGeocoded
	}

	mode, notice := models.NormalizeMode(req.Mode)
	summary := &models.RouteSummary{
		RequestID:        requestID,
		Origin:           origin.Coordinate,
		OriginSource:     origin.Source,
		Destination:      destination,
		DestinationLabel: label,
		Mode:             mode,
		Profile:          models.ProfileForMode(mode),
	}
	if notice != "" {
		summary.Notices = append(summary.Notices, notice)
	}

	var route *models.RouteResult
	if result, ok := uc.router.GetRoute(ctx, origin.Coordinate, destination, mode); ok {
		route = &result
		distance, duration := result.DistanceKm(), result.DurationMin()
		summary.DistanceKm = &distance
		summary.DurationMin = &duration
	} else {
		summary.Notices = append(summary.Notices, RouteUnavailableNotice)
	}

	path, err := uc.maps.Build(models.MapInput{
		Origin:      origin.Coordinate,
		Destination: destination,
		Label:       label,
		Mode:        mode,
		Route:       route,
	})
	if err != nil {
		log.Error("Map build failed", logger.Err(err))
		return nil, fmt.Errorf("%w: %v", ErrMapArtifact, err)
	}
	summary.ArtifactPath = path

	log.Info("Route planned",
		logger.String("origin_source", string(origin.Source)),
		logger.String("profile", summary.Profile),
		logger.Bool("has_route", route != nil))
	return summary, nil
}
