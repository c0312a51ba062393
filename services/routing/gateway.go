package routing

import (
	"context"

	"github.com/piresc/routefinder/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/routefinder/services/routing RouteGW,MapBuilder

// RouteGW requests routes from the routing service
type RouteGW interface {
	GetRoute(ctx context.Context, origin, destination models.Coordinate, mode models.TravelMode) (models.RouteResult, bool)
}

// MapBuilder renders the map artifact and returns its path
type MapBuilder interface {
	Build(input models.MapInput) (string, error)
}
