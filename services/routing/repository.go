package routing

import (
	"context"
	"time"

	"github.com/piresc/routefinder/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/routefinder/services/routing RouteCacheRepo

// RouteCacheRepo caches routing-service answers
type RouteCacheRepo interface {
	Get(ctx context.Context, profile string, origin, destination models.Coordinate) (models.RouteResult, bool, error)
	Set(ctx context.Context, profile string, origin, destination models.Coordinate, route models.RouteResult, ttl time.Duration) error
}
