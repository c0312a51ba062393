package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/routefinder/internal/pkg/constants"
	"github.com/piresc/routefinder/internal/pkg/database"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/internal/utils"
)

// RouteCache stores routing answers in Redis, keyed by profile and the geohash cells of both ends
type RouteCache struct {
	redisClient *database.RedisClient
}

// NewRouteCache creates a Redis-backed route cache
func NewRouteCache(redisClient *database.RedisClient) *RouteCache {
	return &RouteCache{redisClient: redisClient}
}

// RouteKey returns the cache key for a route request
func RouteKey(profile string, origin, destination models.Coordinate) string {
	return fmt.Sprintf(constants.KeyRoute, profile,
		utils.EncodeCoordinate(origin, constants.RouteGeohashPrecision),
		utils.EncodeCoordinate(destination, constants.RouteGeohashPrecision))
}

// Get returns a cached route
func (c *RouteCache) Get(ctx context.Context, profile string, origin, destination models.Coordinate) (models.RouteResult, bool, error) {
	key := RouteKey(profile, origin, destination)
	val, err := c.redisClient.Get(ctx, key)
	if errors.Is(err, database.ErrCacheMiss) {
		return models.RouteResult{}, false, nil
	}
	if err != nil {
		return models.RouteResult{}, false, fmt.Errorf("failed to read route cache: %w", err)
	}

	var route models.RouteResult
	if err := json.Unmarshal([]byte(val), &route); err != nil {
		c.evict(ctx, key)
		return models.RouteResult{}, false, fmt.Errorf("failed to decode cached route: %w", err)
	}
	if len(route.Polyline) == 0 {
		c.evict(ctx, key)
		return models.RouteResult{}, false, nil
	}
	return route, true, nil
}

// Set caches a route
func (c *RouteCache) Set(ctx context.Context, profile string, origin, destination models.Coordinate, route models.RouteResult, ttl time.Duration) error {
	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("failed to encode route: %w", err)
	}
	if err := c.redisClient.Set(ctx, RouteKey(profile, origin, destination), data, ttl); err != nil {
		return fmt.Errorf("failed to write route cache: %w", err)
	}
	return nil
}

// evict drops an unusable entry so the next lookup refills it
func (c *RouteCache) evict(ctx context.Context, key string) {
	_ = c.redisClient.Delete(ctx, key)
}
