package constants

// Redis key formats
const (
	KeyRoute = "route:%s:%s:%s" // Format: route:{profile}:{origin_geohash}:{destination_geohash}
)

// RouteGeohashPrecision is the geohash length used in route cache keys (~5m cells)
const RouteGeohashPrecision = 9
