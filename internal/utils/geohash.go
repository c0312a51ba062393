package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/routefinder/internal/pkg/models"
)

const earthRadiusKm = 6371.0

// EncodeCoordinate converts a coordinate to a geohash string
func EncodeCoordinate(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// CalculateDistance returns the great-circle distance in kilometers (Haversine)
func CalculateDistance(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
