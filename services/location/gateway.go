package location

import (
	"context"
	"time"

	"github.com/piresc/routefinder/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/routefinder/services/location IPLocator,DeviceLocator,Geocoder

// IPLocator looks the caller up by public IP address
type IPLocator interface {
	LocateByIP(ctx context.Context) (models.Coordinate, bool)
}

// DeviceLocator asks the device (browser geolocation) for the current position
type DeviceLocator interface {
	RequestDeviceLocation(ctx context.Context, timeout time.Duration) (models.Coordinate, bool)
}

// Geocoder resolves free-text addresses
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Coordinate, bool)
}
