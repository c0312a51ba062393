package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/piresc/routefinder/internal/pkg/logger"
	"github.com/piresc/routefinder/internal/pkg/metrics"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/services/location"
)

// Origin resolution failures, worded for the end user
var (
	ErrLocationUnavailable = errors.New("location unavailable: device location and IP geolocation both failed")
	ErrOriginNotGeocoded   = errors.New("could not geocode the provided origin")
	ErrNoOrigin            = errors.New("no origin available; provide one or enable device location")
)

// DefaultDeviceTimeout is how long the device path may take before falling back to IP
const DefaultDeviceTimeout = 10 * time.Second

// OriginUC implements the origin fallback policy
type OriginUC struct {
	device        location.DeviceLocator
	ip            location.IPLocator
	geocoder      location.Geocoder
	lastFix       location.LastFixRepo
	deviceTimeout time.Duration
	now           func() time.Time
	logger        *logger.ZapLogger
}

// NewOriginUC creates the origin resolver. lastFix may be nil.
func NewOriginUC(
	device location.DeviceLocator,
	ip location.IPLocator,
	geocoder location.Geocoder,
	lastFix location.LastFixRepo,
	deviceTimeout time.Duration,
	l *logger.ZapLogger,
) *OriginUC {
	if deviceTimeout <= 0 {
		deviceTimeout = DefaultDeviceTimeout
	}
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	return &OriginUC{
		device:        device,
		ip:            ip,
		geocoder:      geocoder,
		lastFix:       lastFix,
		deviceTimeout: deviceTimeout,
		now:           time.Now,
		logger:        l,
	}
}

// ResolveOrigin picks the origin by priority: device flag, then typed origin, then IP.
// Each step runs only after the previous one has definitively failed.
func (uc *OriginUC) ResolveOrigin(ctx context.Context, req models.OriginRequest) (models.Origin, error) {
	manual := strings.TrimSpace(req.ManualOrigin)

	var (
		origin models.Origin
		err    error
	)
	switch {
	case req.UseDeviceLocation:
		if manual != "" {
			uc.logger.Info("Device location requested, ignoring typed origin", logger.String("origin", manual))
		}
		origin, err = uc.fromDevice(ctx)
	case manual != "":
		origin, err = uc.fromAddress(ctx, manual)
	default:
		origin, err = uc.fromIP(ctx)
	}

	if err != nil {
		metrics.ObserveOrigin("failed")
		return models.Origin{}, err
	}

	metrics.ObserveOrigin(string(origin.Source))
	uc.remember(ctx, origin)
	return origin, nil
}

func (uc *OriginUC) fromDevice(ctx context.Context) (models.Origin, error) {
	if coord, ok := uc.device.RequestDeviceLocation(ctx, uc.deviceTimeout); ok {
		return models.Origin{Coordinate: coord, Source: models.OriginSourceDevice}, nil
	}

	uc.logger.Info("Device location failed, falling back to IP geolocation")
	if coord, ok := uc.ip.LocateByIP(ctx); ok {
		return models.Origin{Coordinate: coord, Source: models.OriginSourceIP}, nil
	}
	return models.Origin{}, ErrLocationUnavailable
}

func (uc *OriginUC) fromAddress(ctx context.Context, address string) (models.Origin, error) {
	coord, ok := uc.geocoder.Geocode(ctx, address)
	if !ok {
		return models.Origin{}, ErrOriginNotGeocoded
	}
	return models.Origin{Coordinate: coord, Source: models.OriginSourceManual}, nil
}

func (uc *OriginUC) fromIP(ctx context.Context) (models.Origin, error) {
	coord, ok := uc.ip.LocateByIP(ctx)
	if !ok {
		return models.Origin{}, ErrNoOrigin
	}
	return models.Origin{Coordinate: coord, Source: models.OriginSourceIP}, nil
}

// remember stores the origin as the last-known location; failures are only logged
func (uc *OriginUC) remember(ctx context.Context, origin models.Origin) {
	if uc.lastFix == nil {
		return
	}
	fix := models.LastFix{
		Latitude:  origin.Coordinate.Latitude,
		Longitude: origin.Coordinate.Longitude,
		Timestamp: uc.now(),
		Source:    origin.Source,
	}
	if err := uc.lastFix.Save(ctx, fix); err != nil {
		uc.logger.Warn("Failed to save last known location", logger.Err(err))
	}
}
