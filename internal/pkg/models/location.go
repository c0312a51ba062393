package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCoordinate is returned when latitude or longitude fall outside the WGS84 range
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is an immutable WGS84 point
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewCoordinate builds a validated coordinate
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	c := Coordinate{Latitude: lat, Longitude: lon}
	if err := c.Validate(); err != nil {
		return Coordinate{}, err
	}
	return c, nil
}

// Validate checks latitude ∈ [-90,90] and longitude ∈ [-180,180]
func (c Coordinate) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: lat=%f lon=%f", ErrInvalidCoordinate, c.Latitude, c.Longitude)
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.Latitude, c.Longitude)
}

// OriginSource tells which strategy produced the origin
type OriginSource string

const (
	OriginSourceDevice OriginSource = "device"
	OriginSourceIP     OriginSource = "ip"
	OriginSourceManual OriginSource = "manual"
)

// Origin is a resolved starting point together with the strategy that produced it
type Origin struct {
	Coordinate Coordinate   `json:"coordinate"`
	Source     OriginSource `json:"source"`
}

// OriginRequest carries the user inputs that drive origin resolution
type OriginRequest struct {
	UseDeviceLocation bool   `json:"use_device_location"`
	ManualOrigin      string `json:"origin,omitempty"`
}

// LastFix is the persisted last-known location
type LastFix struct {
	Latitude  float64      `json:"lat"`
	Longitude float64      `json:"lon"`
	Timestamp time.Time    `json:"ts"`
	Source    OriginSource `json:"source"`
}

// Coordinate returns the stored point
func (f LastFix) Coordinate() Coordinate {
	return Coordinate{Latitude: f.Latitude, Longitude: f.Longitude}
}
