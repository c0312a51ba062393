package models

import "strings"

// TravelMode is the user-facing transport choice
type TravelMode string

const (
	TravelModeCar  TravelMode = "car"
	TravelModeFoot TravelMode = "foot"
	TravelModeBike TravelMode = "bike"
	// TravelModeBus is a legacy value; the routing service has no public-transit profile
	TravelModeBus TravelMode = "bus"
)

// Routing-service profiles
const (
	ProfileDriving = "driving"
	ProfileWalking = "walking"
	ProfileCycling = "cycling"
)

// BusModeNotice is shown when a legacy bus request is served with the walking profile
const BusModeNotice = "Bus routing is not supported by the routing service; walking is used as an approximation."

// ProfileForMode maps a travel mode to its routing profile. Unknown modes default to driving.
func ProfileForMode(mode TravelMode) string {
	switch mode {
	case TravelModeCar:
		return ProfileDriving
	case TravelModeFoot:
		return ProfileWalking
	case TravelModeBike:
		return ProfileCycling
	default:
		return ProfileDriving
	}
}

// NormalizeMode lowercases the boundary value and maps legacy bus to foot.
// The returned notice is empty unless the mode was rewritten.
func NormalizeMode(raw string) (TravelMode, string) {
	mode := TravelMode(strings.ToLower(strings.TrimSpace(raw)))
	if mode == TravelModeBus {
		return TravelModeFoot, BusModeNotice
	}
	if mode == "" {
		return TravelModeCar, ""
	}
	return mode, ""
}

// RouteResult is the normalized routing-service answer
type RouteResult struct {
	Polyline        []Coordinate `json:"polyline"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
}

// DistanceKm returns the route length in kilometres
func (r RouteResult) DistanceKm() float64 {
	return r.DistanceMeters / 1000.0
}

// DurationMin returns the route duration in minutes
func (r RouteResult) DurationMin() float64 {
	return r.DurationSeconds / 60.0
}

// RouteRequest is what the form (CLI flags or web form) submits
type RouteRequest struct {
	Destination       string `json:"destination"`
	Origin            string `json:"origin,omitempty"`
	UseDeviceLocation bool   `json:"use_device_location"`
	Mode              string `json:"mode"`
}

// RouteSummary is the outcome handed back to the caller. Distance and duration are nil when
// no route could be obtained.
type RouteSummary struct {
	RequestID        string       `json:"request_id"`
	ArtifactPath     string       `json:"artifact_path"`
	Origin           Coordinate   `json:"origin"`
	OriginSource     OriginSource `json:"origin_source"`
	Destination      Coordinate   `json:"destination"`
	DestinationLabel string       `json:"destination_label"`
	Mode             TravelMode   `json:"mode"`
	Profile          string       `json:"profile"`
	DistanceKm       *float64     `json:"distance_km"`
	DurationMin      *float64     `json:"duration_min"`
	Notices          []string     `json:"notices,omitempty"`
}

// MapInput is everything the map artifact builder needs
type MapInput struct {
	Origin      Coordinate
	Destination Coordinate
	Label       string
	Mode        TravelMode
	Route       *RouteResult
}

// Destination is an entry of the predefined destination catalogue
type Destination struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}
