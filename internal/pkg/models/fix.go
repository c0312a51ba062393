package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// Error markers written by the device-location helper
const (
	FixErrorTimeout       = "timeout"
	FixErrorHelperFailed  = "helper_failed"
	FixErrorNotSupported  = "geolocation_not_supported"
	FixErrorPermission    = "permission_denied"
	FixErrorBrowserFailed = "browser_failed"
)

// ErrMalformedFix is returned when a handoff payload has neither coordinates nor an error marker
var ErrMalformedFix = errors.New("malformed location fix")

// LocationFix is the tagged result handed from the device-location helper to the requester.
// Exactly one of Coordinate or Error is set.
type LocationFix struct {
	Coordinate *Coordinate
	Error      string
	ObtainedAt time.Time
}

// HasCoordinate reports whether the fix carries a position
func (f LocationFix) HasCoordinate() bool {
	return f.Coordinate != nil
}

// wire form: {"lat":..,"lon":..,"ts":..} or {"error":"..","ts":..}; ts is unix seconds
type locationFixWire struct {
	Lat   *float64 `json:"lat,omitempty"`
	Lon   *float64 `json:"lon,omitempty"`
	Error string   `json:"error,omitempty"`
	TS    float64  `json:"ts"`
}

// MarshalJSON encodes the fix in its handoff wire form
func (f LocationFix) MarshalJSON() ([]byte, error) {
	w := locationFixWire{TS: float64(f.ObtainedAt.UnixNano()) / 1e9}
	if f.Coordinate != nil {
		lat, lon := f.Coordinate.Latitude, f.Coordinate.Longitude
		w.Lat, w.Lon = &lat, &lon
	} else {
		w.Error = f.Error
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the handoff wire form
func (f *LocationFix) UnmarshalJSON(data []byte) error {
	var w locationFixWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	sec, frac := math.Modf(w.TS)
	obtained := time.Unix(int64(sec), int64(frac*1e9))

	switch {
	case w.Lat != nil && w.Lon != nil:
		c, err := NewCoordinate(*w.Lat, *w.Lon)
		if err != nil {
			return err
		}
		*f = LocationFix{Coordinate: &c, ObtainedAt: obtained}
	case w.Error != "":
		*f = LocationFix{Error: w.Error, ObtainedAt: obtained}
	default:
		return fmt.Errorf("%w: %s", ErrMalformedFix, string(data))
	}
	return nil
}
