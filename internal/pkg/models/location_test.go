package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lon     float64
		wantErr bool
	}{
		{name: "curitiba", lat: -25.4284, lon: -49.2733},
		{name: "poles and antimeridian", lat: 90, lon: -180},
		{name: "latitude too high", lat: 90.0001, lon: 0, wantErr: true},
		{name: "longitude too low", lat: 0, lon: -180.5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCoordinate(tt.lat, tt.lon)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCoordinate)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, Coordinate{Latitude: tt.lat, Longitude: tt.lon}, c)
		})
	}
}
