package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSummary_WithRoute(t *testing.T) {
	km, min := 5.0, 10.0
	var buf bytes.Buffer

	printSummary(&buf, &models.RouteSummary{
		ArtifactPath:     "/tmp/map.html",
		Origin:           models.Coordinate{Latitude: -25.4284, Longitude: -49.2733},
		OriginSource:     models.OriginSourceIP,
		Destination:      models.Coordinate{Latitude: -25.43, Longitude: -49.28},
		DestinationLabel: "Catedral",
		Mode:             models.TravelModeCar,
		Profile:          models.ProfileDriving,
		DistanceKm:       &km,
		DurationMin:      &min,
	})

	out := buf.String()
	assert.Contains(t, out, "[ip]")
	assert.Contains(t, out, "Catedral")
	assert.Contains(t, out, "5.00 km")
	assert.Contains(t, out, "10.0 min")
	assert.Contains(t, out, "car (driving)")
	assert.Contains(t, out, "/tmp/map.html")
}

func TestPrintSummary_WithoutRoute(t *testing.T) {
	var buf bytes.Buffer

	printSummary(&buf, &models.RouteSummary{
		ArtifactPath: "/tmp/map.html",
		Mode:         models.TravelModeFoot,
		Profile:      models.ProfileWalking,
		Notices:      []string{models.BusModeNotice},
	})

	out := buf.String()
	assert.NotContains(t, out, "Distance:")
	assert.Contains(t, out, models.BusModeNotice)
}

func TestDestinationsCommand(t *testing.T) {
	var buf bytes.Buffer
	destinationsCmd.SetOut(&buf)

	require.NoError(t, destinationsCmd.RunE(destinationsCmd, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
}

func TestHelperCommandIsHidden(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"locate-helper"})

	require.NoError(t, err)
	assert.True(t, cmd.Hidden)
	assert.NotNil(t, cmd.Flags().Lookup("out"))
	assert.NotNil(t, cmd.Flags().Lookup("timeout"))
}
