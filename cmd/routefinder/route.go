package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/internal/pkg/opener"
	"github.com/piresc/routefinder/services/mapview"
	"github.com/spf13/cobra"
)

var (
	routeOrigin    string
	routeMode      string
	routeUseDevice bool
	routeNoOpen    bool
)

var routeCmd = &cobra.Command{
	Use:   "route <destination>",
	Short: "Plan a route and open it on a map",
	Long:  `Plan a route to a destination (an address or one of the predefined destination names) and open the rendered map in the browser.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRoute,
}

func init() {
	routeCmd.Flags().StringVarP(&routeOrigin, "origin", "o", "", "Origin address; IP geolocation is used when empty")
	routeCmd.Flags().StringVarP(&routeMode, "mode", "m", string(models.TravelModeCar), "Travel mode: car, foot or bike")
	routeCmd.Flags().BoolVarP(&routeUseDevice, "device", "d", false, "Use the device location through the browser (a device fix younger than DEVICE_MAX_FIX_AGE is reused when set)")
	routeCmd.Flags().BoolVar(&routeNoOpen, "no-open", false, "Write the map without opening it")
}

func runRoute(cmd *cobra.Command, args []string) error {
	configs := loadConfig()
	zapLogger, err := newLogger(configs, os.Stderr)
	if err != nil {
		return err
	}

	a, err := newApp(configs, zapLogger)
	if err != nil {
		return err
	}
	defer a.Close()

	summary, err := a.planner.Plan(cmd.Context(), models.RouteRequest{
		Destination:       strings.Join(args, " "),
		Origin:            routeOrigin,
		UseDeviceLocation: routeUseDevice,
		Mode:              routeMode,
	})
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), summary)

	if routeNoOpen {
		return nil
	}
	if err := mapview.NewViewer(opener.File).Open(summary.ArtifactPath); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Could not open the map automatically: %v\n", err)
	}
	return nil
}

func printSummary(w io.Writer, s *models.RouteSummary) {
	fmt.Fprintf(w, "Origin:      %s [%s]\n", s.Origin, s.OriginSource)
	fmt.Fprintf(w, "Destination: %s %s\n", s.DestinationLabel, s.Destination)
	fmt.Fprintf(w, "Mode:        %s (%s)\n", s.Mode, s.Profile)
	if s.DistanceKm != nil && s.DurationMin != nil {
		fmt.Fprintf(w, "Distance:    %.2f km\n", *s.DistanceKm)
		fmt.Fprintf(w, "Time:        %.1f min\n", *s.DurationMin)
	}
	for _, notice := range s.Notices {
		fmt.Fprintf(w, "Note:        %s\n", notice)
	}
	fmt.Fprintf(w, "Map:         %s\n", s.ArtifactPath)
}
