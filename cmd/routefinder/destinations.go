package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/piresc/routefinder/internal/pkg/constants"
	locationrepo "github.com/piresc/routefinder/services/location/repository"
	"github.com/spf13/cobra"
)

var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List the predefined destinations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tADDRESS")
		for _, name := range constants.DestinationNames(constants.Destinations) {
			address, _ := constants.LookupDestination(constants.Destinations, name)
			fmt.Fprintf(w, "%s\t%s\n", name, address)
		}
		return w.Flush()
	},
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the last known location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := loadConfig()
		lastFix := locationrepo.NewLastFixFile(configs.Files.LastFixFile)

		fix, ok, err := lastFix.Load(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No last known location")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] at %s\n",
			fix.Coordinate(), fix.Source, fix.Timestamp.Local().Format("2006-01-02 15:04:05"))
		return nil
	},
}
