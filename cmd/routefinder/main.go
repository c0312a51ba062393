package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "routefinder",
	Short:         "Plan a route from where you are to where you want to go",
	Long:          `Resolves an origin (device location, typed address or IP geolocation), geocodes the destination, asks the routing service for a route and renders it on a map.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".env", "Path to the env config file")

	rootCmd.AddCommand(routeCmd, serveCmd, destinationsCmd, lastCmd, helperCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
