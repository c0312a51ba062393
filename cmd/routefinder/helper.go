package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/piresc/routefinder/internal/pkg/opener"
	"github.com/piresc/routefinder/services/location/device"
	"github.com/spf13/cobra"
)

var (
	helperOut     string
	helperTimeout time.Duration
)

// helperCmd is launched by the device-location requester; it is not meant to be run by hand
var helperCmd = &cobra.Command{
	Use:    device.HelperCommand,
	Short:  "Obtain the device location through the browser",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runHelper,
}

func init() {
	helperCmd.Flags().StringVar(&helperOut, "out", "", "Handoff file the fix is written to")
	helperCmd.Flags().DurationVar(&helperTimeout, "timeout", device.DefaultHelperTimeout, "Give up and write a timeout marker after this long")
	_ = helperCmd.MarkFlagRequired("out")
}

func runHelper(cmd *cobra.Command, args []string) error {
	configs := loadConfig()
	zapLogger, err := newLogger(configs, os.Stderr)
	if err != nil {
		return err
	}
	defer zapLogger.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return device.NewHelper(device.HelperConfig{
		FixPath: helperOut,
		Timeout: helperTimeout,
		Open:    opener.URL,
	}, zapLogger).Run(ctx)
}
