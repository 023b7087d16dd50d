package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opticslab/bosactl/internal/config"
	"github.com/opticslab/bosactl/internal/logging"
	"github.com/opticslab/bosactl/pkg/bosa"
)

var (
	// Global flags
	configFile string
	verbose    bool
	address    string
	port       int
)

var rootCmd = &cobra.Command{
	Use:   "bosactl",
	Short: "BOSA optical spectrum analyzer control",
	Long: `Remote control for a BOSA-class optical spectrum analyzer over its
SCPI socket or a GPIB controller.

Examples:
  bosactl idn --address 10.10.68.64                  # Identify the instrument
  bosactl raw "SENS:WAV:CENT?" --address 10.10.68.64 # One SCPI query
  bosactl capture --span 40 --out data               # Acquire one trace
  bosactl sweep --channel 2 --stop 15                # Bias sweep with the PSU`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&address, "address", "", "instrument IP address (overrides config)")
	rootCmd.PersistentFlags().IntVar(&port, "port", 0, "instrument TCP port (overrides config)")
}

func newLogger() zerolog.Logger {
	return logging.New("bosactl", verbose)
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return config.Config{}, err
		}
	}
	if address != "" {
		cfg.Instrument.Address = address
	}
	if port != 0 {
		cfg.Instrument.Port = port
	}
	return cfg, nil
}

func connectDevice(ctx context.Context, cfg config.Config, log zerolog.Logger, opts ...bosa.Option) (*bosa.Device, error) {
	opts = append([]bosa.Option{bosa.WithLogger(log)}, opts...)
	return bosa.Connect(ctx, cfg.InstrumentTransport(), opts...)
}

// waitForReply polls get until the instrument answers want. Replies keep
// their terminator, so the comparison strips it. Slow transitions (mode
// switches, run state) are polled at the given interval.
func waitForReply(ctx context.Context, log zerolog.Logger, want string, interval time.Duration, get func(context.Context) (string, error)) error {
	for {
		reply, err := get(ctx)
		if err != nil {
			return err
		}
		if strings.TrimRight(reply, "\r\n") == want {
			return nil
		}
		log.Info().Str("reply", strings.TrimRight(reply, "\r\n")).Str("want", want).Msg("waiting for instrument")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// sleep waits without outliving the context.
func sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
