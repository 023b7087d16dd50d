package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/opticslab/bosactl/pkg/bosa"
	"github.com/opticslab/bosactl/pkg/psu"
	"github.com/opticslab/bosactl/pkg/trace"
)

var (
	sweepSpan    float64
	sweepOut     string
	sweepPrefix  string
	sweepChannel int
	sweepStart   float64
	sweepStop    float64
	sweepSteps   int
)

// biasSettle is how long the device under test gets after each bias change
// before the trace is read.
const biasSettle = 5 * time.Second

// sweepPolarizations are measured one after the other at every bias point.
var sweepPolarizations = []bosa.Polarization{bosa.Pol1, bosa.Pol2}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Bias sweep: step the PSU and capture a trace per point",
	Long: `Step the power supply through a voltage ramp and acquire one trace per
bias point and input polarization. Each trace is saved as CSV and PNG named
<prefix>_<V>Vpol<P>.

The supply connection comes from the [supply] config section.

Examples:
  bosactl sweep --config bench.toml --channel 2 --start 0 --stop 15 --steps 16`,
	Args: cobra.NoArgs,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().Float64Var(&sweepSpan, "span", 40, "wavelength span in nm")
	sweepCmd.Flags().StringVar(&sweepOut, "out", "", "output directory (overrides config)")
	sweepCmd.Flags().StringVar(&sweepPrefix, "prefix", "", "artifact file prefix (overrides config)")
	sweepCmd.Flags().IntVar(&sweepChannel, "channel", 0, "supply output channel (overrides config)")
	sweepCmd.Flags().Float64Var(&sweepStart, "start", 0, "first bias voltage")
	sweepCmd.Flags().Float64Var(&sweepStop, "stop", 15, "last bias voltage")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 16, "number of bias points")
}

func runSweep(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if sweepOut != "" {
		cfg.Output.Dir = sweepOut
	}
	if sweepPrefix != "" {
		cfg.Output.Prefix = sweepPrefix
	}
	if sweepChannel != 0 {
		cfg.Supply.Channel = sweepChannel
	}
	if sweepSteps < 1 {
		return fmt.Errorf("steps must be at least 1, got %d", sweepSteps)
	}
	if cfg.Supply.Address == "" {
		return fmt.Errorf("sweep needs a supply address in the config")
	}

	runID := uuid.NewString()
	log = log.With().Str("run", runID).Logger()

	ctx := cmd.Context()
	dev, err := connectDevice(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer dev.Close()

	supply, err := psu.Connect(cfg.SupplyTransport(), psu.WithLogger(log))
	if err != nil {
		return err
	}
	defer supply.Close()

	started := time.Now()
	if err := prepareAnalyzer(ctx, log, dev, sweepSpan); err != nil {
		return err
	}
	if _, err := dev.SetPolarization(ctx, bosa.PolSimul); err != nil {
		return err
	}

	for _, pol := range sweepPolarizations {
		if _, err := dev.SetPolarization(ctx, pol); err != nil {
			return err
		}
		for i := 0; i < sweepSteps; i++ {
			volts := sweepStart
			if sweepSteps > 1 {
				volts += (sweepStop - sweepStart) * float64(i) / float64(sweepSteps-1)
			}
			if err := supply.SetVoltage(ctx, cfg.Supply.Channel, volts); err != nil {
				return err
			}
			if err := sleep(ctx, biasSettle); err != nil {
				return err
			}

			tr, err := acquireTrace(ctx, dev)
			if err != nil {
				return err
			}

			name := fmt.Sprintf("%s_%dVpol%s", cfg.Output.Prefix, int(volts), pol)
			base := filepath.Join(cfg.Output.Dir, name)
			if err := trace.SaveCSV(base+".csv", tr); err != nil {
				return err
			}
			if err := trace.SavePlot(base+".png", tr, "nm"); err != nil {
				return err
			}
			log.Info().Str("pol", string(pol)).Float64("volts", volts).
				Int("points", len(tr)).Str("file", name).Msg("bias point captured")
		}
	}

	log.Info().Dur("elapsed", time.Since(started)).Msg("sweep complete")
	return nil
}
