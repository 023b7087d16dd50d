package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opticslab/bosactl/pkg/bosa"
	"github.com/opticslab/bosactl/pkg/trace"
)

var (
	captureSpan   float64
	captureOut    string
	capturePrefix string
)

// Poll intervals for the slow instrument state transitions.
const (
	modePollInterval  = 5 * time.Second
	statePollInterval = 20 * time.Second
	laserWarmup       = 60 * time.Second
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Acquire one trace and save CSV + PNG",
	Long: `Switch the analyzer into component analysis mode, start a measurement,
acquire the current trace in binary form and save it as a CSV file and a PNG
plot.

Examples:
  bosactl capture --address 10.10.68.64 --span 40 --out data --prefix mxln10`,
	Args: cobra.NoArgs,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)

	captureCmd.Flags().Float64Var(&captureSpan, "span", 40, "wavelength span in nm")
	captureCmd.Flags().StringVar(&captureOut, "out", "", "output directory (overrides config)")
	captureCmd.Flags().StringVar(&capturePrefix, "prefix", "", "artifact file prefix (overrides config)")
}

func runCapture(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if captureOut != "" {
		cfg.Output.Dir = captureOut
	}
	if capturePrefix != "" {
		cfg.Output.Prefix = capturePrefix
	}

	ctx := cmd.Context()
	dev, err := connectDevice(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer dev.Close()

	started := time.Now()
	if err := prepareAnalyzer(ctx, log, dev, captureSpan); err != nil {
		return err
	}
	tr, err := acquireTrace(ctx, dev)
	if err != nil {
		return err
	}

	base := filepath.Join(cfg.Output.Dir, cfg.Output.Prefix)
	if err := trace.SaveCSV(base+".csv", tr); err != nil {
		return err
	}
	if err := trace.SavePlot(base+".png", tr, "nm"); err != nil {
		return err
	}
	log.Info().Int("points", len(tr)).Str("csv", base+".csv").Str("png", base+".png").
		Dur("elapsed", time.Since(started)).Msg("capture complete")
	return nil
}

// prepareAnalyzer drives the instrument into component analysis mode with a
// running measurement and the requested span. Mode and run-state changes are
// slow and acknowledged asynchronously, so both are polled. Leaving MAIN mode
// powers the sweep laser up, which needs a warm-up wait before traces are
// meaningful.
func prepareAnalyzer(ctx context.Context, log zerolog.Logger, dev *bosa.Device, spanNM float64) error {
	mode, err := dev.Mode(ctx)
	if err != nil {
		return err
	}
	laserCold := strings.TrimRight(mode, "\r\n") == string(bosa.ModeMain)

	if _, err := dev.SetMode(ctx, bosa.ModeCA); err != nil {
		return err
	}
	if err := waitForReply(ctx, log, string(bosa.ModeCA), modePollInterval, dev.Mode); err != nil {
		return err
	}

	if _, err := dev.SetState(ctx, bosa.StateRun, true); err != nil {
		return err
	}
	runState := func(ctx context.Context) (string, error) {
		return dev.State(ctx, bosa.StateRun)
	}
	if err := waitForReply(ctx, log, "ON", statePollInterval, runState); err != nil {
		return err
	}

	if laserCold {
		log.Info().Dur("warmup", laserWarmup).Msg("laser starting, waiting for warm-up")
		if err := sleep(ctx, laserWarmup); err != nil {
			return err
		}
	}

	if _, err := dev.SetSpan(ctx, spanNM, bosa.UnitNM); err != nil {
		return err
	}
	return nil
}

// acquireTrace reads the current trace. The point count is taken in ASCII
// mode, the trace itself in binary, and the instrument is left back in ASCII
// so interactive use afterwards stays readable.
func acquireTrace(ctx context.Context, dev *bosa.Device) (trace.Trace, error) {
	if _, err := dev.SetFormat(ctx, bosa.FormatASCII, -1, false); err != nil {
		return nil, err
	}
	if _, err := dev.SetNormY(ctx, false, false, false); err != nil {
		return nil, err
	}
	if _, err := dev.AutoscaleY(ctx, false, false, false); err != nil {
		return nil, err
	}
	points, err := dev.TraceCount(ctx, false)
	if err != nil {
		return nil, err
	}
	if _, err := dev.SetFormat(ctx, bosa.FormatReal, -1, false); err != nil {
		return nil, err
	}
	tr, err := dev.AskTraceReal(ctx, points)
	if err != nil {
		return nil, err
	}
	if _, err := dev.SetFormat(ctx, bosa.FormatASCII, -1, false); err != nil {
		return nil, err
	}
	return tr, nil
}
