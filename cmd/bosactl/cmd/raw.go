package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opticslab/bosactl/pkg/bosa"
)

var rawCmd = &cobra.Command{
	Use:   "raw <command>",
	Short: "Send one SCPI command",
	Long: `Send one SCPI command verbatim. Commands ending in "?" are queries:
one reply line is read and printed. Anything else is written without reading.

Examples:
  bosactl raw "*IDN?"
  bosactl raw "SENS:WAV:CENT 1550 NM"`,
	Args: cobra.ExactArgs(1),
	RunE: runRaw,
}

func init() {
	rootCmd.AddCommand(rawCmd)
}

func runRaw(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	dev, err := connectDevice(ctx, cfg, log, bosa.WithIdentify(false))
	if err != nil {
		return err
	}
	defer dev.Close()

	command := args[0]
	if strings.HasSuffix(command, "?") {
		reply, err := dev.Ask(ctx, command)
		if err != nil {
			return err
		}
		fmt.Println(strings.TrimRight(reply, "\r\n"))
		return nil
	}
	return dev.Write(command)
}
