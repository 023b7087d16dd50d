package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var idnCmd = &cobra.Command{
	Use:   "idn",
	Short: "Identify the instrument",
	Long:  `Connect to the analyzer and print its *IDN? identification string.`,
	Args:  cobra.NoArgs,
	RunE:  runIdn,
}

func init() {
	rootCmd.AddCommand(idnCmd)
}

func runIdn(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	dev, err := connectDevice(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer dev.Close()

	idn, err := dev.Identification(ctx)
	if err != nil {
		return err
	}
	fmt.Println(strings.TrimRight(idn, "\r\n"))
	return nil
}
