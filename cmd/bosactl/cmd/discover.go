package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opticslab/bosactl/pkg/scpi"
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List candidate USB GPIB controllers",
	Long: `Scan the USB bus for devices that look like GPIB controllers
(Prologix, AR488 clones and Arduino boards) and print them.

Examples:
  bosactl discover`,
	Args: cobra.NoArgs,
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	controllers, err := scpi.Discover(cmd.Context())
	if err != nil {
		return err
	}
	if len(controllers) == 0 {
		fmt.Println("No GPIB controllers found")
		return nil
	}
	fmt.Printf("Found %d candidate controller(s):\n", len(controllers))
	for _, c := range controllers {
		fmt.Printf("  %s\n", c.Label())
	}
	return nil
}
