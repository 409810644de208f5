package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nikbrunner/dialer/internal/phone"
	"github.com/spf13/cobra"
)

var flagFormatE164 bool

var formatCmd = &cobra.Command{
	Use:   "format <number>...",
	Short: "Print numbers the way the dialer shows them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		printFormatted(os.Stdout, args, cfg.Region, flagFormatE164)
		return nil
	},
}

func init() {
	formatCmd.Flags().BoolVar(&flagFormatE164, "e164", false, "print E.164 instead of the display format")
}

func printFormatted(w io.Writer, numbers []string, region string, e164 bool) {
	for _, raw := range numbers {
		number := phone.Normalize(raw)
		if e164 {
			fmt.Fprintln(w, phone.E164(number, region))
			continue
		}
		fmt.Fprintln(w, phone.Format(number, region))
	}
}
