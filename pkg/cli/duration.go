package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newKeypressDurationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keypress-duration [seconds]",
		Short: "Print or set the burst window between presses",
		Long: `Print or set the burst window: the maximum time between presses
for them to count as one rapid-tap run. Accepts values from [0.2, 1.0]
seconds, anything else is declined. Without an argument the current value is
printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sw, cleanup, err := a.newSwitcher()
			if err != nil {
				return err
			}
			defer cleanup()

			if len(args) == 0 {
				threshold, err := sw.Threshold()
				if err != nil {
					return err
				}
				fmt.Printf("The current max keypress duration: %s\n", threshold)
				return nil
			}

			seconds, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse duration: %w", err)
			}

			return sw.SetThreshold(seconds)
		},
	}
}
