package cli

import (
	"github.com/spf13/cobra"
)

func newSwitchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "switch",
		Short: "Switch the keyboard layout, macOS style",
		Long: `Switch the keyboard layout on every registered device. Bind this
to a hotkey: a single tap toggles between the two most recently used layouts,
a rapid burst of taps walks through the rest.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sw, cleanup, err := a.newSwitcher()
			if err != nil {
				return err
			}
			defer cleanup()

			return sw.Switch()
		},
	}
}
