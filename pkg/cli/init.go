package cli

import (
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init <devices...>",
		Short: "Initialize the stored state with device names",
		Long: `Initialize the stored state with device names.

Captures the current time, loads the layout list from input:kb_layout, and
writes a fresh state record. Device names not known to Hyprland are skipped
with a warning; get valid names from 'hyprctl devices'.

Must be run before all the other commands.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sw, cleanup, err := a.newSwitcher()
			if err != nil {
				return err
			}
			defer cleanup()

			return sw.Init(args)
		},
	}
}

func newUpdateLayoutsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update-layouts",
		Short: "Re-read the layout set from hyprland.conf",
		Long: `Re-read the layout set from hyprland.conf and reset the stored
rotation order. Use after changing input:kb_layout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sw, cleanup, err := a.newSwitcher()
			if err != nil {
				return err
			}
			defer cleanup()

			count, err := sw.UpdateLayouts()
			if err != nil {
				return err
			}

			a.log.Infow("layouts updated", "count", count)
			return nil
		},
	}
}
