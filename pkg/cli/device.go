package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeviceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "device",
		Short: "Manage the stored device list",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Print all stored device names",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				sw, cleanup, err := a.newSwitcher()
				if err != nil {
					return err
				}
				defer cleanup()

				devices, err := sw.Devices()
				if err != nil {
					return err
				}

				fmt.Println("Current stored devices:")
				for _, device := range devices {
					fmt.Printf(" - %s\n", device)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <name>",
			Short: "Add a device to the stored state",
			Long: `Add a device to the stored state. The name must match a
keyboard known to Hyprland; get valid names from 'hyprctl devices'.`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sw, cleanup, err := a.newSwitcher()
				if err != nil {
					return err
				}
				defer cleanup()

				return sw.AddDevice(args[0])
			},
		},
		&cobra.Command{
			Use:   "remove <name>",
			Short: "Remove the matching device from the stored state",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				sw, cleanup, err := a.newSwitcher()
				if err != nil {
					return err
				}
				defer cleanup()

				return sw.RemoveDevice(args[0])
			},
		},
	)

	return cmd
}
