// Package cli wires the switcher to its cobra command tree.
package cli

import (
	"fmt"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"codeberg.org/miketth/hyprtap/pkg/hyprland"
	jsonstore "codeberg.org/miketth/hyprtap/pkg/statestore/json"
	sqlitestore "codeberg.org/miketth/hyprtap/pkg/statestore/sqlite"
	"codeberg.org/miketth/hyprtap/pkg/switcher"
)

type app struct {
	debug   bool
	backend string

	log *zap.SugaredLogger
}

// NewRootCmd builds the hyprtap command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "hyprtap",
		Short: "Multi-tap keyboard layout switcher for Hyprland",
		Long: `Multi-tap keyboard layout switcher for Hyprland, like on macOS:
bind a hotkey to 'hyprtap switch'. A single tap toggles between the two most
recently used layouts, a rapid burst of taps walks through the rest.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(a.debug)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			a.log = log
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.backend, "store", "json", "state store backend (json or sqlite)")

	rootCmd.AddCommand(
		newInitCmd(a),
		newSwitchCmd(a),
		newUpdateLayoutsCmd(a),
		newDeviceCmd(a),
		newKeypressDurationCmd(a),
		newWatchCmd(a),
		newCompletionCmd(rootCmd),
	)

	return rootCmd
}

func (a *app) openStore() (switcher.StateStore, error) {
	switch a.backend {
	case "json":
		path, err := xdg.DataFile("hyprtap/data.json")
		if err != nil {
			return nil, fmt.Errorf("resolve data file: %w", err)
		}
		return jsonstore.NewStateStore(path)

	case "sqlite":
		path, err := xdg.DataFile("hyprtap/state.db")
		if err != nil {
			return nil, fmt.Errorf("resolve data file: %w", err)
		}
		return sqlitestore.NewStateStore(path, a.log)
	}

	return nil, fmt.Errorf("unknown store backend: %q", a.backend)
}

// newSwitcher builds the switcher service and a cleanup func closing the
// store behind it.
func (a *app) newSwitcher() (*switcher.Switcher, func(), error) {
	store, err := a.openStore()
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	hyprctl, err := hyprland.NewHyprctl()
	if err != nil {
		store.Close()
		return nil, nil, fmt.Errorf("connect hyprctl: %w", err)
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			a.log.Warnw("close store", "error", err)
		}
	}

	return switcher.NewSwitcher(store, hyprctl, a.log), cleanup, nil
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()

	loggerConfig.OutputPaths = []string{"stdout"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
