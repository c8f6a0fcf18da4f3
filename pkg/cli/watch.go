package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/spf13/cobra"

	"codeberg.org/miketth/hyprtap/pkg/hyprland"
	"codeberg.org/miketth/hyprtap/pkg/switcher"
	"codeberg.org/miketth/hyprtap/pkg/xkblayouts"
)

func newWatchCmd(a *app) *cobra.Command {
	evdevXmlPath := ""

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream layout change events from Hyprland",
		Long: `Stream layout change events from the Hyprland event socket to
the log. Useful for finding device names and tuning the keypress duration.
Can run as a systemd service; readiness and watchdog are notified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.watch(cmd.Context(), evdevXmlPath)
		},
	}

	cmd.Flags().StringVar(&evdevXmlPath, "evdev-xml-path", "/usr/share/X11/xkb/rules/evdev.xml", "path to evdev.xml")

	return cmd
}

func (a *app) watch(ctx context.Context, evdevXmlPath string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := hyprland.Connect()
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Close()

	var resolver switcher.LayoutResolver
	registry, err := xkblayouts.ParseLayouts(evdevXmlPath)
	if err != nil {
		a.log.Warnw("xkb registry unavailable, logging raw layout names", "error", err)
	} else {
		resolver = registry
	}

	watcher := switcher.NewWatcher(client, resolver, a.log)

	a.log.Info("watching layout events")

	errChan := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := watcher.Run(ctx); err != nil {
			errChan <- fmt.Errorf("watch events: %w", err)
		}
	}()

	go func() {
		defer wg.Done()
		if err := systemdNotifyLoop(ctx); err != nil {
			errChan <- fmt.Errorf("systemd notify: %w", err)
		}
	}()

	err = <-errChan
	if errors.Is(err, context.Canceled) {
		a.log.Info("shutting down")
		wg.Wait()
		return nil
	}

	return err
}

func systemdNotifyLoop(ctx context.Context) error {
	// tell systemd that we're ready
	supported, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		return fmt.Errorf("notify systemd: %w", err)
	}
	if !supported {
		<-ctx.Done()
		return ctx.Err()
	}

	t, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		return fmt.Errorf("check watchdog: %w", err)
	}
	// if watchdog is not enabled, we don't need to notify it
	if t == 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-time.After(t / 2):
			_, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			if err != nil {
				return fmt.Errorf("notify watchdog: %w", err)
			}
		}
	}
}
