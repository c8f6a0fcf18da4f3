package switcher

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// LayoutResolver maps a layout's pretty name ("English (US)") back to its
// xkb code and variant. May be nil; names are then logged as-is.
type LayoutResolver interface {
	GetLayoutAndVariantFromPrettyName(prettyName string) (string, string)
}

// Watcher streams layout events from the compositor event socket and logs
// them. Meant for tuning the keypress duration and debugging device setups.
type Watcher struct {
	listener EventListener
	resolver LayoutResolver
	log      *zap.SugaredLogger
}

func NewWatcher(listener EventListener, resolver LayoutResolver, log *zap.SugaredLogger) *Watcher {
	return &Watcher{
		listener: listener,
		resolver: resolver,
		log:      log,
	}
}

// Run reads event lines until ctx is canceled or the socket fails.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		resultCh := make(chan string)
		errCh := make(chan error)
		go func() {
			line, err := w.listener.ReadLine()
			if err != nil {
				errCh <- err
				return
			}
			resultCh <- line
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line := <-resultCh:
			w.processLine(line)
		case err := <-errCh:
			return fmt.Errorf("get line: %w", err)
		}
	}
}

func (w *Watcher) processLine(line string) {
	fields := strings.Split(line, ">>")
	if len(fields) < 2 {
		w.log.Debugw("ignoring malformed event", "line", line)
		return
	}

	evType := fields[0]
	evData := fields[1]
	if evType != "activelayout" {
		return
	}

	dataParts := strings.Split(evData, ",")
	if len(dataParts) < 2 {
		w.log.Debugw("ignoring malformed layout event", "data", evData)
		return
	}

	keyboardName := dataParts[0]
	layout := strings.Join(dataParts[1:], ",")

	if w.resolver != nil {
		if code, variant := w.resolver.GetLayoutAndVariantFromPrettyName(layout); code != "" {
			w.log.Infow("layout changed", "device", keyboardName, "layout", layout, "code", code, "variant", variant)
			return
		}
	}

	w.log.Infow("layout changed", "device", keyboardName, "layout", layout)
}
