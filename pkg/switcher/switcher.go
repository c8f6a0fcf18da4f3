package switcher

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrUnknownDevice is returned when a device name does not match any
// keyboard known to the compositor.
var ErrUnknownDevice = errors.New("unknown keyboard device")

// Switcher ties the state store and the compositor together. Every method
// is one complete load -> transform -> store cycle, matching the
// one-process-per-hotkey-press execution model. There is no cross-process
// lock on the store, overlapping invocations can race the write-back.
type Switcher struct {
	store   StateStore
	hyprctl LayoutSwitcher
	log     *zap.SugaredLogger

	now func() float64
}

func NewSwitcher(store StateStore, hyprctl LayoutSwitcher, log *zap.SugaredLogger) *Switcher {
	return &Switcher{
		store:   store,
		hyprctl: hyprctl,
		log:     log,
		now:     unixNow,
	}
}

func unixNow() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// Init writes a fresh record: current time, identity permutation over the
// configured layouts, and the given devices filtered against the live
// keyboard enumeration. Unknown names are skipped with a warning.
func (s *Switcher) Init(devices []string) error {
	layouts, err := s.hyprctl.GetConfiguredLayouts()
	if err != nil {
		return fmt.Errorf("get configured layouts: %w", err)
	}

	keyboards, err := s.hyprctl.GetKeyboards()
	if err != nil {
		return fmt.Errorf("get keyboards: %w", err)
	}

	available := make(map[string]struct{}, len(keyboards))
	for _, kb := range keyboards {
		available[kb.Name] = struct{}{}
	}

	used := make([]string, 0, len(devices))
	for _, device := range devices {
		if _, ok := available[device]; !ok {
			s.log.Warnf("skipping invalid keyboard name: %s", device)
			continue
		}
		used = append(used, device)
	}

	data := NewData(used, len(layouts), s.now())
	if err := s.store.Store(data); err != nil {
		return fmt.Errorf("store state: %w", err)
	}

	s.log.Infow("initialized", "devices", used, "layouts", len(layouts))
	return nil
}

// Switch is the hot path bound to the hotkey: classify the press, rotate,
// apply the resulting layout to every registered keyboard, persist.
//
// Per-device failures are logged and do not block the other devices or the
// state write-back.
func (s *Switcher) Switch() error {
	data, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	data.RegisterPress(s.now())
	layout := data.Advance()

	keyboards, err := s.hyprctl.GetKeyboards()
	if err != nil {
		return fmt.Errorf("get keyboards: %w", err)
	}

	registered := make(map[string]struct{}, len(data.Devices))
	for _, dev := range data.Devices {
		registered[dev] = struct{}{}
	}

	var wg sync.WaitGroup
	for _, kb := range keyboards {
		if _, ok := registered[kb.Name]; !ok {
			continue
		}

		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if err := s.hyprctl.SwitchToLayout(name, layout); err != nil {
				s.log.Errorw("switch layout", "device", name, "error", err)
			}
		}(kb.Name)
	}

	if err := s.store.Store(data); err != nil {
		wg.Wait()
		return fmt.Errorf("store state: %w", err)
	}
	wg.Wait()

	s.log.Debugw("switched", "layout", layout, "counter", data.Counter)
	return nil
}

// UpdateLayouts re-reads the configured layout list and resets the
// permutation to the identity of the new length. Use it after changing the
// kb_layout set in hyprland.conf.
func (s *Switcher) UpdateLayouts() (int, error) {
	layouts, err := s.hyprctl.GetConfiguredLayouts()
	if err != nil {
		return 0, fmt.Errorf("get configured layouts: %w", err)
	}

	data, err := s.store.Load()
	if err != nil {
		return 0, fmt.Errorf("load state: %w", err)
	}

	data.ResetLayouts(len(layouts))
	if err := s.store.Store(data); err != nil {
		return 0, fmt.Errorf("store state: %w", err)
	}

	return len(layouts), nil
}

// AddDevice appends a device after checking it against the live keyboard
// enumeration. The returned error lists the known keyboards when the name
// does not match.
func (s *Switcher) AddDevice(name string) error {
	keyboards, err := s.hyprctl.GetKeyboards()
	if err != nil {
		return fmt.Errorf("get keyboards: %w", err)
	}

	found := false
	names := make([]string, 0, len(keyboards))
	for _, kb := range keyboards {
		names = append(names, kb.Name)
		if kb.Name == name {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %s, available keyboards:\n - %s",
			ErrUnknownDevice, name, strings.Join(names, "\n - "))
	}

	data, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	data.AddDevice(name)
	if err := s.store.Store(data); err != nil {
		return fmt.Errorf("store state: %w", err)
	}

	return nil
}

// RemoveDevice drops the first matching entry. A name that is not stored is
// a no-op, not an error.
func (s *Switcher) RemoveDevice(name string) error {
	data, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	if !data.RemoveDevice(name) {
		return nil
	}

	if err := s.store.Store(data); err != nil {
		return fmt.Errorf("store state: %w", err)
	}

	return nil
}

// Devices returns the stored device names.
func (s *Switcher) Devices() ([]string, error) {
	data, err := s.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return data.Devices, nil
}

// Threshold returns the stored burst window.
func (s *Switcher) Threshold() (Duration, error) {
	data, err := s.store.Load()
	if err != nil {
		return 0, fmt.Errorf("load state: %w", err)
	}
	return data.MaxDuration, nil
}

// SetThreshold validates and stores a new burst window. Out-of-range values
// are rejected before anything is written.
func (s *Switcher) SetThreshold(seconds float64) error {
	if !ValidDuration(seconds) {
		return fmt.Errorf("%w, got %g", ErrInvalidDuration, seconds)
	}

	data, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	data.MaxDuration = Duration(seconds)
	if err := s.store.Store(data); err != nil {
		return fmt.Errorf("store state: %w", err)
	}

	return nil
}
