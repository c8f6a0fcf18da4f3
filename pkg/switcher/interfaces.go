package switcher

import "errors"

// ErrNotInitialized is returned by state stores when no record has been
// written yet.
var ErrNotInitialized = errors.New("no stored state, run 'hyprtap init' first")

// Keyboard is one keyboard as reported by the compositor.
type Keyboard struct {
	Name     string
	Layouts  []string
	Variants []string
}

// LayoutSwitcher is the compositor surface the switcher drives.
type LayoutSwitcher interface {
	GetKeyboards() ([]Keyboard, error)
	GetConfiguredLayouts() ([]string, error)
	SwitchToLayout(keyboard string, idx int) error
}

// StateStore persists the rotation state between invocations.
type StateStore interface {
	Load() (*Data, error)
	Store(*Data) error
	Close() error
}

// EventListener yields raw lines from the compositor event socket.
type EventListener interface {
	ReadLine() (string, error)
}
