package switcher

import (
	"errors"
	"strconv"
)

// Duration is the burst window threshold in seconds: presses that land
// inside the window count as one rapid-tap run.
type Duration float64

const (
	// DefaultMaxDuration is assumed when a stored record carries no threshold.
	DefaultMaxDuration Duration = 0.4

	MinDuration = 0.2
	MaxDuration = 1.0
)

var ErrInvalidDuration = errors.New("keypress duration must be in range [0.2, 1.0]")

// ValidDuration reports whether seconds is an acceptable threshold.
func ValidDuration(seconds float64) bool {
	return seconds >= MinDuration && seconds <= MaxDuration
}

// Satisfies reports whether elapsed still fits inside the window.
func (d Duration) Satisfies(elapsed float64) bool {
	return elapsed < float64(d)
}

func (d Duration) String() string {
	return strconv.FormatFloat(float64(d), 'g', -1, 64)
}
