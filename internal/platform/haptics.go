package platform

import (
	"errors"
	"time"
)

// ErrHapticsUnsupported indicates the host has no vibration hardware.
var ErrHapticsUnsupported = errors.New("haptics unsupported")

// DefaultVibration is the on/off pattern used for a completion alert.
var DefaultVibration = []time.Duration{200 * time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond}

// Haptics triggers a vibration pattern on the host device.
type Haptics interface {
	Vibrate(pattern []time.Duration) error
}

type unsupportedHaptics struct{}

// NewHaptics returns the haptics capability of the current host. Desktop
// platforms have none and report ErrHapticsUnsupported.
func NewHaptics() Haptics {
	return unsupportedHaptics{}
}

func (unsupportedHaptics) Vibrate([]time.Duration) error {
	return ErrHapticsUnsupported
}
